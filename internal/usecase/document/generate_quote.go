package document

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/PerfectPlumbing/plumbing-ops/internal/audit"
	domaindoc "github.com/PerfectPlumbing/plumbing-ops/internal/domain/document"
	domainjob "github.com/PerfectPlumbing/plumbing-ops/internal/domain/job"
	"github.com/PerfectPlumbing/plumbing-ops/internal/httperr"
	"github.com/PerfectPlumbing/plumbing-ops/internal/models"
	"github.com/PerfectPlumbing/plumbing-ops/internal/storage"
	"github.com/PerfectPlumbing/plumbing-ops/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type GenerateQuoteInput struct {
	JobID string

	DescriptionOfWork string
	Materials         []domaindoc.Material
	LabourCharge      float64
}

// ======================================================
// USE CASE
// ======================================================

// GenerateQuote builds a quote document from the job's materials and
// labour inputs. Empty-named material rows are dropped before anything
// is persisted, and a job still in draft is advanced to quoted once the
// quote is saved.
type GenerateQuote struct {
	repo  domainjob.Repository
	audit *audit.Dispatcher
	files *storage.FileStore
	now   func() time.Time
}

func NewGenerateQuote(
	repo domainjob.Repository,
	audit *audit.Dispatcher,
	files *storage.FileStore,
) *GenerateQuote {
	return &GenerateQuote{
		repo:  repo,
		audit: audit,
		files: files,
		now:   timezone.Now,
	}
}

func (uc *GenerateQuote) Execute(
	ctx context.Context,
	userID *string,
	in GenerateQuoteInput,
) (*models.Document, error) {

	if in.LabourCharge < 0 {
		return nil, httperr.ErrBusiness("invalid_labour_charge")
	}

	j, err := uc.repo.GetJob(ctx, in.JobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("job_not_found")
		}
		return nil, err
	}

	materials := domaindoc.Normalize(in.Materials)
	total := domaindoc.Total(materials, in.LabourCharge)

	doc := &models.Document{
		ID:                uuid.NewString(),
		JobID:             j.ID,
		DocumentType:      models.DocumentTypeQuote,
		ChargeTo:          j.Customer.FullName,
		JobAddress:        j.JobAddress,
		DescriptionOfWork: in.DescriptionOfWork,
		LabourCharge:      in.LabourCharge,
		Total:             total,
		DisclaimerText:    domaindoc.Disclaimer,
	}

	uc.attachSnapshot(ctx, doc, materials)

	if err := uc.repo.CreateDocument(ctx, doc); err != nil {
		return nil, err
	}

	items := make([]models.LineItem, 0, len(materials))
	for _, m := range materials {
		items = append(items, models.LineItem{
			DocumentID: doc.ID,
			Quantity:   m.Quantity,
			ItemName:   m.ItemName,
			UnitPrice:  m.UnitPrice,
			LineTotal:  m.LineTotal(),
		})
	}

	if err := uc.repo.CreateLineItems(ctx, items); err != nil {
		return nil, err
	}
	doc.LineItems = items

	if j.Status == string(domainjob.StatusDraft) {
		if err := domainjob.Transition(j, domainjob.StatusQuoted, uc.now()); err != nil {
			return nil, err
		}
		if err := uc.repo.UpdateJob(ctx, j); err != nil {
			return nil, err
		}
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "quote_generated",
		Entity:   "document",
		EntityID: doc.ID,
		Metadata: map[string]any{"job_id": j.ID, "total": total},
	})

	return doc, nil
}

// attachSnapshot renders the document to text and uploads it. Snapshot
// storage is best-effort: the document is still created without a file
// reference when the store is disabled or the upload fails.
func (uc *GenerateQuote) attachSnapshot(
	ctx context.Context,
	doc *models.Document,
	materials []domaindoc.Material,
) {
	if uc.files == nil {
		return
	}

	body, err := Render(doc, materials)
	if err != nil {
		log.Printf("document render failed: %v", err)
		return
	}

	key, err := uc.files.PutDocument(ctx, doc.ID, body)
	if err != nil {
		log.Printf("document upload failed: %v", err)
		return
	}

	doc.FilePath = &key
}
