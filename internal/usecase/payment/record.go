package payment

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
	usecasedoc "github.com/PerfectPlumbing/plumbing-ops/internal/usecase/document"
)

// ======================================================
// INPUT / RESULT
// ======================================================

type RecordPaymentInput struct {
	JobID  string
	Amount float64
	Method string
}

type RecordPaymentResult struct {
	Payment *models.Payment  `json:"payment"`
	Invoice *models.Document `json:"invoice"`
	Job     *models.Job      `json:"job"`
}

// ======================================================
// USE CASE
// ======================================================

// RecordPayment performs the three dependent writes of the job-done flow
// in strict sequence: persist the payment, generate the invoice from the
// payment amount, advance the job to invoiced. There is no transaction
// across the three; a mid-sequence failure leaves the earlier writes in
// place and is surfaced to the caller.
type RecordPayment struct {
	repo  domainjob.Repository
	audit *audit.Dispatcher
	files *storage.FileStore
	now   func() time.Time
}

func NewRecordPayment(
	repo domainjob.Repository,
	audit *audit.Dispatcher,
	files *storage.FileStore,
) *RecordPayment {
	return &RecordPayment{
		repo:  repo,
		audit: audit,
		files: files,
		now:   timezone.Now,
	}
}

func (uc *RecordPayment) Execute(
	ctx context.Context,
	userID *string,
	in RecordPaymentInput,
) (*RecordPaymentResult, error) {

	// --------------------------------------------------
	// Local validation, before any write
	// --------------------------------------------------
	if in.Amount <= 0 {
		return nil, httperr.ErrBusiness("invalid_amount")
	}
	if in.Method != models.PaymentMethodCash && in.Method != models.PaymentMethodETransfer {
		return nil, httperr.ErrBusiness("invalid_method")
	}

	j, err := uc.repo.GetJob(ctx, in.JobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("job_not_found")
		}
		return nil, err
	}

	now := uc.now()

	// --------------------------------------------------
	// 1. Payment, dated to the current business day
	// --------------------------------------------------
	p := &models.Payment{
		JobID:       j.ID,
		ClientName:  j.Customer.FullName,
		Amount:      in.Amount,
		Method:      in.Method,
		PaymentDate: timezone.StartOfDay(now),
	}

	if err := uc.repo.CreatePayment(ctx, p); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2. Invoice: payment amount is both the labour charge
	//    and the total, no line items
	// --------------------------------------------------
	inv := &models.Document{
		ID:                uuid.NewString(),
		JobID:             j.ID,
		DocumentType:      models.DocumentTypeInvoice,
		ChargeTo:          j.Customer.FullName,
		JobAddress:        j.JobAddress,
		DescriptionOfWork: j.Description,
		LabourCharge:      in.Amount,
		Total:             in.Amount,
		DisclaimerText:    domaindoc.Disclaimer,
	}

	uc.attachSnapshot(ctx, inv)

	if err := uc.repo.CreateDocument(ctx, inv); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Job status advance
	// --------------------------------------------------
	if err := domainjob.Transition(j, domainjob.StatusInvoiced, now); err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateJob(ctx, j); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "payment_recorded",
		Entity:   "payment",
		EntityID: p.ID,
		Metadata: map[string]any{
			"job_id": j.ID,
			"amount": in.Amount,
			"method": in.Method,
		},
	})

	return &RecordPaymentResult{
		Payment: p,
		Invoice: inv,
		Job:     j,
	}, nil
}

func (uc *RecordPayment) attachSnapshot(ctx context.Context, inv *models.Document) {
	if uc.files == nil {
		return
	}

	body, err := usecasedoc.Render(inv, nil)
	if err != nil {
		log.Printf("invoice render failed: %v", err)
		return
	}

	key, err := uc.files.PutDocument(ctx, inv.ID, body)
	if err != nil {
		log.Printf("invoice upload failed: %v", err)
		return
	}

	inv.FilePath = &key
}
