package document

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	domaindoc "github.com/PerfectPlumbing/plumbing-ops/internal/domain/document"
	domainjob "github.com/PerfectPlumbing/plumbing-ops/internal/domain/job"
	"github.com/PerfectPlumbing/plumbing-ops/internal/httperr"
	"github.com/PerfectPlumbing/plumbing-ops/internal/models"
)

type fakeRepo struct {
	jobs map[string]models.Job

	documents []models.Document
	lineItems []models.LineItem

	getErr       error
	createDocErr error
	jobUpdates   int
}

func newFakeRepo(jobs ...models.Job) *fakeRepo {
	f := &fakeRepo{jobs: map[string]models.Job{}}
	for _, j := range jobs {
		f.jobs[j.ID] = j
	}
	return f
}

func (f *fakeRepo) GetJob(_ context.Context, id string) (*models.Job, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	j, ok := f.jobs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := j
	return &cp, nil
}

func (f *fakeRepo) UpdateJob(_ context.Context, j *models.Job) error {
	f.jobUpdates++
	f.jobs[j.ID] = *j
	return nil
}

func (f *fakeRepo) CreateDocument(_ context.Context, doc *models.Document) error {
	if f.createDocErr != nil {
		return f.createDocErr
	}
	f.documents = append(f.documents, *doc)
	return nil
}

func (f *fakeRepo) CreateLineItems(_ context.Context, items []models.LineItem) error {
	f.lineItems = append(f.lineItems, items...)
	return nil
}

func (f *fakeRepo) CreatePayment(_ context.Context, _ *models.Payment) error { return nil }
func (f *fakeRepo) ListJobsForDay(_ context.Context, _, _ time.Time) ([]models.Job, error) {
	return nil, nil
}
func (f *fakeRepo) CountActiveJobsInRange(_ context.Context, _, _ time.Time) (int64, error) {
	return 0, nil
}
func (f *fakeRepo) CountJobsByStatus(_ context.Context, _ domainjob.Status) (int64, error) {
	return 0, nil
}

var _ domainjob.Repository = (*fakeRepo)(nil)

func draftJob() models.Job {
	return models.Job{
		ID:         "j1",
		Status:     string(domainjob.StatusDraft),
		JobAddress: "12 Maple St",
		Customer:   models.Customer{ID: "c1", FullName: "Dana Wells"},
	}
}

func TestGenerateQuote_ComputesTotalsAndFilters(t *testing.T) {
	repo := newFakeRepo(draftJob())
	uc := NewGenerateQuote(repo, nil, nil)

	doc, err := uc.Execute(context.Background(), nil, GenerateQuoteInput{
		JobID:             "j1",
		DescriptionOfWork: "Replace kitchen trap",
		Materials: []domaindoc.Material{
			{ItemName: "Copper pipe", Quantity: 2, UnitPrice: 10.00},
			{ItemName: "P-trap", Quantity: 1, UnitPrice: 5.00},
			{ItemName: "", Quantity: 5, UnitPrice: 100.00},
		},
		LabourCharge: 20,
	})

	require.NoError(t, err)
	assert.Equal(t, models.DocumentTypeQuote, doc.DocumentType)
	assert.Equal(t, 45.00, doc.Total)
	assert.Equal(t, 20.00, doc.LabourCharge)
	assert.Equal(t, "Dana Wells", doc.ChargeTo)
	assert.Equal(t, "12 Maple St", doc.JobAddress)
	assert.Equal(t, domaindoc.Disclaimer, doc.DisclaimerText)

	// the empty-named row never reaches the store
	require.Len(t, repo.lineItems, 2)
	assert.Equal(t, "Copper pipe", repo.lineItems[0].ItemName)
	assert.Equal(t, 20.00, repo.lineItems[0].LineTotal)
	assert.Equal(t, "P-trap", repo.lineItems[1].ItemName)
	assert.Equal(t, 5.00, repo.lineItems[1].LineTotal)
}

func TestGenerateQuote_AdvancesDraftToQuoted(t *testing.T) {
	repo := newFakeRepo(draftJob())
	uc := NewGenerateQuote(repo, nil, nil)

	_, err := uc.Execute(context.Background(), nil, GenerateQuoteInput{
		JobID:        "j1",
		LabourCharge: 100,
	})

	require.NoError(t, err)
	assert.Equal(t, string(domainjob.StatusQuoted), repo.jobs["j1"].Status)
	assert.Equal(t, 1, repo.jobUpdates)
}

func TestGenerateQuote_LeavesNonDraftStatusAlone(t *testing.T) {
	j := draftJob()
	j.Status = string(domainjob.StatusConfirmed)
	repo := newFakeRepo(j)
	uc := NewGenerateQuote(repo, nil, nil)

	_, err := uc.Execute(context.Background(), nil, GenerateQuoteInput{
		JobID:        "j1",
		LabourCharge: 100,
	})

	require.NoError(t, err)
	assert.Equal(t, string(domainjob.StatusConfirmed), repo.jobs["j1"].Status)
	assert.Equal(t, 0, repo.jobUpdates)
}

func TestGenerateQuote_RejectsNegativeLabour(t *testing.T) {
	repo := newFakeRepo(draftJob())
	uc := NewGenerateQuote(repo, nil, nil)

	_, err := uc.Execute(context.Background(), nil, GenerateQuoteInput{
		JobID:        "j1",
		LabourCharge: -1,
	})

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_labour_charge"))
	assert.Empty(t, repo.documents)
}

func TestGenerateQuote_MissingJob(t *testing.T) {
	uc := NewGenerateQuote(newFakeRepo(), nil, nil)

	_, err := uc.Execute(context.Background(), nil, GenerateQuoteInput{JobID: "nope"})

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "job_not_found"))
}

func TestGenerateQuote_LoadFailureIsNotNotFound(t *testing.T) {
	repo := newFakeRepo(draftJob())
	repo.getErr = errors.New("connection refused")
	uc := NewGenerateQuote(repo, nil, nil)

	_, err := uc.Execute(context.Background(), nil, GenerateQuoteInput{JobID: "j1"})

	require.Error(t, err)
	assert.False(t, httperr.IsBusiness(err, "job_not_found"))
}

func TestGenerateQuote_PersistFailure(t *testing.T) {
	repo := newFakeRepo(draftJob())
	repo.createDocErr = errors.New("connection reset")
	uc := NewGenerateQuote(repo, nil, nil)

	_, err := uc.Execute(context.Background(), nil, GenerateQuoteInput{
		JobID:        "j1",
		LabourCharge: 10,
	})

	require.Error(t, err)
	assert.Empty(t, repo.lineItems)
	assert.Equal(t, string(domainjob.StatusDraft), repo.jobs["j1"].Status)
}
