package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainjob "github.com/PerfectPlumbing/plumbing-ops/internal/domain/job"
	"github.com/PerfectPlumbing/plumbing-ops/internal/models"
)

type fakeRepo struct {
	todayJobs []models.Job

	dayStart, dayEnd   time.Time
	weekStart, weekEnd time.Time

	countsByStatus map[domainjob.Status]int64
	weekCount      int64
	countErr       error
}

func (f *fakeRepo) GetJob(_ context.Context, _ string) (*models.Job, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeRepo) UpdateJob(_ context.Context, _ *models.Job) error        { return nil }
func (f *fakeRepo) CreateDocument(_ context.Context, _ *models.Document) error { return nil }
func (f *fakeRepo) CreateLineItems(_ context.Context, _ []models.LineItem) error {
	return nil
}
func (f *fakeRepo) CreatePayment(_ context.Context, _ *models.Payment) error { return nil }

func (f *fakeRepo) ListJobsForDay(_ context.Context, start, end time.Time) ([]models.Job, error) {
	f.dayStart, f.dayEnd = start, end
	return f.todayJobs, nil
}

func (f *fakeRepo) CountActiveJobsInRange(_ context.Context, start, end time.Time) (int64, error) {
	f.weekStart, f.weekEnd = start, end
	return f.weekCount, nil
}

func (f *fakeRepo) CountJobsByStatus(_ context.Context, status domainjob.Status) (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return f.countsByStatus[status], nil
}

var _ domainjob.Repository = (*fakeRepo)(nil)

func TestGetStats_JoinsAllFourReads(t *testing.T) {
	repo := &fakeRepo{
		todayJobs: []models.Job{{ID: "j1"}, {ID: "j2"}},
		weekCount: 5,
		countsByStatus: map[domainjob.Status]int64{
			domainjob.StatusComplete: 3,
			domainjob.StatusQuoted:   7,
		},
	}

	uc := NewGetStats(repo)
	now := time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return now }

	stats, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Len(t, stats.TodayJobs, 2)
	assert.Equal(t, int64(5), stats.WeekCount)
	assert.Equal(t, int64(3), stats.UnpaidCount)
	assert.Equal(t, int64(7), stats.PendingQuotes)

	today := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, today, repo.dayStart)
	assert.Equal(t, today.AddDate(0, 0, 1), repo.dayEnd)
	assert.Equal(t, today, repo.weekStart)
	assert.Equal(t, today.AddDate(0, 0, 8), repo.weekEnd)
}

func TestGetStats_PropagatesReadErrors(t *testing.T) {
	repo := &fakeRepo{countErr: errors.New("connection reset")}

	uc := NewGetStats(repo)

	_, err := uc.Execute(context.Background())
	require.Error(t, err)
}
