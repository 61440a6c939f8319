package dashboard

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	domainjob "github.com/PerfectPlumbing/plumbing-ops/internal/domain/job"
	"github.com/PerfectPlumbing/plumbing-ops/internal/models"
	"github.com/PerfectPlumbing/plumbing-ops/internal/timezone"
)

type Stats struct {
	TodayJobs     []models.Job `json:"today_jobs"`
	WeekCount     int64        `json:"week_count"`
	UnpaidCount   int64        `json:"unpaid_count"`
	PendingQuotes int64        `json:"pending_quotes"`
}

// GetStats aggregates the dashboard numbers. The four reads are
// independent and issued concurrently, joined before use.
type GetStats struct {
	repo domainjob.Repository
	now  func() time.Time
}

func NewGetStats(repo domainjob.Repository) *GetStats {
	return &GetStats{
		repo: repo,
		now:  timezone.Now,
	}
}

func (uc *GetStats) Execute(ctx context.Context) (*Stats, error) {
	today := timezone.StartOfDay(uc.now())
	tomorrow := today.AddDate(0, 0, 1)
	weekEnd := today.AddDate(0, 0, 8)

	stats := &Stats{TodayJobs: []models.Job{}}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		jobs, err := uc.repo.ListJobsForDay(ctx, today, tomorrow)
		if err != nil {
			return err
		}
		stats.TodayJobs = jobs
		return nil
	})

	g.Go(func() error {
		count, err := uc.repo.CountActiveJobsInRange(ctx, today, weekEnd)
		if err != nil {
			return err
		}
		stats.WeekCount = count
		return nil
	})

	g.Go(func() error {
		count, err := uc.repo.CountJobsByStatus(ctx, domainjob.StatusComplete)
		if err != nil {
			return err
		}
		stats.UnpaidCount = count
		return nil
	})

	g.Go(func() error {
		count, err := uc.repo.CountJobsByStatus(ctx, domainjob.StatusQuoted)
		if err != nil {
			return err
		}
		stats.PendingQuotes = count
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return stats, nil
}
