package job

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/PerfectPlumbing/plumbing-ops/internal/audit"
	domain "github.com/PerfectPlumbing/plumbing-ops/internal/domain/job"
	"github.com/PerfectPlumbing/plumbing-ops/internal/httperr"
	"github.com/PerfectPlumbing/plumbing-ops/internal/models"
	"github.com/PerfectPlumbing/plumbing-ops/internal/timezone"
)

// TransitionJob enforces the linear status workflow. The loaded job is
// only persisted after the domain action succeeds; on a persistence
// failure the caller's view of the job is untouched.
type TransitionJob struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewTransitionJob(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *TransitionJob {
	return &TransitionJob{
		repo:  repo,
		audit: audit,
		now:   timezone.Now,
	}
}

func (uc *TransitionJob) Execute(
	ctx context.Context,
	userID *string,
	jobID string,
	target domain.Status,
) (*models.Job, error) {

	if !domain.IsValid(target) {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	j, err := uc.repo.GetJob(ctx, jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("job_not_found")
		}
		return nil, err
	}

	if err := domain.Transition(j, target, uc.now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateJob(ctx, j); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "job_" + string(target),
		Entity:   "job",
		EntityID: j.ID,
	})

	return j, nil
}
