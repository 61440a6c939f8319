package job

import (
	"context"
	"time"

	"github.com/PerfectPlumbing/plumbing-ops/internal/models"
)

type Repository interface {
	// -------- Job --------
	GetJob(
		ctx context.Context,
		id string,
	) (*models.Job, error)

	UpdateJob(
		ctx context.Context,
		j *models.Job,
	) error

	// -------- Document / line items --------
	CreateDocument(
		ctx context.Context,
		doc *models.Document,
	) error

	CreateLineItems(
		ctx context.Context,
		items []models.LineItem,
	) error

	// -------- Payment --------
	CreatePayment(
		ctx context.Context,
		p *models.Payment,
	) error

	// -------- Dashboard reads --------
	ListJobsForDay(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Job, error)

	CountActiveJobsInRange(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) (int64, error)

	CountJobsByStatus(
		ctx context.Context,
		status Status,
	) (int64, error)
}
