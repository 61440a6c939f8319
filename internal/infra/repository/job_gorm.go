package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/PerfectPlumbing/plumbing-ops/internal/cache"
	domain "github.com/PerfectPlumbing/plumbing-ops/internal/domain/job"
	"github.com/PerfectPlumbing/plumbing-ops/internal/models"
)

// JobGormRepository backs the job use cases. Every mutation invalidates
// the related cache keys so list/get reads reflect it.
type JobGormRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewJobGormRepository(db *gorm.DB, c *cache.Cache) *JobGormRepository {
	return &JobGormRepository{db: db, cache: c}
}

// --------------------------------------------------
// Job
// --------------------------------------------------

func (r *JobGormRepository) GetJob(
	ctx context.Context,
	id string,
) (*models.Job, error) {

	var j models.Job
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Where("id = ?", id).
		First(&j).Error; err != nil {
		return nil, err
	}
	return &j, nil
}

func (r *JobGormRepository) UpdateJob(
	ctx context.Context,
	j *models.Job,
) error {

	if err := r.db.WithContext(ctx).Save(j).Error; err != nil {
		return err
	}

	r.cache.Invalidate(ctx, cache.JobKey(j.ID))
	r.cache.InvalidatePrefix(ctx, cache.JobListPrefix)
	return nil
}

// --------------------------------------------------
// Document / line items
// --------------------------------------------------

func (r *JobGormRepository) CreateDocument(
	ctx context.Context,
	doc *models.Document,
) error {

	if err := r.db.WithContext(ctx).Create(doc).Error; err != nil {
		return err
	}

	r.cache.InvalidatePrefix(ctx, cache.DocumentPrefix+doc.JobID)
	return nil
}

func (r *JobGormRepository) CreateLineItems(
	ctx context.Context,
	items []models.LineItem,
) error {

	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

// --------------------------------------------------
// Payment
// --------------------------------------------------

func (r *JobGormRepository) CreatePayment(
	ctx context.Context,
	p *models.Payment,
) error {

	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return err
	}

	r.cache.Invalidate(ctx, cache.PaymentListKey(p.JobID))
	return nil
}

// --------------------------------------------------
// Dashboard reads
// --------------------------------------------------

func (r *JobGormRepository) ListJobsForDay(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.Job, error) {

	var jobs []models.Job
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Where(
			"scheduled_date >= ? AND scheduled_date < ? AND status NOT IN ?",
			start, end,
			[]string{string(domain.StatusArchived), string(domain.StatusInvoiced)},
		).
		Order("scheduled_time ASC").
		Find(&jobs).Error; err != nil {
		return nil, err
	}

	return jobs, nil
}

func (r *JobGormRepository) CountActiveJobsInRange(
	ctx context.Context,
	start time.Time,
	end time.Time,
) (int64, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Job{}).
		Where(
			"scheduled_date >= ? AND scheduled_date < ? AND status NOT IN ?",
			start, end,
			[]string{string(domain.StatusArchived), string(domain.StatusInvoiced)},
		).
		Count(&count).Error

	return count, err
}

func (r *JobGormRepository) CountJobsByStatus(
	ctx context.Context,
	status domain.Status,
) (int64, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Job{}).
		Where("status = ?", string(status)).
		Count(&count).Error

	return count, err
}

// Compile-time check
var _ domain.Repository = (*JobGormRepository)(nil)
