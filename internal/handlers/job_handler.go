package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/PerfectPlumbing/plumbing-ops/internal/audit"
	"github.com/PerfectPlumbing/plumbing-ops/internal/cache"
	domain "github.com/PerfectPlumbing/plumbing-ops/internal/domain/job"
	"github.com/PerfectPlumbing/plumbing-ops/internal/httperr"
	"github.com/PerfectPlumbing/plumbing-ops/internal/httpresp"
	"github.com/PerfectPlumbing/plumbing-ops/internal/models"
	"github.com/PerfectPlumbing/plumbing-ops/internal/timezone"
	ucjob "github.com/PerfectPlumbing/plumbing-ops/internal/usecase/job"
)

// ======================================================
// HANDLER
// ======================================================

type JobHandler struct {
	db         *gorm.DB
	cache      *cache.Cache
	audit      *audit.Dispatcher
	transition *ucjob.TransitionJob
}

func NewJobHandler(
	db *gorm.DB,
	c *cache.Cache,
	a *audit.Dispatcher,
	transition *ucjob.TransitionJob,
) *JobHandler {
	return &JobHandler{
		db:         db,
		cache:      c,
		audit:      a,
		transition: transition,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateJobRequest struct {
	CustomerID    string `json:"customer_id" binding:"required"`
	JobAddress    string `json:"job_address" binding:"required"`
	Description   string `json:"description"`
	ScheduledDate string `json:"scheduled_date" binding:"required"`
	ScheduledTime string `json:"scheduled_time"`
}

type UpdateJobRequest struct {
	JobAddress    *string `json:"job_address,omitempty"`
	Description   *string `json:"description,omitempty"`
	ScheduledDate *string `json:"scheduled_date,omitempty"`
	ScheduledTime *string `json:"scheduled_time,omitempty"`
}

type UpdateJobStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// LIST (optional status filter)
// ======================================================

func (h *JobHandler) List(c *gin.Context) {
	statusFilter := strings.TrimSpace(c.Query("status"))
	if statusFilter == "all" {
		statusFilter = ""
	}

	if statusFilter != "" && !domain.IsValid(domain.Status(statusFilter)) {
		httperr.BadRequest(c, "invalid_status", "Unknown job status.")
		return
	}

	key := cache.JobListKey(statusFilter)

	var cached []models.Job
	if h.cache.GetJSON(c.Request.Context(), key, &cached) {
		httpresp.List(c, cached)
		return
	}

	q := h.db.Preload("Customer")
	if statusFilter != "" {
		q = q.Where("status = ?", statusFilter)
	}

	var jobs []models.Job
	if err := q.
		Order("scheduled_date DESC").
		Find(&jobs).Error; err != nil {

		httperr.Internal(c, "failed_to_list_jobs", "Could not list jobs.")
		return
	}

	h.cache.SetJSON(c.Request.Context(), key, jobs)

	httpresp.List(c, jobs)
}

// ======================================================
// LIST BY DAY (calendar)
// ======================================================

func (h *JobHandler) ListByDay(c *gin.Context) {
	date := timezone.Today()

	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := parseDate(dateStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
			return
		}
		date = parsed
	}

	end := date.AddDate(0, 0, 1)

	var jobs []models.Job
	if err := h.db.
		Preload("Customer").
		Where("scheduled_date >= ? AND scheduled_date < ?", date, end).
		Order("scheduled_time ASC").
		Find(&jobs).Error; err != nil {

		httperr.Internal(c, "failed_to_list_jobs", "Could not list jobs.")
		return
	}

	httpresp.List(c, jobs)
}

// ======================================================
// GET
// ======================================================

func (h *JobHandler) Get(c *gin.Context) {
	id := c.Param("id")
	key := cache.JobKey(id)

	var cached models.Job
	if h.cache.GetJSON(c.Request.Context(), key, &cached) {
		httpresp.OK(c, cached)
		return
	}

	var j models.Job
	if err := h.db.
		Preload("Customer").
		Where("id = ?", id).
		First(&j).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "job_not_found", "Job not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_job", "Could not load job.")
		return
	}

	h.cache.SetJSON(c.Request.Context(), key, j)

	httpresp.OK(c, j)
}

// ======================================================
// CREATE (always in draft)
// ======================================================

func (h *JobHandler) Create(c *gin.Context) {
	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Customer, address and scheduled date are required.")
		return
	}

	date, err := parseDate(req.ScheduledDate)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Scheduled date must be YYYY-MM-DD.")
		return
	}

	var customer models.Customer
	if err := h.db.Where("id = ?", req.CustomerID).First(&customer).Error; err != nil {
		httperr.BadRequest(c, "customer_not_found", "Customer does not exist.")
		return
	}

	j := models.Job{
		CustomerID:    customer.ID,
		Status:        string(domain.InitialStatus()),
		JobAddress:    req.JobAddress,
		Description:   req.Description,
		ScheduledDate: date,
		ScheduledTime: req.ScheduledTime,
	}

	if err := h.db.Create(&j).Error; err != nil {
		httperr.Internal(c, "failed_to_create_job", "Could not create job.")
		return
	}
	j.Customer = customer

	h.cache.InvalidatePrefix(c.Request.Context(), cache.JobListPrefix)

	h.audit.Dispatch(audit.Event{
		UserID:   currentUserID(c),
		Action:   "job_created",
		Entity:   "job",
		EntityID: j.ID,
	})

	c.JSON(http.StatusCreated, j)
}

// ======================================================
// UPDATE (fields only; status moves through /status)
// ======================================================

func (h *JobHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var j models.Job
	if err := h.db.Where("id = ?", id).First(&j).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "job_not_found", "Job not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_job", "Could not load job.")
		return
	}

	var req UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid job payload.")
		return
	}

	if req.JobAddress != nil {
		j.JobAddress = *req.JobAddress
	}
	if req.Description != nil {
		j.Description = *req.Description
	}
	if req.ScheduledDate != nil {
		date, err := parseDate(*req.ScheduledDate)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Scheduled date must be YYYY-MM-DD.")
			return
		}
		j.ScheduledDate = date
	}
	if req.ScheduledTime != nil {
		j.ScheduledTime = *req.ScheduledTime
	}

	if err := h.db.Save(&j).Error; err != nil {
		httperr.Internal(c, "failed_to_update_job", "Could not update job.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), cache.JobKey(j.ID))
	h.cache.InvalidatePrefix(c.Request.Context(), cache.JobListPrefix)

	h.audit.Dispatch(audit.Event{
		UserID:   currentUserID(c),
		Action:   "job_updated",
		Entity:   "job",
		EntityID: j.ID,
	})

	c.JSON(http.StatusOK, j)
}

// ======================================================
// STATUS TRANSITION
// ======================================================

func (h *JobHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")

	var req UpdateJobStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "A target status is required.")
		return
	}

	j, err := h.transition.Execute(
		c.Request.Context(),
		currentUserID(c),
		id,
		domain.Status(req.Status),
	)
	if err != nil {
		switch httperr.BusinessCode(err) {
		case "job_not_found":
			httperr.NotFound(c, "job_not_found", "Job not found.")
		case "invalid_status":
			httperr.BadRequest(c, "invalid_status", "Unknown job status.")
		case "invalid_transition":
			httperr.BadRequest(c, "invalid_transition", "Job cannot move to that status.")
		default:
			httperr.Internal(c, "failed_to_update_job", "Could not update job.")
		}
		return
	}

	c.JSON(http.StatusOK, j)
}
