package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/PerfectPlumbing/plumbing-ops/internal/cache"
	"github.com/PerfectPlumbing/plumbing-ops/internal/httperr"
	"github.com/PerfectPlumbing/plumbing-ops/internal/httpresp"
	"github.com/PerfectPlumbing/plumbing-ops/internal/models"
	ucpayment "github.com/PerfectPlumbing/plumbing-ops/internal/usecase/payment"
)

type PaymentHandler struct {
	db     *gorm.DB
	cache  *cache.Cache
	record *ucpayment.RecordPayment
}

func NewPaymentHandler(
	db *gorm.DB,
	c *cache.Cache,
	record *ucpayment.RecordPayment,
) *PaymentHandler {
	return &PaymentHandler{db: db, cache: c, record: record}
}

// --------- Requests ---------

type RecordPaymentRequest struct {
	Amount float64 `json:"amount" binding:"required"`
	Method string  `json:"method" binding:"required"`
}

// ======================================================
// LIST BY JOB
// ======================================================

func (h *PaymentHandler) ListForJob(c *gin.Context) {
	jobID := c.Param("id")
	key := cache.PaymentListKey(jobID)

	var cached []models.Payment
	if h.cache.GetJSON(c.Request.Context(), key, &cached) {
		httpresp.List(c, cached)
		return
	}

	var payments []models.Payment
	if err := h.db.
		Where("job_id = ?", jobID).
		Order("payment_date DESC").
		Find(&payments).Error; err != nil {

		httperr.Internal(c, "failed_to_list_payments", "Could not list payments.")
		return
	}

	h.cache.SetJSON(c.Request.Context(), key, payments)

	httpresp.List(c, payments)
}

// ======================================================
// RECORD (payment -> invoice -> job invoiced)
// ======================================================

func (h *PaymentHandler) Record(c *gin.Context) {
	jobID := c.Param("id")

	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Amount and method are required.")
		return
	}

	result, err := h.record.Execute(
		c.Request.Context(),
		currentUserID(c),
		ucpayment.RecordPaymentInput{
			JobID:  jobID,
			Amount: req.Amount,
			Method: req.Method,
		},
	)
	if err != nil {
		switch httperr.BusinessCode(err) {
		case "invalid_amount":
			httperr.BadRequest(c, "invalid_amount", "Amount must be greater than zero.")
		case "invalid_method":
			httperr.BadRequest(c, "invalid_method", "Method must be cash or e_transfer.")
		case "job_not_found":
			httperr.NotFound(c, "job_not_found", "Job not found.")
		case "invalid_transition":
			httperr.Conflict(c, "invalid_transition", "Job could not be advanced to invoiced.")
		default:
			// the sequence is not transactional; earlier writes may have landed
			httperr.Internal(c, "failed_to_record_payment", "Could not record payment.")
		}
		return
	}

	c.JSON(http.StatusCreated, result)
}
