package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/PerfectPlumbing/plumbing-ops/internal/cache"
	domaindoc "github.com/PerfectPlumbing/plumbing-ops/internal/domain/document"
	"github.com/PerfectPlumbing/plumbing-ops/internal/httperr"
	"github.com/PerfectPlumbing/plumbing-ops/internal/httpresp"
	"github.com/PerfectPlumbing/plumbing-ops/internal/models"
	ucdoc "github.com/PerfectPlumbing/plumbing-ops/internal/usecase/document"
)

type DocumentHandler struct {
	db       *gorm.DB
	cache    *cache.Cache
	generate *ucdoc.GenerateQuote
}

func NewDocumentHandler(
	db *gorm.DB,
	c *cache.Cache,
	generate *ucdoc.GenerateQuote,
) *DocumentHandler {
	return &DocumentHandler{db: db, cache: c, generate: generate}
}

// --------- Requests ---------

type GenerateQuoteRequest struct {
	DescriptionOfWork string               `json:"description_of_work"`
	Materials         []domaindoc.Material `json:"materials"`
	LabourCharge      float64              `json:"labour_charge"`
}

// ======================================================
// LIST BY JOB (optional type filter)
// ======================================================

func (h *DocumentHandler) ListForJob(c *gin.Context) {
	jobID := c.Param("id")
	docType := c.Query("type")

	if docType != "" &&
		docType != models.DocumentTypeQuote &&
		docType != models.DocumentTypeInvoice {
		httperr.BadRequest(c, "invalid_document_type", "Type must be quote or invoice.")
		return
	}

	key := cache.DocumentListKey(jobID, docType)

	var cached []models.Document
	if h.cache.GetJSON(c.Request.Context(), key, &cached) {
		httpresp.List(c, cached)
		return
	}

	q := h.db.Where("job_id = ?", jobID)
	if docType != "" {
		q = q.Where("document_type = ?", docType)
	}

	var docs []models.Document
	if err := q.
		Order("created_at DESC").
		Find(&docs).Error; err != nil {

		httperr.Internal(c, "failed_to_list_documents", "Could not list documents.")
		return
	}

	h.cache.SetJSON(c.Request.Context(), key, docs)

	httpresp.List(c, docs)
}

// ======================================================
// GET (with line items)
// ======================================================

func (h *DocumentHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var doc models.Document
	if err := h.db.
		Preload("LineItems").
		Where("id = ?", id).
		First(&doc).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "document_not_found", "Document not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_document", "Could not load document.")
		return
	}

	httpresp.OK(c, doc)
}

// ======================================================
// GENERATE QUOTE
// ======================================================

func (h *DocumentHandler) GenerateQuote(c *gin.Context) {
	jobID := c.Param("id")

	var req GenerateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid quote payload.")
		return
	}

	doc, err := h.generate.Execute(
		c.Request.Context(),
		currentUserID(c),
		ucdoc.GenerateQuoteInput{
			JobID:             jobID,
			DescriptionOfWork: req.DescriptionOfWork,
			Materials:         req.Materials,
			LabourCharge:      req.LabourCharge,
		},
	)
	if err != nil {
		switch httperr.BusinessCode(err) {
		case "job_not_found":
			httperr.NotFound(c, "job_not_found", "Job not found.")
		case "invalid_labour_charge":
			httperr.BadRequest(c, "invalid_labour_charge", "Labour charge cannot be negative.")
		default:
			httperr.Internal(c, "failed_to_generate_quote", "Could not generate quote.")
		}
		return
	}

	c.JSON(http.StatusCreated, doc)
}
