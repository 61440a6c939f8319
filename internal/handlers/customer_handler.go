package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/PerfectPlumbing/plumbing-ops/internal/audit"
	"github.com/PerfectPlumbing/plumbing-ops/internal/cache"
	"github.com/PerfectPlumbing/plumbing-ops/internal/httperr"
	"github.com/PerfectPlumbing/plumbing-ops/internal/httpresp"
	"github.com/PerfectPlumbing/plumbing-ops/internal/models"
	"github.com/PerfectPlumbing/plumbing-ops/internal/validators"
)

type CustomerHandler struct {
	db    *gorm.DB
	cache *cache.Cache
	audit *audit.Dispatcher
}

func NewCustomerHandler(db *gorm.DB, c *cache.Cache, a *audit.Dispatcher) *CustomerHandler {
	return &CustomerHandler{db: db, cache: c, audit: a}
}

// --------- Requests ---------

type CreateCustomerRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	Notes    string `json:"notes"`
}

type UpdateCustomerRequest struct {
	FullName *string `json:"full_name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Email    *string `json:"email,omitempty"`
	Address  *string `json:"address,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

// ======================================================
// LIST
// ======================================================

func (h *CustomerHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	// only the unfiltered listing is cached
	if query == "" {
		var cached []models.Customer
		if h.cache.GetJSON(c.Request.Context(), cache.KeyCustomers, &cached) {
			httpresp.List(c, cached)
			return
		}
	}

	q := h.db.Model(&models.Customer{})

	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(full_name) LIKE ? OR phone LIKE ? OR LOWER(email) LIKE ?",
			like, like, like,
		)
	}

	var customers []models.Customer
	if err := q.
		Order("full_name ASC").
		Find(&customers).Error; err != nil {

		httperr.Internal(c, "failed_to_list_customers", "Could not list customers.")
		return
	}

	if query == "" {
		h.cache.SetJSON(c.Request.Context(), cache.KeyCustomers, customers)
	}

	httpresp.List(c, customers)
}

// ======================================================
// CREATE
// ======================================================

func (h *CustomerHandler) Create(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Name and phone are required.")
		return
	}

	if !validators.IsPhoneValid(req.Phone) {
		httperr.BadRequest(c, "invalid_phone", "Phone number does not look valid.")
		return
	}

	customer := models.Customer{
		FullName: strings.TrimSpace(req.FullName),
		Phone:    strings.TrimSpace(req.Phone),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Address:  req.Address,
		Notes:    req.Notes,
	}

	if err := h.db.Create(&customer).Error; err != nil {
		httperr.Internal(c, "failed_to_create_customer", "Could not create customer.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), cache.KeyCustomers)

	h.audit.Dispatch(audit.Event{
		UserID:   currentUserID(c),
		Action:   "customer_created",
		Entity:   "customer",
		EntityID: customer.ID,
	})

	c.JSON(http.StatusCreated, customer)
}

// ======================================================
// UPDATE (partial)
// ======================================================

func (h *CustomerHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var customer models.Customer
	if err := h.db.Where("id = ?", id).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "customer_not_found", "Customer not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_customer", "Could not load customer.")
		return
	}

	var req UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid customer payload.")
		return
	}

	if req.Phone != nil && !validators.IsPhoneValid(*req.Phone) {
		httperr.BadRequest(c, "invalid_phone", "Phone number does not look valid.")
		return
	}

	if req.FullName != nil {
		customer.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.Phone != nil {
		customer.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Email != nil {
		customer.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Address != nil {
		customer.Address = *req.Address
	}
	if req.Notes != nil {
		customer.Notes = *req.Notes
	}

	if err := h.db.Save(&customer).Error; err != nil {
		httperr.Internal(c, "failed_to_update_customer", "Could not update customer.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), cache.KeyCustomers)

	h.audit.Dispatch(audit.Event{
		UserID:   currentUserID(c),
		Action:   "customer_updated",
		Entity:   "customer",
		EntityID: customer.ID,
	})

	c.JSON(http.StatusOK, customer)
}

// ======================================================
// DELETE
// ======================================================

// Delete removes a customer with no jobs. The FK constraint on jobs is
// the referee: a violation is reported as a specific conflict instead of
// pre-reading the job list.
func (h *CustomerHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	res := h.db.Where("id = ?", id).Delete(&models.Customer{})
	if res.Error != nil {
		if isFKViolation(res.Error) {
			httperr.Conflict(c, "customer_has_jobs", "Cannot delete a customer with existing jobs.")
			return
		}
		httperr.Internal(c, "failed_to_delete_customer", "Could not delete customer.")
		return
	}

	if res.RowsAffected == 0 {
		httperr.NotFound(c, "customer_not_found", "Customer not found.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), cache.KeyCustomers)

	h.audit.Dispatch(audit.Event{
		UserID:   currentUserID(c),
		Action:   "customer_deleted",
		Entity:   "customer",
		EntityID: id,
	})

	c.Status(http.StatusNoContent)
}
