package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fadehouse/barberpos/internal/audit"
	"github.com/fadehouse/barberpos/internal/httperr"
	"github.com/fadehouse/barberpos/internal/httpresp"
	"github.com/fadehouse/barberpos/internal/middleware"
	"github.com/fadehouse/barberpos/internal/models"
)

type CustomerHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewCustomerHandler(db *gorm.DB, auditDispatcher *audit.Dispatcher) *CustomerHandler {
	return &CustomerHandler{db: db, audit: auditDispatcher}
}

// --------- Requests ---------

type CreateCustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	Notes string `json:"notes"`
}

type UpdateCustomerRequest struct {
	Name  *string `json:"name,omitempty"`
	Phone *string `json:"phone,omitempty"`
	Email *string `json:"email,omitempty"`
	Notes *string `json:"notes,omitempty"`
}

// ======================================================
// LIST (name or phone search)
// ======================================================
func (h *CustomerHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Session(&gorm.Session{})

	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR phone LIKE ? OR LOWER(email) LIKE ?",
			like, like, like,
		)
	}

	var customers []models.Customer
	if err := q.
		Order("name ASC").
		Find(&customers).Error; err != nil {

		httperr.Internal(c, "failed_to_list_customers", "Could not load customers.")
		return
	}

	httpresp.List(c, customers)
}

func (h *CustomerHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var customer models.Customer
	if err := h.db.First(&customer, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "customer_not_found", "Customer not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_customer", "Could not load customer.")
		return
	}

	httpresp.OK(c, customer)
}

// ======================================================
// CREATE
// ======================================================
func (h *CustomerHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Customer name is required.")
		return
	}

	customer := models.Customer{
		Name:  strings.TrimSpace(req.Name),
		Phone: req.Phone,
		Email: req.Email,
		Notes: req.Notes,
	}

	if err := h.db.Create(&customer).Error; err != nil {
		httperr.Internal(c, "failed_to_create_customer", "Could not add customer.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   audit.ActionCustomerCreated,
		Entity:   "customer",
		EntityID: &customer.ID,
	})

	httpresp.Created(c, customer)
}

// ======================================================
// UPDATE
// ======================================================
func (h *CustomerHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var customer models.Customer
	if err := h.db.First(&customer, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "customer_not_found", "Customer not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_customer", "Could not load customer.")
		return
	}

	var req UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid customer data.")
		return
	}

	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.Phone != nil {
		customer.Phone = *req.Phone
	}
	if req.Email != nil {
		customer.Email = *req.Email
	}
	if req.Notes != nil {
		customer.Notes = *req.Notes
	}

	if err := h.db.Save(&customer).Error; err != nil {
		httperr.Internal(c, "failed_to_update_customer", "Could not update customer.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   audit.ActionCustomerUpdated,
		Entity:   "customer",
		EntityID: &customer.ID,
	})

	httpresp.OK(c, customer)
}

// ======================================================
// DELETE (hard delete, confirmation happens client-side)
// ======================================================
func (h *CustomerHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var customer models.Customer
	if err := h.db.First(&customer, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "customer_not_found", "Customer not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_customer", "Could not load customer.")
		return
	}

	if err := h.db.Delete(&customer).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_customer", "Could not delete customer.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   audit.ActionCustomerDeleted,
		Entity:   "customer",
		EntityID: &customer.ID,
	})

	httpresp.OK(c, gin.H{"status": "deleted"})
}
