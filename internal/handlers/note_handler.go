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

// Customer notes are append-only: no update or delete routes exist.

type NoteHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewNoteHandler(db *gorm.DB, auditDispatcher *audit.Dispatcher) *NoteHandler {
	return &NoteHandler{db: db, audit: auditDispatcher}
}

type CreateNoteRequest struct {
	Note string `json:"note" binding:"required"`
}

func (h *NoteHandler) ListByCustomer(c *gin.Context) {
	customerID := c.Param("id")

	var notes []models.CustomerNote
	if err := h.db.
		Preload("Barber").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&notes).Error; err != nil {

		httperr.Internal(c, "failed_to_list_notes", "Could not load notes.")
		return
	}

	httpresp.List(c, notes)
}

func (h *NoteHandler) Create(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	customerID := c.Param("id")

	var customer models.Customer
	if err := h.db.First(&customer, "id = ?", customerID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "customer_not_found", "Customer not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_customer", "Could not load customer.")
		return
	}

	var req CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Note text is required.")
		return
	}

	text := strings.TrimSpace(req.Note)
	if text == "" {
		httperr.BadRequest(c, "empty_note", "Note text is required.")
		return
	}

	note := models.CustomerNote{
		CustomerID: customer.ID,
		BarberID:   barberID,
		Note:       text,
	}

	if err := h.db.Create(&note).Error; err != nil {
		httperr.Internal(c, "failed_to_create_note", "Could not add note.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &barberID,
		Action:   audit.ActionNoteAdded,
		Entity:   "customer_note",
		EntityID: &note.ID,
	})

	httpresp.Created(c, note)
}
