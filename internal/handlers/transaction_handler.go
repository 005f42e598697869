package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fadehouse/barberpos/internal/audit"
	"github.com/fadehouse/barberpos/internal/httperr"
	"github.com/fadehouse/barberpos/internal/httpresp"
	"github.com/fadehouse/barberpos/internal/middleware"
	"github.com/fadehouse/barberpos/internal/models"
	"github.com/fadehouse/barberpos/internal/timezone"
)

type TransactionHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
	tz    string
}

func NewTransactionHandler(db *gorm.DB, auditDispatcher *audit.Dispatcher, tz string) *TransactionHandler {
	return &TransactionHandler{db: db, audit: auditDispatcher, tz: tz}
}

// ======================================================
// LIST (owner, date range + pagination)
// ======================================================
func (h *TransactionHandler) List(c *gin.Context) {
	fromStr := c.Query("from")
	toStr := c.Query("to")

	pageStr := c.DefaultQuery("page", "1")
	limitStr := c.DefaultQuery("limit", "50")

	page, _ := strconv.Atoi(pageStr)
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(limitStr)
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	offset := (page - 1) * limit
	loc := timezone.Location(h.tz)

	q := h.db.Model(&models.Transaction{})

	if fromStr != "" {
		if from, err := time.ParseInLocation("2006-01-02", fromStr, loc); err == nil {
			q = q.Where("created_at >= ?", from)
		}
	}

	if toStr != "" {
		if to, err := time.ParseInLocation("2006-01-02", toStr, loc); err == nil {
			q = q.Where("created_at < ?", to.AddDate(0, 0, 1))
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "failed_to_count_transactions", "Could not count transactions.")
		return
	}

	var transactions []models.Transaction
	if err := q.
		Preload("Customer").
		Preload("Cashier").
		Preload("Barber").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&transactions).Error; err != nil {

		httperr.Internal(c, "failed_to_list_transactions", "Could not load transactions.")
		return
	}

	httpresp.OK(c, gin.H{
		"page":         page,
		"limit":        limit,
		"total":        total,
		"transactions": transactions,
	})
}

// ======================================================
// GET ONE (with line items)
// ======================================================
func (h *TransactionHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var tx models.Transaction
	if err := h.db.
		Preload("Customer").
		Preload("Cashier").
		Preload("Barber").
		Preload("Services").
		Preload("Services.Service").
		First(&tx, "id = ?", id).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "transaction_not_found", "Transaction not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_transaction", "Could not load transaction.")
		return
	}

	httpresp.OK(c, tx)
}

// ======================================================
// CANCEL (owner only)
// ======================================================

// Cancel marks a completed transaction as cancelled. The row and its line
// items stay in place; revenue reports skip non-completed transactions.
// Visit counts are not rolled back.
func (h *TransactionHandler) Cancel(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var tx models.Transaction
	if err := h.db.First(&tx, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "transaction_not_found", "Transaction not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_transaction", "Could not load transaction.")
		return
	}

	if tx.Status == "cancelled" {
		httperr.Conflict(c, "already_cancelled", "Transaction is already cancelled.")
		return
	}

	tx.Status = "cancelled"
	if err := h.db.Save(&tx).Error; err != nil {
		httperr.Internal(c, "failed_to_cancel_transaction", "Could not cancel transaction.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &ownerID,
		Action:   audit.ActionTransactionVoided,
		Entity:   "transaction",
		EntityID: &tx.ID,
	})

	httpresp.OK(c, tx)
}

// ======================================================
// TODAY'S SALES FOR THE CURRENT BARBER
// ======================================================
func (h *TransactionHandler) ListMineToday(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	now := timezone.NowIn(h.tz)
	start := timezone.StartOfDay(now)
	end := start.AddDate(0, 0, 1)

	var transactions []models.Transaction
	if err := h.db.
		Preload("Customer").
		Preload("Services").
		Preload("Services.Service").
		Where(
			"barber_id = ? AND created_at >= ? AND created_at < ?",
			barberID, start, end,
		).
		Order("created_at DESC").
		Find(&transactions).Error; err != nil {

		httperr.Internal(c, "failed_to_list_transactions", "Could not load today's transactions.")
		return
	}

	httpresp.List(c, transactions)
}
