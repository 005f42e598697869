package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fadehouse/barberpos/internal/httperr"
	"github.com/fadehouse/barberpos/internal/httpresp"
	"github.com/fadehouse/barberpos/internal/models"
	"github.com/fadehouse/barberpos/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type ReportHandler struct {
	db *gorm.DB
	tz string
}

func NewReportHandler(db *gorm.DB, tz string) *ReportHandler {
	return &ReportHandler{db: db, tz: tz}
}

type DailyRevenue struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

type ServiceRevenue struct {
	ServiceID uint    `json:"service_id"`
	Name      string  `json:"name"`
	Count     int     `json:"count"`
	Total     float64 `json:"total"`
}

type BarberRevenue struct {
	BarberID uint    `json:"barber_id"`
	Name     string  `json:"name"`
	Count    int     `json:"count"`
	Total    float64 `json:"total"`
}

// ======================================================
// SUMMARY
// ======================================================

// Summary aggregates completed transactions for a date range: totals, a
// per-day series, and per-service / per-barber breakdowns. Defaults to the
// current month.
func (h *ReportHandler) Summary(c *gin.Context) {
	loc := timezone.Location(h.tz)
	now := timezone.NowIn(h.tz)

	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	to := from.AddDate(0, 1, 0)

	if fromStr := c.Query("from"); fromStr != "" {
		parsed, err := time.ParseInLocation("2006-01-02", fromStr, loc)
		if err != nil {
			httperr.BadRequest(c, "invalid_from", "From date must be YYYY-MM-DD.")
			return
		}
		from = parsed
	}

	if toStr := c.Query("to"); toStr != "" {
		parsed, err := time.ParseInLocation("2006-01-02", toStr, loc)
		if err != nil {
			httperr.BadRequest(c, "invalid_to", "To date must be YYYY-MM-DD.")
			return
		}
		to = parsed.AddDate(0, 0, 1)
	}

	var transactions []models.Transaction
	if err := h.db.
		Where(
			"status = ? AND created_at >= ? AND created_at < ?",
			"completed", from, to,
		).
		Order("created_at ASC").
		Find(&transactions).Error; err != nil {

		httperr.Internal(c, "failed_to_load_report", "Could not load report data.")
		return
	}

	// --------------------------------------------------
	// Totals + daily series
	// --------------------------------------------------
	var totalRevenue float64
	dailyIndex := map[string]int{}
	daily := []DailyRevenue{}

	for _, tx := range transactions {
		totalRevenue += tx.TotalAmount

		day := tx.CreatedAt.In(loc).Format("2006-01-02")
		if i, ok := dailyIndex[day]; ok {
			daily[i].Total += tx.TotalAmount
			daily[i].Count++
		} else {
			dailyIndex[day] = len(daily)
			daily = append(daily, DailyRevenue{Date: day, Total: tx.TotalAmount, Count: 1})
		}
	}

	average := float64(0)
	if len(transactions) > 0 {
		average = totalRevenue / float64(len(transactions))
	}

	// --------------------------------------------------
	// Per-service breakdown (frozen line-item prices)
	// --------------------------------------------------
	var byService []ServiceRevenue
	if err := h.db.
		Model(&models.TransactionService{}).
		Select("transaction_services.service_id, services.name, COUNT(*) AS count, SUM(transaction_services.price) AS total").
		Joins("JOIN services ON services.id = transaction_services.service_id").
		Joins("JOIN transactions ON transactions.id = transaction_services.transaction_id").
		Where(
			"transactions.status = ? AND transactions.created_at >= ? AND transactions.created_at < ?",
			"completed", from, to,
		).
		Group("transaction_services.service_id, services.name").
		Order("total DESC").
		Scan(&byService).Error; err != nil {

		httperr.Internal(c, "failed_to_load_report", "Could not load service breakdown.")
		return
	}

	// --------------------------------------------------
	// Per-barber breakdown
	// --------------------------------------------------
	var byBarber []BarberRevenue
	if err := h.db.
		Model(&models.Transaction{}).
		Select("transactions.barber_id, users.name, COUNT(*) AS count, SUM(transactions.total_amount) AS total").
		Joins("JOIN users ON users.id = transactions.barber_id").
		Where(
			"transactions.status = ? AND transactions.barber_id IS NOT NULL AND transactions.created_at >= ? AND transactions.created_at < ?",
			"completed", from, to,
		).
		Group("transactions.barber_id, users.name").
		Order("total DESC").
		Scan(&byBarber).Error; err != nil {

		httperr.Internal(c, "failed_to_load_report", "Could not load barber breakdown.")
		return
	}

	httpresp.OK(c, gin.H{
		"from":                from.Format("2006-01-02"),
		"to":                  to.AddDate(0, 0, -1).Format("2006-01-02"),
		"total_revenue":       totalRevenue,
		"total_transactions":  len(transactions),
		"average_transaction": average,
		"daily":               daily,
		"by_service":          byService,
		"by_barber":           byBarber,
	})
}
