package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/fadehouse/barberpos/internal/domain/attendance"
	"github.com/fadehouse/barberpos/internal/httperr"
	"github.com/fadehouse/barberpos/internal/httpresp"
	"github.com/fadehouse/barberpos/internal/middleware"
	"github.com/fadehouse/barberpos/internal/models"
	"github.com/fadehouse/barberpos/internal/timezone"
	ucAttendance "github.com/fadehouse/barberpos/internal/usecase/attendance"
)

// ======================================================
// HANDLER
// ======================================================

type AttendanceHandler struct {
	db       *gorm.DB
	checkIn  *ucAttendance.CheckIn
	checkOut *ucAttendance.CheckOut
	repo     domain.Repository
	tz       string
}

func NewAttendanceHandler(
	db *gorm.DB,
	checkIn *ucAttendance.CheckIn,
	checkOut *ucAttendance.CheckOut,
	repo domain.Repository,
	tz string,
) *AttendanceHandler {
	return &AttendanceHandler{
		db:       db,
		checkIn:  checkIn,
		checkOut: checkOut,
		repo:     repo,
		tz:       tz,
	}
}

// ======================================================
// TODAY (current barber's state)
// ======================================================
func (h *AttendanceHandler) Today(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	now := timezone.NowIn(h.tz)
	dayStart := timezone.StartOfDay(now)
	dayEnd := dayStart.AddDate(0, 0, 1)

	rec, err := h.repo.FindForDay(c.Request.Context(), barberID, dayStart, dayEnd)
	if err != nil {
		httperr.Internal(c, "failed_to_get_attendance", "Could not load today's attendance.")
		return
	}

	httpresp.OK(c, gin.H{
		"status":     domain.StatusOf(rec),
		"attendance": rec,
	})
}

// ======================================================
// CHECK IN
// ======================================================
func (h *AttendanceHandler) CheckIn(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	rec, err := h.checkIn.Execute(c.Request.Context(), barberID)
	if err != nil {
		if code, ok := httperr.BusinessCode(err); ok {
			httperr.Conflict(c, code, attendanceMessage(code))
			return
		}
		httperr.Internal(c, "failed_to_check_in", "Could not check in.")
		return
	}

	httpresp.Created(c, rec)
}

// ======================================================
// CHECK OUT
// ======================================================
func (h *AttendanceHandler) CheckOut(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	rec, err := h.checkOut.Execute(c.Request.Context(), barberID)
	if err != nil {
		if code, ok := httperr.BusinessCode(err); ok {
			httperr.Conflict(c, code, attendanceMessage(code))
			return
		}
		httperr.Internal(c, "failed_to_check_out", "Could not check out.")
		return
	}

	httpresp.OK(c, rec)
}

// ======================================================
// LIST (owner, per day)
// ======================================================
func (h *AttendanceHandler) List(c *gin.Context) {
	dateStr := c.Query("date")

	loc := timezone.Location(h.tz)
	day := timezone.StartOfDay(timezone.NowIn(h.tz))

	if dateStr != "" {
		parsed, err := time.ParseInLocation("2006-01-02", dateStr, loc)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
			return
		}
		day = parsed
	}

	var records []models.Attendance
	if err := h.db.
		Preload("Barber").
		Where("check_in >= ? AND check_in < ?", day, day.AddDate(0, 0, 1)).
		Order("check_in ASC").
		Find(&records).Error; err != nil {

		httperr.Internal(c, "failed_to_list_attendance", "Could not load attendance.")
		return
	}

	httpresp.OK(c, gin.H{
		"date":        day.Format("2006-01-02"),
		"attendances": records,
	})
}

func attendanceMessage(code string) string {
	switch code {
	case "already_checked_in":
		return "You are already checked in today."
	case "already_checked_out":
		return "You already checked out today."
	case "not_checked_in":
		return "Check in before checking out."
	}
	return "Attendance change was rejected."
}
