package attendance

import (
	"github.com/fadehouse/barberpos/internal/httperr"
	"github.com/fadehouse/barberpos/internal/models"
)

// ===============================
// Attendance Status
// ===============================

// A barber moves through NOT_CHECKED_IN → CHECKED_IN → CHECKED_OUT within one
// calendar day. CHECKED_OUT is terminal; a new day has no row, so the state
// naturally returns to NOT_CHECKED_IN.

type Status string

const (
	StatusNotCheckedIn Status = "not_checked_in"
	StatusCheckedIn    Status = "checked_in"
	StatusCheckedOut   Status = "checked_out"
)

// StatusOf derives today's state from today's row (nil when there is none).
func StatusOf(rec *models.Attendance) Status {
	switch {
	case rec == nil:
		return StatusNotCheckedIn
	case rec.CheckOut == nil:
		return StatusCheckedIn
	default:
		return StatusCheckedOut
	}
}

// ===============================
// Transitions
// ===============================

func CanCheckIn(current Status) error {
	switch current {
	case StatusCheckedIn:
		return httperr.ErrBusiness("already_checked_in")
	case StatusCheckedOut:
		return httperr.ErrBusiness("already_checked_out")
	}
	return nil
}

func CanCheckOut(current Status) error {
	switch current {
	case StatusNotCheckedIn:
		return httperr.ErrBusiness("not_checked_in")
	case StatusCheckedOut:
		return httperr.ErrBusiness("already_checked_out")
	}
	return nil
}
