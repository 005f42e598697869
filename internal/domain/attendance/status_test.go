package attendance

import (
	"testing"
	"time"

	"github.com/fadehouse/barberpos/internal/httperr"
	"github.com/fadehouse/barberpos/internal/models"
)

func TestStatusOf(t *testing.T) {
	if got := StatusOf(nil); got != StatusNotCheckedIn {
		t.Fatalf("no row: expected %s got %s", StatusNotCheckedIn, got)
	}

	open := &models.Attendance{CheckIn: time.Now()}
	if got := StatusOf(open); got != StatusCheckedIn {
		t.Fatalf("open row: expected %s got %s", StatusCheckedIn, got)
	}

	out := time.Now()
	closed := &models.Attendance{CheckIn: out.Add(-8 * time.Hour), CheckOut: &out}
	if got := StatusOf(closed); got != StatusCheckedOut {
		t.Fatalf("closed row: expected %s got %s", StatusCheckedOut, got)
	}
}

func TestCanCheckIn(t *testing.T) {
	if err := CanCheckIn(StatusNotCheckedIn); err != nil {
		t.Fatalf("fresh day should allow check-in: %v", err)
	}
	if err := CanCheckIn(StatusCheckedIn); !httperr.IsBusiness(err, "already_checked_in") {
		t.Fatalf("expected already_checked_in, got %v", err)
	}
	if err := CanCheckIn(StatusCheckedOut); !httperr.IsBusiness(err, "already_checked_out") {
		t.Fatalf("checked-out is terminal for the day, got %v", err)
	}
}

func TestCanCheckOut(t *testing.T) {
	if err := CanCheckOut(StatusCheckedIn); err != nil {
		t.Fatalf("checked-in should allow check-out: %v", err)
	}
	if err := CanCheckOut(StatusNotCheckedIn); !httperr.IsBusiness(err, "not_checked_in") {
		t.Fatalf("expected not_checked_in, got %v", err)
	}
	if err := CanCheckOut(StatusCheckedOut); !httperr.IsBusiness(err, "already_checked_out") {
		t.Fatalf("expected already_checked_out, got %v", err)
	}
}
