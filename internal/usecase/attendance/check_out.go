package attendance

import (
	"context"

	"github.com/fadehouse/barberpos/internal/audit"
	domain "github.com/fadehouse/barberpos/internal/domain/attendance"
	"github.com/fadehouse/barberpos/internal/models"
	"github.com/fadehouse/barberpos/internal/timezone"
)

type CheckOut struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	tz    string
}

func NewCheckOut(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	tz string,
) *CheckOut {
	return &CheckOut{
		repo:  repo,
		audit: auditDispatcher,
		tz:    tz,
	}
}

func (uc *CheckOut) Execute(
	ctx context.Context,
	barberID uint,
) (*models.Attendance, error) {

	now := timezone.NowIn(uc.tz)
	dayStart := timezone.StartOfDay(now)
	dayEnd := dayStart.AddDate(0, 0, 1)

	today, err := uc.repo.FindForDay(ctx, barberID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	if err := domain.CanCheckOut(domain.StatusOf(today)); err != nil {
		return nil, err
	}

	// check_out is set at most once; CanCheckOut already rejected a second call.
	today.CheckOut = &now

	if err := uc.repo.Update(ctx, today); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &barberID,
		Action:   audit.ActionAttendanceOut,
		Entity:   "attendance",
		EntityID: &today.ID,
	})

	return today, nil
}
