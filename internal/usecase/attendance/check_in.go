package attendance

import (
	"context"

	"github.com/fadehouse/barberpos/internal/audit"
	domain "github.com/fadehouse/barberpos/internal/domain/attendance"
	"github.com/fadehouse/barberpos/internal/models"
	"github.com/fadehouse/barberpos/internal/timezone"
)

type CheckIn struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	tz    string
}

func NewCheckIn(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	tz string,
) *CheckIn {
	return &CheckIn{
		repo:  repo,
		audit: auditDispatcher,
		tz:    tz,
	}
}

func (uc *CheckIn) Execute(
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

	if err := domain.CanCheckIn(domain.StatusOf(today)); err != nil {
		return nil, err
	}

	rec := &models.Attendance{
		BarberID: barberID,
		CheckIn:  now,
	}

	if err := uc.repo.Create(ctx, rec); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &barberID,
		Action:   audit.ActionAttendanceIn,
		Entity:   "attendance",
		EntityID: &rec.ID,
	})

	return rec, nil
}
