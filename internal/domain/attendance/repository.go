package attendance

import (
	"context"
	"time"

	"github.com/fadehouse/barberpos/internal/models"
)

type Repository interface {
	// FindForDay returns the barber's attendance row with check_in inside
	// [dayStart, dayEnd), or nil when there is none.
	FindForDay(
		ctx context.Context,
		barberID uint,
		dayStart time.Time,
		dayEnd time.Time,
	) (*models.Attendance, error)

	Create(
		ctx context.Context,
		rec *models.Attendance,
	) error

	Update(
		ctx context.Context,
		rec *models.Attendance,
	) error
}
