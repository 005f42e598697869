package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/fadehouse/barberpos/internal/domain/attendance"
	"github.com/fadehouse/barberpos/internal/models"
)

type AttendanceGormRepository struct {
	db *gorm.DB
}

func NewAttendanceGormRepository(db *gorm.DB) *AttendanceGormRepository {
	return &AttendanceGormRepository{db: db}
}

func (r *AttendanceGormRepository) FindForDay(
	ctx context.Context,
	barberID uint,
	dayStart time.Time,
	dayEnd time.Time,
) (*models.Attendance, error) {

	var rec models.Attendance
	err := r.db.WithContext(ctx).
		Where(
			"barber_id = ? AND check_in >= ? AND check_in < ?",
			barberID, dayStart, dayEnd,
		).
		Order("check_in DESC").
		First(&rec).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &rec, nil
}

func (r *AttendanceGormRepository) Create(
	ctx context.Context,
	rec *models.Attendance,
) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *AttendanceGormRepository) Update(
	ctx context.Context,
	rec *models.Attendance,
) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

// Compile-time check
var _ domain.Repository = (*AttendanceGormRepository)(nil)
