package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/fadehouse/barberpos/internal/domain/sale"
	"github.com/fadehouse/barberpos/internal/models"
)

type SaleGormRepository struct {
	db *gorm.DB
}

func NewSaleGormRepository(db *gorm.DB) *SaleGormRepository {
	return &SaleGormRepository{db: db}
}

// --------------------------------------------------
// Reads
// --------------------------------------------------

func (r *SaleGormRepository) GetCustomerByID(
	ctx context.Context,
	id uint,
) (*models.Customer, error) {

	var customer models.Customer
	if err := r.db.WithContext(ctx).First(&customer, id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *SaleGormRepository) GetServiceByID(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

// --------------------------------------------------
// Checkout writes
// --------------------------------------------------

func (r *SaleGormRepository) CreateTransaction(
	ctx context.Context,
	tx *models.Transaction,
) error {
	return r.db.WithContext(ctx).Create(tx).Error
}

func (r *SaleGormRepository) CreateLineItems(
	ctx context.Context,
	items []models.TransactionService,
) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *SaleGormRepository) UpdateVisitCount(
	ctx context.Context,
	customerID uint,
	visitCount int,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Customer{}).
		Where("id = ?", customerID).
		Update("visit_count", visitCount).Error
}

// Compile-time check
var _ domain.Repository = (*SaleGormRepository)(nil)
