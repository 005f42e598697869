package sale

import (
	"context"

	"github.com/fadehouse/barberpos/internal/models"
)

// Repository is the persistence contract for the checkout flow. Each write is
// a separate call on purpose: the flow is sequential, aborts at the failing
// step and never compensates earlier writes.
type Repository interface {
	// -------- Reads --------
	GetCustomerByID(
		ctx context.Context,
		id uint,
	) (*models.Customer, error)

	GetServiceByID(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Checkout writes --------
	CreateTransaction(
		ctx context.Context,
		tx *models.Transaction,
	) error

	CreateLineItems(
		ctx context.Context,
		items []models.TransactionService,
	) error

	// UpdateVisitCount writes a counter value computed from an earlier read.
	// Last write wins when two cashiers race on the same customer.
	UpdateVisitCount(
		ctx context.Context,
		customerID uint,
		visitCount int,
	) error
}
