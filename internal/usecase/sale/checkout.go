package sale

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fadehouse/barberpos/internal/audit"
	domain "github.com/fadehouse/barberpos/internal/domain/sale"
	"github.com/fadehouse/barberpos/internal/httperr"
	"github.com/fadehouse/barberpos/internal/models"
	"github.com/fadehouse/barberpos/internal/timezone"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type CheckoutInput struct {
	CashierID uint
	BarberID  *uint

	CustomerID uint
	ServiceIDs []uint

	PaymentMethod string
	TipAmount     float64
	Notes         string
}

type ReceiptLine struct {
	ServiceID   uint    `json:"service_id"`
	ServiceName string  `json:"service_name"`
	Price       float64 `json:"price"`
}

// Receipt is the view model shown (or printed) after a completed sale.
type Receipt struct {
	ReceiptNumber string        `json:"receipt_number"`
	TransactionID uint          `json:"transaction_id"`
	CustomerName  string        `json:"customer_name"`
	Lines         []ReceiptLine `json:"lines"`
	Subtotal      float64       `json:"subtotal"`
	TipAmount     float64       `json:"tip_amount"`
	TotalAmount   float64       `json:"total_amount"`
	PaymentMethod string        `json:"payment_method"`
	CreatedAt     time.Time     `json:"created_at"`
}

// Checkout steps, in order. A StepError names the step that failed so the
// handler can report it; writes from earlier steps stay persisted.
const (
	StepCreateTransaction = "create_transaction"
	StepSaveLineItems     = "save_line_items"
	StepUpdateVisitCount  = "update_visit_count"
)

type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("checkout step %s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// ======================================================
// USE CASE
// ======================================================

type Checkout struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	tz    string
}

func NewCheckout(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	tz string,
) *Checkout {
	return &Checkout{
		repo:  repo,
		audit: auditDispatcher,
		tz:    tz,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute turns a cart into one transaction row, N line-item rows and one
// visit-count bump. The three writes are separate calls: a failure aborts the
// flow at that step with no compensation for what already landed.
func (uc *Checkout) Execute(
	ctx context.Context,
	in CheckoutInput,
) (*Receipt, error) {

	// --------------------------------------------------
	// Preconditions — no writes until all of them hold
	// --------------------------------------------------
	if in.CustomerID == 0 {
		return nil, httperr.ErrBusiness("no_customer_selected")
	}
	if len(in.ServiceIDs) == 0 {
		return nil, httperr.ErrBusiness("empty_cart")
	}
	if !models.IsValidPaymentMethod(in.PaymentMethod) {
		return nil, httperr.ErrBusiness("invalid_payment_method")
	}
	if in.TipAmount < 0 {
		return nil, httperr.ErrBusiness("invalid_tip_amount")
	}

	customer, err := uc.repo.GetCustomerByID(ctx, in.CustomerID)
	if err != nil {
		return nil, httperr.ErrBusiness("customer_not_found")
	}

	// --------------------------------------------------
	// Build the cart with frozen prices
	// --------------------------------------------------
	cart := domain.NewCart()
	cart.SelectCustomer(customer)

	for _, id := range in.ServiceIDs {
		svc, err := uc.repo.GetServiceByID(ctx, id)
		if err != nil {
			return nil, httperr.ErrBusiness("service_not_found")
		}
		// A repeated id is the idempotent-add case: one line per service.
		if err := cart.AddService(svc); err != nil {
			continue
		}
	}

	total := cart.Total(in.TipAmount)

	// --------------------------------------------------
	// Step 1 — transaction row
	// --------------------------------------------------
	tx := &models.Transaction{
		CustomerID:    customer.ID,
		CashierID:     in.CashierID,
		BarberID:      in.BarberID,
		TotalAmount:   total,
		TipAmount:     in.TipAmount,
		PaymentMethod: in.PaymentMethod,
		Status:        "completed",
		Notes:         in.Notes,
	}

	if err := uc.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, &StepError{Step: StepCreateTransaction, Err: err}
	}

	// --------------------------------------------------
	// Step 2 — line items
	// --------------------------------------------------
	items := make([]models.TransactionService, 0, len(cart.Lines))
	for _, l := range cart.Lines {
		items = append(items, models.TransactionService{
			TransactionID: tx.ID,
			ServiceID:     l.ServiceID,
			Price:         l.Price,
		})
	}

	if err := uc.repo.CreateLineItems(ctx, items); err != nil {
		return nil, &StepError{Step: StepSaveLineItems, Err: err}
	}

	// --------------------------------------------------
	// Step 3 — visit count (read-modify-write)
	// --------------------------------------------------
	if err := uc.repo.UpdateVisitCount(ctx, customer.ID, customer.VisitCount+1); err != nil {
		return nil, &StepError{Step: StepUpdateVisitCount, Err: err}
	}

	// --------------------------------------------------
	// Step 4 — receipt view model
	// --------------------------------------------------
	lines := make([]ReceiptLine, 0, len(cart.Lines))
	for _, l := range cart.Lines {
		lines = append(lines, ReceiptLine{
			ServiceID:   l.ServiceID,
			ServiceName: l.ServiceName,
			Price:       l.Price,
		})
	}

	receipt := &Receipt{
		ReceiptNumber: uuid.NewString(),
		TransactionID: tx.ID,
		CustomerName:  customer.Name,
		Lines:         lines,
		Subtotal:      cart.Subtotal(),
		TipAmount:     in.TipAmount,
		TotalAmount:   total,
		PaymentMethod: in.PaymentMethod,
		CreatedAt:     timezone.NowIn(uc.tz),
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.CashierID,
		Action:   audit.ActionSaleCompleted,
		Entity:   "transaction",
		EntityID: &tx.ID,
		Metadata: map[string]any{
			"total":    total,
			"services": len(lines),
		},
	})

	return receipt, nil
}
