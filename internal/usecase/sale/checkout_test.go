package sale

import (
	"context"
	"errors"
	"testing"

	"github.com/fadehouse/barberpos/internal/httperr"
	"github.com/fadehouse/barberpos/internal/models"
)

// fakeRepo is the in-memory stand-in for the persistence gateway, so the
// checkout flow is testable without a live backend.
type fakeRepo struct {
	customers map[uint]*models.Customer
	services  map[uint]*models.Service

	transactions []*models.Transaction
	lineItems    []models.TransactionService
	visitCounts  map[uint]int

	failLineItems  bool
	failVisitCount bool

	nextID uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		customers:   map[uint]*models.Customer{},
		services:    map[uint]*models.Service{},
		visitCounts: map[uint]int{},
	}
}

func (r *fakeRepo) GetCustomerByID(_ context.Context, id uint) (*models.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return c, nil
}

func (r *fakeRepo) GetServiceByID(_ context.Context, id uint) (*models.Service, error) {
	s, ok := r.services[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return s, nil
}

func (r *fakeRepo) CreateTransaction(_ context.Context, tx *models.Transaction) error {
	r.nextID++
	tx.ID = r.nextID
	r.transactions = append(r.transactions, tx)
	return nil
}

func (r *fakeRepo) CreateLineItems(_ context.Context, items []models.TransactionService) error {
	if r.failLineItems {
		return errors.New("insert failed")
	}
	r.lineItems = append(r.lineItems, items...)
	return nil
}

func (r *fakeRepo) UpdateVisitCount(_ context.Context, customerID uint, visitCount int) error {
	if r.failVisitCount {
		return errors.New("update failed")
	}
	r.visitCounts[customerID] = visitCount
	return nil
}

func (r *fakeRepo) writes() int {
	return len(r.transactions) + len(r.lineItems) + len(r.visitCounts)
}

func seededRepo() *fakeRepo {
	repo := newFakeRepo()
	repo.customers[1] = &models.Customer{ID: 1, Name: "Budi", VisitCount: 3}
	repo.services[10] = &models.Service{ID: 10, Name: "Haircut", Price: 50000}
	repo.services[11] = &models.Service{ID: 11, Name: "Shave", Price: 20000}
	return repo
}

func TestCheckoutHappyPath(t *testing.T) {
	repo := seededRepo()
	uc := NewCheckout(repo, nil, "Asia/Jakarta")

	receipt, err := uc.Execute(context.Background(), CheckoutInput{
		CashierID:     7,
		CustomerID:    1,
		ServiceIDs:    []uint{10, 11},
		PaymentMethod: models.PaymentCash,
		TipAmount:     5000,
	})
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}

	if receipt.TotalAmount != 75000 {
		t.Fatalf("expected total 75000, got %v", receipt.TotalAmount)
	}
	if receipt.Subtotal != 70000 {
		t.Fatalf("expected subtotal 70000, got %v", receipt.Subtotal)
	}
	if receipt.CustomerName != "Budi" {
		t.Fatalf("unexpected customer name %q", receipt.CustomerName)
	}
	if receipt.ReceiptNumber == "" {
		t.Fatal("receipt number missing")
	}

	if len(repo.transactions) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(repo.transactions))
	}
	tx := repo.transactions[0]
	if tx.TotalAmount != 75000 || tx.Status != "completed" || tx.CashierID != 7 {
		t.Fatalf("unexpected transaction %+v", tx)
	}

	if len(repo.lineItems) != 2 {
		t.Fatalf("expected 2 line items, got %d", len(repo.lineItems))
	}
	for _, item := range repo.lineItems {
		if item.TransactionID != tx.ID {
			t.Fatalf("line item not linked to transaction: %+v", item)
		}
	}
	if repo.lineItems[0].Price != 50000 || repo.lineItems[1].Price != 20000 {
		t.Fatalf("line items must carry frozen prices: %+v", repo.lineItems)
	}

	if repo.visitCounts[1] != 4 {
		t.Fatalf("expected visit count 4, got %d", repo.visitCounts[1])
	}
}

func TestCheckoutRejectsWithoutCustomer(t *testing.T) {
	repo := seededRepo()
	uc := NewCheckout(repo, nil, "Asia/Jakarta")

	_, err := uc.Execute(context.Background(), CheckoutInput{
		CashierID:     7,
		ServiceIDs:    []uint{10},
		PaymentMethod: models.PaymentCash,
	})
	if !httperr.IsBusiness(err, "no_customer_selected") {
		t.Fatalf("expected no_customer_selected, got %v", err)
	}
	if repo.writes() != 0 {
		t.Fatalf("rejection must not write anything, got %d writes", repo.writes())
	}
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	repo := seededRepo()
	uc := NewCheckout(repo, nil, "Asia/Jakarta")

	_, err := uc.Execute(context.Background(), CheckoutInput{
		CashierID:     7,
		CustomerID:    1,
		PaymentMethod: models.PaymentCash,
	})
	if !httperr.IsBusiness(err, "empty_cart") {
		t.Fatalf("expected empty_cart, got %v", err)
	}
	if repo.writes() != 0 {
		t.Fatalf("rejection must not write anything, got %d writes", repo.writes())
	}
}

func TestCheckoutRejectsBadInput(t *testing.T) {
	repo := seededRepo()
	uc := NewCheckout(repo, nil, "Asia/Jakarta")

	_, err := uc.Execute(context.Background(), CheckoutInput{
		CashierID:     7,
		CustomerID:    1,
		ServiceIDs:    []uint{10},
		PaymentMethod: "credit_card",
	})
	if !httperr.IsBusiness(err, "invalid_payment_method") {
		t.Fatalf("expected invalid_payment_method, got %v", err)
	}

	_, err = uc.Execute(context.Background(), CheckoutInput{
		CashierID:     7,
		CustomerID:    1,
		ServiceIDs:    []uint{10},
		PaymentMethod: models.PaymentCash,
		TipAmount:     -100,
	})
	if !httperr.IsBusiness(err, "invalid_tip_amount") {
		t.Fatalf("expected invalid_tip_amount, got %v", err)
	}

	if repo.writes() != 0 {
		t.Fatalf("rejections must not write anything, got %d writes", repo.writes())
	}
}

func TestCheckoutDeduplicatesServiceIDs(t *testing.T) {
	repo := seededRepo()
	uc := NewCheckout(repo, nil, "Asia/Jakarta")

	receipt, err := uc.Execute(context.Background(), CheckoutInput{
		CashierID:     7,
		CustomerID:    1,
		ServiceIDs:    []uint{10, 10, 11},
		PaymentMethod: models.PaymentQR,
	})
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}

	if len(receipt.Lines) != 2 {
		t.Fatalf("expected 2 lines after dedup, got %d", len(receipt.Lines))
	}
	if receipt.TotalAmount != 70000 {
		t.Fatalf("expected total 70000, got %v", receipt.TotalAmount)
	}
}

// A line-item failure leaves the transaction row behind and never touches the
// visit count: the flow aborts at the failing step with no compensation.
func TestCheckoutPartialFailureOnLineItems(t *testing.T) {
	repo := seededRepo()
	repo.failLineItems = true
	uc := NewCheckout(repo, nil, "Asia/Jakarta")

	_, err := uc.Execute(context.Background(), CheckoutInput{
		CashierID:     7,
		CustomerID:    1,
		ServiceIDs:    []uint{10},
		PaymentMethod: models.PaymentCash,
	})

	var stepErr *StepError
	if !errors.As(err, &stepErr) || stepErr.Step != StepSaveLineItems {
		t.Fatalf("expected StepError at %s, got %v", StepSaveLineItems, err)
	}

	if len(repo.transactions) != 1 {
		t.Fatalf("transaction row should remain persisted, got %d", len(repo.transactions))
	}
	if len(repo.visitCounts) != 0 {
		t.Fatalf("visit count must not change after an aborted flow: %+v", repo.visitCounts)
	}
}

func TestCheckoutPartialFailureOnVisitCount(t *testing.T) {
	repo := seededRepo()
	repo.failVisitCount = true
	uc := NewCheckout(repo, nil, "Asia/Jakarta")

	_, err := uc.Execute(context.Background(), CheckoutInput{
		CashierID:     7,
		CustomerID:    1,
		ServiceIDs:    []uint{10},
		PaymentMethod: models.PaymentCash,
	})

	var stepErr *StepError
	if !errors.As(err, &stepErr) || stepErr.Step != StepUpdateVisitCount {
		t.Fatalf("expected StepError at %s, got %v", StepUpdateVisitCount, err)
	}

	if len(repo.transactions) != 1 || len(repo.lineItems) != 1 {
		t.Fatalf("earlier writes should remain, got %d transactions and %d items",
			len(repo.transactions), len(repo.lineItems))
	}
}
