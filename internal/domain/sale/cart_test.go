package sale

import (
	"testing"

	"github.com/fadehouse/barberpos/internal/httperr"
	"github.com/fadehouse/barberpos/internal/models"
)

func TestCartSubtotalAndTotal(t *testing.T) {
	cart := NewCart()

	if err := cart.AddService(&models.Service{ID: 1, Name: "Haircut", Price: 50000}); err != nil {
		t.Fatalf("add haircut: %v", err)
	}
	if err := cart.AddService(&models.Service{ID: 2, Name: "Shave", Price: 20000}); err != nil {
		t.Fatalf("add shave: %v", err)
	}

	if got := cart.Subtotal(); got != 70000 {
		t.Fatalf("subtotal: expected 70000 got %v", got)
	}
	if got := cart.Total(5000); got != 75000 {
		t.Fatalf("total with tip: expected 75000 got %v", got)
	}
	if got := cart.Total(0); got != 70000 {
		t.Fatalf("total without tip: expected 70000 got %v", got)
	}
}

func TestCartAddDuplicateService(t *testing.T) {
	cart := NewCart()
	svc := &models.Service{ID: 1, Name: "Haircut", Price: 50000}

	if err := cart.AddService(svc); err != nil {
		t.Fatalf("first add: %v", err)
	}

	err := cart.AddService(svc)
	if !httperr.IsBusiness(err, "service_already_in_cart") {
		t.Fatalf("expected service_already_in_cart, got %v", err)
	}

	if len(cart.Lines) != 1 {
		t.Fatalf("expected exactly one line, got %d", len(cart.Lines))
	}
}

func TestCartRemoveService(t *testing.T) {
	cart := NewCart()
	cart.AddService(&models.Service{ID: 1, Name: "Haircut", Price: 50000})
	cart.AddService(&models.Service{ID: 2, Name: "Shave", Price: 20000})

	cart.RemoveService(1)

	if len(cart.Lines) != 1 || cart.Lines[0].ServiceID != 2 {
		t.Fatalf("expected only service 2 left, got %+v", cart.Lines)
	}

	// Removing an absent service leaves the cart unchanged.
	cart.RemoveService(99)
	if len(cart.Lines) != 1 {
		t.Fatalf("remove of absent service changed the cart: %+v", cart.Lines)
	}
}

func TestCartFreezesPriceAtAddTime(t *testing.T) {
	cart := NewCart()
	svc := &models.Service{ID: 1, Name: "Haircut", Price: 50000}
	cart.AddService(svc)

	// Catalog price change after the add must not touch the cart.
	svc.Price = 99000

	if got := cart.Subtotal(); got != 50000 {
		t.Fatalf("expected frozen price 50000, got %v", got)
	}
}

func TestCartSelectCustomerReplacesPrior(t *testing.T) {
	cart := NewCart()
	cart.SelectCustomer(&models.Customer{ID: 1, Name: "Budi"})
	cart.SelectCustomer(&models.Customer{ID: 2, Name: "Sari"})

	if cart.Customer == nil || cart.Customer.ID != 2 {
		t.Fatalf("expected customer 2 selected, got %+v", cart.Customer)
	}
}
