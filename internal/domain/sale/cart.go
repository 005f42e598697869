package sale

import (
	"github.com/fadehouse/barberpos/internal/httperr"
	"github.com/fadehouse/barberpos/internal/models"
)

// ===============================
// Cart
// ===============================

// Line is one service inside a sale. Price is frozen at the moment the
// service enters the cart.
type Line struct {
	ServiceID   uint
	ServiceName string
	Price       float64
}

// Cart holds the working set for one in-progress sale: one customer and
// zero or more lines. It lives only until checkout.
type Cart struct {
	Customer *models.Customer
	Lines    []Line
}

func NewCart() *Cart {
	return &Cart{}
}

// SelectCustomer replaces any prior selection. No persistence side effect.
func (c *Cart) SelectCustomer(customer *models.Customer) {
	c.Customer = customer
}

// AddService appends a line at the service's current price. Adding a service
// that is already in the cart is rejected; duplicate quantities of the same
// service are not supported.
func (c *Cart) AddService(svc *models.Service) error {
	for _, l := range c.Lines {
		if l.ServiceID == svc.ID {
			return httperr.ErrBusiness("service_already_in_cart")
		}
	}

	c.Lines = append(c.Lines, Line{
		ServiceID:   svc.ID,
		ServiceName: svc.Name,
		Price:       svc.Price,
	})
	return nil
}

// RemoveService drops the matching line. Removing an absent service is a no-op.
func (c *Cart) RemoveService(serviceID uint) {
	for i, l := range c.Lines {
		if l.ServiceID == serviceID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

func (c *Cart) Subtotal() float64 {
	var sum float64
	for _, l := range c.Lines {
		sum += l.Price
	}
	return sum
}

func (c *Cart) Total(tip float64) float64 {
	return c.Subtotal() + tip
}

func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}
