package models

import "time"

const (
	PaymentCash    = "cash"
	PaymentQR      = "qr"
	PaymentEwallet = "ewallet"
)

func IsValidPaymentMethod(method string) bool {
	switch method {
	case PaymentCash, PaymentQR, PaymentEwallet:
		return true
	}
	return false
}

type Transaction struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerID uint     `json:"customer_id"`
	Customer   Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"customer"`

	CashierID uint `json:"cashier_id"`
	Cashier   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"cashier"`

	BarberID *uint `json:"barber_id"`
	Barber   *User `gorm:"foreignKey:BarberID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barber,omitempty"`

	TotalAmount   float64 `json:"total_amount"`
	TipAmount     float64 `json:"tip_amount"`
	PaymentMethod string  `gorm:"size:20" json:"payment_method"`
	Status        string  `gorm:"size:20;default:'completed'" json:"status"`
	Notes         string  `gorm:"size:255" json:"notes"`

	Services []TransactionService `gorm:"foreignKey:TransactionID" json:"services"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Price is copied from the service at sale time so the catalog can change
// without rewriting history.
type TransactionService struct {
	ID uint `gorm:"primaryKey" json:"id"`

	TransactionID uint `gorm:"index" json:"transaction_id"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	Price float64 `json:"price"`

	CreatedAt time.Time `json:"created_at"`
}
