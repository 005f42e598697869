package models

import "time"

// Append-only: notes are never edited or deleted through the API.
type CustomerNote struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerID uint `gorm:"index" json:"customer_id"`

	BarberID uint `json:"barber_id"`
	Barber   User `gorm:"foreignKey:BarberID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barber"`

	Note string `gorm:"size:1000;not null" json:"note"`

	CreatedAt time.Time `json:"created_at"`
}
