package models

import "time"

type Attendance struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberID uint `gorm:"index" json:"barber_id"`
	Barber   User `gorm:"foreignKey:BarberID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barber"`

	CheckIn  time.Time  `json:"check_in"`
	CheckOut *time.Time `json:"check_out"`

	CreatedAt time.Time `json:"created_at"`
}
