package models

import "time"

// Booking is a customer's appointment request, created from the public
// contact form and managed by staff afterwards.
type Booking struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Name             string    `gorm:"type:varchar(255);not null" json:"name"`
	Phone            string    `gorm:"type:varchar(50);not null" json:"phone"`
	PreferredDate    *string   `gorm:"type:varchar(20)" json:"preferred_date"`
	PreferredTime    *string   `gorm:"type:varchar(20)" json:"preferred_time"`
	StyleDescription string    `gorm:"type:text" json:"style_description"`
	Status           string    `gorm:"type:varchar(20);not null;default:'pending'" json:"status"` // pending, confirmed, completed, cancelled
	Price            *float64  `gorm:"type:decimal(10,2)" json:"price"`
	CreatedAt        time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt        time.Time `gorm:"not null" json:"updated_at"`
}

// BookingWithTotal is the list-view row: a booking plus the sum of its
// payments. TotalPaid is always derived at read time, never stored.
type BookingWithTotal struct {
	Booking
	TotalPaid float64 `json:"total_paid"`
}
