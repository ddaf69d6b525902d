package models

import "time"

// Payment is a recorded receipt against a booking. There is deliberately no
// GORM association back to Booking: bookings can be hard-deleted while their
// payments remain as the financial record, so no FK constraint is migrated.
type Payment struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	BookingID     uint      `gorm:"index;not null" json:"booking_id"`
	Amount        float64   `gorm:"type:decimal(10,2);not null" json:"amount"`
	PaymentMethod string    `gorm:"type:varchar(50);not null;default:'cash'" json:"payment_method"` // cash, card, venmo, zelle, paypal, other
	Notes         string    `gorm:"type:text" json:"notes"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time `gorm:"not null" json:"updated_at"`
}

// PaymentWithCustomer is the admin list row, joined with the owning
// booking's contact fields (empty when the booking was deleted).
type PaymentWithCustomer struct {
	Payment
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
}
