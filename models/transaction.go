package models

import "time"

// Transaction is a ledger entry. Entries mirroring a payment carry the
// booking and payment ids; manual income/expense entries leave both null.
// Once created, a mirror and its payment are independently editable.
type Transaction struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Type        string    `gorm:"type:varchar(20);not null" json:"type"` // income, expense
	Amount      float64   `gorm:"type:decimal(10,2);not null" json:"amount"`
	Description string    `gorm:"type:varchar(255);not null" json:"description"`
	BookingID   *uint     `gorm:"index" json:"booking_id"`
	PaymentID   *uint     `gorm:"index" json:"payment_id"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

// TransactionWithCustomer joins in the booking's customer name for the
// admin ledger view.
type TransactionWithCustomer struct {
	Transaction
	CustomerName string `json:"customer_name"`
}

// TransactionSummary is the aggregate for the dashboard.
type TransactionSummary struct {
	TotalIncome  float64 `json:"total_income"`
	TotalExpense float64 `json:"total_expense"`
	NetProfit    float64 `json:"net_profit"`
}
