package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/divinebraids/salon-app/models"
	"github.com/divinebraids/salon-app/utils"
)

var ErrBookingNotFound = errors.New("booking not found")

// ReconciliationService owns every write that touches more than one table:
// recording a payment always pairs it with a mirrored income transaction,
// and completing a booking bundles the optional payment with the status
// flip. Each entry point runs inside a single database transaction so a
// reader never observes a partial result.
type ReconciliationService struct {
	DB *gorm.DB
}

func NewReconciliationService(db *gorm.DB) *ReconciliationService {
	return &ReconciliationService{DB: db}
}

// TotalPaid sums a booking's payments. The value is derived on every read;
// payments are edited and deleted independently of the booking row, so a
// cached copy would drift.
func (rs *ReconciliationService) TotalPaid(bookingID uint) (float64, error) {
	return totalPaid(rs.DB, bookingID)
}

func totalPaid(db *gorm.DB, bookingID uint) (float64, error) {
	var total float64
	err := db.Model(&models.Payment{}).
		Where("booking_id = ?", bookingID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

// BookingBalance pre-fills the completion form in the admin console.
// Remaining is advisory only and may be negative (overpayment is accepted).
type BookingBalance struct {
	Price            *float64 `json:"price"`
	TotalPaid        float64  `json:"total_paid"`
	RemainingBalance float64  `json:"remaining_balance"`
}

func (rs *ReconciliationService) Balance(bookingID uint) (*BookingBalance, error) {
	var booking models.Booking
	if err := rs.DB.First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	paid, err := totalPaid(rs.DB, bookingID)
	if err != nil {
		return nil, err
	}

	var price float64
	if booking.Price != nil {
		price = *booking.Price
	}

	return &BookingBalance{
		Price:            booking.Price,
		TotalPaid:        paid,
		RemainingBalance: price - paid,
	}, nil
}

// recordPayment inserts a payment and its mirrored income transaction using
// the caller's transaction handle. Both rows commit or neither does.
func recordPayment(tx *gorm.DB, bookingID uint, amount float64, method, notes string) (*models.Payment, error) {
	if method == "" {
		method = "cash"
	}

	payment := models.Payment{
		BookingID:     bookingID,
		Amount:        amount,
		PaymentMethod: method,
		Notes:         notes,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	if err := tx.Create(&payment).Error; err != nil {
		return nil, err
	}

	mirror := models.Transaction{
		Type:        "income",
		Amount:      amount,
		Description: fmt.Sprintf("Payment for booking #%d", bookingID),
		BookingID:   &payment.BookingID,
		PaymentID:   &payment.ID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := tx.Create(&mirror).Error; err != nil {
		return nil, err
	}

	return &payment, nil
}

// CreatePayment records a standalone payment (admin "add payment" form).
func (rs *ReconciliationService) CreatePayment(bookingID uint, amount float64, method, notes string) (*models.Payment, error) {
	var payment *models.Payment
	err := rs.DB.Transaction(func(tx *gorm.DB) error {
		p, err := recordPayment(tx, bookingID, amount, method, notes)
		if err != nil {
			return err
		}
		payment = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Recorded payment of %s for booking #%d", utils.FormatUSD(amount), bookingID)
	return payment, nil
}

// CompleteBooking marks a booking completed, optionally recording a final
// payment first. A nil or non-positive amount skips the payment entirely;
// the booking is still completed with no financial record added. The
// supplied amount is never validated against the remaining balance.
//
// All writes share one transaction: if the payment or its mirror cannot be
// inserted, the status flip rolls back with them and the booking is left
// untouched.
func (rs *ReconciliationService) CompleteBooking(bookingID uint, amount *float64, method, notes string) (*models.Payment, error) {
	var payment *models.Payment

	err := rs.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return err
		}

		if amount != nil && *amount > 0 {
			p, err := recordPayment(tx, booking.ID, *amount, method, notes)
			if err != nil {
				return err
			}
			payment = p
		}

		// Only the status changes; all other fields keep their prior values.
		return tx.Model(&models.Booking{}).
			Where("id = ?", booking.ID).
			Updates(map[string]interface{}{
				"status":     "completed",
				"updated_at": time.Now(),
			}).Error
	})
	if err != nil {
		return nil, err
	}

	if payment != nil {
		utils.InfoLogger.Printf("Booking #%d completed with a payment of %s", bookingID, utils.FormatUSD(payment.Amount))
	} else {
		utils.InfoLogger.Printf("Booking #%d completed with no payment", bookingID)
	}
	return payment, nil
}
