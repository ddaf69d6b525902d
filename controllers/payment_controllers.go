package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/divinebraids/salon-app/models"
	"github.com/divinebraids/salon-app/services"
	"github.com/divinebraids/salon-app/utils"
)

type PaymentController struct {
	DB    *gorm.DB
	Recon *services.ReconciliationService
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{
		DB:    db,
		Recon: services.NewReconciliationService(db),
	}
}

// GetAllPayments -> newest first, joined with the booking's contact info.
// The join is a LEFT JOIN on purpose: payments outlive deleted bookings.
func (pc *PaymentController) GetAllPayments(c *gin.Context) {
	var payments []models.PaymentWithCustomer
	err := pc.DB.Model(&models.Payment{}).
		Select("payments.*, COALESCE(bookings.name, '') AS customer_name, COALESCE(bookings.phone, '') AS customer_phone").
		Joins("LEFT JOIN bookings ON bookings.id = payments.booking_id").
		Order("payments.created_at DESC").
		Scan(&payments).Error
	if err != nil {
		utils.RespondStoreError(c, err)
		return
	}
	utils.RespondData(c, http.StatusOK, payments)
}

// GetPaymentsByBooking -> one booking's payments, newest first.
func (pc *PaymentController) GetPaymentsByBooking(c *gin.Context) {
	bookingID := c.Param("booking_id")

	var payments []models.Payment
	if err := pc.DB.Where("booking_id = ?", bookingID).
		Order("created_at DESC").
		Find(&payments).Error; err != nil {
		utils.RespondStoreError(c, err)
		return
	}
	utils.RespondData(c, http.StatusOK, payments)
}

// CreatePayment records a payment and its mirrored income transaction.
// The pair is inserted atomically by the reconciliation service.
func (pc *PaymentController) CreatePayment(c *gin.Context) {
	var body struct {
		BookingID     uint    `json:"booking_id"`
		Amount        float64 `json:"amount"`
		PaymentMethod string  `json:"payment_method"`
		Notes         string  `json:"notes"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if body.BookingID == 0 || body.Amount <= 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("Booking ID and amount are required"))
		return
	}

	payment, err := pc.Recon.CreatePayment(body.BookingID, body.Amount, body.PaymentMethod, body.Notes)
	if err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	utils.RespondCreated(c, payment.ID, "Payment recorded successfully")
}

// UpdatePayment replaces amount/method/notes. The mirrored transaction is
// not touched; once created the two rows are independently editable.
func (pc *PaymentController) UpdatePayment(c *gin.Context) {
	id := c.Param("id")

	var body struct {
		Amount        float64 `json:"amount"`
		PaymentMethod string  `json:"payment_method"`
		Notes         string  `json:"notes"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	err := pc.DB.Model(&models.Payment{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"amount":         body.Amount,
			"payment_method": body.PaymentMethod,
			"notes":          body.Notes,
			"updated_at":     time.Now(),
		}).Error
	if err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	utils.RespondMessage(c, http.StatusOK, "Payment updated successfully")
}

// DeletePayment removes the payment only; its mirrored transaction stays
// in the ledger.
func (pc *PaymentController) DeletePayment(c *gin.Context) {
	id := c.Param("id")

	if err := pc.DB.Delete(&models.Payment{}, id).Error; err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	utils.RespondMessage(c, http.StatusOK, "Payment deleted successfully")
}
