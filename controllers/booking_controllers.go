package controllers

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/divinebraids/salon-app/models"
	"github.com/divinebraids/salon-app/services"
	"github.com/divinebraids/salon-app/utils"
)

type BookingController struct {
	DB    *gorm.DB
	Recon *services.ReconciliationService
}

func NewBookingController(db *gorm.DB) *BookingController {
	return &BookingController{
		DB:    db,
		Recon: services.NewReconciliationService(db),
	}
}

// GetAllBookings -> newest first, each row annotated with its total paid.
func (bc *BookingController) GetAllBookings(c *gin.Context) {
	var bookings []models.BookingWithTotal
	err := bc.DB.Model(&models.Booking{}).
		Select("bookings.*, COALESCE(SUM(payments.amount), 0) AS total_paid").
		Joins("LEFT JOIN payments ON payments.booking_id = bookings.id").
		Group("bookings.id").
		Order("bookings.created_at DESC").
		Scan(&bookings).Error
	if err != nil {
		utils.RespondStoreError(c, err)
		return
	}
	utils.RespondData(c, http.StatusOK, bookings)
}

// GetBookingByID -> booking detail plus its payments, most recent first.
func (bc *BookingController) GetBookingByID(c *gin.Context) {
	id := c.Param("id")

	var booking models.Booking
	if err := bc.DB.First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("Booking not found"))
			return
		}
		utils.RespondStoreError(c, err)
		return
	}

	var payments []models.Payment
	if err := bc.DB.Where("booking_id = ?", booking.ID).
		Order("created_at DESC").
		Find(&payments).Error; err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	type bookingDetail struct {
		models.Booking
		Payments []models.Payment `json:"payments"`
	}
	utils.RespondData(c, http.StatusOK, bookingDetail{Booking: booking, Payments: payments})
}

// CreateBooking is the public contact-form endpoint. Price is never set
// here; staff add it later through an edit.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var body struct {
		Name             string  `json:"name"`
		Phone            string  `json:"phone"`
		PreferredDate    *string `json:"preferred_date"`
		PreferredTime    *string `json:"preferred_time"`
		StyleDescription string  `json:"style_description"`
		Status           string  `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if body.Name == "" || body.Phone == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("Name and phone are required"))
		return
	}

	if body.Status == "" {
		body.Status = "pending"
	}

	booking := models.Booking{
		Name:             body.Name,
		Phone:            body.Phone,
		PreferredDate:    body.PreferredDate,
		PreferredTime:    body.PreferredTime,
		StyleDescription: body.StyleDescription,
		Status:           body.Status,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}
	if err := bc.DB.Create(&booking).Error; err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	utils.InfoLogger.Printf("New booking request from %s (%s)", booking.Name, booking.Phone)
	utils.RespondCreated(c, booking.ID, "Booking created successfully")
}

// UpdateBooking replaces the full field set. Updating an id that does not
// exist is a silent no-op.
func (bc *BookingController) UpdateBooking(c *gin.Context) {
	id := c.Param("id")

	var body struct {
		Name             string   `json:"name"`
		Phone            string   `json:"phone"`
		PreferredDate    *string  `json:"preferred_date"`
		PreferredTime    *string  `json:"preferred_time"`
		StyleDescription string   `json:"style_description"`
		Status           string   `json:"status"`
		Price            *float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	err := bc.DB.Model(&models.Booking{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":              body.Name,
			"phone":             body.Phone,
			"preferred_date":    body.PreferredDate,
			"preferred_time":    body.PreferredTime,
			"style_description": body.StyleDescription,
			"status":            body.Status,
			"price":             body.Price,
			"updated_at":        time.Now(),
		}).Error
	if err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	utils.RespondMessage(c, http.StatusOK, "Booking updated successfully")
}

// DeleteBooking hard-deletes the row. Payments and ledger entries keep
// their booking_id so the financial history survives.
func (bc *BookingController) DeleteBooking(c *gin.Context) {
	id := c.Param("id")

	if err := bc.DB.Delete(&models.Booking{}, id).Error; err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	utils.RespondMessage(c, http.StatusOK, "Booking deleted successfully")
}

// GetBookingBalance -> price/total paid/remaining, used to pre-fill the
// completion form. Advisory only.
func (bc *BookingController) GetBookingBalance(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	balance, err := bc.Recon.Balance(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("Booking not found"))
			return
		}
		utils.RespondStoreError(c, err)
		return
	}

	utils.RespondData(c, http.StatusOK, balance)
}

// CompleteBooking runs the completion workflow. The amount is optional and
// deliberately loose: zero, absent or unparseable values mean "no payment",
// the booking is completed regardless.
func (bc *BookingController) CompleteBooking(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var body struct {
		Amount        interface{} `json:"amount"`
		PaymentMethod string      `json:"payment_method"`
		Notes         string      `json:"notes"`
	}
	// An empty body is allowed: completion without a payment.
	if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	amount := parseAmount(body.Amount)

	_, err := bc.Recon.CompleteBooking(uint(id), amount, body.PaymentMethod, body.Notes)
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("Booking not found"))
			return
		}
		utils.RespondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "message": "Booking marked as completed"})
}

// parseAmount coerces the JSON amount field. Numbers pass through, numeric
// strings are parsed, anything else counts as "no payment".
func parseAmount(v interface{}) *float64 {
	switch val := v.(type) {
	case float64:
		return &val
	case string:
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return &f
		}
	}
	return nil
}
