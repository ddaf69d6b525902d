package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/divinebraids/salon-app/controllers"
	"github.com/divinebraids/salon-app/models"
)

func setupBookingRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	bookingCtrl := controllers.NewBookingController(db)
	router.GET("/bookings", bookingCtrl.GetAllBookings)
	router.GET("/bookings/:id", bookingCtrl.GetBookingByID)
	router.POST("/bookings", bookingCtrl.CreateBooking)
	router.PUT("/bookings/:id", bookingCtrl.UpdateBooking)
	router.DELETE("/bookings/:id", bookingCtrl.DeleteBooking)
	router.GET("/bookings/:id/balance", bookingCtrl.GetBookingBalance)
	router.POST("/bookings/:id/complete", bookingCtrl.CompleteBooking)
	return router
}

func TestCreatePublicBookingDefaults(t *testing.T) {
	db := openTestDB(t)
	router := setupBookingRouter(db)

	payload, _ := json.Marshal(map[string]interface{}{
		"name":  "Ana",
		"phone": "555-1111",
	})
	req, _ := http.NewRequest("POST", "/bookings", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Booking created successfully", resp["message"])

	var booking models.Booking
	assert.NoError(t, db.First(&booking, uint(resp["id"].(float64))).Error)
	assert.Equal(t, "pending", booking.Status)
	assert.Nil(t, booking.Price)
}

func TestCreateBookingRequiresNameAndPhone(t *testing.T) {
	db := openTestDB(t)
	router := setupBookingRouter(db)

	payload, _ := json.Marshal(map[string]interface{}{"name": "Ana"})
	req, _ := http.NewRequest("POST", "/bookings", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Name and phone are required", resp["error"])
}

func TestListBookingsAnnotatesTotalPaid(t *testing.T) {
	db := openTestDB(t)
	router := setupBookingRouter(db)

	booking := seedTestBooking(t, db, "Maya", "555-2222", floatPtr(200))
	db.Create(&models.Payment{BookingID: booking.ID, Amount: 50, PaymentMethod: "cash"})
	db.Create(&models.Payment{BookingID: booking.ID, Amount: 25, PaymentMethod: "venmo"})

	req, _ := http.NewRequest("GET", "/bookings", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var rows []map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	assert.Len(t, rows, 1)
	assert.Equal(t, 75.0, rows[0]["total_paid"])
}

func TestGetBookingDetailIncludesPayments(t *testing.T) {
	db := openTestDB(t)
	router := setupBookingRouter(db)

	booking := seedTestBooking(t, db, "Maya", "555-2222", floatPtr(150))
	db.Create(&models.Payment{BookingID: booking.ID, Amount: 50, PaymentMethod: "cash"})

	req, _ := http.NewRequest("GET", "/bookings/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Maya", resp["name"])
	payments := resp["payments"].([]interface{})
	assert.Len(t, payments, 1)
}

func TestGetBookingNotFound(t *testing.T) {
	db := openTestDB(t)
	router := setupBookingRouter(db)

	req, _ := http.NewRequest("GET", "/bookings/999", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateAbsentBookingIsNoop(t *testing.T) {
	db := openTestDB(t)
	router := setupBookingRouter(db)

	payload, _ := json.Marshal(map[string]interface{}{
		"name": "Ghost", "phone": "000", "status": "confirmed",
	})
	req, _ := http.NewRequest("PUT", "/bookings/999", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.Booking{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestDeleteBookingLeavesPayments(t *testing.T) {
	db := openTestDB(t)
	router := setupBookingRouter(db)

	booking := seedTestBooking(t, db, "Maya", "555-2222", floatPtr(100))
	db.Create(&models.Payment{BookingID: booking.ID, Amount: 40, PaymentMethod: "cash"})

	req, _ := http.NewRequest("DELETE", "/bookings/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var bookingCount, paymentCount int64
	db.Model(&models.Booking{}).Count(&bookingCount)
	db.Model(&models.Payment{}).Count(&paymentCount)
	assert.Equal(t, int64(0), bookingCount)
	assert.Equal(t, int64(1), paymentCount)
}

func TestCompleteBookingEndpointWithAmount(t *testing.T) {
	db := openTestDB(t)
	router := setupBookingRouter(db)

	booking := seedTestBooking(t, db, "Maya", "555-2222", floatPtr(200))
	db.Create(&models.Payment{BookingID: booking.ID, Amount: 50, PaymentMethod: "cash"})

	// Balance pre-fill advertises the remaining 150.
	req, _ := http.NewRequest("GET", "/bookings/1/balance", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var balance map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &balance))
	assert.Equal(t, 150.0, balance["remaining_balance"])

	payload, _ := json.Marshal(map[string]interface{}{
		"amount":         150,
		"payment_method": "card",
	})
	req, _ = http.NewRequest("POST", "/bookings/1/complete", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var updated models.Booking
	assert.NoError(t, db.First(&updated, booking.ID).Error)
	assert.Equal(t, "completed", updated.Status)

	var total float64
	db.Model(&models.Payment{}).Where("booking_id = ?", booking.ID).
		Select("COALESCE(SUM(amount), 0)").Scan(&total)
	assert.Equal(t, 200.0, total)
}

func TestCompleteBookingEndpointWithoutBody(t *testing.T) {
	db := openTestDB(t)
	router := setupBookingRouter(db)

	seedTestBooking(t, db, "Maya", "555-2222", floatPtr(100))

	req, _ := http.NewRequest("POST", "/bookings/1/complete", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var updated models.Booking
	assert.NoError(t, db.First(&updated, 1).Error)
	assert.Equal(t, "completed", updated.Status)

	var paymentCount, txCount int64
	db.Model(&models.Payment{}).Count(&paymentCount)
	db.Model(&models.Transaction{}).Count(&txCount)
	assert.Equal(t, int64(0), paymentCount)
	assert.Equal(t, int64(0), txCount)
}

func TestCompleteBookingEndpointIgnoresUnparseableAmount(t *testing.T) {
	db := openTestDB(t)
	router := setupBookingRouter(db)

	seedTestBooking(t, db, "Maya", "555-2222", floatPtr(100))

	payload, _ := json.Marshal(map[string]interface{}{"amount": "not-a-number"})
	req, _ := http.NewRequest("POST", "/bookings/1/complete", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var paymentCount int64
	db.Model(&models.Payment{}).Count(&paymentCount)
	assert.Equal(t, int64(0), paymentCount)
}
