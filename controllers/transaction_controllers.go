package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/divinebraids/salon-app/models"
	"github.com/divinebraids/salon-app/utils"
)

type TransactionController struct {
	DB *gorm.DB
}

func NewTransactionController(db *gorm.DB) *TransactionController {
	return &TransactionController{DB: db}
}

// GetAllTransactions -> full ledger, newest first, with the customer name
// joined in when the entry is tied to a booking.
func (tc *TransactionController) GetAllTransactions(c *gin.Context) {
	var transactions []models.TransactionWithCustomer
	err := tc.DB.Model(&models.Transaction{}).
		Select("transactions.*, COALESCE(bookings.name, '') AS customer_name").
		Joins("LEFT JOIN bookings ON bookings.id = transactions.booking_id").
		Order("transactions.created_at DESC").
		Scan(&transactions).Error
	if err != nil {
		utils.RespondStoreError(c, err)
		return
	}
	utils.RespondData(c, http.StatusOK, transactions)
}

// GetSummary -> total income, total expense and net profit. Sums default
// to zero on an empty ledger.
func (tc *TransactionController) GetSummary(c *gin.Context) {
	var income, expense float64

	if err := tc.DB.Model(&models.Transaction{}).
		Where("type = ?", "income").
		Select("COALESCE(SUM(amount), 0)").
		Scan(&income).Error; err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	if err := tc.DB.Model(&models.Transaction{}).
		Where("type = ?", "expense").
		Select("COALESCE(SUM(amount), 0)").
		Scan(&expense).Error; err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	utils.RespondData(c, http.StatusOK, models.TransactionSummary{
		TotalIncome:  income,
		TotalExpense: expense,
		NetProfit:    income - expense,
	})
}

// CreateTransaction records a manual ledger entry (typically an expense).
// Manual entries carry no booking or payment reference.
func (tc *TransactionController) CreateTransaction(c *gin.Context) {
	var body struct {
		Type        string  `json:"type"`
		Amount      float64 `json:"amount"`
		Description string  `json:"description"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if body.Type == "" || body.Amount == 0 || body.Description == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("Type, amount, and description are required"))
		return
	}

	transaction := models.Transaction{
		Type:        body.Type,
		Amount:      body.Amount,
		Description: body.Description,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := tc.DB.Create(&transaction).Error; err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	utils.RespondCreated(c, transaction.ID, "Transaction recorded successfully")
}

// UpdateTransaction edits any entry, mirrors included. Deleting or editing
// a mirror never touches the originating payment.
func (tc *TransactionController) UpdateTransaction(c *gin.Context) {
	id := c.Param("id")

	var body struct {
		Type        string  `json:"type"`
		Amount      float64 `json:"amount"`
		Description string  `json:"description"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	err := tc.DB.Model(&models.Transaction{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"type":        body.Type,
			"amount":      body.Amount,
			"description": body.Description,
			"updated_at":  time.Now(),
		}).Error
	if err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	utils.RespondMessage(c, http.StatusOK, "Transaction updated successfully")
}

func (tc *TransactionController) DeleteTransaction(c *gin.Context) {
	id := c.Param("id")

	if err := tc.DB.Delete(&models.Transaction{}, id).Error; err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	utils.RespondMessage(c, http.StatusOK, "Transaction deleted successfully")
}
