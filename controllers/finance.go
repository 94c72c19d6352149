package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"localpro-backend/models"
	"localpro-backend/realtime"
	"localpro-backend/utils"

	"github.com/gin-gonic/gin"
	zlog "github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type FinanceController struct {
	DB  *gorm.DB
	Hub *realtime.Hub
}

type CreateTransactionInput struct {
	TransactionID string     `json:"transactionId" binding:"required"`
	ProviderName  string     `json:"providerName" binding:"required"`
	JobCategory   string     `json:"jobCategory" binding:"required"`
	Amount        *float64   `json:"amount" binding:"required"` // pointer so a zero amount passes required
	Status        string     `json:"status"`
	Date          *time.Time `json:"date"`
}

// AddTransaction records a finance transaction and emits 'newTransaction'.
// Transaction id uniqueness is enforced by the store's unique index.
func (ctl *FinanceController) AddTransaction(c *gin.Context) {
	var input CreateTransactionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Failed to add transaction: "+err.Error())
		return
	}

	transaction := models.FinanceTransaction{
		TransactionID: input.TransactionID,
		ProviderName:  input.ProviderName,
		JobCategory:   input.JobCategory,
		Amount:        *input.Amount,
		Status:        input.Status,
	}
	if input.Date != nil {
		transaction.Date = *input.Date
	}

	if err := ctl.DB.Create(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondWithError(c, http.StatusBadRequest, "Transaction ID already exists")
			return
		}
		zlog.Error().Err(err).Msg("create transaction")
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to add transaction")
		return
	}

	ctl.Hub.Broadcast("newTransaction", transaction)

	c.JSON(http.StatusCreated, transaction)
}

// GetAllTransactions retrieves every transaction, newest first
func (ctl *FinanceController) GetAllTransactions(c *gin.Context) {
	var transactions []models.FinanceTransaction
	if err := ctl.DB.Order("created_at DESC").Find(&transactions).Error; err != nil {
		zlog.Error().Err(err).Msg("list transactions")
		utils.RespondWithError(c, http.StatusInternalServerError, "Error fetching transactions")
		return
	}
	c.JSON(http.StatusOK, transactions)
}

// GetTotalRevenue sums the amounts of all completed transactions
func (ctl *FinanceController) GetTotalRevenue(c *gin.Context) {
	var total float64
	err := ctl.DB.Model(&models.FinanceTransaction{}).
		Where("status = ?", "Completed").
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		zlog.Error().Err(err).Msg("total revenue")
		utils.RespondWithError(c, http.StatusInternalServerError, "Error calculating revenue")
		return
	}

	c.JSON(http.StatusOK, gin.H{"total": total})
}

// ExportTransactions streams all transactions as an xlsx workbook.
func (ctl *FinanceController) ExportTransactions(c *gin.Context) {
	var transactions []models.FinanceTransaction
	if err := ctl.DB.Order("created_at DESC").Find(&transactions).Error; err != nil {
		zlog.Error().Err(err).Msg("export transactions")
		utils.RespondWithError(c, http.StatusInternalServerError, "Error fetching transactions")
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Transactions"
	f.SetSheetName("Sheet1", sheet)
	headers := []string{"Transaction ID", "Provider", "Category", "Amount", "Status", "Date"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	for row, t := range transactions {
		values := []interface{}{t.TransactionID, t.ProviderName, t.JobCategory, t.Amount, t.Status, t.Date.Format("2006-01-02")}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	fileName := fmt.Sprintf("transactions-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		zlog.Error().Err(err).Msg("write xlsx")
	}
}
