// controllers/bill.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"moonsalon-backend/models"
	"moonsalon-backend/utils"
)

type BillController struct {
	DB *gorm.DB
}

func NewBillController(db *gorm.DB) *BillController {
	return &BillController{DB: db}
}

type BillServiceInput struct {
	ServiceID uint `json:"service_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"omitempty,min=1"`
}

type CreateBillInput struct {
	CustomerName  string             `json:"customer_name" binding:"required"`
	CustomerPhone string             `json:"customer_phone"`
	EmployeeID    uint               `json:"employee_id" binding:"required"`
	Services      []BillServiceInput `json:"services" binding:"required,min=1,dive"`
}

type PayBillInput struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
}

type billRow struct {
	models.Bill
	EmployeeName string `json:"employee_name"`
	ManagerName  string `json:"manager_name"`
}

// GetBills lists bills. Owner sees all, a manager only bills they created, an
// employee only bills naming them. Scoping comes from the token claims.
func (bc *BillController) GetBills(c *gin.Context) {
	claims, ok := utils.CurrentClaims(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	query := bc.DB.Table("bills b").
		Select("b.*, e.full_name AS employee_name, m.full_name AS manager_name").
		Joins("JOIN users e ON b.employee_id = e.id").
		Joins("JOIN users m ON b.manager_id = m.id")

	switch claims.Role {
	case models.RoleManager:
		query = query.Where("b.manager_id = ?", claims.UserID)
	case models.RoleEmployee:
		query = query.Where("b.employee_id = ?", claims.UserID)
	}

	var bills []billRow
	if err := query.Order("b.created_at DESC").Scan(&bills).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bills")
		return
	}

	c.JSON(http.StatusOK, bills)
}

// CreateBill persists a bill header plus one item per selected service in a
// single transaction. Each item snapshots the service's current price, and
// the header total is the sum of those snapshots; later catalog price edits
// never change an existing bill. A selection referencing an unknown service
// aborts the whole creation.
func (bc *BillController) CreateBill(c *gin.Context) {
	claims, ok := utils.CurrentClaims(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input CreateBillInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Missing required fields")
		return
	}
	if input.CustomerPhone != "" && !utils.ValidatePhone(input.CustomerPhone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer phone number")
		return
	}

	tx := bc.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var totalAmount float64
	items := make([]models.BillItem, 0, len(input.Services))

	for _, entry := range input.Services {
		var service models.Service
		if err := tx.First(&service, entry.ServiceID).Error; err != nil {
			tx.Rollback()
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusNotFound, "Service not found")
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			}
			return
		}

		quantity := entry.Quantity
		if quantity == 0 {
			quantity = 1
		}

		totalAmount += service.Price * float64(quantity)
		items = append(items, models.BillItem{
			ServiceID: service.ID,
			Quantity:  quantity,
			Price:     service.Price,
		})
	}

	bill := models.Bill{
		BillNumber:    utils.GenerateBillNumber(),
		CustomerName:  input.CustomerName,
		CustomerPhone: input.CustomerPhone,
		EmployeeID:    input.EmployeeID,
		ManagerID:     claims.UserID,
		TotalAmount:   totalAmount,
		PaymentStatus: models.PaymentPending,
		Items:         items,
	}

	if err := tx.Create(&bill).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create bill")
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create bill")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"billId":       bill.ID,
		"billNumber":   bill.BillNumber,
		"total_amount": bill.TotalAmount,
	})
}

// PayBill marks a pending bill as paid. Manager only. Paid and cancelled are
// terminal, so paying twice is rejected.
func (bc *BillController) PayBill(c *gin.Context) {
	billID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid bill ID")
		return
	}

	var input PayBillInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Payment method is required")
		return
	}

	var bill models.Bill
	if err := bc.DB.First(&bill, billID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Bill not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if !bill.CanTransitionTo(models.PaymentPaid) {
		utils.RespondWithError(c, http.StatusBadRequest, "Bill is not pending payment")
		return
	}

	bill.PaymentStatus = models.PaymentPaid
	bill.PaymentMethod = input.PaymentMethod
	if err := bc.DB.Save(&bill).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update bill")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
