// controllers/report.go
package controllers

import (
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"moonsalon-backend/models"
	"moonsalon-backend/utils"
)

// ReportController handles all reporting functions
type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

type SalesSummary struct {
	TotalSales float64 `json:"total_sales"`
	TotalBills int     `json:"total_bills"`
}

type EmployeeSales struct {
	EmployeeName string  `json:"employee_name"`
	TotalSales   float64 `json:"total_sales"`
	TotalBills   int     `json:"total_bills"`
}

type CategorySales struct {
	CategoryName  string  `json:"category_name"`
	TotalSales    float64 `json:"total_sales"`
	TotalQuantity int     `json:"total_quantity"`
}

type DailySales struct {
	SaleDate   string  `json:"sale_date"`
	DailySales float64 `json:"daily_sales"`
	DailyBills int     `json:"daily_bills"`
}

// GetSalesReport aggregates paid bills over an inclusive date range. Owner
// only. Defaults to the current calendar year when no range is given.
func (rc *ReportController) GetSalesReport(c *gin.Context) {
	year := time.Now().Year()
	startDate := c.DefaultQuery("start_date", fmt.Sprintf("%d-01-01", year))
	endDate := c.DefaultQuery("end_date", fmt.Sprintf("%d-12-31", year))

	start, end, err := utils.DayRange(startDate, endDate)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date range")
		return
	}

	summary, err := rc.getSummary(start, end)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get sales summary")
		return
	}

	byEmployee, err := rc.getSalesByEmployee(start, end)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get sales by employee")
		return
	}

	byCategory, err := rc.getSalesByCategory(start, end)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get sales by category")
		return
	}

	daily, err := rc.getDailySales(start, end)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get daily sales")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"summary":           summary,
		"sales_by_employee": byEmployee,
		"sales_by_category": byCategory,
		"daily_sales":       daily,
	})
}

func (rc *ReportController) getSummary(start, end time.Time) (SalesSummary, error) {
	var summary SalesSummary
	err := rc.DB.Model(&models.Bill{}).
		Select("COALESCE(SUM(total_amount), 0) AS total_sales, COUNT(*) AS total_bills").
		Where("payment_status = ? AND created_at >= ? AND created_at < ?", models.PaymentPaid, start, end).
		Scan(&summary).Error
	return summary, err
}

// getSalesByEmployee includes every employee-role user, zero-sale ones too.
func (rc *ReportController) getSalesByEmployee(start, end time.Time) ([]EmployeeSales, error) {
	rows := []EmployeeSales{}
	err := rc.DB.Table("users u").
		Select("u.full_name AS employee_name, COALESCE(SUM(b.total_amount), 0) AS total_sales, COUNT(b.id) AS total_bills").
		Joins("LEFT JOIN bills b ON u.id = b.employee_id AND b.payment_status = ? AND b.created_at >= ? AND b.created_at < ?",
			models.PaymentPaid, start, end).
		Where("u.role = ?", models.RoleEmployee).
		Group("u.id, u.full_name").
		Order("total_sales DESC").
		Scan(&rows).Error
	return rows, err
}

// getSalesByCategory includes every category, left-joined through its
// services and their bill items down to paid bills in range.
func (rc *ReportController) getSalesByCategory(start, end time.Time) ([]CategorySales, error) {
	rows := []CategorySales{}
	err := rc.DB.Table("service_categories sc").
		Select("sc.name AS category_name, "+
			"COALESCE(SUM(CASE WHEN b.id IS NOT NULL THEN bi.price * bi.quantity ELSE 0 END), 0) AS total_sales, "+
			"COALESCE(SUM(CASE WHEN b.id IS NOT NULL THEN bi.quantity ELSE 0 END), 0) AS total_quantity").
		Joins("LEFT JOIN services s ON sc.id = s.category_id").
		Joins("LEFT JOIN bill_items bi ON s.id = bi.service_id").
		Joins("LEFT JOIN bills b ON bi.bill_id = b.id AND b.payment_status = ? AND b.created_at >= ? AND b.created_at < ?",
			models.PaymentPaid, start, end).
		Group("sc.id, sc.name").
		Order("total_sales DESC").
		Scan(&rows).Error
	return rows, err
}

// getDailySales buckets paid bills by calendar day. The bucketing happens
// here rather than in SQL so the day truncation matches the server locale on
// every store dialect.
func (rc *ReportController) getDailySales(start, end time.Time) ([]DailySales, error) {
	var bills []models.Bill
	err := rc.DB.Select("total_amount, created_at").
		Where("payment_status = ? AND created_at >= ? AND created_at < ?", models.PaymentPaid, start, end).
		Find(&bills).Error
	if err != nil {
		return nil, err
	}

	buckets := map[string]*DailySales{}
	for _, bill := range bills {
		day := bill.CreatedAt.In(time.Local).Format(utils.DateLayout)
		bucket, ok := buckets[day]
		if !ok {
			bucket = &DailySales{SaleDate: day}
			buckets[day] = bucket
		}
		bucket.DailySales += bill.TotalAmount
		bucket.DailyBills++
	}

	daily := make([]DailySales, 0, len(buckets))
	for _, bucket := range buckets {
		daily = append(daily, *bucket)
	}
	sort.Slice(daily, func(i, j int) bool { return daily[i].SaleDate < daily[j].SaleDate })
	return daily, nil
}
