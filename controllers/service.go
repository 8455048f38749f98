// controllers/service.go
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

type ServiceController struct {
	DB *gorm.DB
}

func NewServiceController(db *gorm.DB) *ServiceController {
	return &ServiceController{DB: db}
}

// ServiceInput is shared by create and update; both require the full record.
type ServiceInput struct {
	Name            string  `json:"name" binding:"required"`
	CategoryID      uint    `json:"category_id" binding:"required"`
	Price           float64 `json:"price" binding:"required,gt=0"`
	DurationMinutes int     `json:"duration_minutes" binding:"required,gt=0"`
	Description     string  `json:"description"`
}

type serviceRow struct {
	models.Service
	CategoryName string `json:"category_name"`
}

// GetServices lists the catalog with category names. No token required.
func (sc *ServiceController) GetServices(c *gin.Context) {
	var services []serviceRow
	err := sc.DB.Table("services s").
		Select("s.*, sc.name AS category_name").
		Joins("JOIN service_categories sc ON s.category_id = sc.id").
		Order("sc.name, s.name").
		Scan(&services).Error
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}
	c.JSON(http.StatusOK, services)
}

// CreateService adds a catalog service. Owner only.
func (sc *ServiceController) CreateService(c *gin.Context) {
	var input ServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	var category models.ServiceCategory
	if err := sc.DB.First(&category, input.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Category not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	service := models.Service{
		Name:            input.Name,
		CategoryID:      input.CategoryID,
		Price:           input.Price,
		DurationMinutes: input.DurationMinutes,
		Description:     input.Description,
	}
	if err := sc.DB.Create(&service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create service")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "serviceId": service.ID})
}

// UpdateService replaces a service's catalog attributes. Owner only. Price
// changes never touch existing bills or appointments; those carry snapshots.
func (sc *ServiceController) UpdateService(c *gin.Context) {
	serviceID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID")
		return
	}

	var input ServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	var service models.Service
	if err := sc.DB.First(&service, serviceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	service.Name = input.Name
	service.CategoryID = input.CategoryID
	service.Price = input.Price
	service.DurationMinutes = input.DurationMinutes
	service.Description = input.Description

	if err := sc.DB.Save(&service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update service")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteService removes a service from the catalog. Owner only.
func (sc *ServiceController) DeleteService(c *gin.Context) {
	serviceID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID")
		return
	}

	result := sc.DB.Delete(&models.Service{}, serviceID)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete service")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
