// controllers/category.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"moonsalon-backend/models"
	"moonsalon-backend/utils"
)

type CategoryController struct {
	DB *gorm.DB
}

func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{DB: db}
}

type CreateCategoryInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// GetCategories lists the catalog categories. No token required.
func (cc *CategoryController) GetCategories(c *gin.Context) {
	var categories []models.ServiceCategory
	if err := cc.DB.Order("name").Find(&categories).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve categories")
		return
	}
	c.JSON(http.StatusOK, categories)
}

// CreateCategory adds a catalog category. Owner only.
func (cc *CategoryController) CreateCategory(c *gin.Context) {
	var input CreateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Category name is required")
		return
	}

	category := models.ServiceCategory{
		Name:        input.Name,
		Description: input.Description,
	}
	if err := cc.DB.Create(&category).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create category")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "categoryId": category.ID})
}
