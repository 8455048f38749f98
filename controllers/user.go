// controllers/user.go
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"moonsalon-backend/models"
	"moonsalon-backend/utils"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

type CreateUserInput struct {
	Username    string      `json:"username" binding:"required"`
	Email       string      `json:"email" binding:"required,email"`
	Password    string      `json:"password" binding:"required,min=6"`
	Role        models.Role `json:"role" binding:"required"`
	FullName    string      `json:"full_name" binding:"required"`
	Phone       string      `json:"phone"`
	Specialties []uint      `json:"specialties"`
}

type userRow struct {
	ID        uint        `json:"id"`
	Username  string      `json:"username"`
	Email     string      `json:"email"`
	Role      models.Role `json:"role"`
	FullName  string      `json:"full_name"`
	Phone     string      `json:"phone,omitempty"`
	CreatedAt string      `json:"created_at"`

	Specialties []string `json:"specialties"`
}

// GetUsers lists manager and employee accounts with their specialty category
// names. Owner and manager only.
func (uc *UserController) GetUsers(c *gin.Context) {
	var users []models.User
	err := uc.DB.Preload("Specialties").
		Where("role IN ?", []models.Role{models.RoleManager, models.RoleEmployee}).
		Order("role, full_name").
		Find(&users).Error
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve users")
		return
	}

	rows := make([]userRow, 0, len(users))
	for _, u := range users {
		specialties := make([]string, 0, len(u.Specialties))
		for _, s := range u.Specialties {
			specialties = append(specialties, s.Name)
		}
		rows = append(rows, userRow{
			ID:          u.ID,
			Username:    u.Username,
			Email:       u.Email,
			Role:        u.Role,
			FullName:    u.FullName,
			Phone:       u.Phone,
			CreatedAt:   u.CreatedAt.Format(utils.DateLayout),
			Specialties: specialties,
		})
	}

	c.JSON(http.StatusOK, rows)
}

// CreateUser adds an account. Owner only. Employee accounts may be linked to
// the service categories they specialize in.
func (uc *UserController) CreateUser(c *gin.Context) {
	var input CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Missing required fields")
		return
	}
	if !input.Role.Valid() {
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown role")
		return
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	user := models.User{
		Username: input.Username,
		Email:    input.Email,
		Password: hashed,
		Role:     input.Role,
		FullName: input.FullName,
		Phone:    input.Phone,
	}

	tx := uc.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(&user).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	if user.Role == models.RoleEmployee && len(input.Specialties) > 0 {
		var categories []models.ServiceCategory
		if err := tx.Find(&categories, input.Specialties).Error; err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to link specialties")
			return
		}
		if err := tx.Model(&user).Association("Specialties").Append(categories); err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to link specialties")
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "userId": user.ID})
}

// DeleteUser removes an account and its specialty links. Owner only. An
// owner row can never be deleted; the delete predicate excludes it.
func (uc *UserController) DeleteUser(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	tx := uc.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Exec("DELETE FROM employee_specialties WHERE employee_id = ?", userID).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete user")
		return
	}

	result := tx.Where("id = ? AND role <> ?", userID, models.RoleOwner).Delete(&models.User{})
	if result.Error != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete user")
		return
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusNotFound, "User not found")
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
