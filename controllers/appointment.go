// controllers/appointment.go
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

type AppointmentController struct {
	DB *gorm.DB
}

func NewAppointmentController(db *gorm.DB) *AppointmentController {
	return &AppointmentController{DB: db}
}

type CreateAppointmentInput struct {
	CustomerName    string `json:"customer_name" binding:"required"`
	CustomerAge     *int   `json:"customer_age"`
	ParentName      string `json:"parent_name" binding:"required"`
	ParentPhone     string `json:"parent_phone" binding:"required"`
	ParentEmail     string `json:"parent_email"`
	EmployeeID      uint   `json:"employee_id" binding:"required"`
	ServiceID       uint   `json:"service_id" binding:"required"`
	AppointmentDate string `json:"appointment_date" binding:"required"`
	AppointmentTime string `json:"appointment_time" binding:"required"`
	SpecialNotes    string `json:"special_notes"`
}

type UpdateAppointmentStatusInput struct {
	Status string `json:"status" binding:"required"`
}

type appointmentRow struct {
	models.Appointment
	EmployeeName string  `json:"employee_name"`
	ServiceName  string  `json:"service_name"`
	ServicePrice float64 `json:"service_price"`
}

// GetAppointments lists appointments. Owner and manager see everything; an
// employee only sees rows where they are the assigned employee, keyed by the
// identity in the token, never by client input.
func (ap *AppointmentController) GetAppointments(c *gin.Context) {
	claims, ok := utils.CurrentClaims(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	query := ap.DB.Table("appointments a").
		Select("a.*, u.full_name AS employee_name, s.name AS service_name, s.price AS service_price").
		Joins("JOIN users u ON a.employee_id = u.id").
		Joins("JOIN services s ON a.service_id = s.id")

	if claims.Role == models.RoleEmployee {
		query = query.Where("a.employee_id = ?", claims.UserID)
	}

	var appointments []appointmentRow
	if err := query.Order("a.appointment_date ASC, a.appointment_time ASC").Scan(&appointments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	c.JSON(http.StatusOK, appointments)
}

// CreateAppointment books a visit. Manager only. The service's duration is
// copied onto the appointment so later catalog edits do not change it.
func (ap *AppointmentController) CreateAppointment(c *gin.Context) {
	var input CreateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	if !utils.ValidDate(input.AppointmentDate) || !utils.ValidTime(input.AppointmentTime) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment date or time")
		return
	}
	if !utils.ValidatePhone(input.ParentPhone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid parent phone number")
		return
	}

	var service models.Service
	if err := ap.DB.First(&service, input.ServiceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var employee models.User
	if err := ap.DB.First(&employee, input.EmployeeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Employee not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	appointment := models.Appointment{
		AppointmentNumber: utils.GenerateAppointmentNumber(),
		CustomerName:      input.CustomerName,
		CustomerAge:       input.CustomerAge,
		ParentName:        input.ParentName,
		ParentPhone:       input.ParentPhone,
		ParentEmail:       input.ParentEmail,
		EmployeeID:        input.EmployeeID,
		ServiceID:         input.ServiceID,
		AppointmentDate:   input.AppointmentDate,
		AppointmentTime:   input.AppointmentTime,
		DurationMinutes:   service.DurationMinutes,
		Status:            models.AppointmentScheduled,
		SpecialNotes:      input.SpecialNotes,
	}

	if err := ap.DB.Create(&appointment).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create appointment")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":           true,
		"appointmentId":     appointment.ID,
		"appointmentNumber": appointment.AppointmentNumber,
	})
}

// UpdateStatus moves an appointment out of scheduled. Manager only.
// Completed, cancelled and no_show are terminal; transitions out of them are
// rejected.
func (ap *AppointmentController) UpdateStatus(c *gin.Context) {
	appointmentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID")
		return
	}

	var input UpdateAppointmentStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Status is required")
		return
	}
	if !models.ValidAppointmentStatus(input.Status) {
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown status")
		return
	}

	var appointment models.Appointment
	if err := ap.DB.First(&appointment, appointmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if !appointment.CanTransitionTo(input.Status) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid status transition")
		return
	}

	appointment.Status = input.Status
	if err := ap.DB.Save(&appointment).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update appointment")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
