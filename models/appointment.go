package models

import "time"

const (
	AppointmentScheduled = "scheduled"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
	AppointmentNoShow    = "no_show"
)

// ValidAppointmentStatus reports whether s is a known appointment status.
func ValidAppointmentStatus(s string) bool {
	switch s {
	case AppointmentScheduled, AppointmentCompleted, AppointmentCancelled, AppointmentNoShow:
		return true
	}
	return false
}

type Appointment struct {
	ID                uint   `gorm:"primaryKey" json:"id"`
	AppointmentNumber string `gorm:"uniqueIndex;not null" json:"appointment_number"`

	CustomerName string `gorm:"not null" json:"customer_name"`
	CustomerAge  *int   `json:"customer_age,omitempty"`
	ParentName   string `gorm:"not null" json:"parent_name"`
	ParentPhone  string `gorm:"not null" json:"parent_phone"`
	ParentEmail  string `json:"parent_email,omitempty"`

	EmployeeID uint `gorm:"index;not null" json:"employee_id"`
	ServiceID  uint `gorm:"index;not null" json:"service_id"`

	AppointmentDate string `gorm:"size:10;index;not null" json:"appointment_date"` // YYYY-MM-DD
	AppointmentTime string `gorm:"size:5;not null" json:"appointment_time"`        // HH:MM

	// Copied from the service at creation so later catalog edits do not
	// rewrite history.
	DurationMinutes int `gorm:"not null" json:"duration_minutes"`

	Status       string `gorm:"size:20;not null;default:'scheduled'" json:"status"`
	SpecialNotes string `json:"special_notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CanTransitionTo reports whether the appointment may move to the given
// status. Only scheduled appointments can move; completed, cancelled and
// no_show are terminal.
func (a *Appointment) CanTransitionTo(status string) bool {
	if a.Status != AppointmentScheduled {
		return false
	}
	switch status {
	case AppointmentCompleted, AppointmentCancelled, AppointmentNoShow:
		return true
	}
	return false
}
