package models

import "time"

// ReminderLog records one attempt to notify a guardian about an upcoming
// appointment.
type ReminderLog struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	AppointmentID uint      `gorm:"index;not null" json:"appointment_id"`
	Channel       string    `gorm:"size:20" json:"channel"` // whatsapp, sms
	Message       string    `gorm:"type:text" json:"message"`
	Status        string    `gorm:"size:20" json:"status"` // sent, failed
	ErrorMessage  string    `gorm:"type:text" json:"error_message,omitempty"`
	SentAt        time.Time `json:"sent_at"`

	CreatedAt time.Time `json:"created_at"`
}
