// services/reminder_service.go
package services

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"

	"moonsalon-backend/config"
	"moonsalon-backend/models"
	"moonsalon-backend/utils"
)

// ReminderService sends guardians an SMS the day before a scheduled
// appointment and records every attempt.
type ReminderService struct {
	db     *gorm.DB
	cfg    *config.Config
	client *twilio.RestClient
}

func NewReminderService(db *gorm.DB, cfg *config.Config) *ReminderService {
	return &ReminderService{
		db:  db,
		cfg: cfg,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.TwilioAccountSID,
			Password: cfg.TwilioAuthToken,
		}),
	}
}

// StartScheduler runs the reminder pass every day at 9 AM.
func (s *ReminderService) StartScheduler() {
	c := cron.New()
	c.AddFunc("0 9 * * *", s.SendDailyReminders)
	c.Start()
	log.Println("Reminder scheduler started")
}

// SendDailyReminders notifies guardians of tomorrow's still-scheduled
// appointments.
func (s *ReminderService) SendDailyReminders() {
	log.Println("Starting daily reminder processing...")

	tomorrow := utils.BeginningOfDay(time.Now()).AddDate(0, 0, 1).Format(utils.DateLayout)

	type upcoming struct {
		models.Appointment
		ServiceName string
	}
	var appointments []upcoming
	err := s.db.Table("appointments a").
		Select("a.*, s.name AS service_name").
		Joins("JOIN services s ON a.service_id = s.id").
		Where("a.appointment_date = ? AND a.status = ?", tomorrow, models.AppointmentScheduled).
		Scan(&appointments).Error
	if err != nil {
		log.Printf("Failed to fetch upcoming appointments: %v", err)
		return
	}

	for _, appt := range appointments {
		message := fmt.Sprintf("Hi %s, a reminder that %s has a %s appointment at Moon Salon tomorrow at %s.",
			appt.ParentName, appt.CustomerName, appt.ServiceName, appt.AppointmentTime)
		s.send(&appt.Appointment, message)
	}

	log.Println("Daily reminder processing completed")
}

func (s *ReminderService) send(appt *models.Appointment, message string) {
	// WhatsApp when the guardian phone is E.164, plain SMS otherwise.
	channel := "sms"
	to := appt.ParentPhone
	from := s.cfg.TwilioPhoneNumber
	if strings.HasPrefix(appt.ParentPhone, "+") && s.cfg.TwilioWhatsAppNumber != "" {
		channel = "whatsapp"
		to = "whatsapp:" + appt.ParentPhone
		from = "whatsapp:" + s.cfg.TwilioWhatsAppNumber
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(from)
	params.SetBody(message)

	resp, err := s.client.Api.CreateMessage(params)
	status := "sent"
	errorMsg := ""
	if err != nil {
		log.Printf("Failed to send reminder for appointment %s: %v", appt.AppointmentNumber, err)
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		log.Printf("Reminder sent for appointment %s, SID: %s", appt.AppointmentNumber, *resp.Sid)
	}

	entry := models.ReminderLog{
		AppointmentID: appt.ID,
		Channel:       channel,
		Message:       message,
		Status:        status,
		ErrorMessage:  errorMsg,
		SentAt:        time.Now(),
	}
	if err := s.db.Create(&entry).Error; err != nil {
		log.Printf("Failed to log reminder for appointment %s: %v", appt.AppointmentNumber, err)
	}
}
