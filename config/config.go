package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

const defaultJWTSecret = "moon-salon-secret"

// Config holds everything the application reads from the environment.
// Handlers never touch os.Getenv directly; the loaded struct is passed in.
type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	JWTSecret string
	AppEnv    string
	Port      string

	TwilioAccountSID     string
	TwilioAuthToken      string
	TwilioPhoneNumber    string
	TwilioWhatsAppNumber string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := &Config{
		DBHost:     getenv("DB_HOST", "localhost"),
		DBPort:     getenv("DB_PORT", "5432"),
		DBUser:     getenv("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getenv("DB_NAME", "moon_salon"),

		JWTSecret: getenv("JWT_SECRET", defaultJWTSecret),
		AppEnv:    getenv("APP_ENV", "development"),
		Port:      getenv("PORT", "8080"),

		TwilioAccountSID:     os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:      os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioPhoneNumber:    os.Getenv("TWILIO_PHONE_NUMBER"),
		TwilioWhatsAppNumber: os.Getenv("TWILIO_WHATSAPP_NUMBER"),
	}

	if cfg.JWTSecret == defaultJWTSecret && cfg.AppEnv != "development" {
		log.Println("WARNING: JWT_SECRET not set, using the built-in development secret")
	}

	return cfg
}

// DSN builds the Postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
}

// RemindersEnabled reports whether the Twilio credentials needed by the
// appointment reminder scheduler are configured.
func (c *Config) RemindersEnabled() bool {
	return c.TwilioAccountSID != "" && c.TwilioAuthToken != ""
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
