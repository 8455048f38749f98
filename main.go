package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"moonsalon-backend/config"
	"moonsalon-backend/routes"
	"moonsalon-backend/services"
)

func main() {
	cfg := config.Load()

	db, err := config.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}
	defer config.Close(db)

	if err := config.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}

	if cfg.RemindersEnabled() {
		services.NewReminderService(db, cfg).StartScheduler()
	} else {
		log.Println("Twilio credentials not set, appointment reminders disabled")
	}

	r := routes.SetupRouter(db, cfg)
	printRoutes(r)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

func printRoutes(r *gin.Engine) {
	for _, route := range r.Routes() {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
