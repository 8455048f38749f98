// controllers/health.go
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"moonsalon-backend/config"
)

type HealthController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewHealthController(db *gorm.DB, cfg *config.Config) *HealthController {
	return &HealthController{DB: db, Cfg: cfg}
}

// Health does a store round-trip.
func (hc *HealthController) Health(c *gin.Context) {
	var probe int
	if err := hc.DB.Raw("SELECT 1").Scan(&probe).Error; err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ConfigCheck reports which configuration is in place without exposing any
// secret material.
func (hc *HealthController) ConfigCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Configuration check",
		"config": gin.H{
			"DB_HOST":         hc.Cfg.DBHost,
			"DB_USER":         hc.Cfg.DBUser,
			"DB_NAME":         hc.Cfg.DBName,
			"DB_PASSWORD_SET": hc.Cfg.DBPassword != "",
			"JWT_SECRET_SET":  hc.Cfg.JWTSecret != "",
			"APP_ENV":         hc.Cfg.AppEnv,
		},
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
