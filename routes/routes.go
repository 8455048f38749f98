package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"moonsalon-backend/config"
	"moonsalon-backend/controllers"
	"moonsalon-backend/utils"
)

func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	secret := cfg.JWTSecret

	authController := controllers.NewAuthController(db, cfg)
	categoryController := controllers.NewCategoryController(db)
	serviceController := controllers.NewServiceController(db)
	appointmentController := controllers.NewAppointmentController(db)
	billController := controllers.NewBillController(db)
	userController := controllers.NewUserController(db)
	reportController := controllers.NewReportController(db)
	healthController := controllers.NewHealthController(db, cfg)

	r.GET("/health", healthController.Health)
	r.GET("/config", healthController.ConfigCheck)

	auth := r.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.GET("/me", utils.Authorize(secret, utils.OpProfileRead), authController.Me)
	}

	api := r.Group("/api")
	{
		appointments := api.Group("/appointments")
		{
			appointments.GET("", utils.Authorize(secret, utils.OpAppointmentList), appointmentController.GetAppointments)
			appointments.POST("", utils.Authorize(secret, utils.OpAppointmentCreate), appointmentController.CreateAppointment)
			appointments.PATCH("/:id", utils.Authorize(secret, utils.OpAppointmentUpdateStatus), appointmentController.UpdateStatus)
		}

		bills := api.Group("/bills")
		{
			bills.GET("", utils.Authorize(secret, utils.OpBillList), billController.GetBills)
			bills.POST("", utils.Authorize(secret, utils.OpBillCreate), billController.CreateBill)
			bills.POST("/:id/pay", utils.Authorize(secret, utils.OpBillPay), billController.PayBill)
		}

		// Catalog reads are public; writes are owner-gated.
		services := api.Group("/services")
		{
			services.GET("", serviceController.GetServices)
			services.POST("", utils.Authorize(secret, utils.OpServiceCreate), serviceController.CreateService)
			services.PUT("/:id", utils.Authorize(secret, utils.OpServiceUpdate), serviceController.UpdateService)
			services.DELETE("/:id", utils.Authorize(secret, utils.OpServiceDelete), serviceController.DeleteService)
		}

		categories := api.Group("/categories")
		{
			categories.GET("", categoryController.GetCategories)
			categories.POST("", utils.Authorize(secret, utils.OpCategoryCreate), categoryController.CreateCategory)
		}

		users := api.Group("/users")
		{
			users.GET("", utils.Authorize(secret, utils.OpUserList), userController.GetUsers)
			users.POST("", utils.Authorize(secret, utils.OpUserCreate), userController.CreateUser)
			users.DELETE("/:id", utils.Authorize(secret, utils.OpUserDelete), userController.DeleteUser)
		}

		api.GET("/reports/sales", utils.Authorize(secret, utils.OpSalesReport), reportController.GetSalesReport)
	}

	return r
}
