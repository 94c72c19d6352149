package routes

import (
	"localpro-backend/config"
	"localpro-backend/controllers"
	"localpro-backend/realtime"
	"localpro-backend/services"
	"localpro-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(cfg *config.Config, db *gorm.DB, hub *realtime.Hub, notifier *services.NotifierService) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	r.GET("/", func(c *gin.Context) {
		c.String(200, "Backend server is running")
	})

	r.Static("/uploads", cfg.UploadDir)

	r.GET("/ws", realtime.ServeWS(hub, db, cfg.FrontendOrigin))

	authController := &controllers.AuthController{
		Verifier: utils.StaticCredentials{
			Email:    cfg.AdminEmail,
			Password: cfg.AdminPassword,
			Hash:     cfg.AdminPasswordHash,
		},
		JWTSecret:      cfg.JWTSecret,
		JWTExpiryHours: cfg.JWTExpiryHours,
	}
	customerController := &controllers.CustomerController{DB: db, Hub: hub, UploadDir: cfg.UploadDir, Notifier: notifier}
	jobController := &controllers.JobController{DB: db, Hub: hub, UploadDir: cfg.UploadDir}
	providerController := &controllers.ProviderController{DB: db, Hub: hub}
	financeController := &controllers.FinanceController{DB: db, Hub: hub}
	dashboardController := &controllers.DashboardController{DB: db}

	api := r.Group("/api")
	{
		api.POST("/auth/login", authController.Login)

		customers := api.Group("/customers")
		{
			customers.POST("", customerController.CreateCustomer)
			customers.GET("", customerController.GetCustomers)
			customers.GET("/:id", customerController.GetCustomer)
			customers.PUT("/:id", customerController.UpdateCustomer)
			customers.DELETE("/:id", customerController.DeleteCustomer)
		}

		jobs := api.Group("/jobs")
		{
			jobs.POST("", jobController.CreateJob)
			jobs.GET("", jobController.GetJobs)
			jobs.GET("/:id", jobController.GetJob)
		}

		providers := api.Group("/providers")
		{
			providers.GET("", providerController.GetProviders)
			providers.GET("/stats", providerController.GetProviderStats)
			// Only the authenticated admin can add providers
			providers.POST("", utils.AuthMiddleware(cfg.JWTSecret), providerController.CreateProvider)
		}

		finance := api.Group("/finance")
		{
			finance.GET("", financeController.GetAllTransactions)
			finance.POST("", financeController.AddTransaction)
			finance.GET("/total", financeController.GetTotalRevenue)
			finance.GET("/export", financeController.ExportTransactions)
		}

		api.GET("/dashboard", dashboardController.GetDashboardOverview)
	}

	return r
}
