package routes

import (
	"CarePoint/cache"
	"CarePoint/config"
	"CarePoint/controllers"
	"CarePoint/handlers"
	"CarePoint/middlewares"
	"CarePoint/repositories"
	"CarePoint/services"
	"CarePoint/storage"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes initializes the routes and middleware for the server
func SetupRoutes(cache *cache.Cache, config *config.AppConfig, db *gorm.DB, blobs *storage.BlobStore) http.Handler {
	// Set Gin to release mode
	gin.SetMode(gin.ReleaseMode)

	// Create a Gin router
	router := gin.Default()

	// Apply Bearer token validation to all routes
	router.Use(middlewares.ValidateBearerToken(config.GetBearerToken()))

	// Create and apply CORS middleware configuration
	corsConfig := &middlewares.CorsConfig{
		AllowedOrigins:   []string{"http://localhost:3000", "https://www.example.com", "https://example-dev.com"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}
	router.Use(middlewares.CorsMiddleware(corsConfig))

	// Apply rate limiter middleware
	router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: 15, // 15 requests per second
		Burst:             30, // Burst of 30
	}))

	// Apply logging middleware
	router.Use(middlewares.LoggingMiddleware())

	// Initialize repositories
	appointmentRepo := repositories.NewAppointmentRepository(cache)
	transactionRepo := repositories.NewTransactionRepository(cache)
	hospitalRepo := repositories.NewHospitalRepository(cache)
	reportRepo := repositories.NewReportRepository(cache)
	userRepo := repositories.NewUserRepository(db, cache)

	// Initialize services
	userService := services.NewUserService(userRepo)
	appointmentService := services.NewAppointmentService(appointmentRepo)
	availabilityService := services.NewAvailabilityService(appointmentRepo)
	bookingService := services.NewBookingService(appointmentRepo)
	paymentService := services.NewPaymentService(appointmentRepo, transactionRepo)
	transactionService := services.NewTransactionService(appointmentRepo, transactionRepo)
	hospitalService := services.NewHospitalService(hospitalRepo)
	reportService := services.NewReportService(reportRepo, blobs)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, blobs)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService, availabilityService, bookingService, paymentService, transactionService)
	paymentHandler := handlers.NewPaymentHandler(bookingService, paymentService, userService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	hospitalHandler := handlers.NewHospitalHandler(hospitalService)
	reportHandler := handlers.NewReportHandler(reportService)

	// Register routes
	controllers.SetupBookingRoutes(router, hospitalHandler, appointmentHandler, paymentHandler, reportHandler)
	controllers.SetupAdminRoutes(router, hospitalHandler, appointmentHandler, transactionHandler, reportHandler, authHandler)

	authController := controllers.NewAuthController(authHandler)
	authController.RegisterRoutes(router)

	controllers.SetupRootRoute(router)

	return router
}
