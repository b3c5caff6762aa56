package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rentride/backend-rental/config"
	"github.com/rentride/backend-rental/handlers"
	"github.com/rentride/backend-rental/middleware"
	"github.com/rentride/backend-rental/models"
	"github.com/rentride/backend-rental/services"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config, codes services.CodeStore, mailer services.EmailSender) {
	// Initialize services
	authSvc := services.NewAuthService(db, codes, mailer)
	carSvc := services.NewCarService(db)
	locationSvc := services.NewLocationService(db)
	customerSvc := services.NewCustomerService(db)
	reservationSvc := services.NewReservationService(db)
	bookingSvc := services.NewBookingService(db)
	paymentSvc := services.NewPaymentService(db)
	maintenanceSvc := services.NewMaintenanceService(db)
	insuranceSvc := services.NewInsuranceService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authSvc, cfg)
	carHandler := handlers.NewCarHandler(carSvc)
	locationHandler := handlers.NewLocationHandler(locationSvc)
	customerHandler := handlers.NewCustomerHandler(customerSvc)
	reservationHandler := handlers.NewReservationHandler(reservationSvc)
	bookingHandler := handlers.NewBookingHandler(bookingSvc)
	paymentHandler := handlers.NewPaymentHandler(paymentSvc)
	maintenanceHandler := handlers.NewMaintenanceHandler(maintenanceSvc)
	insuranceHandler := handlers.NewInsuranceHandler(insuranceSvc)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"success": true,
			"message": "Server is running",
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/verify-email", authHandler.VerifyEmail)
		}

		// Public catalog routes
		v1.GET("/cars", carHandler.GetCars)
		v1.GET("/cars/:id", carHandler.GetCarByID)
		v1.GET("/locations", locationHandler.GetLocations)
		v1.GET("/locations/:id", locationHandler.GetLocationByID)

		// Protected routes
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			protected.GET("/auth/me", authHandler.GetMe)

			// Reservations
			reservations := protected.Group("/reservations")
			{
				reservations.GET("", reservationHandler.GetReservations)
				reservations.POST("", reservationHandler.CreateReservation)
				reservations.GET("/:id", reservationHandler.GetReservationByID)
				reservations.PUT("/:id", reservationHandler.CompleteReservation)
				reservations.DELETE("/:id", reservationHandler.DeleteReservation)
			}

			// Bookings (owner-or-admin checks inside the handlers)
			bookings := protected.Group("/bookings")
			{
				bookings.GET("", bookingHandler.GetBookings)
				bookings.POST("", bookingHandler.CreateBooking)
				bookings.GET("/:id", bookingHandler.GetBookingByID)
				bookings.PUT("/:id", bookingHandler.UpdateBooking)
				bookings.DELETE("/:id", middleware.RoleMiddleware(models.RoleAdmin), bookingHandler.DeleteBooking)
			}

			// Payments
			payments := protected.Group("/payments")
			{
				payments.GET("", paymentHandler.GetPayments)
				payments.POST("", paymentHandler.CreatePayment)
				payments.GET("/:id", paymentHandler.GetPaymentByID)
				payments.PUT("/:id", paymentHandler.UpdatePayment)
				payments.DELETE("/:id", middleware.RoleMiddleware(models.RoleAdmin), paymentHandler.DeletePayment)
			}

			// Maintenance and insurance (reads for any authenticated user)
			protected.GET("/maintenance", maintenanceHandler.GetMaintenance)
			protected.GET("/maintenance/:id", maintenanceHandler.GetMaintenanceByID)
			protected.GET("/insurance", insuranceHandler.GetInsurance)
			protected.GET("/insurance/:id", insuranceHandler.GetInsuranceByID)

			// Admin routes
			admin := protected.Group("")
			admin.Use(middleware.RoleMiddleware(models.RoleAdmin))
			{
				// Fleet management
				admin.POST("/cars", carHandler.CreateCar)
				admin.PUT("/cars/:id", carHandler.UpdateCar)
				admin.DELETE("/cars/:id", carHandler.DeleteCar)

				// Location management
				admin.POST("/locations", locationHandler.CreateLocation)
				admin.PUT("/locations/:id", locationHandler.UpdateLocation)
				admin.DELETE("/locations/:id", locationHandler.DeleteLocation)

				// Maintenance management
				admin.POST("/maintenance", maintenanceHandler.CreateMaintenance)
				admin.PUT("/maintenance/:id", maintenanceHandler.UpdateMaintenance)
				admin.DELETE("/maintenance/:id", maintenanceHandler.DeleteMaintenance)

				// Insurance management
				admin.POST("/insurance", insuranceHandler.CreateInsurance)
				admin.PUT("/insurance/:id", insuranceHandler.UpdateInsurance)
				admin.DELETE("/insurance/:id", insuranceHandler.DeleteInsurance)

				// User management
				admin.GET("/users", customerHandler.GetUsers)
				admin.GET("/users/:id", customerHandler.GetUserByID)
				admin.PUT("/users/:id", customerHandler.UpdateUser)
				admin.DELETE("/users/:id", customerHandler.DeleteUser)
			}
		}
	}
}
