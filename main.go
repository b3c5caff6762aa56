package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/rentride/backend-rental/config"
	"github.com/rentride/backend-rental/models"
	"github.com/rentride/backend-rental/routes"
	"github.com/rentride/backend-rental/services"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Warn(".env file not found, using system environment variables")
	}

	// Initialize configuration
	cfg := config.NewConfig()

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
		log.SetFormatter(&log.JSONFormatter{})
	}

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	// Connect to Postgres and run migrations
	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}
	if err := models.AutoMigrate(db); err != nil {
		log.WithError(err).Fatal("Failed to run migrations")
	}

	if err := ensureAdmin(db, cfg); err != nil {
		log.WithError(err).Fatal("Failed to bootstrap admin account")
	}

	// Verification codes live in process memory; the mailer delivers them.
	codes := services.NewMemoryCodeStore()
	var mailer services.EmailSender = services.NewSMTPMailer(cfg)
	if cfg.SMTPHost == "" {
		log.Warn("SMTP not configured, verification emails are disabled")
		mailer = services.NoopMailer{}
	}

	// Create gin router
	router := gin.Default()
	router.Use(config.CORSMiddleware(cfg))

	routes.SetupRoutes(router, db, cfg, codes, mailer)

	log.WithField("port", cfg.Port).Info("Server starting")
	if err := router.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("Failed to start server")
	}
}

// ensureAdmin creates the initial admin account when ADMIN_EMAIL and
// ADMIN_PASSWORD are set and no such user exists yet.
func ensureAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", cfg.AdminEmail).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		FirstName:  "System",
		LastName:   "Admin",
		Email:      cfg.AdminEmail,
		Password:   string(hash),
		Role:       models.RoleAdmin,
		IsVerified: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.WithField("email", cfg.AdminEmail).Info("Created initial admin account")
	return nil
}
