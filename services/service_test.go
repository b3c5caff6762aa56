package services

import (
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/rentride/backend-rental/models"
)

// newTestDB opens an in-memory sqlite database with the full schema.
// A single connection keeps concurrent transactions serialized the way
// the tests expect.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}
	return db
}

func createTestLocation(t *testing.T, db *gorm.DB) *models.Location {
	t.Helper()
	location := models.Location{
		Name:          "Downtown Branch",
		Address:       "1 Main St",
		ContactNumber: "555-0100",
	}
	if err := db.Create(&location).Error; err != nil {
		t.Fatalf("create location: %v", err)
	}
	return &location
}

func createTestCar(t *testing.T, db *gorm.DB, locationID uint) *models.Car {
	t.Helper()
	car := models.Car{
		Make:         "Toyota",
		Model:        "Corolla",
		Year:         2022,
		Color:        "white",
		RentalRate:   45.50,
		Availability: true,
		LocationID:   locationID,
		ImageURL:     "https://img.example.com/corolla.jpg",
		Description:  "Compact sedan",
	}
	if err := db.Create(&car).Error; err != nil {
		t.Fatalf("create car: %v", err)
	}
	return &car
}

func createTestUser(t *testing.T, db *gorm.DB, email string, verified bool) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("Test123!"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	phone := "555-0101"
	address := "2 Side St"
	user := models.User{
		FirstName:  "Test",
		LastName:   "User",
		Email:      email,
		Password:   string(hash),
		Role:       models.RoleCustomer,
		Phone:      &phone,
		Address:    &address,
		IsVerified: verified,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return &user
}

func carAvailability(t *testing.T, db *gorm.DB, carID uint) bool {
	t.Helper()
	var car models.Car
	if err := db.First(&car, carID).Error; err != nil {
		t.Fatalf("load car: %v", err)
	}
	return car.Availability
}

func testDate(day int) time.Time {
	return time.Date(2030, 6, day, 0, 0, 0, 0, time.UTC)
}
