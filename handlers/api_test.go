package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/rentride/backend-rental/config"
	"github.com/rentride/backend-rental/middleware"
	"github.com/rentride/backend-rental/models"
	"github.com/rentride/backend-rental/routes"
	"github.com/rentride/backend-rental/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB, *config.Config) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, models.AutoMigrate(db))

	cfg := &config.Config{JWTSecret: "test-secret"}

	router := gin.New()
	routes.SetupRoutes(router, db, cfg, services.NewMemoryCodeStore(), services.NoopMailer{})
	return router, db, cfg
}

func seedUser(t *testing.T, db *gorm.DB, email, role string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("Test123!"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		FirstName:  "Test",
		LastName:   "User",
		Email:      email,
		Password:   string(hash),
		Role:       role,
		IsVerified: true,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func seedCar(t *testing.T, db *gorm.DB) *models.Car {
	t.Helper()
	location := models.Location{Name: "Downtown", Address: "1 Main St", ContactNumber: "020000000"}
	require.NoError(t, db.Create(&location).Error)

	car := models.Car{
		Make:         "Toyota",
		Model:        "Corolla",
		Year:         2022,
		Color:        "white",
		RentalRate:   45,
		Availability: true,
		LocationID:   location.ID,
	}
	require.NoError(t, db.Create(&car).Error)
	return &car
}

func tokenFor(t *testing.T, cfg *config.Config, user *models.User) string {
	t.Helper()
	claims := middleware.Claims{
		UserID:    user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.JWTSecret))
	require.NoError(t, err)
	return token
}

func doJSON(router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestReservationEndpoints_Lifecycle(t *testing.T) {
	router, db, cfg := newTestServer(t)
	user := seedUser(t, db, "ann@example.com", models.RoleCustomer)
	car := seedCar(t, db)
	token := tokenFor(t, cfg, user)

	// Create the reservation; the car is claimed.
	w := doJSON(router, http.MethodPost, "/api/v1/reservations", token, gin.H{
		"car_id":           car.ID,
		"reservation_date": "2030-06-01",
		"pickup_date":      "2030-06-02",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Data models.Reservation `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, user.ID, created.Data.UserID)

	var claimed models.Car
	require.NoError(t, db.First(&claimed, car.ID).Error)
	assert.False(t, claimed.Availability)

	// A second reservation for the same car is refused.
	w = doJSON(router, http.MethodPost, "/api/v1/reservations", token, gin.H{
		"car_id":           car.ID,
		"reservation_date": "2030-06-03",
		"pickup_date":      "2030-06-04",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Car is not available for reservation")

	// Completing the reservation frees the car.
	path := fmt.Sprintf("/api/v1/reservations/%d", created.Data.ID)
	w = doJSON(router, http.MethodPut, path, token, gin.H{"return_date": "2030-06-05"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var freed models.Car
	require.NoError(t, db.First(&freed, car.ID).Error)
	assert.True(t, freed.Availability)

	// Completing again is refused.
	w = doJSON(router, http.MethodPut, path, token, gin.H{"return_date": "2030-06-06"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Reservation is already completed")
}

func TestReservationEndpoints_Validation(t *testing.T) {
	router, db, cfg := newTestServer(t)
	user := seedUser(t, db, "ann@example.com", models.RoleCustomer)
	car := seedCar(t, db)
	token := tokenFor(t, cfg, user)

	// Missing fields.
	w := doJSON(router, http.MethodPost, "/api/v1/reservations", token, gin.H{"car_id": car.ID})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Past reservation date.
	w = doJSON(router, http.MethodPost, "/api/v1/reservations", token, gin.H{
		"car_id":           car.ID,
		"reservation_date": "2020-01-01",
		"pickup_date":      "2020-01-02",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "cannot be in the past")

	// Pickup before reservation.
	w = doJSON(router, http.MethodPost, "/api/v1/reservations", token, gin.H{
		"car_id":           car.ID,
		"reservation_date": "2030-06-10",
		"pickup_date":      "2030-06-09",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "pickup_date cannot be before reservation_date")

	// Unknown car.
	w = doJSON(router, http.MethodPost, "/api/v1/reservations", token, gin.H{
		"car_id":           9999,
		"reservation_date": "2030-06-01",
		"pickup_date":      "2030-06-02",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// No token at all.
	w = doJSON(router, http.MethodGet, "/api/v1/reservations", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestReservationEndpoints_OwnerScope(t *testing.T) {
	router, db, cfg := newTestServer(t)
	owner := seedUser(t, db, "owner@example.com", models.RoleCustomer)
	other := seedUser(t, db, "other@example.com", models.RoleCustomer)
	admin := seedUser(t, db, "admin@example.com", models.RoleAdmin)
	car := seedCar(t, db)

	w := doJSON(router, http.MethodPost, "/api/v1/reservations", tokenFor(t, cfg, owner), gin.H{
		"car_id":           car.ID,
		"reservation_date": "2030-06-01",
		"pickup_date":      "2030-06-02",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Data models.Reservation `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	path := fmt.Sprintf("/api/v1/reservations/%d", created.Data.ID)

	// Another customer cannot read it.
	w = doJSON(router, http.MethodGet, path, tokenFor(t, cfg, other), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Access denied")

	// The admin can.
	w = doJSON(router, http.MethodGet, path, tokenFor(t, cfg, admin), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Listing only shows the caller's own reservations.
	w = doJSON(router, http.MethodGet, "/api/v1/reservations", tokenFor(t, cfg, other), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listed struct {
		Data []models.Reservation `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	assert.Empty(t, listed.Data)
}

func TestBookingEndpoints_Lifecycle(t *testing.T) {
	router, db, cfg := newTestServer(t)
	user := seedUser(t, db, "ann@example.com", models.RoleCustomer)
	admin := seedUser(t, db, "admin@example.com", models.RoleAdmin)
	car := seedCar(t, db)
	token := tokenFor(t, cfg, user)

	w := doJSON(router, http.MethodPost, "/api/v1/bookings", token, gin.H{
		"car_id":            car.ID,
		"rental_start_date": "2030-06-01",
		"rental_end_date":   "2030-06-05",
		"total_amount":      180.0,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Data models.Booking `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, models.BookingStatusPending, created.Data.Status)
	assert.NotEmpty(t, created.Data.BookingNumber)

	path := fmt.Sprintf("/api/v1/bookings/%d", created.Data.ID)

	// Complete it, then attempt a further change.
	w = doJSON(router, http.MethodPut, path, token, gin.H{"status": "completed"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(router, http.MethodPut, path, token, gin.H{"status": "cancelled"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Cannot modify completed booking")

	// Customers may not delete bookings.
	w = doJSON(router, http.MethodDelete, path, token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Admins may.
	w = doJSON(router, http.MethodDelete, path, tokenFor(t, cfg, admin), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBookingEndpoints_Validation(t *testing.T) {
	router, db, cfg := newTestServer(t)
	user := seedUser(t, db, "ann@example.com", models.RoleCustomer)
	car := seedCar(t, db)
	token := tokenFor(t, cfg, user)

	// End date not after start date.
	w := doJSON(router, http.MethodPost, "/api/v1/bookings", token, gin.H{
		"car_id":            car.ID,
		"rental_start_date": "2030-06-05",
		"rental_end_date":   "2030-06-05",
		"total_amount":      180.0,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "rental_end_date must be after rental_start_date")

	// Invalid status value on update.
	w = doJSON(router, http.MethodPost, "/api/v1/bookings", token, gin.H{
		"car_id":            car.ID,
		"rental_start_date": "2030-06-01",
		"rental_end_date":   "2030-06-05",
		"total_amount":      180.0,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		Data models.Booking `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	path := fmt.Sprintf("/api/v1/bookings/%d", created.Data.ID)

	w = doJSON(router, http.MethodPut, path, token, gin.H{"status": "done"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Status must be pending, completed or cancelled")

	// A malformed end date on update is a validation error, not a 500.
	w = doJSON(router, http.MethodPut, path, token, gin.H{"rental_end_date": "05-06-2030"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "rental_end_date must use YYYY-MM-DD")

	// The updated end date must still follow the start date.
	w = doJSON(router, http.MethodPut, path, token, gin.H{"rental_end_date": "2030-05-30"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "rental_end_date must be after rental_start_date")
}

func TestAuthEndpoints_RegisterAndLogin(t *testing.T) {
	router, db, _ := newTestServer(t)

	w := doJSON(router, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"first_name": "Ann",
		"last_name":  "Driver",
		"email":      "ann@example.com",
		"password":   "Sup3r$ecret",
		"phone":      "0812345678",
		"address":    "1 Main St",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Login before verification.
	w = doJSON(router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "ann@example.com",
		"password": "Sup3r$ecret",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Flip verification directly and log in.
	require.NoError(t, db.Model(&models.User{}).Where("email = ?", "ann@example.com").Update("is_verified", true).Error)

	w = doJSON(router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "ann@example.com",
		"password": "Sup3r$ecret",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "token")

	// Wrong password and unknown user map to distinct statuses.
	w = doJSON(router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "ann@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "nobody@example.com",
		"password": "Sup3r$ecret",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminGatedCatalogMutation(t *testing.T) {
	router, db, cfg := newTestServer(t)
	customer := seedUser(t, db, "ann@example.com", models.RoleCustomer)
	admin := seedUser(t, db, "admin@example.com", models.RoleAdmin)

	body := gin.H{"name": "Downtown", "address": "1 Main St", "contact_number": "020000000"}

	w := doJSON(router, http.MethodPost, "/api/v1/locations", tokenFor(t, cfg, customer), body)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(router, http.MethodPost, "/api/v1/locations", tokenFor(t, cfg, admin), body)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Catalog reads stay public.
	w = doJSON(router, http.MethodGet, "/api/v1/locations", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
