package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rentride/backend-rental/middleware"
	"github.com/rentride/backend-rental/models"
	"github.com/rentride/backend-rental/services"
)

type ReservationHandler struct {
	svc *services.ReservationService
}

func NewReservationHandler(svc *services.ReservationService) *ReservationHandler {
	return &ReservationHandler{svc: svc}
}

func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Error:   "Invalid user context",
		})
		return
	}

	var req models.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "car_id, reservation_date and pickup_date are required",
		})
		return
	}

	reservationDate, err := parseDate(req.ReservationDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "reservation_date must use YYYY-MM-DD",
		})
		return
	}
	pickupDate, err := parseDate(req.PickupDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "pickup_date must use YYYY-MM-DD",
		})
		return
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	if reservationDate.Before(today) {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "reservation_date cannot be in the past",
		})
		return
	}
	if pickupDate.Before(reservationDate) {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "pickup_date cannot be before reservation_date",
		})
		return
	}

	// Admins may reserve on behalf of another user.
	targetUser := userID
	if req.UserID != 0 && middleware.CallerRole(c) == models.RoleAdmin {
		targetUser = req.UserID
	}

	reservation, err := h.svc.Create(targetUser, req.CarID, reservationDate, pickupDate)
	if err != nil {
		serviceError(c, err, "Car")
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Reservation created successfully",
		Data:    reservation,
	})
}

func (h *ReservationHandler) GetReservations(c *gin.Context) {
	userID, _ := middleware.CallerID(c)

	// Customers only see their own reservations.
	scope := uint(0)
	if middleware.CallerRole(c) != models.RoleAdmin {
		scope = userID
	}

	reservations, err := h.svc.GetAll(scope)
	if err != nil {
		serviceError(c, err, "Reservation")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    reservations,
	})
}

func (h *ReservationHandler) GetReservationByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	reservation, err := h.svc.GetByID(id)
	if err != nil {
		serviceError(c, err, "Reservation")
		return
	}

	userID, _ := middleware.CallerID(c)
	if middleware.CallerRole(c) != models.RoleAdmin && reservation.UserID != userID {
		c.JSON(http.StatusForbidden, models.Response{
			Success: false,
			Error:   "Access denied",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    reservation,
	})
}

// CompleteReservation records the return date and frees the car.
func (h *ReservationHandler) CompleteReservation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req models.CompleteReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "return_date is required",
		})
		return
	}

	returnDate, err := parseDate(req.ReturnDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "return_date must use YYYY-MM-DD",
		})
		return
	}

	reservation, err := h.svc.GetByID(id)
	if err != nil {
		serviceError(c, err, "Reservation")
		return
	}

	userID, _ := middleware.CallerID(c)
	if middleware.CallerRole(c) != models.RoleAdmin && reservation.UserID != userID {
		c.JSON(http.StatusForbidden, models.Response{
			Success: false,
			Error:   "Access denied",
		})
		return
	}

	updated, err := h.svc.Complete(id, returnDate)
	if err != nil {
		serviceError(c, err, "Reservation")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Reservation completed successfully",
		Data:    updated,
	})
}

func (h *ReservationHandler) DeleteReservation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	reservation, err := h.svc.GetByID(id)
	if err != nil {
		serviceError(c, err, "Reservation")
		return
	}

	userID, _ := middleware.CallerID(c)
	if middleware.CallerRole(c) != models.RoleAdmin && reservation.UserID != userID {
		c.JSON(http.StatusForbidden, models.Response{
			Success: false,
			Error:   "Access denied",
		})
		return
	}

	if err := h.svc.Delete(id); err != nil {
		serviceError(c, err, "Reservation")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Reservation deleted successfully",
	})
}
