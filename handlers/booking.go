package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rentride/backend-rental/middleware"
	"github.com/rentride/backend-rental/models"
	"github.com/rentride/backend-rental/services"
)

type BookingHandler struct {
	svc *services.BookingService
}

func NewBookingHandler(svc *services.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Error:   "Invalid user context",
		})
		return
	}

	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "car_id, rental_start_date, rental_end_date and total_amount are required",
		})
		return
	}

	start, err := parseDate(req.RentalStartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "rental_start_date must use YYYY-MM-DD",
		})
		return
	}
	end, err := parseDate(req.RentalEndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "rental_end_date must use YYYY-MM-DD",
		})
		return
	}
	if !end.After(start) {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "rental_end_date must be after rental_start_date",
		})
		return
	}
	if req.TotalAmount <= 0 {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "total_amount must be a positive number",
		})
		return
	}

	// Admins may book on behalf of another user.
	targetUser := userID
	if req.UserID != 0 && middleware.CallerRole(c) == models.RoleAdmin {
		targetUser = req.UserID
	}

	booking, err := h.svc.Create(targetUser, req.CarID, start, end, req.TotalAmount)
	if err != nil {
		serviceError(c, err, "Car")
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Booking created successfully",
		Data:    booking,
	})
}

func (h *BookingHandler) GetBookings(c *gin.Context) {
	userID, _ := middleware.CallerID(c)

	// Customers only see their own bookings.
	scope := uint(0)
	if middleware.CallerRole(c) != models.RoleAdmin {
		scope = userID
	}

	bookings, err := h.svc.GetAll(scope)
	if err != nil {
		serviceError(c, err, "Booking")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    bookings,
	})
}

func (h *BookingHandler) GetBookingByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	booking, err := h.svc.GetByID(id)
	if err != nil {
		serviceError(c, err, "Booking")
		return
	}

	userID, _ := middleware.CallerID(c)
	if middleware.CallerRole(c) != models.RoleAdmin && booking.UserID != userID {
		c.JSON(http.StatusForbidden, models.Response{
			Success: false,
			Error:   "Access denied",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    booking,
	})
}

func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req models.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	if req.Status != nil && !models.ValidBookingStatus(*req.Status) {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Status must be pending, completed or cancelled",
		})
		return
	}
	if req.TotalAmount != nil && *req.TotalAmount <= 0 {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "total_amount must be a positive number",
		})
		return
	}

	var newEnd time.Time
	if req.RentalEndDate != nil {
		end, err := parseDate(*req.RentalEndDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.Response{
				Success: false,
				Error:   "rental_end_date must use YYYY-MM-DD",
			})
			return
		}
		newEnd = end
	}

	booking, err := h.svc.GetByID(id)
	if err != nil {
		serviceError(c, err, "Booking")
		return
	}

	userID, _ := middleware.CallerID(c)
	if middleware.CallerRole(c) != models.RoleAdmin && booking.UserID != userID {
		c.JSON(http.StatusForbidden, models.Response{
			Success: false,
			Error:   "Access denied",
		})
		return
	}

	if req.RentalEndDate != nil && !newEnd.After(booking.RentalStartDate) {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "rental_end_date must be after rental_start_date",
		})
		return
	}

	updated, err := h.svc.Update(id, req)
	if err != nil {
		serviceError(c, err, "Booking")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Booking updated successfully",
		Data:    updated,
	})
}

// DeleteBooking is admin-only; the route attaches RoleMiddleware.
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(id); err != nil {
		serviceError(c, err, "Booking")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Booking deleted successfully",
	})
}
