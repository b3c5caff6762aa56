package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/rentride/backend-rental/models"
	"github.com/rentride/backend-rental/services"
)

// parseID reads the :id route parameter. A malformed id gets a 400 and
// the caller should return immediately.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid id parameter",
		})
		return 0, false
	}
	return uint(id), true
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(models.DateFormat, s)
}

// serviceError maps tagged service errors to HTTP responses. Unknown
// errors become a generic 500; the detail is only logged.
func serviceError(c *gin.Context, err error, entity string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, models.Response{
			Success: false,
			Error:   entity + " not found",
		})
	case errors.Is(err, services.ErrCarUnavailable):
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Car is not available for reservation",
		})
	case errors.Is(err, services.ErrLocationHasCars):
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Location still has cars assigned",
		})
	case errors.Is(err, services.ErrBookingCompleted):
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Cannot modify completed booking",
		})
	case errors.Is(err, services.ErrBookingCancelled):
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Cannot modify cancelled booking",
		})
	case errors.Is(err, services.ErrReservationClosed):
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Reservation is already completed",
		})
	case errors.Is(err, services.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "User creation failed",
		})
	case errors.Is(err, services.ErrWeakPassword):
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Password must be at least 8 characters with upper case, lower case, digit and symbol",
		})
	case errors.Is(err, services.ErrInvalidCode), errors.Is(err, services.ErrExpiredCode):
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid or expired verification code",
		})
	default:
		log.WithError(err).WithField("entity", entity).Error("Unexpected service error")
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Internal server error",
		})
	}
}
