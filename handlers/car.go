package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rentride/backend-rental/models"
	"github.com/rentride/backend-rental/services"
)

type CarHandler struct {
	svc *services.CarService
}

func NewCarHandler(svc *services.CarService) *CarHandler {
	return &CarHandler{svc: svc}
}

func (h *CarHandler) CreateCar(c *gin.Context) {
	var req models.CreateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "All car fields including image_url are required",
		})
		return
	}

	if req.RentalRate <= 0 {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Rental rate must be a positive number",
		})
		return
	}

	car, err := h.svc.Create(req)
	if err != nil {
		serviceError(c, err, "Location")
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Car created successfully",
		Data:    car,
	})
}

func (h *CarHandler) GetCars(c *gin.Context) {
	// ?available=true narrows to cars that can be reserved right now.
	if c.Query("available") == "true" {
		var locationID uint
		if v := c.Query("location_id"); v != "" {
			parsed, err := strconv.ParseUint(v, 10, 32)
			if err != nil {
				c.JSON(http.StatusBadRequest, models.Response{
					Success: false,
					Error:   "Invalid location_id parameter",
				})
				return
			}
			locationID = uint(parsed)
		}

		cars, err := h.svc.GetAvailable(locationID)
		if err != nil {
			serviceError(c, err, "Car")
			return
		}
		c.JSON(http.StatusOK, models.Response{Success: true, Data: cars})
		return
	}

	cars, err := h.svc.GetAll()
	if err != nil {
		serviceError(c, err, "Car")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    cars,
	})
}

func (h *CarHandler) GetCarByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	car, err := h.svc.GetByID(id)
	if err != nil {
		serviceError(c, err, "Car")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    car,
	})
}

func (h *CarHandler) UpdateCar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req models.UpdateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	if req.RentalRate != nil && *req.RentalRate <= 0 {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Rental rate must be a positive number",
		})
		return
	}

	car, err := h.svc.Update(id, req)
	if err != nil {
		serviceError(c, err, "Car")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Car updated successfully",
		Data:    car,
	})
}

func (h *CarHandler) DeleteCar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(id); err != nil {
		serviceError(c, err, "Car")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Car deleted successfully",
	})
}
