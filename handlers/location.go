package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rentride/backend-rental/models"
	"github.com/rentride/backend-rental/services"
)

type LocationHandler struct {
	svc *services.LocationService
}

func NewLocationHandler(svc *services.LocationService) *LocationHandler {
	return &LocationHandler{svc: svc}
}

func (h *LocationHandler) CreateLocation(c *gin.Context) {
	var req models.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Name, address and contact_number are required",
		})
		return
	}

	location, err := h.svc.Create(req)
	if err != nil {
		serviceError(c, err, "Location")
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Location created successfully",
		Data:    location,
	})
}

func (h *LocationHandler) GetLocations(c *gin.Context) {
	locations, err := h.svc.GetAll()
	if err != nil {
		serviceError(c, err, "Location")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    locations,
	})
}

func (h *LocationHandler) GetLocationByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	location, err := h.svc.GetByID(id)
	if err != nil {
		serviceError(c, err, "Location")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    location,
	})
}

func (h *LocationHandler) UpdateLocation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req models.UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	location, err := h.svc.Update(id, req)
	if err != nil {
		serviceError(c, err, "Location")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Location updated successfully",
		Data:    location,
	})
}

func (h *LocationHandler) DeleteLocation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(id); err != nil {
		serviceError(c, err, "Location")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Location deleted successfully",
	})
}
