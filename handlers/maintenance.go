package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rentride/backend-rental/models"
	"github.com/rentride/backend-rental/services"
)

type MaintenanceHandler struct {
	svc *services.MaintenanceService
}

func NewMaintenanceHandler(svc *services.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{svc: svc}
}

func (h *MaintenanceHandler) CreateMaintenance(c *gin.Context) {
	var req models.CreateMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "car_id, maintenance_date, description and cost are required",
		})
		return
	}

	if req.Cost <= 0 {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Cost must be a positive number",
		})
		return
	}

	date, err := parseDate(req.MaintenanceDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "maintenance_date must use YYYY-MM-DD",
		})
		return
	}

	record, err := h.svc.Create(req.CarID, date, req.Description, req.Cost)
	if err != nil {
		serviceError(c, err, "Car")
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Maintenance record created successfully",
		Data:    record,
	})
}

func (h *MaintenanceHandler) GetMaintenance(c *gin.Context) {
	// ?car_id= scopes the list to one car's history.
	if v := c.Query("car_id"); v != "" {
		carID, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.Response{
				Success: false,
				Error:   "Invalid car_id parameter",
			})
			return
		}

		records, err := h.svc.GetByCar(uint(carID))
		if err != nil {
			serviceError(c, err, "Maintenance")
			return
		}
		c.JSON(http.StatusOK, models.Response{Success: true, Data: records})
		return
	}

	records, err := h.svc.GetAll()
	if err != nil {
		serviceError(c, err, "Maintenance")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    records,
	})
}

func (h *MaintenanceHandler) GetMaintenanceByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	record, err := h.svc.GetByID(id)
	if err != nil {
		serviceError(c, err, "Maintenance record")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    record,
	})
}

func (h *MaintenanceHandler) UpdateMaintenance(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req models.UpdateMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	if req.Cost != nil && *req.Cost <= 0 {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Cost must be a positive number",
		})
		return
	}

	record, err := h.svc.Update(id, req)
	if err != nil {
		serviceError(c, err, "Maintenance record")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Maintenance record updated successfully",
		Data:    record,
	})
}

func (h *MaintenanceHandler) DeleteMaintenance(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(id); err != nil {
		serviceError(c, err, "Maintenance record")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Maintenance record deleted successfully",
	})
}
