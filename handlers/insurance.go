package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rentride/backend-rental/models"
	"github.com/rentride/backend-rental/services"
)

type InsuranceHandler struct {
	svc *services.InsuranceService
}

func NewInsuranceHandler(svc *services.InsuranceService) *InsuranceHandler {
	return &InsuranceHandler{svc: svc}
}

func (h *InsuranceHandler) CreateInsurance(c *gin.Context) {
	var req models.CreateInsuranceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "car_id, provider, policy_number, start_date and end_date are required",
		})
		return
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "start_date must use YYYY-MM-DD",
		})
		return
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "end_date must use YYYY-MM-DD",
		})
		return
	}
	if !end.After(start) {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "end_date must be after start_date",
		})
		return
	}

	record, err := h.svc.Create(req.CarID, req.Provider, req.PolicyNumber, start, end)
	if err != nil {
		serviceError(c, err, "Car")
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Insurance record created successfully",
		Data:    record,
	})
}

func (h *InsuranceHandler) GetInsurance(c *gin.Context) {
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
			serviceError(c, err, "Insurance")
			return
		}
		c.JSON(http.StatusOK, models.Response{Success: true, Data: records})
		return
	}

	records, err := h.svc.GetAll()
	if err != nil {
		serviceError(c, err, "Insurance")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    records,
	})
}

func (h *InsuranceHandler) GetInsuranceByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	record, err := h.svc.GetByID(id)
	if err != nil {
		serviceError(c, err, "Insurance record")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    record,
	})
}

func (h *InsuranceHandler) UpdateInsurance(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req models.UpdateInsuranceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	record, err := h.svc.Update(id, req)
	if err != nil {
		serviceError(c, err, "Insurance record")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Insurance record updated successfully",
		Data:    record,
	})
}

func (h *InsuranceHandler) DeleteInsurance(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(id); err != nil {
		serviceError(c, err, "Insurance record")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Insurance record deleted successfully",
	})
}
