package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rentride/backend-rental/models"
	"github.com/rentride/backend-rental/services"
)

type PaymentHandler struct {
	svc *services.PaymentService
}

func NewPaymentHandler(svc *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req models.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "booking_id, payment_date, amount and payment_method are required",
		})
		return
	}

	if req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Amount must be a positive number",
		})
		return
	}
	if !models.ValidPaymentMethod(req.PaymentMethod) {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "payment_method must be cash, credit_card, debit_card or bank_transfer",
		})
		return
	}

	paymentDate, err := parseDate(req.PaymentDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "payment_date must use YYYY-MM-DD",
		})
		return
	}

	payment, err := h.svc.Create(req.BookingID, paymentDate, req.Amount, req.PaymentMethod)
	if err != nil {
		serviceError(c, err, "Booking")
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Payment recorded successfully",
		Data:    payment,
	})
}

func (h *PaymentHandler) GetPayments(c *gin.Context) {
	payments, err := h.svc.GetAll()
	if err != nil {
		serviceError(c, err, "Payment")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    payments,
	})
}

func (h *PaymentHandler) GetPaymentByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	payment, err := h.svc.GetByID(id)
	if err != nil {
		serviceError(c, err, "Payment")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    payment,
	})
}

func (h *PaymentHandler) UpdatePayment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req models.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	if req.Amount != nil && *req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Amount must be a positive number",
		})
		return
	}
	if req.PaymentMethod != nil && !models.ValidPaymentMethod(*req.PaymentMethod) {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "payment_method must be cash, credit_card, debit_card or bank_transfer",
		})
		return
	}

	payment, err := h.svc.Update(id, req)
	if err != nil {
		serviceError(c, err, "Payment")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Payment updated successfully",
		Data:    payment,
	})
}

func (h *PaymentHandler) DeletePayment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(id); err != nil {
		serviceError(c, err, "Payment")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Payment deleted successfully",
	})
}
