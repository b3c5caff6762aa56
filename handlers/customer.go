package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rentride/backend-rental/models"
	"github.com/rentride/backend-rental/services"
)

// CustomerHandler exposes admin-side user management.
type CustomerHandler struct {
	svc *services.CustomerService
}

func NewCustomerHandler(svc *services.CustomerService) *CustomerHandler {
	return &CustomerHandler{svc: svc}
}

func (h *CustomerHandler) GetUsers(c *gin.Context) {
	users, err := h.svc.GetAll()
	if err != nil {
		serviceError(c, err, "User")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    users,
	})
}

func (h *CustomerHandler) GetUserByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	user, err := h.svc.GetByID(id)
	if err != nil {
		serviceError(c, err, "User")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    user,
	})
}

func (h *CustomerHandler) UpdateUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	if req.Role != nil && *req.Role != models.RoleAdmin && *req.Role != models.RoleCustomer {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Role must be admin or customer",
		})
		return
	}

	user, err := h.svc.Update(id, req)
	if err != nil {
		serviceError(c, err, "User")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "User updated successfully",
		Data:    user,
	})
}

func (h *CustomerHandler) DeleteUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(id); err != nil {
		serviceError(c, err, "User")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "User deleted successfully",
	})
}
