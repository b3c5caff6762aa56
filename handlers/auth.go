package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/rentride/backend-rental/config"
	"github.com/rentride/backend-rental/middleware"
	"github.com/rentride/backend-rental/models"
	"github.com/rentride/backend-rental/services"
)

type AuthHandler struct {
	svc    *services.AuthService
	config *config.Config
}

func NewAuthHandler(svc *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		svc:    svc,
		config: cfg,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	if req.Role == "" {
		req.Role = models.RoleCustomer
	}
	if req.Role != models.RoleAdmin && req.Role != models.RoleCustomer {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Role must be admin or customer",
		})
		return
	}

	// Customers carry a contact profile.
	if req.Role == models.RoleCustomer {
		if req.Phone == nil || *req.Phone == "" || req.Address == nil || *req.Address == "" {
			c.JSON(http.StatusBadRequest, models.Response{
				Success: false,
				Error:   "Phone and address are required for customers",
			})
			return
		}
	}

	user, err := h.svc.Register(req)
	if err != nil {
		serviceError(c, err, "User")
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Registration successful. Check your email for the verification code.",
		Data:    gin.H{"user": user},
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	user, err := h.svc.Login(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, models.Response{
				Success: false,
				Error:   "User not found",
			})
		case errors.Is(err, services.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, models.Response{
				Success: false,
				Error:   "Invalid password",
			})
		case errors.Is(err, services.ErrNotVerified):
			c.JSON(http.StatusForbidden, models.Response{
				Success: false,
				Error:   "Account not verified. A new verification code has been sent.",
			})
		default:
			serviceError(c, err, "User")
		}
		return
	}

	token, err := h.generateToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to generate token",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Login successful",
		Data: models.LoginResponse{
			Token: token,
			User:  user,
		},
	})
}

func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	var req models.VerifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	if err := h.svc.VerifyEmail(req.Email, req.Code); err != nil {
		serviceError(c, err, "User")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Email verified successfully",
	})
}

func (h *AuthHandler) GetMe(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Error:   "Invalid user context",
		})
		return
	}

	user, err := h.svc.GetByID(userID)
	if err != nil {
		serviceError(c, err, "User")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    user,
	})
}

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := middleware.Claims{
		UserID:    user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
