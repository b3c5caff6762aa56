package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentride/backend-rental/config"
	"github.com/rentride/backend-rental/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() *config.Config {
	return &config.Config{JWTSecret: "test-secret"}
}

func signToken(t *testing.T, secret string, role string, expiry time.Duration) string {
	t.Helper()
	claims := Claims{
		UserID:    7,
		Email:     "ann@example.com",
		FirstName: "Ann",
		LastName:  "Driver",
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func newTestRouter(cfg *config.Config, extra ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	handlers := append([]gin.HandlerFunc{AuthMiddleware(cfg)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		id, _ := CallerID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id, "role": CallerRole(c)})
	})
	router.GET("/protected", handlers...)
	return router
}

func request(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg)
	token := signToken(t, cfg.JWTSecret, models.RoleCustomer, time.Hour)

	w := request(router, "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":7`)
	assert.Contains(t, w.Body.String(), `"role":"customer"`)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	router := newTestRouter(testConfig())

	w := request(router, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Authorization required")
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg)
	token := signToken(t, cfg.JWTSecret, models.RoleCustomer, time.Hour)

	for _, header := range []string{token, "Token " + token, "Bearer"} {
		w := request(router, header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
		assert.Contains(t, w.Body.String(), "Invalid authorization header format")
	}
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg)
	token := signToken(t, cfg.JWTSecret, models.RoleCustomer, -time.Minute)

	w := request(router, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid or expired token")
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg)
	token := signToken(t, "other-secret", models.RoleCustomer, time.Hour)

	w := request(router, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_WrongSigningMethod(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg)

	claims := Claims{
		UserID: 7,
		Role:   models.RoleCustomer,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(cfg.JWTSecret))
	require.NoError(t, err)

	w := request(router, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid or expired token")
}

func TestRoleMiddleware_AdminOnly(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg, RoleMiddleware(models.RoleAdmin))

	adminToken := signToken(t, cfg.JWTSecret, models.RoleAdmin, time.Hour)
	w := request(router, "Bearer "+adminToken)
	assert.Equal(t, http.StatusOK, w.Code)

	customerToken := signToken(t, cfg.JWTSecret, models.RoleCustomer, time.Hour)
	w = request(router, "Bearer "+customerToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Insufficient permissions")
}
