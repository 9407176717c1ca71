package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openlms/lms/internal/pkg/auth"
)

func protectedRouter(t *testing.T, jwtService *auth.JWTService, roles ...string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	m := NewAuthMiddleware(jwtService)
	router := gin.New()

	handlers := []gin.HandlerFunc{m.JWTAuth()}
	if len(roles) > 0 {
		handlers = append(handlers, m.RequireRole(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userId": c.GetString(ContextUserID),
			"role":   c.GetString(ContextUserRole),
		})
	})

	router.GET("/protected", handlers...)
	return router
}

func authRequest(router *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func newTestJWTService(expiry time.Duration) *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExpiry: expiry,
		TokenIssuer: "openlms-test",
	})
}

func TestJWTAuthMissingHeader(t *testing.T) {
	router := protectedRouter(t, newTestJWTService(time.Hour))

	w := authRequest(router, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMalformedHeader(t *testing.T) {
	router := protectedRouter(t, newTestJWTService(time.Hour))

	w := authRequest(router, "Token abc")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthExpiredToken(t *testing.T) {
	svc := newTestJWTService(-time.Minute)
	token, _, err := svc.GenerateToken(1, "U001", "x@example.edu", "student")
	require.NoError(t, err)

	w := authRequest(protectedRouter(t, newTestJWTService(time.Hour)), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token expired")
}

func TestJWTAuthValidToken(t *testing.T) {
	svc := newTestJWTService(time.Hour)
	token, _, err := svc.GenerateToken(1, "U001", "x@example.edu", "teacher")
	require.NoError(t, err)

	w := authRequest(protectedRouter(t, svc), "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userId":"U001"`)
	assert.Contains(t, w.Body.String(), `"role":"teacher"`)
}

func TestRequireRole(t *testing.T) {
	svc := newTestJWTService(time.Hour)

	adminToken, _, err := svc.GenerateToken(1, "U000", "admin@example.edu", "admin")
	require.NoError(t, err)
	studentToken, _, err := svc.GenerateToken(2, "U001", "x@example.edu", "student")
	require.NoError(t, err)

	router := protectedRouter(t, svc, "admin")

	w := authRequest(router, "Bearer "+adminToken)
	assert.Equal(t, http.StatusOK, w.Code)

	w = authRequest(router, "Bearer "+studentToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Insufficient permissions")
}
