package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medicore/hms-api/pkg/auth"
)

func newAuthRouter(t *testing.T) (*gin.Engine, auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtSvc := auth.NewJWTService("test-secret", time.Hour)
	m := NewAuthMiddleware(jwtSvc)

	r := gin.New()
	r.Use(m.RequireAuth())
	r.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": c.GetString(ContextUsername)})
	})
	return r, jwtSvc
}

func TestRequireAuthRejectsMissingHeader(t *testing.T) {
	r, _ := newAuthRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthRejectsGarbageToken(t *testing.T) {
	r, _ := newAuthRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthAdmitsValidToken(t *testing.T) {
	r, jwtSvc := newAuthRouter(t)

	token, err := jwtSvc.GenerateToken(1, "admin")
	require.NoError(t, err)

	// Twice: the second request is served from the token cache.
	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ok", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "admin")
	}
}
