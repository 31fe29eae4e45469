package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	gocache "github.com/patrickmn/go-cache"

	"github.com/medicore/hms-api/internal/handler"
	"github.com/medicore/hms-api/pkg/auth"
)

const (
	ContextUserID   = "user_id"
	ContextUsername = "username"
)

// AuthMiddleware guards the record routes behind the session token issued at
// login. Validated tokens are cached for their remaining lifetime so repeated
// requests skip signature verification.
type AuthMiddleware struct {
	jwtSvc auth.JWTService
	cache  *gocache.Cache
}

func NewAuthMiddleware(jwtSvc auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtSvc: jwtSvc,
		cache:  gocache.New(5*time.Minute, 10*time.Minute),
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, handler.NewErrorResponse("missing or malformed authorization header"))
			return
		}

		var claims *auth.Claims
		if cached, found := m.cache.Get(token); found {
			claims = cached.(*auth.Claims)
		} else {
			var err error
			claims, err = m.jwtSvc.ValidateToken(token)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, handler.NewErrorResponse("invalid or expired token"))
				return
			}
			if claims.ExpiresAt != nil {
				if ttl := time.Until(claims.ExpiresAt.Time); ttl > 0 {
					m.cache.Set(token, claims, ttl)
				}
			}
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUsername, claims.Username)
		c.Next()
	}
}
