package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/flowpad-app/flowpad-backend/internal/auth/domain"
)

const ctxUser = "current_user"

// Identifier resolves a bearer token to the user it belongs to.
type Identifier interface {
	Identify(ctx context.Context, token string) (*domain.User, error)
}

// RequireUser validates the Authorization header and stores the resolved
// user in the gin context. A missing or malformed header never reaches the
// auth service.
func RequireUser(auth Identifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		tok := extractToken(c)
		if tok == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization token"})
			return
		}

		user, err := auth.Identify(c.Request.Context(), tok)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		c.Set(ctxUser, user)
		c.Next()
	}
}

// extractToken extracts the Bearer token from the Authorization header.
func extractToken(c *gin.Context) string {
	bearerToken := c.GetHeader("Authorization")
	if len(bearerToken) > 7 && strings.HasPrefix(bearerToken, "Bearer ") {
		return bearerToken[7:]
	}
	return ""
}

// CurrentUser returns the user stored by RequireUser, or nil outside an
// authenticated route.
func CurrentUser(c *gin.Context) *domain.User {
	v, ok := c.Get(ctxUser)
	if !ok {
		return nil
	}
	user, _ := v.(*domain.User)
	return user
}

// UserID returns the authenticated user's id, or 0 when unauthenticated.
func UserID(c *gin.Context) int {
	if u := CurrentUser(c); u != nil {
		return u.ID
	}
	return 0
}
