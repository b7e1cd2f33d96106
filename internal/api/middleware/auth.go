// Package middleware provides the bearer-token and role guards for the demo
// backend's routes.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"ridehail/internal/domain/entities"
	"ridehail/internal/repository"
)

const (
	UserIDKey   = "user_id"
	UserRoleKey = "user_role"
)

// BearerAuth resolves demo bearer tokens to accounts. Token format is
// "demo:<user-id>:<nonce>"; the nonce is opaque and ignored. Real tokens are
// validated by the real backend — this layer only ever sees demo sessions.
func BearerAuth(users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "Authentication required. Please log in again.")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			abortUnauthorized(c, "Authentication required. Please log in again.")
			return
		}

		segments := strings.Split(parts[1], ":")
		if len(segments) != 3 || segments[0] != "demo" {
			abortUnauthorized(c, "Authentication required. Please log in again.")
			return
		}

		user, err := users.GetByID(c.Request.Context(), segments[1])
		if err != nil {
			abortUnauthorized(c, "Authentication required. Please log in again.")
			return
		}

		c.Set(UserIDKey, user.ID)
		c.Set(UserRoleKey, user.Role)
		c.Next()
	}
}

// RequireRole guards a route group to one account role. Must run after
// BearerAuth.
func RequireRole(role entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		got, exists := c.Get(UserRoleKey)
		if !exists || got != role {
			c.JSON(http.StatusForbidden, entities.Fail("You do not have permission to perform this action."))
			c.Abort()
			return
		}
		c.Next()
	}
}

// UserID retrieves the account ID set by BearerAuth.
func UserID(c *gin.Context) string {
	id, _ := c.Get(UserIDKey)
	s, _ := id.(string)
	return s
}

func abortUnauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, entities.Fail(message))
	c.Abort()
}
