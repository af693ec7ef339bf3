//go:build unit

package api_test

import (
	"net/http"

	"hotel-availability/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

// fakeAuth stands in for RequireAuth: any Authorization header authenticates as actor.
func fakeAuth(actor *shared.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", actor.UserID)
		c.Set("user_role", actor.Role)
		c.Next()
	}
}
