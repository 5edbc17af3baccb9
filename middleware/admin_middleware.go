package middleware

import (
	"net/http"

	"github.com/designsync-api/utils"
	"github.com/gin-gonic/gin"
)

// AdminMiddleware creates a middleware that ensures the user has admin role
// This middleware should be used after AuthMiddleware
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Get role from context (set by AuthMiddleware)
		role, exists := c.Get("role")
		if !exists {
			utils.AbortWithError(c, http.StatusUnauthorized, "Authentication required")
			return
		}

		if roleStr, ok := role.(string); !ok || roleStr != "admin" {
			utils.AbortWithError(c, http.StatusForbidden, "Admin privileges required")
			return
		}

		c.Next()
	}
}
