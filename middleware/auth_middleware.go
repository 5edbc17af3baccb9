package middleware

import (
	"net/http"
	"strings"

	"github.com/designsync-api/services"
	"github.com/designsync-api/utils"
	"github.com/gin-gonic/gin"
)

// AccessTokenCookie is the cookie the sign-in endpoint stores the token in
const AccessTokenCookie = "access_token"

// extractToken reads the bearer token from the Authorization header, falling back to the cookie
func extractToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}
	if token, err := c.Cookie(AccessTokenCookie); err == nil {
		return token
	}
	return ""
}

// AuthMiddleware rejects requests without a valid access token.
// On success it stores userId, email and role in the context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			utils.AbortWithError(c, http.StatusUnauthorized, "Access token is required")
			return
		}

		claims, err := services.ValidateToken(token)
		if err != nil {
			utils.AbortWithError(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		c.Set("userId", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// CurrentUserID returns the authenticated user's id, or "" for anonymous callers
func CurrentUserID(c *gin.Context) string {
	return c.GetString("userId")
}

// IsAdmin reports whether the authenticated caller has the admin role
func IsAdmin(c *gin.Context) bool {
	return c.GetString("role") == "admin"
}
