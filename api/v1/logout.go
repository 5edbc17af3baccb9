package v1

import (
	"net/http"

	"github.com/designsync-api/middleware"
	"github.com/designsync-api/utils"
	"github.com/gin-gonic/gin"
)

// Logout handles user logout
func Logout(c *gin.Context) {
	// Clear the cookie by setting max-age to -1 (expired)
	c.SetCookie(
		middleware.AccessTokenCookie,
		"",
		-1,
		"/",
		"",
		gin.Mode() == gin.ReleaseMode,
		true,
	)

	utils.RespondSuccess(c, http.StatusOK, gin.H{"message": "Logged out successfully"})
}
