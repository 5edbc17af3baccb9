package v1

import (
	"net/http"

	"github.com/designsync-api/dto"
	"github.com/designsync-api/middleware"
	"github.com/designsync-api/services"
	"github.com/designsync-api/utils"
	"github.com/gin-gonic/gin"
)

// tokenCookieMaxAge matches the token lifetime in seconds
var tokenCookieMaxAge = int(services.TokenTTL.Seconds())

// SignUp handles user registration
func SignUp(c *gin.Context) {
	var req dto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	authResponse, err := services.SignUp(req)
	if err != nil {
		respondServiceError(c, err, "User not found")
		return
	}

	setTokenCookie(c, authResponse.AccessToken)
	utils.RespondSuccess(c, http.StatusCreated, authResponse)
}

// SignIn handles user authentication
func SignIn(c *gin.Context) {
	var req dto.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	authResponse, err := services.SignIn(req)
	if err != nil {
		respondServiceError(c, err, "User not found")
		return
	}

	// Also returned in the body for clients that prefer Bearer auth
	setTokenCookie(c, authResponse.AccessToken)
	utils.RespondSuccess(c, http.StatusOK, authResponse)
}

// GetCurrentUser returns the currently authenticated user's profile
func GetCurrentUser(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	if userID == "" {
		utils.RespondError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	user, err := services.GetUser(userID)
	if err != nil {
		respondServiceError(c, err, "User not found")
		return
	}

	utils.RespondSuccess(c, http.StatusOK, dto.AuthUser{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.DisplayName(),
	})
}

func setTokenCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		middleware.AccessTokenCookie,
		token,
		tokenCookieMaxAge,
		"/",
		"",
		gin.Mode() == gin.ReleaseMode, // secure outside local development
		true,
	)
}
