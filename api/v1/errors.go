package v1

import (
	"errors"
	"net/http"

	"github.com/designsync-api/services"
	"github.com/designsync-api/utils"
	"github.com/gin-gonic/gin"
)

// respondServiceError maps service sentinel errors to HTTP status codes
func respondServiceError(c *gin.Context, err error, notFound string) {
	switch {
	case errors.Is(err, services.ErrValidation):
		utils.RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrNotFound):
		utils.RespondError(c, http.StatusNotFound, notFound)
	case errors.Is(err, services.ErrForbidden):
		utils.RespondError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrEmailTaken):
		utils.RespondError(c, http.StatusConflict, "Email already registered")
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.RespondError(c, http.StatusUnauthorized, "Invalid email or password")
	default:
		utils.RespondInternalError(c, err)
	}
}
