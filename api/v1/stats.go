package v1

import (
	"net/http"

	"github.com/designsync-api/services"
	"github.com/designsync-api/utils"
	"github.com/gin-gonic/gin"
)

var statsService = services.NewStatsService()

// GetPlatformStats returns entity counts for the admin dashboard
func GetPlatformStats(c *gin.Context) {
	stats, err := statsService.GetPlatformStats()
	if err != nil {
		utils.RespondInternalError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, stats)
}
