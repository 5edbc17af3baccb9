package v1

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/designsync-api/services"
	"github.com/designsync-api/utils"
	"github.com/gin-gonic/gin"
)

const checkTimeout = 5 * time.Second

// HealthCheck handles the health check endpoint
func HealthCheck(c *gin.Context) {
	utils.RespondSuccess(c, http.StatusOK, gin.H{
		"status":    "ok",
		"service":   "designsync-api",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func respondCheck(c *gin.Context, result services.CheckResult) {
	if !result.Success {
		message := result.Error
		if message == "" {
			message = result.Message
		}
		utils.RespondErrorWithData(c, http.StatusInternalServerError, message, result)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, result)
}

// TestDatabase pings the database
func TestDatabase(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), checkTimeout)
	defer cancel()
	respondCheck(c, services.CheckDatabase(ctx))
}

// TestStorage pings the image backend
func TestStorage(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), checkTimeout)
	defer cancel()
	respondCheck(c, services.CheckStorage(ctx))
}

// TestEnv reports which settings are present
func TestEnv(c *gin.Context) {
	utils.RespondSuccess(c, http.StatusOK, services.EnvStatus(os.Getenv))
}

// TestAll runs every connectivity check
func TestAll(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), checkTimeout)
	defer cancel()

	db := services.CheckDatabase(ctx)
	store := services.CheckStorage(ctx)

	checks := gin.H{"database": db, "storage": store}
	if !db.Success || !store.Success {
		utils.RespondErrorWithData(c, http.StatusInternalServerError, "One or more checks failed", checks)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, checks)
}
