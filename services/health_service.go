package services

import (
	"context"
	"fmt"

	"github.com/designsync-api/database"
	"github.com/designsync-api/lib/storage"
)

// CheckResult is the outcome of one connectivity check
type CheckResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Backend string `json:"backend,omitempty"`
	Error   string `json:"error,omitempty"`
}

// CheckDatabase pings the relational store
func CheckDatabase(ctx context.Context) CheckResult {
	if err := database.Ping(ctx); err != nil {
		return CheckResult{Message: "Database connection failed", Error: err.Error()}
	}
	return CheckResult{Success: true, Message: "Database connection successful"}
}

// CheckStorage pings the configured image backend
func CheckStorage(ctx context.Context) CheckResult {
	if storage.Store == nil {
		return CheckResult{Message: "Image storage connection failed", Error: storage.ErrNotConfigured.Error()}
	}
	name := storage.Store.Name()
	if err := storage.Store.Ping(ctx); err != nil {
		return CheckResult{Message: "Image storage connection failed", Backend: name, Error: err.Error()}
	}
	return CheckResult{Success: true, Message: fmt.Sprintf("%s connection successful", name), Backend: name}
}

// EnvStatus reports which settings are present without exposing their values
func EnvStatus(getenv func(string) string) map[string]bool {
	keys := []string{
		"DATABASE_URL",
		"JWT_SECRET",
		"IMAGE_STORAGE",
		"S3_BUCKET",
		"S3_REGION",
		"CLOUDINARY_CLOUD_NAME",
		"CLOUDINARY_API_KEY",
		"CLOUDINARY_API_SECRET",
		"REDIS_URL",
		"CORS_ORIGIN",
	}
	status := make(map[string]bool, len(keys))
	for _, key := range keys {
		status[key] = getenv(key) != ""
	}
	return status
}
