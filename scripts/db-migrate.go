package main

import (
	"os"

	"github.com/designsync-api/config"
	"github.com/designsync-api/database"
	"github.com/designsync-api/utils"
)

// Copies every DesignSync table from SOURCE_DATABASE_URL into TARGET_DATABASE_URL.
func main() {
	config.LoadEnv()
	utils.Logger.Info("Starting database migration...")

	sourceDBURL := os.Getenv("SOURCE_DATABASE_URL")
	targetDBURL := os.Getenv("TARGET_DATABASE_URL")
	if sourceDBURL == "" || targetDBURL == "" {
		utils.Logger.Fatal("SOURCE_DATABASE_URL and TARGET_DATABASE_URL must both be set")
	}

	sourceDB, err := database.NewDBConnection("source", sourceDBURL)
	if err != nil {
		utils.Logger.Fatalf("Failed to connect to source database: %v", err)
	}

	targetDB, err := database.NewDBConnection("target", targetDBURL)
	if err != nil {
		utils.Logger.Fatalf("Failed to connect to target database: %v", err)
	}

	// Ensure target database schema is migrated
	if err := targetDB.Migrate(); err != nil {
		utils.Logger.Fatalf("Failed to migrate target database schema: %v", err)
	}

	if err := database.MigrateDataBetweenDatabases(sourceDB, targetDB); err != nil {
		utils.Logger.Fatalf("Data migration failed: %v", err)
	}

	utils.Logger.Info("Database migration completed successfully!")
}
