package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/designsync-api/models"
	"github.com/designsync-api/utils"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Models lists every table owned by the API, parents first
func Models() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Project{},
		&models.ProjectFeedbackType{},
		&models.Design{},
		&models.DesignImage{},
		&models.FeedbackQuestion{},
		&models.Feedback{},
		&models.FeedbackRating{},
	}
}

// NewLogger returns a gorm logger that writes through the application logger
func NewLogger() logger.Interface {
	return logger.New(
		utils.Logger,
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
			Colorful:                  false,
		},
	)
}

// Initialize sets up the GORM database connection
func Initialize(dbURL string) error {
	if dbURL == "" {
		return fmt.Errorf("DATABASE_URL is not set")
	}

	db, err := gorm.Open(Dialector(dbURL), &gorm.Config{
		Logger: NewLogger(),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get and configure the underlying SQL DB
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get SQL DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := AutoMigrate(db); err != nil {
		return err
	}

	DB = db
	utils.Logger.Info("✅ Connected to database")

	var version string
	if err := db.Raw(versionQuery(db)).Scan(&version).Error; err == nil {
		utils.Logger.Infof("📊 Database: %s", version)
	}
	return nil
}

// Dialector picks the driver from the URL scheme; sqlite: URLs are for local development
func Dialector(dbURL string) gorm.Dialector {
	if path, ok := strings.CutPrefix(dbURL, "sqlite:"); ok {
		return sqlite.Open(strings.TrimPrefix(path, "//"))
	}
	return postgres.Open(dbURL)
}

// OpenSQLite opens and migrates a SQLite database file
func OpenSQLite(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := AutoMigrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func versionQuery(db *gorm.DB) string {
	if db.Dialector.Name() == "sqlite" {
		return "SELECT sqlite_version()"
	}
	return "SELECT version()"
}

// AutoMigrate creates or updates the schema for all models
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to auto migrate: %w", err)
	}
	return nil
}

// Ping checks that the database answers a trivial query
func Ping(ctx context.Context) error {
	if DB == nil {
		return fmt.Errorf("database is not initialized")
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
