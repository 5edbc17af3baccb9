package database

import (
	"errors"
	"fmt"
	"time"

	"github.com/designsync-api/models"
	"github.com/designsync-api/utils"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DBConnection represents a named database connection used by the copy tool
type DBConnection struct {
	DB    *gorm.DB
	Name  string
	DbURL string
}

// NewDBConnection opens a postgres connection for the copy tool
func NewDBConnection(name, dbURL string) (*DBConnection, error) {
	if dbURL == "" {
		return nil, errors.New("database URL cannot be empty")
	}

	db, err := gorm.Open(postgres.Open(dbURL), &gorm.Config{
		Logger: NewLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", name, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get SQL DB for %s: %w", name, err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	utils.Logger.Infof("✅ Connected to %s database", name)

	return &DBConnection{DB: db, Name: name, DbURL: dbURL}, nil
}

// Migrate migrates the database schema
func (c *DBConnection) Migrate() error {
	utils.Logger.Infof("Migrating %s database schema...", c.Name)
	if err := AutoMigrate(c.DB); err != nil {
		return fmt.Errorf("failed to migrate %s database: %w", c.Name, err)
	}
	utils.Logger.Infof("✅ %s database schema migrated", c.Name)
	return nil
}

// copyTable moves every row of T from source to target in batches
func copyTable[T any](source, target *gorm.DB, label string) (int, error) {
	var rows []T
	if err := source.Unscoped().Find(&rows).Error; err != nil {
		return 0, fmt.Errorf("failed to fetch %s: %w", label, err)
	}
	utils.Logger.Infof("Found %d %s to migrate", len(rows), label)
	if len(rows) == 0 {
		return 0, nil
	}
	if err := target.Omit(clause.Associations).CreateInBatches(&rows, 200).Error; err != nil {
		return 0, fmt.Errorf("failed to migrate %s: %w", label, err)
	}
	return len(rows), nil
}

// MigrateDataBetweenDatabases copies all DesignSync tables from source to target.
// Parents are copied before children so foreign keys resolve.
func MigrateDataBetweenDatabases(source, target *DBConnection) error {
	utils.Logger.Info("Starting data migration from source to target...")

	return target.DB.Transaction(func(tx *gorm.DB) error {
		steps := []func() (int, error){
			func() (int, error) { return copyTable[models.User](source.DB, tx, "users") },
			func() (int, error) { return copyTable[models.Project](source.DB, tx, "projects") },
			func() (int, error) {
				return copyTable[models.ProjectFeedbackType](source.DB, tx, "project feedback types")
			},
			func() (int, error) { return copyTable[models.Design](source.DB, tx, "designs") },
			func() (int, error) { return copyTable[models.DesignImage](source.DB, tx, "design images") },
			func() (int, error) { return copyTable[models.FeedbackQuestion](source.DB, tx, "feedback questions") },
			func() (int, error) { return copyTable[models.Feedback](source.DB, tx, "feedbacks") },
			func() (int, error) { return copyTable[models.FeedbackRating](source.DB, tx, "feedback ratings") },
		}

		total := 0
		for _, step := range steps {
			n, err := step()
			if err != nil {
				return err
			}
			total += n
		}

		utils.Logger.Infof("✅ Data migration completed successfully! (%d rows)", total)
		return nil
	})
}
