package repositories

import (
	"github.com/designsync-api/database"
	"github.com/designsync-api/models"
)

// StatsRepository runs aggregate queries for the admin dashboard
type StatsRepository struct{}

// NewStatsRepository creates a new stats repository instance
func NewStatsRepository() *StatsRepository {
	return &StatsRepository{}
}

// CountRows returns the number of live rows of a model
func (r *StatsRepository) CountRows(model interface{}) (int64, error) {
	var count int64
	err := database.DB.Model(model).Count(&count).Error
	return count, err
}

// CountProjectsByStatus groups live projects by status
func (r *StatsRepository) CountProjectsByStatus() (map[string]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err := database.DB.Model(&models.Project{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
