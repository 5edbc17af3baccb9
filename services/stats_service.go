package services

import (
	"fmt"

	"github.com/designsync-api/models"
	"github.com/designsync-api/repositories"
)

// PlatformStats summarises the data held by the service
type PlatformStats struct {
	Users            int64            `json:"users"`
	Projects         int64            `json:"projects"`
	ProjectsByStatus map[string]int64 `json:"projects_by_status"`
	Designs          int64            `json:"designs"`
	Images           int64            `json:"images"`
	Feedbacks        int64            `json:"feedbacks"`
	Ratings          int64            `json:"ratings"`
}

// StatsService computes admin dashboard figures
type StatsService struct {
	statsRepo *repositories.StatsRepository
}

// NewStatsService creates a new stats service instance
func NewStatsService() *StatsService {
	return &StatsService{statsRepo: repositories.NewStatsRepository()}
}

// GetPlatformStats counts every entity the API owns
func (s *StatsService) GetPlatformStats() (PlatformStats, error) {
	var stats PlatformStats

	counters := []struct {
		model interface{}
		dest  *int64
	}{
		{&models.User{}, &stats.Users},
		{&models.Project{}, &stats.Projects},
		{&models.Design{}, &stats.Designs},
		{&models.DesignImage{}, &stats.Images},
		{&models.Feedback{}, &stats.Feedbacks},
		{&models.FeedbackRating{}, &stats.Ratings},
	}
	for _, counter := range counters {
		count, err := s.statsRepo.CountRows(counter.model)
		if err != nil {
			return stats, fmt.Errorf("failed to count %T: %w", counter.model, err)
		}
		*counter.dest = count
	}

	byStatus, err := s.statsRepo.CountProjectsByStatus()
	if err != nil {
		return stats, fmt.Errorf("failed to count projects by status: %w", err)
	}
	stats.ProjectsByStatus = byStatus
	return stats, nil
}
