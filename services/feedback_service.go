package services

import (
	"context"
	"math"
	"strings"

	"github.com/designsync-api/dto"
	"github.com/designsync-api/lib/cache"
	"github.com/designsync-api/models"
	"github.com/designsync-api/repositories"
	"github.com/designsync-api/utils"
)

// MaxRating is the highest score a category can receive
const MaxRating = 5

// FeedbackService handles business logic for reviewer feedback
type FeedbackService struct {
	feedbackRepo *repositories.FeedbackRepository
	projectRepo  *repositories.ProjectRepository
}

// NewFeedbackService creates a new feedback service instance
func NewFeedbackService() *FeedbackService {
	return &FeedbackService{
		feedbackRepo: repositories.NewFeedbackRepository(),
		projectRepo:  repositories.NewProjectRepository(),
	}
}

// CreateFeedback stores a reviewer's screen comments and category ratings.
// Blank comments are skipped; ratings are attached to the first stored comment.
func (s *FeedbackService) CreateFeedback(ctx context.Context, userID string, req dto.CreateFeedbackRequest) (dto.CreateFeedbackResponse, error) {
	var response dto.CreateFeedbackResponse

	if strings.TrimSpace(req.ProjectID) == "" {
		return response, validationErrorf("project_id is required")
	}
	if len(req.Feedbacks) == 0 {
		return response, validationErrorf("At least one feedback is required")
	}
	for typeID, rating := range req.Ratings {
		if rating < 0 || rating > MaxRating {
			return response, validationErrorf("rating for %s must be between 0 and %d", typeID, MaxRating)
		}
	}

	exists, err := s.projectRepo.Exists(req.ProjectID)
	if err != nil {
		return response, err
	}
	if !exists {
		return response, ErrNotFound
	}

	var feedbacks []models.Feedback
	for _, input := range req.Feedbacks {
		if strings.TrimSpace(input.FeedbackText) == "" {
			continue
		}
		feedbacks = append(feedbacks, models.Feedback{
			ProjectID:    req.ProjectID,
			UserID:       utils.NilIfBlank(userID),
			DesignID:     utils.NilIfBlank(input.DesignID),
			QuestionID:   utils.NilIfBlank(input.QuestionID),
			ScreenNumber: input.ScreenNumber,
			FeedbackText: input.FeedbackText,
		})
	}

	if len(feedbacks) == 0 {
		return response, validationErrorf("No valid feedbacks were created")
	}

	feedbacks, err = s.feedbackRepo.CreateMany(feedbacks)
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to create feedback")
		return response, err
	}
	mainFeedbackID := feedbacks[0].ID

	for typeID, rating := range req.Ratings {
		if rating <= 0 {
			continue
		}
		err := s.feedbackRepo.CreateRating(models.FeedbackRating{
			FeedbackID:   mainFeedbackID,
			FeedbackType: models.FeedbackTypeLabel(typeID),
			Rating:       rating,
		})
		if err != nil {
			utils.Logger.WithError(err).Errorf("Failed to create feedback rating %s", typeID)
		}
	}

	if err := cache.Default.Delete(ctx, cache.ProjectDetailKey(req.ProjectID)); err != nil {
		utils.Logger.WithError(err).Warn("Failed to invalidate project cache")
	}

	response.FeedbackID = mainFeedbackID
	return response, nil
}

// GetFeedbacksByProject lists a project's feedback, newest first
func (s *FeedbackService) GetFeedbacksByProject(projectID string) ([]dto.FeedbackItem, error) {
	exists, err := s.projectRepo.Exists(projectID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNotFound
	}

	rows, err := s.feedbackRepo.FindByProjectID(projectID)
	if err != nil {
		return nil, err
	}
	return toFeedbackItems(rows), nil
}

// GetFeedbacksByDesignAndQuestion lists the feedback left on one question of one design
func (s *FeedbackService) GetFeedbacksByDesignAndQuestion(designID, questionID string) ([]dto.FeedbackItem, error) {
	rows, err := s.feedbackRepo.FindByDesignAndQuestion(designID, questionID)
	if err != nil {
		return nil, err
	}
	return toFeedbackItems(rows), nil
}

// GetProjectRatings returns rating averages for an existing project
func (s *FeedbackService) GetProjectRatings(projectID string) (map[string]float64, error) {
	exists, err := s.projectRepo.Exists(projectID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNotFound
	}
	return s.GetAverageRatingsByProject(projectID), nil
}

// GetAverageRatingsByProject returns per-category averages rounded to one decimal.
// Errors are logged and yield an empty map.
func (s *FeedbackService) GetAverageRatingsByProject(projectID string) map[string]float64 {
	averages := map[string]float64{}

	rows, err := s.feedbackRepo.AverageRatingsByProject(projectID)
	if err != nil {
		utils.Logger.WithError(err).Errorf("Failed to compute average ratings for project %s", projectID)
		return averages
	}

	for _, row := range rows {
		averages[row.FeedbackType] = RoundToTenth(row.Average)
	}
	return averages
}

// RoundToTenth rounds a rating average to one decimal place
func RoundToTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

func toFeedbackItems(rows []repositories.FeedbackWithUser) []dto.FeedbackItem {
	items := make([]dto.FeedbackItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, dto.FeedbackItem{
			ID:           row.ID,
			ProjectID:    row.ProjectID,
			UserID:       row.UserID,
			DesignID:     row.DesignID,
			QuestionID:   row.QuestionID,
			ScreenNumber: row.ScreenNumber,
			FeedbackText: row.FeedbackText,
			UserName:     row.UserName,
			CreatedAt:    row.CreatedAt,
			UpdatedAt:    row.UpdatedAt,
		})
	}
	return items
}
