package repositories

import (
	"time"

	"github.com/designsync-api/database"
	"github.com/designsync-api/models"
	"gorm.io/gorm"
)

// FeedbackWithUser is a feedback row joined with the author's name
type FeedbackWithUser struct {
	ID           string
	ProjectID    string
	UserID       *string
	DesignID     *string
	QuestionID   *string
	ScreenNumber *int
	FeedbackText string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	UserName     *string
}

// RatingAverage is the mean score of one feedback category
type RatingAverage struct {
	FeedbackType string
	Average      float64
}

// FeedbackRepository handles database operations for feedback and ratings
type FeedbackRepository struct{}

// NewFeedbackRepository creates a new feedback repository instance
func NewFeedbackRepository() *FeedbackRepository {
	return &FeedbackRepository{}
}

// CreateMany inserts feedback rows in a single statement, keeping their order
func (r *FeedbackRepository) CreateMany(feedbacks []models.Feedback) ([]models.Feedback, error) {
	result := database.DB.Omit("User", "Ratings").Create(&feedbacks)
	return feedbacks, result.Error
}

// CreateRating inserts one rating row
func (r *FeedbackRepository) CreateRating(rating models.FeedbackRating) error {
	return database.DB.Create(&rating).Error
}

func (r *FeedbackRepository) withUser() *gorm.DB {
	return database.DB.Table("feedbacks").
		Select(`feedbacks.id, feedbacks.project_id, feedbacks.user_id, feedbacks.design_id,
			feedbacks.question_id, feedbacks.screen_number, feedbacks.feedback_text,
			feedbacks.created_at, feedbacks.updated_at, users.name AS user_name`).
		Joins("LEFT JOIN users ON users.id = feedbacks.user_id")
}

// FindByProjectID returns a project's feedback, newest first
func (r *FeedbackRepository) FindByProjectID(projectID string) ([]FeedbackWithUser, error) {
	var rows []FeedbackWithUser
	err := r.withUser().
		Where("feedbacks.project_id = ?", projectID).
		Order("feedbacks.created_at desc").
		Scan(&rows).Error
	return rows, err
}

// FindByDesignAndQuestion returns the feedback for one question of one design, newest first
func (r *FeedbackRepository) FindByDesignAndQuestion(designID, questionID string) ([]FeedbackWithUser, error) {
	var rows []FeedbackWithUser
	err := r.withUser().
		Where("feedbacks.design_id = ? AND feedbacks.question_id = ?", designID, questionID).
		Order("feedbacks.created_at desc").
		Scan(&rows).Error
	return rows, err
}

// AverageRatingsByProject averages every rating left on a project's feedback, per category
func (r *FeedbackRepository) AverageRatingsByProject(projectID string) ([]RatingAverage, error) {
	var rows []RatingAverage
	err := database.DB.Table("feedback_ratings").
		Select("feedback_ratings.feedback_type AS feedback_type, AVG(feedback_ratings.rating) AS average").
		Joins("JOIN feedbacks ON feedbacks.id = feedback_ratings.feedback_id").
		Where("feedbacks.project_id = ?", projectID).
		Group("feedback_ratings.feedback_type").
		Order("feedback_ratings.feedback_type asc").
		Scan(&rows).Error
	return rows, err
}
