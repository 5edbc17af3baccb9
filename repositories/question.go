package repositories

import (
	"github.com/designsync-api/database"
	"github.com/designsync-api/models"
)

// QuestionRepository handles database operations for feedback questions
type QuestionRepository struct{}

// NewQuestionRepository creates a new question repository instance
func NewQuestionRepository() *QuestionRepository {
	return &QuestionRepository{}
}

// CreateMany inserts questions in a single statement
func (r *QuestionRepository) CreateMany(questions []models.FeedbackQuestion) ([]models.FeedbackQuestion, error) {
	if len(questions) == 0 {
		return questions, nil
	}
	result := database.DB.Create(&questions)
	return questions, result.Error
}

// FindByDesignID returns a design's questions in display order
func (r *QuestionRepository) FindByDesignID(designID string) ([]models.FeedbackQuestion, error) {
	var questions []models.FeedbackQuestion
	result := database.DB.Where("design_id = ?", designID).Order("display_order asc").Find(&questions)
	return questions, result.Error
}

// FindByProjectID returns a project's questions in display order
func (r *QuestionRepository) FindByProjectID(projectID string) ([]models.FeedbackQuestion, error) {
	var questions []models.FeedbackQuestion
	result := database.DB.Where("project_id = ?", projectID).Order("display_order asc").Find(&questions)
	return questions, result.Error
}
