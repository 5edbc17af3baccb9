package services

import (
	"strings"

	"github.com/designsync-api/dto"
	"github.com/designsync-api/models"
	"github.com/designsync-api/repositories"
	"github.com/designsync-api/utils"
)

// QuestionService handles business logic for feedback questions
type QuestionService struct {
	questionRepo *repositories.QuestionRepository
	projectRepo  *repositories.ProjectRepository
}

// NewQuestionService creates a new question service instance
func NewQuestionService() *QuestionService {
	return &QuestionService{
		questionRepo: repositories.NewQuestionRepository(),
		projectRepo:  repositories.NewProjectRepository(),
	}
}

// BuildDesignQuestions orders custom questions before template ones, dropping blanks
func BuildDesignQuestions(custom, selected []string, category string) []dto.CreateQuestionRequest {
	var questions []dto.CreateQuestionRequest

	add := func(texts []string, questionType models.QuestionType) {
		for _, text := range texts {
			text = strings.TrimSpace(text)
			if text == "" {
				continue
			}
			questions = append(questions, dto.CreateQuestionRequest{
				QuestionText:     text,
				QuestionType:     questionType,
				QuestionCategory: category,
			})
		}
	}

	add(custom, models.QuestionTypeCustom)
	add(selected, models.QuestionTypeTemplate)
	return questions
}

// CreateQuestions stores questions for a project, optionally bound to a design.
// display_order follows the slice order.
func (s *QuestionService) CreateQuestions(projectID string, designID *string, reqs []dto.CreateQuestionRequest) ([]models.FeedbackQuestion, error) {
	if len(reqs) == 0 {
		return []models.FeedbackQuestion{}, nil
	}

	questions := make([]models.FeedbackQuestion, 0, len(reqs))
	for i, req := range reqs {
		questionType := req.QuestionType
		if questionType == "" {
			questionType = models.QuestionTypeCustom
		}
		questions = append(questions, models.FeedbackQuestion{
			ProjectID:        projectID,
			DesignID:         designID,
			QuestionText:     req.QuestionText,
			QuestionType:     questionType,
			QuestionCategory: utils.NilIfBlank(req.QuestionCategory),
			DisplayOrder:     i,
		})
	}

	return s.questionRepo.CreateMany(questions)
}

// GetQuestionsByDesign returns a design's questions; lookup failures yield an empty list
func (s *QuestionService) GetQuestionsByDesign(designID string) []models.FeedbackQuestion {
	questions, err := s.questionRepo.FindByDesignID(designID)
	if err != nil {
		utils.Logger.WithError(err).Errorf("Failed to fetch questions for design %s", designID)
		return []models.FeedbackQuestion{}
	}
	return questions
}

// GetQuestionsByProject returns every question of a project in display order
func (s *QuestionService) GetQuestionsByProject(projectID string) ([]models.FeedbackQuestion, error) {
	exists, err := s.projectRepo.Exists(projectID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNotFound
	}

	questions, err := s.questionRepo.FindByProjectID(projectID)
	if err != nil {
		return nil, err
	}
	if questions == nil {
		questions = []models.FeedbackQuestion{}
	}
	return questions, nil
}
