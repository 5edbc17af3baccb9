package dto

import (
	"mime/multipart"

	"github.com/designsync-api/models"
)

// CreateDesignRequest is the parsed multipart design upload
type CreateDesignRequest struct {
	Name              string
	Images            []*multipart.FileHeader
	CustomQuestions   []string
	SelectedQuestions []string
	QuestionCategory  string
}

// CreateDesignResponse is returned after a design upload
type CreateDesignResponse struct {
	Design models.Design        `json:"design"`
	Images []models.DesignImage `json:"images"`
}

// CreateQuestionRequest describes one feedback question to create
type CreateQuestionRequest struct {
	QuestionText     string              `json:"question_text"`
	QuestionType     models.QuestionType `json:"question_type"`
	QuestionCategory string              `json:"question_category"`
}
