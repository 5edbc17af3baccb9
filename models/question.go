package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QuestionType tells whether a question was written by the owner or picked from templates
type QuestionType string

const (
	QuestionTypeCustom   QuestionType = "custom"
	QuestionTypeTemplate QuestionType = "template"
)

// FeedbackQuestion is a prompt reviewers answer for a design
type FeedbackQuestion struct {
	ID               string       `json:"id" gorm:"primaryKey;type:uuid"`
	ProjectID        string       `json:"project_id" gorm:"type:uuid;not null;index"`
	DesignID         *string      `json:"design_id" gorm:"type:uuid;index"`
	QuestionText     string       `json:"question_text" gorm:"not null"`
	QuestionType     QuestionType `json:"question_type" gorm:"type:varchar(20);default:'custom'"`
	QuestionCategory *string      `json:"question_category" gorm:"default:null"`
	DisplayOrder     int          `json:"display_order"`
	CreatedAt        time.Time    `json:"created_at"`
}

// BeforeCreate assigns a UUID and defaults the question type
func (q *FeedbackQuestion) BeforeCreate(tx *gorm.DB) error {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	if q.QuestionType == "" {
		q.QuestionType = QuestionTypeCustom
	}
	return nil
}
