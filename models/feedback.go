package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Feedback is a reviewer's comment on one question of a design
type Feedback struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid"`
	ProjectID    string    `json:"project_id" gorm:"type:uuid;not null;index"`
	UserID       *string   `json:"user_id" gorm:"type:uuid;index"`
	DesignID     *string   `json:"design_id" gorm:"type:uuid;index:idx_feedback_design_question"`
	QuestionID   *string   `json:"question_id" gorm:"type:uuid;index:idx_feedback_design_question"`
	ScreenNumber *int      `json:"screen_number"`
	FeedbackText string    `json:"feedback_text" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	User    *User            `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL"`
	Ratings []FeedbackRating `json:"-" gorm:"foreignKey:FeedbackID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate assigns a UUID when the caller did not set one
func (f *Feedback) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}

// FeedbackRating is a 1-5 score for one feedback category
type FeedbackRating struct {
	ID           string `json:"id" gorm:"primaryKey;type:uuid"`
	FeedbackID   string `json:"feedback_id" gorm:"type:uuid;not null;index"`
	FeedbackType string `json:"feedback_type" gorm:"not null;index"`
	Rating       int    `json:"rating" gorm:"not null"`
}

// BeforeCreate assigns a UUID when the caller did not set one
func (r *FeedbackRating) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// FeedbackTypeLabels maps the category ids sent by clients to stored labels
var FeedbackTypeLabels = map[string]string{
	"user-flow":                "User Flow",
	"ux-writing":               "UX Writing",
	"interaction-design":       "Interaction Design",
	"information-architecture": "Information Architecture",
	"visual-design":            "Visual Design",
	"usability":                "Usability",
}

// FeedbackTypeLabel returns the display label for a category id, or the id itself
func FeedbackTypeLabel(typeID string) string {
	if label, ok := FeedbackTypeLabels[typeID]; ok {
		return label
	}
	return typeID
}
