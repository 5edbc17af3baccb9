package dto

import "time"

// ScreenFeedbackInput is a comment on one question of one design
type ScreenFeedbackInput struct {
	DesignID     string `json:"design_id"`
	QuestionID   string `json:"question_id"`
	ScreenNumber *int   `json:"screen_number"`
	FeedbackText string `json:"feedback_text"`
}

// CreateFeedbackRequest is a reviewer's full submission for a project
type CreateFeedbackRequest struct {
	ProjectID string                `json:"project_id"`
	Ratings   map[string]int        `json:"ratings"`
	Feedbacks []ScreenFeedbackInput `json:"feedbacks"`
}

// CreateFeedbackResponse identifies the feedback the ratings were attached to
type CreateFeedbackResponse struct {
	FeedbackID string `json:"feedback_id"`
}

// FeedbackItem is a feedback row joined with its author's name
type FeedbackItem struct {
	ID           string    `json:"id"`
	ProjectID    string    `json:"project_id,omitempty"`
	UserID       *string   `json:"user_id"`
	DesignID     *string   `json:"design_id,omitempty"`
	QuestionID   *string   `json:"question_id,omitempty"`
	ScreenNumber *int      `json:"screen_number"`
	FeedbackText string    `json:"feedback_text"`
	UserName     *string   `json:"user_name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
}
