package dto

import (
	"time"

	"github.com/designsync-api/models"
)

// ProjectFilter represents filter criteria for the public project list
type ProjectFilter struct {
	Platform string
	Category string
	Status   string
	UserID   string
	Search   string
	Page     int
	PageSize int
}

// CreateProjectRequest represents the request payload for registering a project
type CreateProjectRequest struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Platform      string   `json:"platform" binding:"omitempty,platform"`
	Category      string   `json:"category"`
	FeedbackTypes []string `json:"feedback_types"`
}

// UpdateProjectRequest represents the request payload for editing a project
type UpdateProjectRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	Platform    string  `json:"platform" binding:"required,platform"`
	Category    string  `json:"category" binding:"required"`
}

// UpdateProjectStatusRequest toggles a project between resolved and unresolved
type UpdateProjectStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=resolved unresolved"`
}

// ProjectListItem is a project row with its thumbnail
type ProjectListItem struct {
	models.Project
	ThumbnailURL *string `json:"thumbnail_url,omitempty"`
}

// ProjectListResponse represents paginated project list response
type ProjectListResponse struct {
	Projects   []ProjectListItem `json:"projects"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
}

// ProjectDetailResponse is the full project tree shown on the overview page
type ProjectDetailResponse struct {
	ID             string               `json:"id"`
	UserID         string               `json:"user_id"`
	Name           string               `json:"name"`
	Description    *string              `json:"description"`
	Platform       models.Platform      `json:"platform"`
	Category       string               `json:"category"`
	Status         models.ProjectStatus `json:"status"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
	FeedbackTypes  []string             `json:"feedback_types"`
	AverageRatings map[string]float64   `json:"average_ratings"`
	Designs        []DesignDetail       `json:"designs"`
}

// DesignDetail is a design with its screens and questions
type DesignDetail struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Images    []DesignImageItem `json:"images"`
	Questions []QuestionDetail  `json:"questions"`
}

// DesignImageItem is the image subset shown in project details
type DesignImageItem struct {
	ID           string `json:"id"`
	ImageURL     string `json:"image_url"`
	ScreenNumber int    `json:"screen_number"`
	DisplayOrder int    `json:"display_order"`
}

// QuestionDetail is a question with the feedback left on it
type QuestionDetail struct {
	ID               string              `json:"id"`
	QuestionText     string              `json:"question_text"`
	QuestionType     models.QuestionType `json:"question_type"`
	QuestionCategory *string             `json:"question_category"`
	DisplayOrder     int                 `json:"display_order"`
	Feedbacks        []FeedbackItem      `json:"feedbacks"`
}
