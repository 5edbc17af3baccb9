package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Platform is the kind of product a project's screens belong to
type Platform string

const (
	PlatformWeb Platform = "web"
	PlatformApp Platform = "app"
)

// Valid reports whether p is a known platform
func (p Platform) Valid() bool {
	return p == PlatformWeb || p == PlatformApp
}

// ProjectStatus tracks whether the owner considers the feedback round done
type ProjectStatus string

const (
	ProjectStatusUnresolved ProjectStatus = "unresolved"
	ProjectStatusResolved   ProjectStatus = "resolved"
)

// Valid reports whether s is a known status
func (s ProjectStatus) Valid() bool {
	return s == ProjectStatusUnresolved || s == ProjectStatusResolved
}

// Project represents a design project registered for review
type Project struct {
	ID          string         `json:"id" gorm:"primaryKey;type:uuid"`
	UserID      string         `json:"user_id" gorm:"type:uuid;not null;index"`
	Name        string         `json:"name" gorm:"not null"`
	Description *string        `json:"description" gorm:"default:null"`
	Platform    Platform       `json:"platform" gorm:"type:varchar(10);not null;index"`
	Category    string         `json:"category" gorm:"not null;index"`
	Status      ProjectStatus  `json:"status" gorm:"type:varchar(20);default:'unresolved';index"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	User          User                  `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	FeedbackTypes []ProjectFeedbackType `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Designs       []Design              `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate assigns a UUID and the default status
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Status == "" {
		p.Status = ProjectStatusUnresolved
	}
	return nil
}

// ProjectFeedbackType is a rating category the owner asked reviewers to score
type ProjectFeedbackType struct {
	ID           string `json:"id" gorm:"primaryKey;type:uuid"`
	ProjectID    string `json:"project_id" gorm:"type:uuid;not null;index"`
	FeedbackType string `json:"feedback_type" gorm:"not null"`
}

// BeforeCreate assigns a UUID when the caller did not set one
func (t *ProjectFeedbackType) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
