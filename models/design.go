package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Design groups the uploaded screens of one flow inside a project
type Design struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	ProjectID string    `json:"project_id" gorm:"type:uuid;not null;index"`
	Name      string    `json:"name" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Images []DesignImage `json:"images,omitempty" gorm:"foreignKey:DesignID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate assigns a UUID when the caller did not set one
func (d *Design) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}

// DesignImage is one uploaded screen of a design
type DesignImage struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid"`
	DesignID     string    `json:"design_id" gorm:"type:uuid;not null;index"`
	ImageURL     string    `json:"image_url" gorm:"not null"`
	PublicID     string    `json:"public_id"`
	ScreenNumber int       `json:"screen_number"`
	DisplayOrder int       `json:"display_order" gorm:"index"`
	CreatedAt    time.Time `json:"created_at"`
}

// BeforeCreate assigns a UUID when the caller did not set one
func (i *DesignImage) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
