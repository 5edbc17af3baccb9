package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role represents user role types
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User represents a registered DesignSync member
type User struct {
	ID          string         `json:"id" gorm:"primaryKey;type:uuid"`
	Email       string         `json:"email" gorm:"uniqueIndex;not null"`
	Password    string         `json:"-" gorm:"not null"` // Password is not exposed in JSON
	Name        *string        `json:"name" gorm:"default:null"`
	Company     *string        `json:"company,omitempty" gorm:"default:null"`
	CareerYears *string        `json:"career_years,omitempty" gorm:"default:null"`
	Role        Role           `json:"role" gorm:"type:varchar(10);default:'user'"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// BeforeCreate assigns a UUID when the caller did not set one
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// DisplayName returns the user's name, or an empty string when unset
func (u User) DisplayName() string {
	if u.Name == nil {
		return ""
	}
	return *u.Name
}
