package dto

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims represents our custom JWT claims
type TokenClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// SignUpRequest represents registration data
type SignUpRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	Nickname    string `json:"nickname"`
	Company     string `json:"company"`
	CareerYears string `json:"careerYears"`
}

// SignInRequest represents login credentials
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthUser is the public view of the signed-in user
type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// AuthResponse represents the response after authentication
type AuthResponse struct {
	User        AuthUser `json:"user"`
	AccessToken string   `json:"access_token"`
}
