package services

import (
	"errors"
	"testing"

	"github.com/designsync-api/database"
	"github.com/designsync-api/dto"
	"github.com/designsync-api/models"
)

func TestSignUpAndSignIn(t *testing.T) {
	setupTestDB(t)
	t.Setenv("JWT_SECRET", "test-secret")

	res, err := SignUp(dto.SignUpRequest{Email: "jane@example.com", Password: "secret1", Nickname: "Jane"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.User.Name != "Jane" {
		t.Errorf("expected name Jane, got %q", res.User.Name)
	}
	if res.AccessToken == "" {
		t.Fatal("expected an access token")
	}

	claims, err := ValidateToken(res.AccessToken)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.UserID != res.User.ID || claims.Role != "user" {
		t.Errorf("unexpected claims: %+v", claims)
	}

	signedIn, err := SignIn(dto.SignInRequest{Email: "JANE@example.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if signedIn.User.ID != res.User.ID {
		t.Errorf("expected user %s, got %s", res.User.ID, signedIn.User.ID)
	}
}

func TestSignUpDefaultsNameToEmailLocalPart(t *testing.T) {
	setupTestDB(t)
	t.Setenv("JWT_SECRET", "test-secret")

	res, err := SignUp(dto.SignUpRequest{Email: "kim.designer@example.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.User.Name != "kim.designer" {
		t.Errorf("expected name kim.designer, got %q", res.User.Name)
	}
}

func TestSignUpValidation(t *testing.T) {
	setupTestDB(t)
	t.Setenv("JWT_SECRET", "test-secret")

	tests := []struct {
		name    string
		req     dto.SignUpRequest
		message string
	}{
		{"missing password", dto.SignUpRequest{Email: "a@example.com"}, "Email and password are required"},
		{"missing email", dto.SignUpRequest{Password: "secret1"}, "Email and password are required"},
		{"bad email", dto.SignUpRequest{Email: "not-an-email", Password: "secret1"}, "Invalid email format"},
		{"short password", dto.SignUpRequest{Email: "a@example.com", Password: "12345"}, "Password must be at least 6 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SignUp(tt.req)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if err.Error() != tt.message {
				t.Errorf("expected %q, got %q", tt.message, err.Error())
			}
		})
	}
}

func TestSignUpDuplicateEmail(t *testing.T) {
	setupTestDB(t)
	t.Setenv("JWT_SECRET", "test-secret")

	if _, err := SignUp(dto.SignUpRequest{Email: "dup@example.com", Password: "secret1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := SignUp(dto.SignUpRequest{Email: "Dup@example.com", Password: "secret2"})
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestSignInRejectsBadCredentials(t *testing.T) {
	setupTestDB(t)
	t.Setenv("JWT_SECRET", "test-secret")

	if _, err := SignUp(dto.SignUpRequest{Email: "bob@example.com", Password: "secret1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := SignIn(dto.SignInRequest{Email: "bob@example.com", Password: "wrong-pass"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, err := SignIn(dto.SignInRequest{Email: "nobody@example.com", Password: "secret1"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestValidateTokenRejectsForeignSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	token, _, err := GenerateToken("user-1", "a@example.com", "user")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Setenv("JWT_SECRET", "second-secret")
	if _, err := ValidateToken(token); err == nil {
		t.Error("expected token signed with another secret to be rejected")
	}
}

func TestGetUserNotFound(t *testing.T) {
	setupTestDB(t)

	if _, err := GetUser("00000000-0000-0000-0000-000000000000"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSignUpWithoutSecretCreatesNoUser(t *testing.T) {
	setupTestDB(t)
	t.Setenv("JWT_SECRET", "")
	req := dto.SignUpRequest{Email: "late@example.com", Password: "secret1"}

	if _, err := SignUp(req); err == nil {
		t.Fatal("expected sign-up to fail without a signing secret")
	}

	var count int64
	database.DB.Model(&models.User{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no user to be stored, got %d", count)
	}

	t.Setenv("JWT_SECRET", "test-secret")
	res, err := SignUp(req)
	if err != nil {
		t.Fatalf("expected retry to succeed, got %v", err)
	}

	stored, err := GetUser(res.User.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.Email != "late@example.com" {
		t.Errorf("expected stored email late@example.com, got %s", stored.Email)
	}
}
