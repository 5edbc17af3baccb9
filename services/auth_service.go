package services

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/designsync-api/dto"
	"github.com/designsync-api/models"
	"github.com/designsync-api/repositories"
	"github.com/designsync-api/utils"
	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TokenTTL is how long an access token stays valid
const TokenTTL = 24 * time.Hour

// MinPasswordLength is the shortest password accepted at sign-up
const MinPasswordLength = 6

var (
	userRepo = repositories.NewUserRepository()
	validate = validator.New()
)

// SignUp creates a new account and returns it with a fresh access token
func SignUp(req dto.SignUpRequest) (*dto.AuthResponse, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return nil, validationErrorf("Email and password are required")
	}
	if !isValidEmail(email) {
		return nil, validationErrorf("Invalid email format")
	}
	if len(req.Password) < MinPasswordLength {
		return nil, validationErrorf("Password must be at least %d characters", MinPasswordLength)
	}

	exists, err := userRepo.ExistsByEmail(email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Nickname)
	if name == "" {
		name = strings.Split(email, "@")[0]
	}

	user := models.User{
		ID:          uuid.NewString(),
		Email:       email,
		Password:    string(hashedPassword),
		Name:        &name,
		Company:     utils.NilIfBlank(req.Company),
		CareerYears: utils.NilIfBlank(req.CareerYears),
		Role:        models.RoleUser,
	}

	// The token is signed before the insert so a signing failure leaves no account behind
	res, err := newAuthResponse(user)
	if err != nil {
		return nil, err
	}

	if _, err := userRepo.Create(user); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return res, nil
}

// SignIn checks credentials and returns an access token
func SignIn(req dto.SignInRequest) (*dto.AuthResponse, error) {
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return nil, validationErrorf("Email and password are required")
	}

	user, err := userRepo.FindByEmail(strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return newAuthResponse(user)
}

// GetUser retrieves a user by ID
func GetUser(id string) (*models.User, error) {
	user, err := userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func newAuthResponse(user models.User) (*dto.AuthResponse, error) {
	token, _, err := GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		User: dto.AuthUser{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.DisplayName(),
		},
		AccessToken: token,
	}, nil
}

// GenerateToken generates a new JWT token for a user
func GenerateToken(userID, email, role string) (string, time.Time, error) {
	secretKey := os.Getenv("JWT_SECRET")
	if secretKey == "" {
		return "", time.Time{}, errors.New("JWT_SECRET not set in environment")
	}

	now := time.Now()
	expiresAt := now.Add(TokenTTL)

	claims := dto.TokenClaims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secretKey))
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

// ValidateToken validates a JWT token and returns claims if valid
func ValidateToken(tokenString string) (*dto.TokenClaims, error) {
	secretKey := os.Getenv("JWT_SECRET")
	if secretKey == "" {
		return nil, errors.New("JWT_SECRET not set in environment")
	}

	token, err := jwt.ParseWithClaims(tokenString, &dto.TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(*dto.TokenClaims)
	if !ok || claims.UserID == "" {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}

func isValidEmail(email string) bool {
	return validate.Var(email, "required,email") == nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique")
}
