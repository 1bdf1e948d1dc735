package service

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/casaluna/hotel/api/internal/model"
	"github.com/casaluna/hotel/api/pkg/jwt"
)

const (
	// bcrypt cost factor (10-14 recommended for production)
	bcryptCost = 12

	// Password constraints
	minPasswordLength = 8
	maxPasswordLength = 128
)

// UserRepository defines the interface for back-office user storage
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	Create(ctx context.Context, user *model.User) (*model.User, error)
}

// ExternalUserRepository defines the interface for worker-portal accounts
type ExternalUserRepository interface {
	List(ctx context.Context) ([]*model.ExternalUser, error)
	GetByEmail(ctx context.Context, email string) (*model.ExternalUser, error)
	GetByID(ctx context.Context, id int64) (*model.ExternalUser, error)
	Create(ctx context.Context, u *model.ExternalUser) (*model.ExternalUser, error)
	SetActive(ctx context.Context, id int64, active bool) (*model.ExternalUser, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// AuthService handles authentication for back-office and worker-portal users
type AuthService struct {
	userRepo     UserRepository
	externalRepo ExternalUserRepository
	tokens       *jwt.Service
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo UserRepository, externalRepo ExternalUserRepository, tokens *jwt.Service) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		externalRepo: externalRepo,
		tokens:       tokens,
	}
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string
	Password string
}

// LoginResult represents a successful login
type LoginResult struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

// Login authenticates a back-office user and issues an access token
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if !isValidEmail(email) {
		return nil, ErrInvalidCredentials
	}
	if req.Password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || !checkPassword(req.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, User: user}, nil
}

// ExternalLoginResult represents a successful worker-portal login
type ExternalLoginResult struct {
	Token string              `json:"token"`
	User  *model.ExternalUser `json:"user"`
}

// ExternalLogin authenticates a worker-portal account. Disabled accounts
// are rejected even with valid credentials.
func (s *AuthService) ExternalLogin(ctx context.Context, req LoginRequest) (*ExternalLoginResult, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if !isValidEmail(email) || req.Password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.externalRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || !checkPassword(req.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrAccountDisabled
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Email, "external")
	if err != nil {
		return nil, err
	}

	return &ExternalLoginResult{Token: token, User: user}, nil
}

// Me returns the back-office user for an authenticated user ID
func (s *AuthService) Me(ctx context.Context, userID int64) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Helper functions

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func checkPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func validatePassword(password string) error {
	if password == "" {
		return ErrPasswordRequired
	}
	if len(password) < minPasswordLength {
		return ErrPasswordTooShort
	}
	if len(password) > maxPasswordLength {
		return ErrPasswordTooLong
	}
	return nil
}

func isValidEmail(email string) bool {
	// Basic email validation
	if email == "" || len(email) > 254 {
		return false
	}
	atIndex := strings.Index(email, "@")
	if atIndex < 1 {
		return false
	}
	dotIndex := strings.LastIndex(email, ".")
	if dotIndex < atIndex+2 {
		return false
	}
	if dotIndex >= len(email)-1 {
		return false
	}
	return true
}
