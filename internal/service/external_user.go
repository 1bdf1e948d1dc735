package service

import (
	"context"
	"strings"

	"github.com/casaluna/hotel/api/internal/model"
)

// ExternalUserService handles admin management of worker-portal accounts
type ExternalUserService struct {
	users ExternalUserRepository
}

// NewExternalUserService creates a new external user service
func NewExternalUserService(users ExternalUserRepository) *ExternalUserService {
	return &ExternalUserService{users: users}
}

// ExternalUserInput carries the fields needed to create a worker account
type ExternalUserInput struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// List returns all worker-portal accounts
func (s *ExternalUserService) List(ctx context.Context) ([]*model.ExternalUser, error) {
	return s.users.List(ctx)
}

// Get returns a single worker account by ID
func (s *ExternalUserService) Get(ctx context.Context, id int64) (*model.ExternalUser, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Create validates and stores a new worker account with a hashed password
func (s *ExternalUserService) Create(ctx context.Context, in ExternalUserInput) (*model.ExternalUser, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if !isValidEmail(email) {
		return nil, ErrInvalidEmail
	}
	if err := validatePassword(in.Password); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.FirstName) == "" {
		return nil, ErrFirstNameRequired
	}
	if strings.TrimSpace(in.LastName) == "" {
		return nil, ErrLastNameRequired
	}

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	return s.users.Create(ctx, &model.ExternalUser{
		Email:     email,
		Password:  hash,
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		IsActive:  true,
	})
}

// SetActive enables or disables a worker account
func (s *ExternalUserService) SetActive(ctx context.Context, id int64, active bool) (*model.ExternalUser, error) {
	user, err := s.users.SetActive(ctx, id, active)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Delete removes a worker account
func (s *ExternalUserService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.users.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrUserNotFound
	}
	return nil
}
