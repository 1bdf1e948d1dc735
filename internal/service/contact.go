package service

import (
	"context"
	"strings"

	"github.com/casaluna/hotel/api/internal/model"
)

// ContactRepository defines the interface for contact message storage
type ContactRepository interface {
	List(ctx context.Context) ([]*model.ContactMessage, error)
	GetByID(ctx context.Context, id int64) (*model.ContactMessage, error)
	Create(ctx context.Context, msg *model.ContactMessage) (*model.ContactMessage, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// ContactService handles the public contact form
type ContactService struct {
	messages ContactRepository
}

// NewContactService creates a new contact service
func NewContactService(messages ContactRepository) *ContactService {
	return &ContactService{messages: messages}
}

// ContactInput carries a contact form submission
type ContactInput struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone"`
	Subject string  `json:"subject"`
	Message string  `json:"message"`
}

func (in *ContactInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return ErrNameRequired
	}
	if !isValidEmail(strings.TrimSpace(strings.ToLower(in.Email))) {
		return ErrInvalidEmail
	}
	if strings.TrimSpace(in.Subject) == "" {
		return ErrSubjectRequired
	}
	if strings.TrimSpace(in.Message) == "" {
		return ErrMessageBodyRequired
	}
	return nil
}

// List returns contact messages newest first
func (s *ContactService) List(ctx context.Context) ([]*model.ContactMessage, error) {
	return s.messages.List(ctx)
}

// Get returns a single contact message by ID
func (s *ContactService) Get(ctx context.Context, id int64) (*model.ContactMessage, error) {
	msg, err := s.messages.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if msg == nil {
		return nil, ErrContactMessageNotFound
	}
	return msg, nil
}

// Create validates and stores a contact form submission
func (s *ContactService) Create(ctx context.Context, in ContactInput) (*model.ContactMessage, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	var phone *string
	if in.Phone != nil {
		if p := strings.TrimSpace(*in.Phone); p != "" {
			phone = &p
		}
	}

	return s.messages.Create(ctx, &model.ContactMessage{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.TrimSpace(strings.ToLower(in.Email)),
		Phone:   phone,
		Subject: strings.TrimSpace(in.Subject),
		Message: strings.TrimSpace(in.Message),
	})
}

// Delete removes a contact message
func (s *ContactService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.messages.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrContactMessageNotFound
	}
	return nil
}
