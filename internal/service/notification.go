package service

import (
	"context"
	"strings"

	"github.com/casaluna/hotel/api/internal/model"
)

// NotificationRepository defines the interface for notification bar storage
type NotificationRepository interface {
	List(ctx context.Context, activeOnly bool) ([]*model.NotificationBar, error)
	GetByID(ctx context.Context, id int64) (*model.NotificationBar, error)
	Create(ctx context.Context, bar *model.NotificationBar) (*model.NotificationBar, error)
	Update(ctx context.Context, bar *model.NotificationBar) (*model.NotificationBar, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// NotificationService handles site-wide notification bars
type NotificationService struct {
	bars NotificationRepository
}

// NewNotificationService creates a new notification service
func NewNotificationService(bars NotificationRepository) *NotificationService {
	return &NotificationService{bars: bars}
}

// NotificationInput carries the mutable fields of a notification bar
type NotificationInput struct {
	Message  string                 `json:"message"`
	Type     model.NotificationType `json:"type"`
	IsActive *bool                  `json:"is_active"`
}

func (in *NotificationInput) validate() error {
	if strings.TrimSpace(in.Message) == "" {
		return ErrMessageRequired
	}
	if !model.ValidNotificationType(in.Type) {
		return ErrInvalidNotificationType
	}
	return nil
}

// List returns notification bars newest first. With activeOnly set, only
// bars currently shown on the public site are returned.
func (s *NotificationService) List(ctx context.Context, activeOnly bool) ([]*model.NotificationBar, error) {
	return s.bars.List(ctx, activeOnly)
}

// Get returns a single notification bar by ID
func (s *NotificationService) Get(ctx context.Context, id int64) (*model.NotificationBar, error) {
	bar, err := s.bars.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bar == nil {
		return nil, ErrNotificationNotFound
	}
	return bar, nil
}

// Create validates and stores a new notification bar
func (s *NotificationService) Create(ctx context.Context, in NotificationInput) (*model.NotificationBar, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}

	return s.bars.Create(ctx, &model.NotificationBar{
		Message:  strings.TrimSpace(in.Message),
		Type:     in.Type,
		IsActive: active,
	})
}

// Update validates and rewrites an existing notification bar
func (s *NotificationService) Update(ctx context.Context, id int64, in NotificationInput) (*model.NotificationBar, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	current, err := s.bars.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrNotificationNotFound
	}

	active := current.IsActive
	if in.IsActive != nil {
		active = *in.IsActive
	}

	updated, err := s.bars.Update(ctx, &model.NotificationBar{
		ID:       id,
		Message:  strings.TrimSpace(in.Message),
		Type:     in.Type,
		IsActive: active,
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotificationNotFound
	}
	return updated, nil
}

// Delete removes a notification bar
func (s *NotificationService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.bars.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotificationNotFound
	}
	return nil
}
