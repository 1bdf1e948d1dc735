package service

import (
	"context"
	"strings"

	"github.com/casaluna/hotel/api/internal/model"
)

// GuestRepository defines the interface for front-desk guest storage
type GuestRepository interface {
	List(ctx context.Context) ([]*model.Guest, error)
	GetByID(ctx context.Context, id int64) (*model.Guest, error)
	Create(ctx context.Context, g *model.Guest) (*model.Guest, error)
	Update(ctx context.Context, g *model.Guest) (*model.Guest, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// GuestService handles front-desk guest registration through the worker
// portal
type GuestService struct {
	guests GuestRepository
	rooms  RoomRepository
}

// NewGuestService creates a new guest service
func NewGuestService(guests GuestRepository, rooms RoomRepository) *GuestService {
	return &GuestService{guests: guests, rooms: rooms}
}

// GuestInput carries a front-desk guest registration
type GuestInput struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	DocumentID string `json:"document_id"`
	RoomID     *int64 `json:"room_id"`
	Notes      string `json:"notes"`
}

func (in *GuestInput) validate() error {
	if strings.TrimSpace(in.FirstName) == "" {
		return ErrFirstNameRequired
	}
	if strings.TrimSpace(in.LastName) == "" {
		return ErrLastNameRequired
	}
	if strings.TrimSpace(in.DocumentID) == "" {
		return ErrDocumentIDRequired
	}
	if email := strings.TrimSpace(in.Email); email != "" && !isValidEmail(strings.ToLower(email)) {
		return ErrInvalidEmail
	}
	return nil
}

// List returns registered guests newest first
func (s *GuestService) List(ctx context.Context) ([]*model.Guest, error) {
	return s.guests.List(ctx)
}

// Get returns a single guest by ID
func (s *GuestService) Get(ctx context.Context, id int64) (*model.Guest, error) {
	guest, err := s.guests.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if guest == nil {
		return nil, ErrGuestNotFound
	}
	return guest, nil
}

// Create validates and registers a guest. registeredBy is the ID of the
// worker-portal account performing the check-in.
func (s *GuestService) Create(ctx context.Context, registeredBy int64, in GuestInput) (*model.Guest, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if err := s.checkRoom(ctx, in.RoomID); err != nil {
		return nil, err
	}

	return s.guests.Create(ctx, &model.Guest{
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Email:        strings.TrimSpace(strings.ToLower(in.Email)),
		Phone:        strings.TrimSpace(in.Phone),
		DocumentID:   strings.TrimSpace(in.DocumentID),
		RoomID:       in.RoomID,
		Notes:        strings.TrimSpace(in.Notes),
		RegisteredBy: registeredBy,
	})
}

// Update validates and rewrites a guest registration
func (s *GuestService) Update(ctx context.Context, id int64, in GuestInput) (*model.Guest, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	current, err := s.guests.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrGuestNotFound
	}
	if err := s.checkRoom(ctx, in.RoomID); err != nil {
		return nil, err
	}

	updated, err := s.guests.Update(ctx, &model.Guest{
		ID:           id,
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Email:        strings.TrimSpace(strings.ToLower(in.Email)),
		Phone:        strings.TrimSpace(in.Phone),
		DocumentID:   strings.TrimSpace(in.DocumentID),
		RoomID:       in.RoomID,
		Notes:        strings.TrimSpace(in.Notes),
		RegisteredBy: current.RegisteredBy,
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrGuestNotFound
	}
	return updated, nil
}

// Delete removes a guest registration
func (s *GuestService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.guests.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrGuestNotFound
	}
	return nil
}

func (s *GuestService) checkRoom(ctx context.Context, roomID *int64) error {
	if roomID == nil {
		return nil
	}
	room, err := s.rooms.GetByID(ctx, *roomID)
	if err != nil {
		return err
	}
	if room == nil {
		return ErrGuestRoomNotFound
	}
	return nil
}
