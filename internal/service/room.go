package service

import (
	"context"
	"strings"

	"github.com/casaluna/hotel/api/internal/model"
)

const (
	maxRoomCapacity = 10
)

// RoomRepository defines the interface for room storage
type RoomRepository interface {
	List(ctx context.Context, roomNumber *int) ([]*model.Room, error)
	GetByID(ctx context.Context, id int64) (*model.Room, error)
	Create(ctx context.Context, room *model.Room) (*model.Room, error)
	Update(ctx context.Context, room *model.Room) (*model.Room, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// RoomService handles room management
type RoomService struct {
	rooms RoomRepository
}

// NewRoomService creates a new room service
func NewRoomService(rooms RoomRepository) *RoomService {
	return &RoomService{rooms: rooms}
}

// RoomInput carries the mutable fields of a room
type RoomInput struct {
	RoomNumber    int            `json:"room_number"`
	RoomType      model.RoomType `json:"room_type"`
	Description   string         `json:"description"`
	PricePerNight float64        `json:"price_per_night"`
	Capacity      int            `json:"capacity"`
	Amenities     []string       `json:"amenities"`
	ImageURL      string         `json:"image_url"`
	IsAvailable   *bool          `json:"is_available"`
}

func (in *RoomInput) validate() error {
	if in.RoomNumber <= 0 {
		return ErrInvalidRoomNumber
	}
	if !model.ValidRoomType(in.RoomType) {
		return ErrInvalidRoomType
	}
	if strings.TrimSpace(in.Description) == "" {
		return ErrDescriptionRequired
	}
	if in.PricePerNight <= 0 {
		return ErrInvalidPrice
	}
	if in.Capacity < 1 || in.Capacity > maxRoomCapacity {
		return ErrInvalidCapacity
	}
	return nil
}

// List returns rooms sorted by room number, optionally filtered by an exact
// room number.
func (s *RoomService) List(ctx context.Context, roomNumber *int) ([]*model.Room, error) {
	return s.rooms.List(ctx, roomNumber)
}

// Get returns a single room by ID
func (s *RoomService) Get(ctx context.Context, id int64) (*model.Room, error) {
	room, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}
	return room, nil
}

// Create validates and stores a new room
func (s *RoomService) Create(ctx context.Context, in RoomInput) (*model.Room, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	existing, err := s.rooms.List(ctx, &in.RoomNumber)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, ErrRoomNumberExists
	}

	available := true
	if in.IsAvailable != nil {
		available = *in.IsAvailable
	}
	amenities := in.Amenities
	if amenities == nil {
		amenities = []string{}
	}

	return s.rooms.Create(ctx, &model.Room{
		RoomNumber:    in.RoomNumber,
		RoomType:      in.RoomType,
		Description:   strings.TrimSpace(in.Description),
		PricePerNight: in.PricePerNight,
		Capacity:      in.Capacity,
		Amenities:     amenities,
		ImageURL:      in.ImageURL,
		IsAvailable:   available,
	})
}

// Update validates and rewrites an existing room
func (s *RoomService) Update(ctx context.Context, id int64, in RoomInput) (*model.Room, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	current, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrRoomNotFound
	}

	if in.RoomNumber != current.RoomNumber {
		existing, err := s.rooms.List(ctx, &in.RoomNumber)
		if err != nil {
			return nil, err
		}
		if len(existing) > 0 {
			return nil, ErrRoomNumberExists
		}
	}

	available := current.IsAvailable
	if in.IsAvailable != nil {
		available = *in.IsAvailable
	}
	amenities := in.Amenities
	if amenities == nil {
		amenities = current.Amenities
	}

	updated, err := s.rooms.Update(ctx, &model.Room{
		ID:            id,
		RoomNumber:    in.RoomNumber,
		RoomType:      in.RoomType,
		Description:   strings.TrimSpace(in.Description),
		PricePerNight: in.PricePerNight,
		Capacity:      in.Capacity,
		Amenities:     amenities,
		ImageURL:      in.ImageURL,
		IsAvailable:   available,
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrRoomNotFound
	}
	return updated, nil
}

// Delete removes a room
func (s *RoomService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.rooms.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrRoomNotFound
	}
	return nil
}
