package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/casaluna/hotel/api/internal/model"
)

// BookingRepository defines the interface for booking storage
type BookingRepository interface {
	List(ctx context.Context, status *model.BookingStatus) ([]*model.Booking, error)
	GetByID(ctx context.Context, id int64) (*model.Booking, error)
	Create(ctx context.Context, b *model.Booking) (*model.Booking, error)
	Update(ctx context.Context, b *model.Booking) (*model.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status model.BookingStatus) (*model.Booking, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// statusTransitions lists the allowed next states per booking status.
// Terminal states (cancelled, completed) have no outgoing transitions.
var statusTransitions = map[model.BookingStatus][]model.BookingStatus{
	model.BookingStatusPending:   {model.BookingStatusConfirmed, model.BookingStatusCancelled},
	model.BookingStatusConfirmed: {model.BookingStatusCompleted, model.BookingStatusCancelled},
}

func canTransition(from, to model.BookingStatus) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// BookingService handles room reservations
type BookingService struct {
	bookings BookingRepository
	rooms    RoomRepository
}

// NewBookingService creates a new booking service
func NewBookingService(bookings BookingRepository, rooms RoomRepository) *BookingService {
	return &BookingService{bookings: bookings, rooms: rooms}
}

// BookingInput carries the fields needed to create a booking
type BookingInput struct {
	GuestName       string    `json:"guest_name"`
	GuestEmail      string    `json:"guest_email"`
	GuestPhone      string    `json:"guest_phone"`
	RoomID          int64     `json:"room_id"`
	CheckInDate     time.Time `json:"check_in_date"`
	CheckOutDate    time.Time `json:"check_out_date"`
	NumberOfGuests  int       `json:"number_of_guests"`
	SpecialRequests string    `json:"special_requests"`
}

func (in *BookingInput) validate() error {
	if strings.TrimSpace(in.GuestName) == "" {
		return ErrGuestNameRequired
	}
	if !isValidEmail(strings.TrimSpace(strings.ToLower(in.GuestEmail))) {
		return ErrInvalidEmail
	}
	if !in.CheckOutDate.After(in.CheckInDate) {
		return ErrInvalidDateRange
	}
	if in.NumberOfGuests <= 0 {
		return ErrInvalidGuestCount
	}
	return nil
}

// List returns bookings newest first, optionally filtered by status
func (s *BookingService) List(ctx context.Context, status *model.BookingStatus) ([]*model.Booking, error) {
	if status != nil && !model.ValidBookingStatus(*status) {
		return nil, ErrInvalidBookingStatus
	}
	return s.bookings.List(ctx, status)
}

// Get returns a single booking by ID
func (s *BookingService) Get(ctx context.Context, id int64) (*model.Booking, error) {
	booking, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	return booking, nil
}

// Create validates a booking request, prices the stay from the room's
// nightly rate, and stores it in pending status.
func (s *BookingService) Create(ctx context.Context, in BookingInput) (*model.Booking, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if in.CheckInDate.Before(today()) {
		return nil, ErrCheckInPast
	}

	room, err := s.rooms.GetByID(ctx, in.RoomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}
	if !room.IsAvailable {
		return nil, ErrRoomNotAvailable
	}
	if in.NumberOfGuests > room.Capacity {
		return nil, ErrGuestCountExceeds
	}

	booking := &model.Booking{
		GuestName:       strings.TrimSpace(in.GuestName),
		GuestEmail:      strings.TrimSpace(strings.ToLower(in.GuestEmail)),
		GuestPhone:      strings.TrimSpace(in.GuestPhone),
		RoomID:          in.RoomID,
		CheckInDate:     in.CheckInDate,
		CheckOutDate:    in.CheckOutDate,
		NumberOfGuests:  in.NumberOfGuests,
		SpecialRequests: strings.TrimSpace(in.SpecialRequests),
		BookingStatus:   model.BookingStatusPending,
	}
	booking.TotalAmount = float64(booking.Nights()) * room.PricePerNight

	return s.bookings.Create(ctx, booking)
}

// Update rewrites a booking's details. The booking status is changed only
// through UpdateStatus.
func (s *BookingService) Update(ctx context.Context, id int64, in BookingInput) (*model.Booking, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	current, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrBookingNotFound
	}

	room, err := s.rooms.GetByID(ctx, in.RoomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}
	if in.NumberOfGuests > room.Capacity {
		return nil, ErrGuestCountExceeds
	}

	next := &model.Booking{
		ID:              id,
		GuestName:       strings.TrimSpace(in.GuestName),
		GuestEmail:      strings.TrimSpace(strings.ToLower(in.GuestEmail)),
		GuestPhone:      strings.TrimSpace(in.GuestPhone),
		RoomID:          in.RoomID,
		CheckInDate:     in.CheckInDate,
		CheckOutDate:    in.CheckOutDate,
		NumberOfGuests:  in.NumberOfGuests,
		SpecialRequests: strings.TrimSpace(in.SpecialRequests),
		BookingStatus:   current.BookingStatus,
	}
	next.TotalAmount = float64(next.Nights()) * room.PricePerNight

	updated, err := s.bookings.Update(ctx, next)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrBookingNotFound
	}
	return updated, nil
}

// UpdateStatus moves a booking through its lifecycle. Only forward
// transitions are allowed; cancelled and completed are terminal.
func (s *BookingService) UpdateStatus(ctx context.Context, id int64, status model.BookingStatus) (*model.Booking, error) {
	if !model.ValidBookingStatus(status) {
		return nil, ErrInvalidBookingStatus
	}

	current, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrBookingNotFound
	}
	if status == current.BookingStatus {
		return current, nil
	}
	if !canTransition(current.BookingStatus, status) {
		return nil, ErrInvalidStatusTransition
	}

	updated, err := s.bookings.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrBookingNotFound
	}
	return updated, nil
}

// Delete removes a booking
func (s *BookingService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.bookings.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrBookingNotFound
	}
	return nil
}

// ConfirmationQR renders a PNG QR code encoding the booking reference for
// front-desk check-in.
func (s *BookingService) ConfirmationQR(ctx context.Context, id int64, size int) ([]byte, error) {
	booking, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if size <= 0 {
		size = 256
	}

	payload := fmt.Sprintf("casaluna:booking:%d:%s:%s",
		booking.ID,
		booking.CheckInDate.Format("2006-01-02"),
		booking.CheckOutDate.Format("2006-01-02"),
	)
	png, err := qrcode.Encode(payload, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	return png, nil
}

// today returns midnight UTC of the current day
func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
