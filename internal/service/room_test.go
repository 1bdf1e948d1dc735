package service

import (
	"context"
	"errors"
	"testing"

	"github.com/casaluna/hotel/api/internal/model"
)

func setupRoomService(t *testing.T) (*RoomService, *mockRoomRepo) {
	t.Helper()
	rooms := newMockRoomRepo()
	return NewRoomService(rooms), rooms
}

func validRoomInput(number int) RoomInput {
	return RoomInput{
		RoomNumber:    number,
		RoomType:      model.RoomTypeDeluxe,
		Description:   "Sea view, king bed",
		PricePerNight: 220,
		Capacity:      2,
		Amenities:     []string{"wifi", "minibar"},
	}
}

func TestRoomService_Create_Success(t *testing.T) {
	svc, _ := setupRoomService(t)
	ctx := context.Background()

	room, err := svc.Create(ctx, validRoomInput(201))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if room.RoomNumber != 201 {
		t.Errorf("expected room number 201, got %d", room.RoomNumber)
	}
	if !room.IsAvailable {
		t.Error("expected new room to default to available")
	}
}

func TestRoomService_Create_Validation(t *testing.T) {
	svc, _ := setupRoomService(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*RoomInput)
		wantErr error
	}{
		{"zero room number", func(in *RoomInput) { in.RoomNumber = 0 }, ErrInvalidRoomNumber},
		{"bad room type", func(in *RoomInput) { in.RoomType = "penthouse" }, ErrInvalidRoomType},
		{"empty description", func(in *RoomInput) { in.Description = "  " }, ErrDescriptionRequired},
		{"zero price", func(in *RoomInput) { in.PricePerNight = 0 }, ErrInvalidPrice},
		{"negative price", func(in *RoomInput) { in.PricePerNight = -10 }, ErrInvalidPrice},
		{"zero capacity", func(in *RoomInput) { in.Capacity = 0 }, ErrInvalidCapacity},
		{"huge capacity", func(in *RoomInput) { in.Capacity = 11 }, ErrInvalidCapacity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validRoomInput(201)
			tt.mutate(&in)
			if _, err := svc.Create(ctx, in); !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestRoomService_Create_DuplicateNumber(t *testing.T) {
	svc, _ := setupRoomService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, validRoomInput(201)); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}
	if _, err := svc.Create(ctx, validRoomInput(201)); !errors.Is(err, ErrRoomNumberExists) {
		t.Errorf("expected ErrRoomNumberExists, got %v", err)
	}
}

func TestRoomService_Update(t *testing.T) {
	svc, _ := setupRoomService(t)
	ctx := context.Background()

	room, err := svc.Create(ctx, validRoomInput(201))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	in := validRoomInput(201)
	in.PricePerNight = 260
	updated, err := svc.Update(ctx, room.ID, in)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.PricePerNight != 260 {
		t.Errorf("expected price 260, got %v", updated.PricePerNight)
	}

	if _, err := svc.Update(ctx, 9999, in); !errors.Is(err, ErrRoomNotFound) {
		t.Errorf("expected ErrRoomNotFound, got %v", err)
	}
}

func TestRoomService_Update_NumberCollision(t *testing.T) {
	svc, _ := setupRoomService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, validRoomInput(201)); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	second, err := svc.Create(ctx, validRoomInput(202))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Renumbering onto an occupied number must fail; keeping the own
	// number must not.
	in := validRoomInput(201)
	if _, err := svc.Update(ctx, second.ID, in); !errors.Is(err, ErrRoomNumberExists) {
		t.Errorf("expected ErrRoomNumberExists, got %v", err)
	}
	if _, err := svc.Update(ctx, second.ID, validRoomInput(202)); err != nil {
		t.Errorf("Update keeping own number failed: %v", err)
	}
}

func TestRoomService_GetAndDelete(t *testing.T) {
	svc, _ := setupRoomService(t)
	ctx := context.Background()

	room, err := svc.Create(ctx, validRoomInput(201))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := svc.Get(ctx, room.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.ID != room.ID {
		t.Errorf("expected room %d, got %d", room.ID, got.ID)
	}

	if err := svc.Delete(ctx, room.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := svc.Get(ctx, room.ID); !errors.Is(err, ErrRoomNotFound) {
		t.Errorf("expected ErrRoomNotFound after delete, got %v", err)
	}
}
