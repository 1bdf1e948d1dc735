package repository

import (
	"context"

	"github.com/casaluna/hotel/api/internal/database"
	"github.com/casaluna/hotel/api/internal/model"
)

// RoomRepository handles room data access
type RoomRepository struct {
	db *database.DB
}

// NewRoomRepository creates a new room repository
func NewRoomRepository(db *database.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

// List returns rooms sorted by room number, optionally filtered by an exact
// room number.
func (r *RoomRepository) List(ctx context.Context, roomNumber *int) ([]*model.Room, error) {
	var (
		res *database.Result
		err error
	)
	if roomNumber != nil {
		res, err = r.db.Query(ctx, `SELECT * FROM rooms WHERE room_number = $1 ORDER BY room_number ASC`, *roomNumber)
	} else {
		res, err = r.db.Query(ctx, `SELECT * FROM rooms ORDER BY room_number ASC`)
	}
	if err != nil {
		return nil, err
	}

	rooms := make([]*model.Room, 0, len(res.Rows))
	for _, row := range res.Rows {
		rooms = append(rooms, scanRoom(row))
	}
	return rooms, nil
}

// GetByID retrieves a room by ID. Primary path only: the fallback whitelist
// has no room-by-id shape. Returns (nil, nil) when absent.
func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*model.Room, error) {
	res, err := r.db.Query(ctx, `SELECT * FROM rooms WHERE id = $1 LIMIT 1`, id)
	if err != nil {
		return nil, err
	}
	row := firstRow(res)
	if row == nil {
		return nil, nil
	}
	return scanRoom(row), nil
}

// Create inserts a room and returns the stored row
func (r *RoomRepository) Create(ctx context.Context, room *model.Room) (*model.Room, error) {
	res, err := r.db.Query(ctx,
		`INSERT INTO rooms (room_number, room_type, description, price_per_night, capacity, amenities, image_url, is_available)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING *`,
		room.RoomNumber, room.RoomType, room.Description, room.PricePerNight,
		room.Capacity, room.Amenities, room.ImageURL, room.IsAvailable,
	)
	if err != nil {
		return nil, err
	}
	row := firstRow(res)
	if row == nil {
		return nil, database.ErrQuery
	}
	return scanRoom(row), nil
}

// Update rewrites a room. Primary path only; the mutation fallback is a
// logged no-op.
func (r *RoomRepository) Update(ctx context.Context, room *model.Room) (*model.Room, error) {
	res, err := r.db.Query(ctx,
		`UPDATE rooms SET room_number = $1, room_type = $2, description = $3, price_per_night = $4,
		        capacity = $5, amenities = $6, image_url = $7, is_available = $8, updated_at = now()
		 WHERE id = $9 RETURNING *`,
		room.RoomNumber, room.RoomType, room.Description, room.PricePerNight,
		room.Capacity, room.Amenities, room.ImageURL, room.IsAvailable, room.ID,
	)
	if err != nil {
		return nil, err
	}
	row := firstRow(res)
	if row == nil {
		return nil, nil
	}
	return scanRoom(row), nil
}

// Delete removes a room. Returns false when no row matched.
func (r *RoomRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.Query(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return res.RowCount > 0, nil
}

func scanRoom(row database.Row) *model.Room {
	return &model.Room{
		ID:            rowInt64(row, "id"),
		RoomNumber:    rowInt(row, "room_number"),
		RoomType:      model.RoomType(rowString(row, "room_type")),
		Description:   rowString(row, "description"),
		PricePerNight: rowFloat(row, "price_per_night"),
		Capacity:      rowInt(row, "capacity"),
		Amenities:     rowStringSlice(row, "amenities"),
		ImageURL:      rowString(row, "image_url"),
		IsAvailable:   rowBool(row, "is_available"),
		CreatedAt:     rowTime(row, "created_at"),
		UpdatedAt:     rowTime(row, "updated_at"),
	}
}
