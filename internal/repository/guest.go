package repository

import (
	"context"

	"github.com/casaluna/hotel/api/internal/database"
	"github.com/casaluna/hotel/api/internal/model"
)

// GuestRepository handles front-desk guest registrations. All operations
// are primary-only: guest data is outside the fallback whitelist.
type GuestRepository struct {
	db *database.DB
}

// NewGuestRepository creates a new guest repository
func NewGuestRepository(db *database.DB) *GuestRepository {
	return &GuestRepository{db: db}
}

// List returns guest registrations newest first
func (r *GuestRepository) List(ctx context.Context) ([]*model.Guest, error) {
	res, err := r.db.Query(ctx, `SELECT * FROM guests ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}

	guests := make([]*model.Guest, 0, len(res.Rows))
	for _, row := range res.Rows {
		guests = append(guests, scanGuest(row))
	}
	return guests, nil
}

// GetByID retrieves a guest by ID. Returns (nil, nil) when absent.
func (r *GuestRepository) GetByID(ctx context.Context, id int64) (*model.Guest, error) {
	res, err := r.db.Query(ctx, `SELECT * FROM guests WHERE id = $1 LIMIT 1`, id)
	if err != nil {
		return nil, err
	}
	row := firstRow(res)
	if row == nil {
		return nil, nil
	}
	return scanGuest(row), nil
}

// Create inserts a guest registration and returns the stored row
func (r *GuestRepository) Create(ctx context.Context, g *model.Guest) (*model.Guest, error) {
	res, err := r.db.Query(ctx,
		`INSERT INTO guests (first_name, last_name, email, phone, document_id, room_id, notes, registered_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING *`,
		g.FirstName, g.LastName, g.Email, g.Phone, g.DocumentID, g.RoomID, g.Notes, g.RegisteredBy,
	)
	if err != nil {
		return nil, err
	}
	row := firstRow(res)
	if row == nil {
		return nil, database.ErrQuery
	}
	return scanGuest(row), nil
}

// Update rewrites a guest registration and returns the stored row
func (r *GuestRepository) Update(ctx context.Context, g *model.Guest) (*model.Guest, error) {
	res, err := r.db.Query(ctx,
		`UPDATE guests SET first_name = $1, last_name = $2, email = $3, phone = $4,
		        document_id = $5, room_id = $6, notes = $7
		 WHERE id = $8 RETURNING *`,
		g.FirstName, g.LastName, g.Email, g.Phone, g.DocumentID, g.RoomID, g.Notes, g.ID,
	)
	if err != nil {
		return nil, err
	}
	row := firstRow(res)
	if row == nil {
		return nil, nil
	}
	return scanGuest(row), nil
}

// Delete removes a guest registration. Returns false when no row matched.
func (r *GuestRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.Query(ctx, `DELETE FROM guests WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return res.RowCount > 0, nil
}

func scanGuest(row database.Row) *model.Guest {
	var roomID *int64
	if row["room_id"] != nil {
		id := rowInt64(row, "room_id")
		roomID = &id
	}
	return &model.Guest{
		ID:           rowInt64(row, "id"),
		FirstName:    rowString(row, "first_name"),
		LastName:     rowString(row, "last_name"),
		Email:        rowString(row, "email"),
		Phone:        rowString(row, "phone"),
		DocumentID:   rowString(row, "document_id"),
		RoomID:       roomID,
		Notes:        rowString(row, "notes"),
		RegisteredBy: rowInt64(row, "registered_by"),
		CreatedAt:    rowTime(row, "created_at"),
	}
}
