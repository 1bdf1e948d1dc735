package repository

import (
	"context"

	"github.com/casaluna/hotel/api/internal/database"
	"github.com/casaluna/hotel/api/internal/model"
)

// ContactRepository handles contact message data access
type ContactRepository struct {
	db *database.DB
}

// NewContactRepository creates a new contact repository
func NewContactRepository(db *database.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// List returns contact messages newest first
func (r *ContactRepository) List(ctx context.Context) ([]*model.ContactMessage, error) {
	res, err := r.db.Query(ctx, `SELECT * FROM contact_messages ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}

	messages := make([]*model.ContactMessage, 0, len(res.Rows))
	for _, row := range res.Rows {
		messages = append(messages, scanContactMessage(row))
	}
	return messages, nil
}

// GetByID retrieves a contact message by ID. Primary path only. Returns
// (nil, nil) when absent.
func (r *ContactRepository) GetByID(ctx context.Context, id int64) (*model.ContactMessage, error) {
	res, err := r.db.Query(ctx, `SELECT * FROM contact_messages WHERE id = $1 LIMIT 1`, id)
	if err != nil {
		return nil, err
	}
	row := firstRow(res)
	if row == nil {
		return nil, nil
	}
	return scanContactMessage(row), nil
}

// Create inserts a contact message and returns the stored row
func (r *ContactRepository) Create(ctx context.Context, msg *model.ContactMessage) (*model.ContactMessage, error) {
	res, err := r.db.Query(ctx,
		`INSERT INTO contact_messages (name, email, phone, subject, message)
		 VALUES ($1, $2, $3, $4, $5) RETURNING *`,
		msg.Name, msg.Email, msg.Phone, msg.Subject, msg.Message,
	)
	if err != nil {
		return nil, err
	}
	row := firstRow(res)
	if row == nil {
		return nil, database.ErrQuery
	}
	return scanContactMessage(row), nil
}

// Delete removes a contact message. Returns false when no row matched.
func (r *ContactRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.Query(ctx, `DELETE FROM contact_messages WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return res.RowCount > 0, nil
}

func scanContactMessage(row database.Row) *model.ContactMessage {
	return &model.ContactMessage{
		ID:        rowInt64(row, "id"),
		Name:      rowString(row, "name"),
		Email:     rowString(row, "email"),
		Phone:     rowNullString(row, "phone"),
		Subject:   rowString(row, "subject"),
		Message:   rowString(row, "message"),
		CreatedAt: rowTime(row, "created_at"),
	}
}
