package repository

import (
	"context"

	"github.com/casaluna/hotel/api/internal/database"
	"github.com/casaluna/hotel/api/internal/model"
)

// ExternalUserRepository handles worker-portal account data access.
// Primary-only: external_users is outside the fallback whitelist.
type ExternalUserRepository struct {
	db *database.DB
}

// NewExternalUserRepository creates a new external user repository
func NewExternalUserRepository(db *database.DB) *ExternalUserRepository {
	return &ExternalUserRepository{db: db}
}

// List returns all worker-portal accounts
func (r *ExternalUserRepository) List(ctx context.Context) ([]*model.ExternalUser, error) {
	res, err := r.db.Query(ctx, `SELECT * FROM external_users ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}

	users := make([]*model.ExternalUser, 0, len(res.Rows))
	for _, row := range res.Rows {
		users = append(users, scanExternalUser(row))
	}
	return users, nil
}

// GetByEmail retrieves a worker account by email. Returns (nil, nil) when absent.
func (r *ExternalUserRepository) GetByEmail(ctx context.Context, email string) (*model.ExternalUser, error) {
	res, err := r.db.Query(ctx, `SELECT * FROM external_users WHERE email = $1 LIMIT 1`, email)
	if err != nil {
		return nil, err
	}
	row := firstRow(res)
	if row == nil {
		return nil, nil
	}
	return scanExternalUser(row), nil
}

// GetByID retrieves a worker account by ID. Returns (nil, nil) when absent.
func (r *ExternalUserRepository) GetByID(ctx context.Context, id int64) (*model.ExternalUser, error) {
	res, err := r.db.Query(ctx, `SELECT * FROM external_users WHERE id = $1 LIMIT 1`, id)
	if err != nil {
		return nil, err
	}
	row := firstRow(res)
	if row == nil {
		return nil, nil
	}
	return scanExternalUser(row), nil
}

// Create inserts a worker account and returns the stored row
func (r *ExternalUserRepository) Create(ctx context.Context, u *model.ExternalUser) (*model.ExternalUser, error) {
	res, err := r.db.Query(ctx,
		`INSERT INTO external_users (email, password, first_name, last_name, is_active)
		 VALUES ($1, $2, $3, $4, $5) RETURNING *`,
		u.Email, u.Password, u.FirstName, u.LastName, u.IsActive,
	)
	if err != nil {
		return nil, err
	}
	row := firstRow(res)
	if row == nil {
		return nil, database.ErrQuery
	}
	return scanExternalUser(row), nil
}

// SetActive toggles a worker account and returns the stored row
func (r *ExternalUserRepository) SetActive(ctx context.Context, id int64, active bool) (*model.ExternalUser, error) {
	res, err := r.db.Query(ctx,
		`UPDATE external_users SET is_active = $1 WHERE id = $2 RETURNING *`,
		active, id,
	)
	if err != nil {
		return nil, err
	}
	row := firstRow(res)
	if row == nil {
		return nil, nil
	}
	return scanExternalUser(row), nil
}

// Delete removes a worker account. Returns false when no row matched.
func (r *ExternalUserRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.Query(ctx, `DELETE FROM external_users WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return res.RowCount > 0, nil
}

func scanExternalUser(row database.Row) *model.ExternalUser {
	return &model.ExternalUser{
		ID:        rowInt64(row, "id"),
		Email:     rowString(row, "email"),
		Password:  rowString(row, "password"),
		FirstName: rowString(row, "first_name"),
		LastName:  rowString(row, "last_name"),
		IsActive:  rowBool(row, "is_active"),
		CreatedAt: rowTime(row, "created_at"),
	}
}
