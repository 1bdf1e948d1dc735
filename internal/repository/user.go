package repository

import (
	"context"

	"github.com/casaluna/hotel/api/internal/database"
	"github.com/casaluna/hotel/api/internal/model"
)

// UserRepository handles back-office user data access
type UserRepository struct {
	db *database.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByEmail retrieves a user by email. Returns (nil, nil) when absent.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	res, err := r.db.Query(ctx, `SELECT * FROM users WHERE email = $1 LIMIT 1`, email)
	if err != nil {
		return nil, err
	}
	row := firstRow(res)
	if row == nil {
		return nil, nil
	}
	return scanUser(row), nil
}

// GetByID retrieves a user by ID. Returns (nil, nil) when absent.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	res, err := r.db.Query(ctx, `SELECT * FROM users WHERE id = $1 LIMIT 1`, id)
	if err != nil {
		return nil, err
	}
	row := firstRow(res)
	if row == nil {
		return nil, nil
	}
	return scanUser(row), nil
}

// Create inserts a new user. Primary path only: the fallback whitelist has
// no users insert shape.
func (r *UserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	res, err := r.db.Query(ctx,
		`INSERT INTO users (email, password, first_name, last_name, role)
		 VALUES ($1, $2, $3, $4, $5) RETURNING *`,
		user.Email, user.Password, user.FirstName, user.LastName, user.Role,
	)
	if err != nil {
		return nil, err
	}
	row := firstRow(res)
	if row == nil {
		return nil, database.ErrQuery
	}
	return scanUser(row), nil
}

func scanUser(row database.Row) *model.User {
	return &model.User{
		ID:        rowInt64(row, "id"),
		Email:     rowString(row, "email"),
		Password:  rowString(row, "password"),
		FirstName: rowString(row, "first_name"),
		LastName:  rowString(row, "last_name"),
		Role:      model.UserRole(rowString(row, "role")),
		CreatedAt: rowTime(row, "created_at"),
	}
}
