package model

import "time"

// UserRole represents the role of a back-office user
type UserRole string

const (
	UserRoleAdmin  UserRole = "admin"  // Full back-office access
	UserRoleWorker UserRole = "worker" // Front-desk portal only
)

// User represents a back-office account
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"` // bcrypt hash, never exposed
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      UserRole  `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// IsAdmin returns true if the user has admin role
func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}

// ExternalUser represents a worker-portal account managed by admins.
// These accounts can only register guests at the front desk.
type ExternalUser struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}
