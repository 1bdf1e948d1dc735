package model

import "time"

// Guest represents a front-desk guest registration made through the
// worker portal. RegisteredBy records the external user who checked the
// guest in.
type Guest struct {
	ID           int64     `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	DocumentID   string    `json:"document_id"`
	RoomID       *int64    `json:"room_id"`
	Notes        string    `json:"notes,omitempty"`
	RegisteredBy int64     `json:"registered_by"`
	CreatedAt    time.Time `json:"created_at"`
}
