package model

import "time"

// GalleryImage represents a photo in the public gallery
type GalleryImage struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"` // rooms, restaurant, exterior, ...
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}
