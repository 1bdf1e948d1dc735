package model

import "time"

// RoomType enumerates the room categories offered by the hotel
type RoomType string

const (
	RoomTypeStandard RoomType = "standard"
	RoomTypeDeluxe   RoomType = "deluxe"
	RoomTypeSuite    RoomType = "suite"
	RoomTypeFamily   RoomType = "family"
)

// ValidRoomType reports whether t is a known room type
func ValidRoomType(t RoomType) bool {
	switch t {
	case RoomTypeStandard, RoomTypeDeluxe, RoomTypeSuite, RoomTypeFamily:
		return true
	}
	return false
}

// Room represents a bookable hotel room
type Room struct {
	ID            int64     `json:"id"`
	RoomNumber    int       `json:"room_number"`
	RoomType      RoomType  `json:"room_type"`
	Description   string    `json:"description"`
	PricePerNight float64   `json:"price_per_night"`
	Capacity      int       `json:"capacity"`
	Amenities     []string  `json:"amenities"`
	ImageURL      string    `json:"image_url,omitempty"`
	IsAvailable   bool      `json:"is_available"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
