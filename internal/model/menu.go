package model

import "time"

// MenuCategory enumerates restaurant menu sections
type MenuCategory string

const (
	MenuCategoryBreakfast MenuCategory = "breakfast"
	MenuCategoryLunch     MenuCategory = "lunch"
	MenuCategoryDinner    MenuCategory = "dinner"
	MenuCategoryDrinks    MenuCategory = "drinks"
	MenuCategoryDesserts  MenuCategory = "desserts"
)

// ValidMenuCategory reports whether c is a known menu category
func ValidMenuCategory(c MenuCategory) bool {
	switch c {
	case MenuCategoryBreakfast, MenuCategoryLunch, MenuCategoryDinner, MenuCategoryDrinks, MenuCategoryDesserts:
		return true
	}
	return false
}

// MenuItem represents a dish on the restaurant menu.
// Price and PreparationTime are stored as decimal/text in the database and
// are re-coerced to numbers by the service layer before serialization.
type MenuItem struct {
	ID              int64        `json:"id"`
	Name            string       `json:"name"`
	Description     string       `json:"description,omitempty"`
	Price           float64      `json:"price"`
	Category        MenuCategory `json:"category"`
	ImageURL        string       `json:"image_url,omitempty"`
	IsAvailable     bool         `json:"is_available"`
	PreparationTime int          `json:"preparation_time,omitempty"` // minutes
	CreatedAt       time.Time    `json:"created_at"`
}

// MenuImage represents a photo shown on the public menu page
type MenuImage struct {
	ID        int64        `json:"id"`
	Title     string       `json:"title"`
	Category  MenuCategory `json:"category"`
	ImageURL  string       `json:"image_url"`
	CreatedAt time.Time    `json:"created_at"`
}
