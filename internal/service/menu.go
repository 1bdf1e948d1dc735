package service

import (
	"context"
	"io"
	"strings"

	"github.com/casaluna/hotel/api/internal/model"
)

// MenuRepository defines the interface for menu item and image storage
type MenuRepository interface {
	ListItems(ctx context.Context, category *model.MenuCategory) ([]*model.MenuItem, error)
	GetItemByID(ctx context.Context, id int64) (*model.MenuItem, error)
	CreateItem(ctx context.Context, item *model.MenuItem) (*model.MenuItem, error)
	UpdateItem(ctx context.Context, item *model.MenuItem) (*model.MenuItem, error)
	DeleteItem(ctx context.Context, id int64) (bool, error)
	ListImages(ctx context.Context, category *model.MenuCategory) ([]*model.MenuImage, error)
	GetImageByID(ctx context.Context, id int64) (*model.MenuImage, error)
	CreateImage(ctx context.Context, img *model.MenuImage) (*model.MenuImage, error)
	DeleteImage(ctx context.Context, id int64) (bool, error)
}

// AssetStore defines the interface for the image host. Compensate is
// best-effort: it logs failures instead of returning them.
type AssetStore interface {
	Upload(ctx context.Context, folder, filename, contentType string, body io.Reader) (string, error)
	Delete(ctx context.Context, keyOrURL string) error
	Compensate(ctx context.Context, keyOrURL string)
}

// MenuService handles the restaurant menu
type MenuService struct {
	menu   MenuRepository
	assets AssetStore
}

// NewMenuService creates a new menu service
func NewMenuService(menu MenuRepository, assets AssetStore) *MenuService {
	return &MenuService{menu: menu, assets: assets}
}

// MenuItemInput carries the mutable fields of a menu item.
// Price and PreparationTime arrive as JSON numbers; the repository layer
// re-coerces whatever the storage backend returns into these types.
type MenuItemInput struct {
	Name            string             `json:"name"`
	Description     string             `json:"description"`
	Price           float64            `json:"price"`
	Category        model.MenuCategory `json:"category"`
	ImageURL        string             `json:"image_url"`
	IsAvailable     *bool              `json:"is_available"`
	PreparationTime int                `json:"preparation_time"`
}

func (in *MenuItemInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return ErrNameRequired
	}
	if in.Price <= 0 {
		return ErrInvalidPrice
	}
	if !model.ValidMenuCategory(in.Category) {
		return ErrInvalidCategory
	}
	return nil
}

// ListItems returns menu items, optionally filtered by category
func (s *MenuService) ListItems(ctx context.Context, category *model.MenuCategory) ([]*model.MenuItem, error) {
	if category != nil && !model.ValidMenuCategory(*category) {
		return nil, ErrInvalidCategory
	}
	return s.menu.ListItems(ctx, category)
}

// GetItem returns a single menu item by ID
func (s *MenuService) GetItem(ctx context.Context, id int64) (*model.MenuItem, error) {
	item, err := s.menu.GetItemByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrMenuItemNotFound
	}
	return item, nil
}

// CreateItem validates and stores a new menu item
func (s *MenuService) CreateItem(ctx context.Context, in MenuItemInput) (*model.MenuItem, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	available := true
	if in.IsAvailable != nil {
		available = *in.IsAvailable
	}

	return s.menu.CreateItem(ctx, &model.MenuItem{
		Name:            strings.TrimSpace(in.Name),
		Description:     strings.TrimSpace(in.Description),
		Price:           in.Price,
		Category:        in.Category,
		ImageURL:        in.ImageURL,
		IsAvailable:     available,
		PreparationTime: in.PreparationTime,
	})
}

// UpdateItem validates and rewrites an existing menu item
func (s *MenuService) UpdateItem(ctx context.Context, id int64, in MenuItemInput) (*model.MenuItem, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	current, err := s.menu.GetItemByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrMenuItemNotFound
	}

	available := current.IsAvailable
	if in.IsAvailable != nil {
		available = *in.IsAvailable
	}

	updated, err := s.menu.UpdateItem(ctx, &model.MenuItem{
		ID:              id,
		Name:            strings.TrimSpace(in.Name),
		Description:     strings.TrimSpace(in.Description),
		Price:           in.Price,
		Category:        in.Category,
		ImageURL:        in.ImageURL,
		IsAvailable:     available,
		PreparationTime: in.PreparationTime,
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrMenuItemNotFound
	}
	return updated, nil
}

// DeleteItem removes a menu item
func (s *MenuService) DeleteItem(ctx context.Context, id int64) error {
	deleted, err := s.menu.DeleteItem(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrMenuItemNotFound
	}
	return nil
}

// MenuImageUpload carries an image upload for the menu page
type MenuImageUpload struct {
	Title       string
	Category    model.MenuCategory
	Filename    string
	ContentType string
	Body        io.Reader
}

// ListImages returns menu page images, optionally filtered by category
func (s *MenuService) ListImages(ctx context.Context, category *model.MenuCategory) ([]*model.MenuImage, error) {
	if category != nil && !model.ValidMenuCategory(*category) {
		return nil, ErrInvalidCategory
	}
	return s.menu.ListImages(ctx, category)
}

// CreateImage uploads the asset first, then writes the database row. If the
// row insert fails the uploaded asset is deleted as compensation.
func (s *MenuService) CreateImage(ctx context.Context, up MenuImageUpload) (*model.MenuImage, error) {
	if strings.TrimSpace(up.Title) == "" {
		return nil, ErrTitleRequired
	}
	if !model.ValidMenuCategory(up.Category) {
		return nil, ErrInvalidCategory
	}
	if up.Body == nil {
		return nil, ErrImageRequired
	}
	if err := validateImageType(up.ContentType); err != nil {
		return nil, err
	}

	url, err := s.assets.Upload(ctx, "menu", up.Filename, up.ContentType, up.Body)
	if err != nil {
		return nil, err
	}

	img, err := s.menu.CreateImage(ctx, &model.MenuImage{
		Title:    strings.TrimSpace(up.Title),
		Category: up.Category,
		ImageURL: url,
	})
	if err != nil {
		s.assets.Compensate(ctx, url)
		return nil, err
	}
	return img, nil
}

// DeleteImage removes the database row, then best-effort deletes the asset
func (s *MenuService) DeleteImage(ctx context.Context, id int64) error {
	img, err := s.menu.GetImageByID(ctx, id)
	if err != nil {
		return err
	}
	if img == nil {
		return ErrMenuImageNotFound
	}

	deleted, err := s.menu.DeleteImage(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrMenuImageNotFound
	}

	s.assets.Compensate(ctx, img.ImageURL)
	return nil
}

// allowedImageTypes are the upload content types accepted for menu and
// gallery assets
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

func validateImageType(contentType string) error {
	if !allowedImageTypes[strings.ToLower(contentType)] {
		return ErrInvalidImageType
	}
	return nil
}
