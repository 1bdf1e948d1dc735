package service

import (
	"context"
	"io"
	"strings"

	"github.com/casaluna/hotel/api/internal/model"
)

// GalleryRepository defines the interface for gallery image storage
type GalleryRepository interface {
	List(ctx context.Context, category *string) ([]*model.GalleryImage, error)
	GetByID(ctx context.Context, id int64) (*model.GalleryImage, error)
	Create(ctx context.Context, img *model.GalleryImage) (*model.GalleryImage, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// GalleryService handles the public photo gallery
type GalleryService struct {
	gallery GalleryRepository
	assets  AssetStore
}

// NewGalleryService creates a new gallery service
func NewGalleryService(gallery GalleryRepository, assets AssetStore) *GalleryService {
	return &GalleryService{gallery: gallery, assets: assets}
}

// GalleryUpload carries an image upload for the gallery
type GalleryUpload struct {
	Title       string
	Description string
	Category    string
	Filename    string
	ContentType string
	Body        io.Reader
}

// List returns gallery images, optionally filtered by category
func (s *GalleryService) List(ctx context.Context, category *string) ([]*model.GalleryImage, error) {
	return s.gallery.List(ctx, category)
}

// Get returns a single gallery image by ID
func (s *GalleryService) Get(ctx context.Context, id int64) (*model.GalleryImage, error) {
	img, err := s.gallery.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if img == nil {
		return nil, ErrGalleryImageNotFound
	}
	return img, nil
}

// Create uploads the asset first, then writes the database row. If the row
// insert fails the uploaded asset is deleted as compensation.
func (s *GalleryService) Create(ctx context.Context, up GalleryUpload) (*model.GalleryImage, error) {
	if strings.TrimSpace(up.Title) == "" {
		return nil, ErrTitleRequired
	}
	if up.Body == nil {
		return nil, ErrImageRequired
	}
	if err := validateImageType(up.ContentType); err != nil {
		return nil, err
	}

	url, err := s.assets.Upload(ctx, "gallery", up.Filename, up.ContentType, up.Body)
	if err != nil {
		return nil, err
	}

	img, err := s.gallery.Create(ctx, &model.GalleryImage{
		Title:       strings.TrimSpace(up.Title),
		Description: strings.TrimSpace(up.Description),
		Category:    strings.TrimSpace(up.Category),
		ImageURL:    url,
	})
	if err != nil {
		s.assets.Compensate(ctx, url)
		return nil, err
	}
	return img, nil
}

// Delete removes the database row, then best-effort deletes the asset
func (s *GalleryService) Delete(ctx context.Context, id int64) error {
	img, err := s.gallery.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if img == nil {
		return ErrGalleryImageNotFound
	}

	deleted, err := s.gallery.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrGalleryImageNotFound
	}

	s.assets.Compensate(ctx, img.ImageURL)
	return nil
}
