package repository

import (
	"context"

	"github.com/casaluna/hotel/api/internal/database"
	"github.com/casaluna/hotel/api/internal/model"
)

// GalleryRepository handles gallery image data access
type GalleryRepository struct {
	db *database.DB
}

// NewGalleryRepository creates a new gallery repository
func NewGalleryRepository(db *database.DB) *GalleryRepository {
	return &GalleryRepository{db: db}
}

// List returns gallery images, optionally filtered by category
func (r *GalleryRepository) List(ctx context.Context, category *string) ([]*model.GalleryImage, error) {
	var (
		res *database.Result
		err error
	)
	if category != nil {
		res, err = r.db.Query(ctx, `SELECT * FROM gallery_images WHERE category = $1`, *category)
	} else {
		res, err = r.db.Query(ctx, `SELECT * FROM gallery_images`)
	}
	if err != nil {
		return nil, err
	}

	images := make([]*model.GalleryImage, 0, len(res.Rows))
	for _, row := range res.Rows {
		images = append(images, scanGalleryImage(row))
	}
	return images, nil
}

// GetByID retrieves a gallery image by ID. Primary path only. Returns
// (nil, nil) when absent.
func (r *GalleryRepository) GetByID(ctx context.Context, id int64) (*model.GalleryImage, error) {
	res, err := r.db.Query(ctx, `SELECT * FROM gallery_images WHERE id = $1 LIMIT 1`, id)
	if err != nil {
		return nil, err
	}
	row := firstRow(res)
	if row == nil {
		return nil, nil
	}
	return scanGalleryImage(row), nil
}

// Create inserts a gallery image and returns the stored row
func (r *GalleryRepository) Create(ctx context.Context, img *model.GalleryImage) (*model.GalleryImage, error) {
	res, err := r.db.Query(ctx,
		`INSERT INTO gallery_images (title, description, category, image_url)
		 VALUES ($1, $2, $3, $4) RETURNING *`,
		img.Title, img.Description, img.Category, img.ImageURL,
	)
	if err != nil {
		return nil, err
	}
	row := firstRow(res)
	if row == nil {
		return nil, database.ErrQuery
	}
	return scanGalleryImage(row), nil
}

// Delete removes a gallery image. Returns false when no row matched.
func (r *GalleryRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.Query(ctx, `DELETE FROM gallery_images WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return res.RowCount > 0, nil
}

func scanGalleryImage(row database.Row) *model.GalleryImage {
	return &model.GalleryImage{
		ID:          rowInt64(row, "id"),
		Title:       rowString(row, "title"),
		Description: rowString(row, "description"),
		Category:    rowString(row, "category"),
		ImageURL:    rowString(row, "image_url"),
		CreatedAt:   rowTime(row, "created_at"),
	}
}
