package repository

import (
	"context"

	"github.com/casaluna/hotel/api/internal/database"
	"github.com/casaluna/hotel/api/internal/model"
)

// MenuRepository handles menu item and menu image data access
type MenuRepository struct {
	db *database.DB
}

// NewMenuRepository creates a new menu repository
func NewMenuRepository(db *database.DB) *MenuRepository {
	return &MenuRepository{db: db}
}

// ListItems returns menu items, optionally filtered by category
func (r *MenuRepository) ListItems(ctx context.Context, category *model.MenuCategory) ([]*model.MenuItem, error) {
	var (
		res *database.Result
		err error
	)
	if category != nil {
		res, err = r.db.Query(ctx, `SELECT * FROM menu_items WHERE category = $1`, *category)
	} else {
		res, err = r.db.Query(ctx, `SELECT * FROM menu_items`)
	}
	if err != nil {
		return nil, err
	}

	items := make([]*model.MenuItem, 0, len(res.Rows))
	for _, row := range res.Rows {
		items = append(items, scanMenuItem(row))
	}
	return items, nil
}

// GetItemByID retrieves a menu item by ID. Primary path only. Returns
// (nil, nil) when absent.
func (r *MenuRepository) GetItemByID(ctx context.Context, id int64) (*model.MenuItem, error) {
	res, err := r.db.Query(ctx, `SELECT * FROM menu_items WHERE id = $1 LIMIT 1`, id)
	if err != nil {
		return nil, err
	}
	row := firstRow(res)
	if row == nil {
		return nil, nil
	}
	return scanMenuItem(row), nil
}

// CreateItem inserts a menu item and returns the stored row
func (r *MenuRepository) CreateItem(ctx context.Context, item *model.MenuItem) (*model.MenuItem, error) {
	res, err := r.db.Query(ctx,
		`INSERT INTO menu_items (name, description, price, category, image_url, is_available, preparation_time)
		 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING *`,
		item.Name, item.Description, item.Price, item.Category,
		item.ImageURL, item.IsAvailable, item.PreparationTime,
	)
	if err != nil {
		return nil, err
	}
	row := firstRow(res)
	if row == nil {
		return nil, database.ErrQuery
	}
	return scanMenuItem(row), nil
}

// UpdateItem rewrites a menu item and returns the stored row
func (r *MenuRepository) UpdateItem(ctx context.Context, item *model.MenuItem) (*model.MenuItem, error) {
	res, err := r.db.Query(ctx,
		`UPDATE menu_items SET name = $1, description = $2, price = $3, category = $4,
		        image_url = $5, is_available = $6, preparation_time = $7
		 WHERE id = $8 RETURNING *`,
		item.Name, item.Description, item.Price, item.Category,
		item.ImageURL, item.IsAvailable, item.PreparationTime, item.ID,
	)
	if err != nil {
		return nil, err
	}
	row := firstRow(res)
	if row == nil {
		return nil, nil
	}
	return scanMenuItem(row), nil
}

// DeleteItem removes a menu item. Returns false when no row matched.
func (r *MenuRepository) DeleteItem(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.Query(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return res.RowCount > 0, nil
}

// ListImages returns menu images, optionally filtered by category
func (r *MenuRepository) ListImages(ctx context.Context, category *model.MenuCategory) ([]*model.MenuImage, error) {
	var (
		res *database.Result
		err error
	)
	if category != nil {
		res, err = r.db.Query(ctx, `SELECT * FROM menu_images WHERE category = $1`, *category)
	} else {
		res, err = r.db.Query(ctx, `SELECT * FROM menu_images`)
	}
	if err != nil {
		return nil, err
	}

	images := make([]*model.MenuImage, 0, len(res.Rows))
	for _, row := range res.Rows {
		images = append(images, scanMenuImage(row))
	}
	return images, nil
}

// GetImageByID retrieves a menu image by ID. Primary path only. Returns
// (nil, nil) when absent.
func (r *MenuRepository) GetImageByID(ctx context.Context, id int64) (*model.MenuImage, error) {
	res, err := r.db.Query(ctx, `SELECT * FROM menu_images WHERE id = $1 LIMIT 1`, id)
	if err != nil {
		return nil, err
	}
	row := firstRow(res)
	if row == nil {
		return nil, nil
	}
	return scanMenuImage(row), nil
}

// CreateImage inserts a menu image and returns the stored row
func (r *MenuRepository) CreateImage(ctx context.Context, img *model.MenuImage) (*model.MenuImage, error) {
	res, err := r.db.Query(ctx,
		`INSERT INTO menu_images (title, category, image_url) VALUES ($1, $2, $3) RETURNING *`,
		img.Title, img.Category, img.ImageURL,
	)
	if err != nil {
		return nil, err
	}
	row := firstRow(res)
	if row == nil {
		return nil, database.ErrQuery
	}
	return scanMenuImage(row), nil
}

// DeleteImage removes a menu image. Returns false when no row matched.
func (r *MenuRepository) DeleteImage(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.Query(ctx, `DELETE FROM menu_images WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return res.RowCount > 0, nil
}

func scanMenuItem(row database.Row) *model.MenuItem {
	return &model.MenuItem{
		ID:              rowInt64(row, "id"),
		Name:            rowString(row, "name"),
		Description:     rowString(row, "description"),
		Price:           rowFloat(row, "price"),
		Category:        model.MenuCategory(rowString(row, "category")),
		ImageURL:        rowString(row, "image_url"),
		IsAvailable:     rowBool(row, "is_available"),
		PreparationTime: rowInt(row, "preparation_time"),
		CreatedAt:       rowTime(row, "created_at"),
	}
}

func scanMenuImage(row database.Row) *model.MenuImage {
	return &model.MenuImage{
		ID:        rowInt64(row, "id"),
		Title:     rowString(row, "title"),
		Category:  model.MenuCategory(rowString(row, "category")),
		ImageURL:  rowString(row, "image_url"),
		CreatedAt: rowTime(row, "created_at"),
	}
}
