package repository

import (
	"context"

	"github.com/casaluna/hotel/api/internal/database"
	"github.com/casaluna/hotel/api/internal/model"
)

// NotificationRepository handles notification bar data access
type NotificationRepository struct {
	db *database.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *database.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// List returns notification bars newest first. With activeOnly set, only
// bars currently shown on the public site are returned.
func (r *NotificationRepository) List(ctx context.Context, activeOnly bool) ([]*model.NotificationBar, error) {
	var (
		res *database.Result
		err error
	)
	if activeOnly {
		res, err = r.db.Query(ctx, `SELECT * FROM notification_bars WHERE is_active = true ORDER BY created_at DESC`)
	} else {
		res, err = r.db.Query(ctx, `SELECT * FROM notification_bars ORDER BY created_at DESC`)
	}
	if err != nil {
		return nil, err
	}

	bars := make([]*model.NotificationBar, 0, len(res.Rows))
	for _, row := range res.Rows {
		bars = append(bars, scanNotificationBar(row))
	}
	return bars, nil
}

// GetByID retrieves a notification bar by ID. Primary path only. Returns
// (nil, nil) when absent.
func (r *NotificationRepository) GetByID(ctx context.Context, id int64) (*model.NotificationBar, error) {
	res, err := r.db.Query(ctx, `SELECT * FROM notification_bars WHERE id = $1 LIMIT 1`, id)
	if err != nil {
		return nil, err
	}
	row := firstRow(res)
	if row == nil {
		return nil, nil
	}
	return scanNotificationBar(row), nil
}

// Create inserts a notification bar and returns the stored row
func (r *NotificationRepository) Create(ctx context.Context, bar *model.NotificationBar) (*model.NotificationBar, error) {
	res, err := r.db.Query(ctx,
		`INSERT INTO notification_bars (message, type, is_active) VALUES ($1, $2, $3) RETURNING *`,
		bar.Message, bar.Type, bar.IsActive,
	)
	if err != nil {
		return nil, err
	}
	row := firstRow(res)
	if row == nil {
		return nil, database.ErrQuery
	}
	return scanNotificationBar(row), nil
}

// Update rewrites a notification bar and returns the stored row
func (r *NotificationRepository) Update(ctx context.Context, bar *model.NotificationBar) (*model.NotificationBar, error) {
	res, err := r.db.Query(ctx,
		`UPDATE notification_bars SET message = $1, type = $2, is_active = $3 WHERE id = $4 RETURNING *`,
		bar.Message, bar.Type, bar.IsActive, bar.ID,
	)
	if err != nil {
		return nil, err
	}
	row := firstRow(res)
	if row == nil {
		return nil, nil
	}
	return scanNotificationBar(row), nil
}

// Delete removes a notification bar. Returns false when no row matched.
func (r *NotificationRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.Query(ctx, `DELETE FROM notification_bars WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return res.RowCount > 0, nil
}

func scanNotificationBar(row database.Row) *model.NotificationBar {
	return &model.NotificationBar{
		ID:        rowInt64(row, "id"),
		Message:   rowString(row, "message"),
		Type:      model.NotificationType(rowString(row, "type")),
		IsActive:  rowBool(row, "is_active"),
		CreatedAt: rowTime(row, "created_at"),
	}
}
