package repository

import (
	"context"

	"github.com/casaluna/hotel/api/internal/database"
	"github.com/casaluna/hotel/api/internal/model"
)

// BookingRepository handles booking data access.
//
// Bookings are deliberately outside the fallback whitelist: every operation
// here requires the primary pool. A booking written through an eventually
// consistent fallback path would be worse than a failed request.
type BookingRepository struct {
	db *database.DB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(db *database.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// List returns bookings newest first, optionally filtered by status
func (r *BookingRepository) List(ctx context.Context, status *model.BookingStatus) ([]*model.Booking, error) {
	var (
		res *database.Result
		err error
	)
	if status != nil {
		res, err = r.db.Query(ctx, `SELECT * FROM bookings WHERE booking_status = $1 ORDER BY created_at DESC`, *status)
	} else {
		res, err = r.db.Query(ctx, `SELECT * FROM bookings ORDER BY created_at DESC`)
	}
	if err != nil {
		return nil, err
	}

	bookings := make([]*model.Booking, 0, len(res.Rows))
	for _, row := range res.Rows {
		bookings = append(bookings, scanBooking(row))
	}
	return bookings, nil
}

// GetByID retrieves a booking by ID. Returns (nil, nil) when absent.
func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*model.Booking, error) {
	res, err := r.db.Query(ctx, `SELECT * FROM bookings WHERE id = $1 LIMIT 1`, id)
	if err != nil {
		return nil, err
	}
	row := firstRow(res)
	if row == nil {
		return nil, nil
	}
	return scanBooking(row), nil
}

// Create inserts a booking and returns the stored row
func (r *BookingRepository) Create(ctx context.Context, b *model.Booking) (*model.Booking, error) {
	res, err := r.db.Query(ctx,
		`INSERT INTO bookings (guest_name, guest_email, guest_phone, room_id, check_in_date, check_out_date,
		                       number_of_guests, special_requests, booking_status, total_amount)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING *`,
		b.GuestName, b.GuestEmail, b.GuestPhone, b.RoomID, b.CheckInDate, b.CheckOutDate,
		b.NumberOfGuests, b.SpecialRequests, b.BookingStatus, b.TotalAmount,
	)
	if err != nil {
		return nil, err
	}
	row := firstRow(res)
	if row == nil {
		return nil, database.ErrQuery
	}
	return scanBooking(row), nil
}

// Update rewrites the mutable booking fields and returns the stored row
func (r *BookingRepository) Update(ctx context.Context, b *model.Booking) (*model.Booking, error) {
	res, err := r.db.Query(ctx,
		`UPDATE bookings SET guest_name = $1, guest_email = $2, guest_phone = $3, room_id = $4,
		        check_in_date = $5, check_out_date = $6, number_of_guests = $7, special_requests = $8,
		        booking_status = $9, total_amount = $10, updated_at = now()
		 WHERE id = $11 RETURNING *`,
		b.GuestName, b.GuestEmail, b.GuestPhone, b.RoomID, b.CheckInDate, b.CheckOutDate,
		b.NumberOfGuests, b.SpecialRequests, b.BookingStatus, b.TotalAmount, b.ID,
	)
	if err != nil {
		return nil, err
	}
	row := firstRow(res)
	if row == nil {
		return nil, nil
	}
	return scanBooking(row), nil
}

// UpdateStatus changes only the booking status
func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status model.BookingStatus) (*model.Booking, error) {
	res, err := r.db.Query(ctx,
		`UPDATE bookings SET booking_status = $1, updated_at = now() WHERE id = $2 RETURNING *`,
		status, id,
	)
	if err != nil {
		return nil, err
	}
	row := firstRow(res)
	if row == nil {
		return nil, nil
	}
	return scanBooking(row), nil
}

// Delete removes a booking. Returns false when no row matched.
func (r *BookingRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.Query(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return res.RowCount > 0, nil
}

func scanBooking(row database.Row) *model.Booking {
	return &model.Booking{
		ID:              rowInt64(row, "id"),
		GuestName:       rowString(row, "guest_name"),
		GuestEmail:      rowString(row, "guest_email"),
		GuestPhone:      rowString(row, "guest_phone"),
		RoomID:          rowInt64(row, "room_id"),
		CheckInDate:     rowTime(row, "check_in_date"),
		CheckOutDate:    rowTime(row, "check_out_date"),
		NumberOfGuests:  rowInt(row, "number_of_guests"),
		SpecialRequests: rowString(row, "special_requests"),
		BookingStatus:   model.BookingStatus(rowString(row, "booking_status")),
		TotalAmount:     rowFloat(row, "total_amount"),
		CreatedAt:       rowTime(row, "created_at"),
		UpdatedAt:       rowTime(row, "updated_at"),
	}
}
