package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/casaluna/hotel/api/internal/model"
	"github.com/casaluna/hotel/api/internal/service"
)

// BookingHandler handles booking endpoints
type BookingHandler struct {
	bookings *service.BookingService
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookings *service.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

// BookingRequest represents the booking create/update request body.
// Dates are "2006-01-02" strings.
type BookingRequest struct {
	GuestName       string `json:"guest_name"`
	GuestEmail      string `json:"guest_email"`
	GuestPhone      string `json:"guest_phone"`
	RoomID          int64  `json:"room_id"`
	CheckInDate     string `json:"check_in_date"`
	CheckOutDate    string `json:"check_out_date"`
	NumberOfGuests  int    `json:"number_of_guests"`
	SpecialRequests string `json:"special_requests"`
}

func (req *BookingRequest) toInput() (service.BookingInput, *model.ProblemDetails) {
	checkIn, err := time.Parse("2006-01-02", req.CheckInDate)
	if err != nil {
		return service.BookingInput{}, model.NewValidationError([]model.FieldError{
			{Field: "check_in_date", Message: "must be a YYYY-MM-DD date"},
		})
	}
	checkOut, err := time.Parse("2006-01-02", req.CheckOutDate)
	if err != nil {
		return service.BookingInput{}, model.NewValidationError([]model.FieldError{
			{Field: "check_out_date", Message: "must be a YYYY-MM-DD date"},
		})
	}

	return service.BookingInput{
		GuestName:       req.GuestName,
		GuestEmail:      req.GuestEmail,
		GuestPhone:      req.GuestPhone,
		RoomID:          req.RoomID,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		NumberOfGuests:  req.NumberOfGuests,
		SpecialRequests: req.SpecialRequests,
	}, nil
}

// List handles GET /v1/bookings with an optional status filter
func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	var status *model.BookingStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		s := model.BookingStatus(raw)
		status = &s
	}

	bookings, err := h.bookings.List(r.Context(), status)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteCollection(w, http.StatusOK, bookings, len(bookings))
}

// Get handles GET /v1/bookings/{id}
func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	booking, err := h.bookings.Get(r.Context(), id)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, booking, nil)
}

// Create handles POST /v1/bookings
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req BookingRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	in, problem := req.toInput()
	if problem != nil {
		WriteError(w, problem)
		return
	}

	booking, err := h.bookings.Create(r.Context(), in)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, booking, map[string]string{
		"qr": "/v1/bookings/" + strconv.FormatInt(booking.ID, 10) + "/qr",
	})
}

// Update handles PUT /v1/bookings/{id}
func (h *BookingHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req BookingRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	in, problem := req.toInput()
	if problem != nil {
		WriteError(w, problem)
		return
	}

	booking, err := h.bookings.Update(r.Context(), id, in)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, booking, nil)
}

// UpdateStatus handles PATCH /v1/bookings/{id}/status
func (h *BookingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req struct {
		Status model.BookingStatus `json:"status"`
	}
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	booking, err := h.bookings.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, booking, nil)
}

// Delete handles DELETE /v1/bookings/{id}
func (h *BookingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.bookings.Delete(r.Context(), id); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteNoContent(w)
}

// QR handles GET /v1/bookings/{id}/qr, returning a PNG
func (h *BookingHandler) QR(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	size := 0
	if raw := r.URL.Query().Get("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 64 || n > 1024 {
			WriteError(w, model.NewBadRequestError("size must be an integer between 64 and 1024"))
			return
		}
		size = n
	}

	png, err := h.bookings.ConfirmationQR(r.Context(), id, size)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "private, max-age=3600")
	_, _ = w.Write(png)
}
