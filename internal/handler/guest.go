package handler

import (
	"net/http"

	"github.com/casaluna/hotel/api/internal/middleware"
	"github.com/casaluna/hotel/api/internal/model"
	"github.com/casaluna/hotel/api/internal/service"
)

// GuestHandler handles front-desk guest registration endpoints
type GuestHandler struct {
	guests *service.GuestService
}

// NewGuestHandler creates a new guest handler
func NewGuestHandler(guests *service.GuestService) *GuestHandler {
	return &GuestHandler{guests: guests}
}

// List handles GET /v1/guests
func (h *GuestHandler) List(w http.ResponseWriter, r *http.Request) {
	guests, err := h.guests.List(r.Context())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteCollection(w, http.StatusOK, guests, len(guests))
}

// Get handles GET /v1/guests/{id}
func (h *GuestHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	guest, err := h.guests.Get(r.Context(), id)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, guest, nil)
}

// Create handles POST /v1/guests. The registering account comes from the
// authenticated token, never the request body.
func (h *GuestHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in service.GuestInput
	if err := DecodeJSON(r, &in); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	registeredBy := middleware.GetUserID(r.Context())
	guest, err := h.guests.Create(r.Context(), registeredBy, in)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, guest, nil)
}

// Update handles PUT /v1/guests/{id}
func (h *GuestHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var in service.GuestInput
	if err := DecodeJSON(r, &in); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	guest, err := h.guests.Update(r.Context(), id, in)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, guest, nil)
}

// Delete handles DELETE /v1/guests/{id}
func (h *GuestHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.guests.Delete(r.Context(), id); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteNoContent(w)
}
