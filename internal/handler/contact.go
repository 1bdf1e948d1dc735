package handler

import (
	"net/http"

	"github.com/casaluna/hotel/api/internal/model"
	"github.com/casaluna/hotel/api/internal/service"
)

// ContactHandler handles contact form endpoints
type ContactHandler struct {
	contact *service.ContactService
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contact *service.ContactService) *ContactHandler {
	return &ContactHandler{contact: contact}
}

// Create handles POST /v1/contact (public, rate-limited)
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in service.ContactInput
	if err := DecodeJSON(r, &in); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	msg, err := h.contact.Create(r.Context(), in)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, msg, nil)
}

// List handles GET /v1/contact (admin)
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	messages, err := h.contact.List(r.Context())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteCollection(w, http.StatusOK, messages, len(messages))
}

// Get handles GET /v1/contact/{id} (admin)
func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	msg, err := h.contact.Get(r.Context(), id)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, msg, nil)
}

// Delete handles DELETE /v1/contact/{id} (admin)
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.contact.Delete(r.Context(), id); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteNoContent(w)
}
