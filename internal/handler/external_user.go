package handler

import (
	"net/http"

	"github.com/casaluna/hotel/api/internal/model"
	"github.com/casaluna/hotel/api/internal/service"
)

// ExternalUserHandler handles admin management of worker-portal accounts
type ExternalUserHandler struct {
	users *service.ExternalUserService
}

// NewExternalUserHandler creates a new external user handler
func NewExternalUserHandler(users *service.ExternalUserService) *ExternalUserHandler {
	return &ExternalUserHandler{users: users}
}

// List handles GET /v1/external-users
func (h *ExternalUserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteCollection(w, http.StatusOK, users, len(users))
}

// Get handles GET /v1/external-users/{id}
func (h *ExternalUserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	user, err := h.users.Get(r.Context(), id)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, user, nil)
}

// Create handles POST /v1/external-users
func (h *ExternalUserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in service.ExternalUserInput
	if err := DecodeJSON(r, &in); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	user, err := h.users.Create(r.Context(), in)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, user, nil)
}

// SetActive handles PATCH /v1/external-users/{id}/active
func (h *ExternalUserHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req struct {
		IsActive bool `json:"is_active"`
	}
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	user, err := h.users.SetActive(r.Context(), id, req.IsActive)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, user, nil)
}

// Delete handles DELETE /v1/external-users/{id}
func (h *ExternalUserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.users.Delete(r.Context(), id); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteNoContent(w)
}
