package handler

import (
	"net/http"

	"github.com/casaluna/hotel/api/internal/model"
	"github.com/casaluna/hotel/api/internal/service"
)

// NotificationHandler handles notification bar endpoints
type NotificationHandler struct {
	notifications *service.NotificationService
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notifications *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

// ListActive handles GET /v1/notification-bars/active (public)
func (h *NotificationHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	bars, err := h.notifications.List(r.Context(), true)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteCollection(w, http.StatusOK, bars, len(bars))
}

// List handles GET /v1/notification-bars (admin)
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	bars, err := h.notifications.List(r.Context(), false)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteCollection(w, http.StatusOK, bars, len(bars))
}

// Create handles POST /v1/notification-bars (admin)
func (h *NotificationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in service.NotificationInput
	if err := DecodeJSON(r, &in); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	bar, err := h.notifications.Create(r.Context(), in)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, bar, nil)
}

// Update handles PUT /v1/notification-bars/{id} (admin)
func (h *NotificationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var in service.NotificationInput
	if err := DecodeJSON(r, &in); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	bar, err := h.notifications.Update(r.Context(), id, in)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, bar, nil)
}

// Delete handles DELETE /v1/notification-bars/{id} (admin)
func (h *NotificationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.notifications.Delete(r.Context(), id); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteNoContent(w)
}
