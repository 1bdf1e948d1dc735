package handler

import (
	"net/http"

	"github.com/casaluna/hotel/api/internal/database"
)

// HealthHandler reports process and backend health
type HealthHandler struct {
	db *database.DB
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *database.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health handles GET /health. The primary pool being down does not fail
// the check: the API still serves reads through the fallback path.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	primary := "ok"
	if err := h.db.Ping(r.Context()); err != nil {
		primary = "unavailable"
	}

	WriteJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"primary": primary,
	})
}
