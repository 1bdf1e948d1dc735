package handler

import (
	"net/http"

	"github.com/casaluna/hotel/api/internal/model"
	"github.com/casaluna/hotel/api/internal/service"
)

// GalleryHandler handles gallery endpoints
type GalleryHandler struct {
	gallery *service.GalleryService
}

// NewGalleryHandler creates a new gallery handler
func NewGalleryHandler(gallery *service.GalleryService) *GalleryHandler {
	return &GalleryHandler{gallery: gallery}
}

// List handles GET /v1/gallery with an optional category filter
func (h *GalleryHandler) List(w http.ResponseWriter, r *http.Request) {
	var category *string
	if raw := r.URL.Query().Get("category"); raw != "" {
		category = &raw
	}

	images, err := h.gallery.List(r.Context(), category)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteCollection(w, http.StatusOK, images, len(images))
}

// Get handles GET /v1/gallery/{id}
func (h *GalleryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	img, err := h.gallery.Get(r.Context(), id)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, img, nil)
}

// Create handles POST /v1/gallery as multipart form data with "title",
// "description", "category", and "image" fields
func (h *GalleryHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImageUpload); err != nil {
		WriteError(w, model.NewBadRequestError("invalid multipart form"))
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		WriteError(w, MapServiceError(service.ErrImageRequired))
		return
	}
	defer file.Close()

	img, err := h.gallery.Create(r.Context(), service.GalleryUpload{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Category:    r.FormValue("category"),
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Body:        file,
	})
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, img, nil)
}

// Delete handles DELETE /v1/gallery/{id}
func (h *GalleryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.gallery.Delete(r.Context(), id); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteNoContent(w)
}
