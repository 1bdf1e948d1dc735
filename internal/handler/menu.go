package handler

import (
	"net/http"

	"github.com/casaluna/hotel/api/internal/model"
	"github.com/casaluna/hotel/api/internal/service"
)

// maxImageUpload caps multipart image uploads at 10 MiB
const maxImageUpload = 10 << 20

// MenuHandler handles menu item and menu image endpoints
type MenuHandler struct {
	menu *service.MenuService
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(menu *service.MenuService) *MenuHandler {
	return &MenuHandler{menu: menu}
}

func categoryFilter(r *http.Request) *model.MenuCategory {
	if raw := r.URL.Query().Get("category"); raw != "" {
		c := model.MenuCategory(raw)
		return &c
	}
	return nil
}

// ListItems handles GET /v1/menu/items with an optional category filter
func (h *MenuHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.menu.ListItems(r.Context(), categoryFilter(r))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteCollection(w, http.StatusOK, items, len(items))
}

// GetItem handles GET /v1/menu/items/{id}
func (h *MenuHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	item, err := h.menu.GetItem(r.Context(), id)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, item, nil)
}

// CreateItem handles POST /v1/menu/items
func (h *MenuHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var in service.MenuItemInput
	if err := DecodeJSON(r, &in); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	item, err := h.menu.CreateItem(r.Context(), in)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, item, nil)
}

// UpdateItem handles PUT /v1/menu/items/{id}
func (h *MenuHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var in service.MenuItemInput
	if err := DecodeJSON(r, &in); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	item, err := h.menu.UpdateItem(r.Context(), id, in)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, item, nil)
}

// DeleteItem handles DELETE /v1/menu/items/{id}
func (h *MenuHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.menu.DeleteItem(r.Context(), id); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteNoContent(w)
}

// ListImages handles GET /v1/menu/images with an optional category filter
func (h *MenuHandler) ListImages(w http.ResponseWriter, r *http.Request) {
	images, err := h.menu.ListImages(r.Context(), categoryFilter(r))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteCollection(w, http.StatusOK, images, len(images))
}

// CreateImage handles POST /v1/menu/images as multipart form data with
// "title", "category", and "image" fields
func (h *MenuHandler) CreateImage(w http.ResponseWriter, r *http.Request) {
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

	img, err := h.menu.CreateImage(r.Context(), service.MenuImageUpload{
		Title:       r.FormValue("title"),
		Category:    model.MenuCategory(r.FormValue("category")),
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

// DeleteImage handles DELETE /v1/menu/images/{id}
func (h *MenuHandler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.menu.DeleteImage(r.Context(), id); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteNoContent(w)
}
