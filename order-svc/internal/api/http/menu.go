package httpapi

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"foodie-hub/order-svc/internal/domain"
)

const maxImageSize = 10 << 20

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	var item domain.MenuItem
	if err := decodeJSON(w, r, &item); err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.Menu.Create(r.Context(), &item); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) getMenuItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	item, err := h.Menu.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var item domain.MenuItem
	if err := decodeJSON(w, r, &item); err != nil {
		h.writeError(w, r, err)
		return
	}
	item.ID = id
	if err := h.Menu.Update(r.Context(), &item); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.Menu.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Menu item deleted successfully")
}

func (h *Handler) toggleMenuItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	item, err := h.Menu.ToggleAvailability(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) searchMenuByCategory(w http.ResponseWriter, r *http.Request) {
	items, err := h.Menu.SearchByCategory(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if items == nil {
		items = []domain.MenuItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) uploadMenuItemImage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		h.badRequest(w, r, "file too large")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		h.badRequest(w, r, "image file is required")
		return
	}
	defer file.Close()

	if !allowedImageTypes[header.Header.Get("Content-Type")] {
		h.badRequest(w, r, "invalid file type, only JPEG, PNG, GIF and WebP are allowed")
		return
	}

	// The item must exist before anything is written to disk.
	if _, err := h.Menu.Get(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}

	uploadDir := h.UploadDir
	if uploadDir == "" {
		uploadDir = "./uploads"
	}
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		h.writeError(w, r, err)
		return
	}

	filename := "menu_" + strconv.Itoa(id) + "_" + filepath.Base(header.Filename)
	dst, err := os.Create(filepath.Join(uploadDir, filename))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	_, err = io.Copy(dst, file)
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(dst.Name())
		h.writeError(w, r, err)
		return
	}

	imageURL := "/uploads/" + filename
	if err := h.Menu.UpdateImage(r.Context(), id, imageURL); err != nil {
		os.Remove(dst.Name())
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message":   "Image uploaded successfully",
		"image_url": imageURL,
	})
}
