package handler

import (
	"net/http"

	"github.com/gosm1/pureperfumes/internal/storage"

	"github.com/rs/zerolog"
)

// maxImageSize bounds multipart uploads at 10 MiB.
const maxImageSize = 10 << 20

// ImageHandler handles product image uploads for the admin surface.
type ImageHandler struct {
	images storage.ImageStore
	logger zerolog.Logger
}

// NewImageHandler creates a new image handler.
func NewImageHandler(images storage.ImageStore, logger zerolog.Logger) *ImageHandler {
	return &ImageHandler{
		images: images,
		logger: logger.With().Str("handler", "image").Logger(),
	}
}

// uploadResponse carries the public URL of a stored image.
type uploadResponse struct {
	URL string `json:"url"`
}

// Upload handles POST /api/admin/images requests with a multipart "image"
// part.
func (h *ImageHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form", h.logger)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "image file is required", h.logger)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	url, err := h.images.Upload(r.Context(), header.Filename, contentType, file)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to upload image", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, uploadResponse{URL: url})
}

// Delete handles DELETE /api/admin/images?url= requests, keyed by the public
// URL a previous upload returned.
func (h *ImageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	url := r.URL.Query().Get("url")
	if url == "" {
		writeError(w, http.StatusBadRequest, "image URL is required", h.logger)
		return
	}

	if err := h.images.Delete(r.Context(), url); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to delete image", h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
