package handlers

import (
	"errors"
	"net/http"

	"rpchat/internal/models"
)

// multipart framing on top of the file itself
const multipartOverhead = 1 << 20

// Avatars accepts a multipart upload in the "image" field and returns the
// public URL of the stored object.
func (h *Handlers) Avatars(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	if !h.AvatarService.Enabled() {
		h.writeServiceError(w, r, models.NewUnavailableError("Avatar uploads are disabled"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize+multipartOverhead)
	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			WriteError(w, "Image is too large", http.StatusBadRequest)
			return
		}
		WriteError(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("image")
	if err != nil {
		WriteError(w, "Missing required fields: image", http.StatusBadRequest)
		return
	}
	defer file.Close()

	avatar, err := h.AvatarService.Upload(r.Context(), header.Filename, file, header.Size)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, avatar, http.StatusCreated)
}
