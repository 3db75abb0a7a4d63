package handlers

import (
	"net/http"

	"rpchat/internal/models"
)

func (h *Handlers) Posts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		posts, err := h.PostService.List(r.Context())
		if err != nil {
			h.writeServiceError(w, r, err)
			return
		}
		writeSuccess(w, posts, http.StatusOK)

	case http.MethodPost:
		var req models.CreatePostRequest
		if !h.decodeAndValidate(w, r, &req) {
			return
		}

		post, err := h.PostService.Create(r.Context(), req)
		if err != nil {
			h.writeServiceError(w, r, err)
			return
		}
		writeSuccess(w, post, http.StatusCreated)

	default:
		methodNotAllowed(w)
	}
}
