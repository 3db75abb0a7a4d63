package handlers

import (
	"net/http"

	"rpchat/internal/models"
)

// Messages serves /api/messages. Listing is always scoped to one location.
func (h *Handlers) Messages(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listMessages(w, r)
	case http.MethodPost:
		h.createMessage(w, r)
	default:
		methodNotAllowed(w)
	}
}

func (h *Handlers) listMessages(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("location_id")
	if raw == "" {
		WriteError(w, "location_id is required", http.StatusBadRequest)
		return
	}

	locationID, ok := parseID(raw)
	if !ok {
		WriteError(w, "Invalid location_id", http.StatusBadRequest)
		return
	}

	messages, err := h.MessageService.ListByLocationID(r.Context(), locationID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, messages, http.StatusOK)
}

func (h *Handlers) createMessage(w http.ResponseWriter, r *http.Request) {
	var req models.CreateMessageRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	message, err := h.MessageService.Create(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, message, http.StatusCreated)
}
