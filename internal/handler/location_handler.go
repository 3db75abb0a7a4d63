package handlers

import (
	"net/http"

	"rpchat/internal/models"
)

func (h *Handlers) Locations(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		locations, err := h.LocationService.List(r.Context())
		if err != nil {
			h.writeServiceError(w, r, err)
			return
		}
		writeSuccess(w, locations, http.StatusOK)

	case http.MethodPost:
		var req models.CreateLocationRequest
		if !h.decodeAndValidate(w, r, &req) {
			return
		}

		location, err := h.LocationService.Create(r.Context(), req)
		if err != nil {
			h.writeServiceError(w, r, err)
			return
		}
		writeSuccess(w, location, http.StatusCreated)

	default:
		methodNotAllowed(w)
	}
}
