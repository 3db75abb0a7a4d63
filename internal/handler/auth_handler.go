package handlers

import (
	"encoding/json"
	"net/http"

	"rpchat/internal/models"
)

const SessionTokenHeader = "X-Session-Token"

// Auth serves /api/auth: GET resolves the session token header, POST
// registers or logs in depending on the action field.
func (h *Handlers) Auth(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.resolveSession(w, r)
	case http.MethodPost:
		h.authAction(w, r)
	default:
		methodNotAllowed(w)
	}
}

func (h *Handlers) resolveSession(w http.ResponseWriter, r *http.Request) {
	user, err := h.AuthService.Resolve(r.Context(), r.Header.Get(SessionTokenHeader))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, user, http.StatusOK)
}

func (h *Handlers) authAction(w http.ResponseWriter, r *http.Request) {
	var req models.AuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	switch req.Action {
	case models.ActionRegister:
		registerReq := models.RegisterRequest{
			Username: req.Username,
			Email:    req.Email,
			Password: req.Password,
		}
		if !h.validateRequest(w, r, registerReq) {
			return
		}

		session, err := h.AuthService.Register(r.Context(), registerReq)
		if err != nil {
			h.writeServiceError(w, r, err)
			return
		}
		writeSuccess(w, session, http.StatusCreated)

	case models.ActionLogin:
		loginReq := models.LoginRequest{
			Username: req.Username,
			Password: req.Password,
		}
		if !h.validateRequest(w, r, loginReq) {
			return
		}

		session, err := h.AuthService.Login(r.Context(), loginReq)
		if err != nil {
			h.writeServiceError(w, r, err)
			return
		}
		writeSuccess(w, session, http.StatusOK)

	default:
		WriteError(w, "Invalid action", http.StatusBadRequest)
	}
}
