package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"rpchat/internal/models"
)

// Characters serves /api/characters. GET takes an optional id or user_id
// query parameter; without either it lists every character.
func (h *Handlers) Characters(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		query := r.URL.Query()
		if raw := query.Get("id"); raw != "" {
			h.getCharacter(w, r, raw)
			return
		}
		if raw := query.Get("user_id"); raw != "" {
			h.listUserCharacters(w, r, raw)
			return
		}
		h.listCharacters(w, r)
	case http.MethodPost:
		h.createCharacter(w, r)
	default:
		methodNotAllowed(w)
	}
}

// CharacterByID serves /api/characters/{id}.
func (h *Handlers) CharacterByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	h.getCharacter(w, r, mux.Vars(r)["id"])
}

func (h *Handlers) getCharacter(w http.ResponseWriter, r *http.Request, raw string) {
	id, ok := parseID(raw)
	if !ok {
		WriteError(w, "Invalid id", http.StatusBadRequest)
		return
	}

	character, err := h.CharacterService.GetByID(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, character, http.StatusOK)
}

func (h *Handlers) listUserCharacters(w http.ResponseWriter, r *http.Request, raw string) {
	userID, ok := parseID(raw)
	if !ok {
		WriteError(w, "Invalid user_id", http.StatusBadRequest)
		return
	}

	characters, err := h.CharacterService.ListByUserID(r.Context(), userID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, characters, http.StatusOK)
}

func (h *Handlers) listCharacters(w http.ResponseWriter, r *http.Request) {
	characters, err := h.CharacterService.List(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, characters, http.StatusOK)
}

func (h *Handlers) createCharacter(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCharacterRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	character, err := h.CharacterService.Create(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, character, http.StatusCreated)
}
