package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"rpchat/internal/models"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteError sends {"error": message} with the given status.
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

func writeSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func methodNotAllowed(w http.ResponseWriter) {
	WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
}

// writeServiceError maps an error returned by a service to a response.
// Errors that are not AppErrors are unexpected: they are logged and sent as 500.
func (h *Handlers) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if appErr, ok := models.AsAppError(err); ok {
		WriteError(w, appErr.Message, statusForKind(appErr.Kind))
		return
	}

	h.Log.Error("request failed",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.String("request_id", w.Header().Get("X-Request-Id")),
		zap.Error(err),
	)
	WriteError(w, err.Error(), http.StatusInternalServerError)
}

func statusForKind(kind models.ErrorKind) int {
	switch kind {
	case models.KindValidation, models.KindConflict:
		return http.StatusBadRequest
	case models.KindUnauthorized:
		return http.StatusUnauthorized
	case models.KindNotFound:
		return http.StatusNotFound
	case models.KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// decodeAndValidate reads a JSON body into req and runs the struct validator.
// It writes the 400 itself and returns false when the request is unusable.
func (h *Handlers) decodeAndValidate(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return false
	}
	return h.validateRequest(w, r, req)
}

func (h *Handlers) validateRequest(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	err := h.Validate.Struct(req)
	if err == nil {
		return true
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		WriteError(w, missingFieldsMessage(validationErrors), http.StatusBadRequest)
		return false
	}

	h.writeServiceError(w, r, err)
	return false
}

func missingFieldsMessage(validationErrors validator.ValidationErrors) string {
	fields := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fields = append(fields, fe.Field())
	}
	return "Missing required fields: " + strings.Join(fields, ", ")
}

// parseID parses a positive integer identifier.
func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
