package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"rpchat/internal/models"
)

// Health pings the database and reports how many tables the schema has.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	if err := h.DB.HealthCheck(r.Context()); err != nil {
		h.Log.Warn("health check failed", zap.Error(err))
		WriteError(w, "database unavailable: "+err.Error(), http.StatusServiceUnavailable)
		return
	}

	count, err := h.TablesService.GetCountTablesDB(r.Context())
	if err != nil {
		h.Log.Warn("health check failed", zap.Error(err))
		WriteError(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	writeSuccess(w, models.HealthResponse{Status: "ok", Tables: count}, http.StatusOK)
}
