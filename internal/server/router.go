package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	handlers "rpchat/internal/handler"
	"rpchat/internal/middleware"
)

// NewRouter maps every path to exactly one handler. Method dispatch is left
// to the handlers so unsupported methods get the JSON 405 body.
func NewRouter(h *handlers.Handlers, log *zap.Logger) *mux.Router {
	router := mux.NewRouter()

	router.Use(
		middleware.RequestIDMiddleware,
		mux.MiddlewareFunc(middleware.LoggingMiddleware(log)),
		middleware.MetricsMiddleware,
		mux.MiddlewareFunc(middleware.RecoveryMiddleware(log)),
	)

	auth := middleware.CORSMiddleware(middleware.AuthAllowHeaders)
	resource := middleware.CORSMiddleware(middleware.ResourceAllowHeaders)

	router.Handle("/api/auth", auth(http.HandlerFunc(h.Auth)))
	router.Handle("/api/characters", resource(http.HandlerFunc(h.Characters)))
	router.Handle("/api/characters/{id}", resource(http.HandlerFunc(h.CharacterByID)))
	router.Handle("/api/locations", resource(http.HandlerFunc(h.Locations)))
	router.Handle("/api/messages", resource(http.HandlerFunc(h.Messages)))
	router.Handle("/api/posts", resource(http.HandlerFunc(h.Posts)))
	router.Handle("/api/avatars", resource(http.HandlerFunc(h.Avatars)))

	router.Handle("/health", resource(http.HandlerFunc(h.Health)))
	router.Handle("/metrics", promhttp.Handler())

	// Use only wraps matched routes, so the fallback gets the chain explicitly.
	router.NotFoundHandler = middleware.Chain(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handlers.WriteError(w, "Not found", http.StatusNotFound)
		}),
		middleware.RequestIDMiddleware,
		middleware.LoggingMiddleware(log),
		middleware.MetricsMiddleware,
		resource,
	)

	return router
}
