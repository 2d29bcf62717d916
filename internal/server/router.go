// Package server exposes the engine as a stateless JSON API.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"postcraft/internal/config"
)

// NewRouter mounts every endpoint behind request IDs, rate limiting and metrics.
func NewRouter(h *Handler, cfg config.ServerConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(observeMiddleware)

	r.Get("/healthz", h.health)
	r.Get("/readyz", h.health)

	r.Route("/v1", func(r chi.Router) {
		r.Use(rateLimitMiddleware(newLimiter(cfg.RateLimit)))
		r.Get("/platforms", h.platforms)
		r.Post("/adapt", h.adapt)
		r.Post("/adapt/all", h.adaptAll)
		r.Post("/preflight", h.preflight)
		r.Post("/predict", h.predict)
		r.Get("/schedule/{platform}", h.schedule)
		r.Post("/hashtags/suggest", h.hashtags)
		r.Post("/analyze", h.analyze)
	})
	return r
}

// New returns an http.Server for cfg. The caller owns ListenAndServe and Shutdown.
func New(cfg config.ServerConfig, h *Handler) *http.Server {
	return &http.Server{
		Addr:         cfg.Addr,
		Handler:      NewRouter(h, cfg),
		ReadTimeout:  cfg.ReadTimeout.Std(),
		WriteTimeout: cfg.WriteTimeout.Std(),
	}
}
