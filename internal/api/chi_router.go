// Honeyscope - Honeypot Authentication Attack Classification and Live Feed
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeyscope

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/honeyscope/internal/auth"
	"github.com/tomtom215/honeyscope/internal/middleware"
)

// Router binds handlers to routes.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
	verifier      *auth.TokenVerifier
}

// NewRouter creates a Router. A nil verifier leaves submission open.
func NewRouter(handler *Handler, mw *ChiMiddleware, verifier *auth.TokenVerifier) *Router {
	if mw == nil {
		mw = NewChiMiddleware(nil)
	}
	return &Router{handler: handler, chiMiddleware: mw, verifier: verifier}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // global so OPTIONS preflight is answered
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.AccessLog)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Group(func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Get("/", router.handler.Root)
		r.Get("/api/v1/health/live", router.handler.HealthLive)
		r.Get("/api/v1/health/ready", router.handler.HealthReady)
		r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	})

	submit := auth.RequireSensorToken(router.verifier)

	r.Route("/api/v1/logs", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())

		r.With(submit).Post("/send-log", router.handler.SendLog)
		r.Get("/country-counts", router.handler.CountryCounts)
		r.Post("/country-counts/batch", router.handler.CountryCountsBatch)
		r.Post("/reset", router.handler.Reset)
		r.Get("/recent-logs", router.handler.RecentLogs)
		r.Get("/persistent-stats", router.handler.PersistentStats)
		r.Post("/persistent-stats/reset", router.handler.ResetPersistentStats)
	})

	// Legacy alias used by sensors that post to the service root.
	r.With(router.chiMiddleware.RateLimit(), submit).Post("/send-log", router.handler.SendLog)

	r.Get("/ws/logs", router.handler.WebSocket)
	r.Get("/ws/logs/", router.handler.WebSocket)

	return r
}
