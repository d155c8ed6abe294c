// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// content server. JSON content routes live under /api behind a per-IP
// rate limit; health and metrics are served at the root.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"doorworks/internal/handlers"
	"doorworks/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up. metricsHandler may be nil to disable /metrics.
func New(api *handlers.API, limiter *middleware.RateLimiter, metricsHandler http.Handler) chi.Router {
	r := chi.NewRouter()

	// Global middleware applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	// Health check and metrics, not rate limited.
	r.Get("/health", healthHandler)
	if metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", metricsHandler)
	}

	r.Route("/api", func(r chi.Router) {
		if limiter != nil {
			r.Use(limiter.Middleware)
		}

		r.Get("/testimonials", api.Testimonials)

		r.Get("/pages/products/{id}", api.Product)
		r.Get("/pages/{page}", api.Page)

		r.Get("/contact-info", api.ContactInfo)
		r.Get("/faq", api.FAQ)
		r.Get("/service-areas", api.ServiceAreas)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		middleware.WriteError(w, http.StatusNotFound, "not_found", "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		middleware.WriteError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
