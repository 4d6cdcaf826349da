// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up the HTTP routes and middleware chain for the
// public JSON site.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"annecy/internal/handlers"
	"annecy/internal/middleware"
)

// New creates and returns the configured Chi router. limiter may be nil.
func New(public *handlers.Public, limiter *middleware.RateLimiter) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	// Health check, not rate limited.
	r.Get("/health", healthHandler)

	r.Group(func(r chi.Router) {
		if limiter != nil {
			r.Use(limiter.Middleware)
		}

		// Navigation sits under "-", which is never a locale code, so it
		// cannot shadow an entity slug.
		r.Get("/-/navigation/{lang}", public.Navigation)

		r.Get("/{lang}/{entity}", public.Page)
		r.Get("/{lang}/{entity}/{category}", public.Page)
		r.Get("/{lang}/{entity}/{category}/{item}", public.Page)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, `{"error":"not found"}`)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, `{"error":"method not allowed"}`)
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, `{"status":"ok"}`)
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(body))
}
