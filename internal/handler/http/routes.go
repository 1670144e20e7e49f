// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(h.withIdentity)

	// public procedures
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)
		r.Get("/api/health", h.health)

		r.Get("/api/auth.me", h.me)
		r.Post("/api/auth.logout", h.logout)

		r.Get("/api/puzzle.getByDate", h.getPuzzleByDate)
		r.Get("/api/puzzle.getAllForMonth", h.getAllPuzzlesForMonth)
	})

	// protected procedures
	router.Group(func(r chi.Router) {
		r.Use(h.protected)

		r.Post("/api/puzzle.submit", h.submit)
		r.Get("/api/puzzle.getUserProgress", h.getUserProgress)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
