// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns the router's MethodNotAllowed handler.
//
// A procedure called with the wrong method answers 404 Not Found instead of
// chi's default 405, the same as an unknown procedure. Requests whose method
// is registered for the exact path are served by the router as usual.
//
// Usage:
//
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var procedure chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				procedure = route
				break
			}
		}

		if _, ok := procedure.Handlers[r.Method]; !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
