// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-daily-puzzle/internal/utils"
	"github.com/MKhiriev/go-daily-puzzle/models"
)

// me answers auth.me with the caller's user record, or null for anonymous
// callers.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, _ := utils.GetUserFromContext(r.Context())
	utils.WriteJSON(w, user, http.StatusOK)
}

// logout answers auth.logout by expiring the session cookie. It always
// succeeds.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.sessionCookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	utils.WriteJSON(w, models.LogoutResponse{Success: true}, http.StatusOK)
}
