// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-daily-puzzle/internal/logger"
	"github.com/MKhiriev/go-daily-puzzle/internal/service"
	"github.com/MKhiriev/go-daily-puzzle/internal/utils"
)

// withIdentity resolves the caller from the session cookie, falling back to
// an "Authorization: Bearer" header, and stores the user in the request
// context under [utils.UserCtxKey].
//
// It never rejects a request: a missing, invalid or unresolvable session
// leaves the caller anonymous. Rejection is the job of [Handler.protected].
func (h *Handler) withIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := h.sessionToken(r)
		if tokenString == "" {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)
		ctx := r.Context()

		user, err := h.services.AuthService.ResolveIdentity(ctx, tokenString)
		switch {
		case errors.Is(err, service.ErrInvalidSession):
			log.Debug().Err(err).Msg("anonymous caller: invalid session")
		case err != nil:
			log.Err(err).Str("func", "*Handler.withIdentity").Msg("identity resolution failed")
		case user != nil:
			ctx = utils.WithUser(ctx, user)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// protected rejects anonymous callers with 401 Unauthorized.
func (h *Handler) protected(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.GetUserFromContext(r.Context()); !ok {
			writeError(w, r, "*Handler.protected", service.ErrUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (h *Handler) sessionToken(r *http.Request) string {
	if cookie, err := r.Cookie(h.sessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	tokenString, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("ignoring authorization header")
		return ""
	}

	return tokenString
}
