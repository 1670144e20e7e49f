// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-daily-puzzle/internal/app"
	"github.com/MKhiriev/go-daily-puzzle/internal/logger"
	"github.com/MKhiriev/go-daily-puzzle/internal/service"
	"github.com/MKhiriev/go-daily-puzzle/internal/store"
	"github.com/MKhiriev/go-daily-puzzle/internal/utils"
)

var errorStatusMap = map[error]int{
	ErrMissingQueryParam: http.StatusBadRequest,
	ErrInvalidQueryParam: http.StatusBadRequest,
	utils.ErrEmptyBody:   http.StatusBadRequest,

	service.ErrValidation:     http.StatusBadRequest,
	service.ErrUnauthorized:   http.StatusUnauthorized,
	service.ErrInvalidSession: http.StatusUnauthorized,
	service.ErrNotFound:       http.StatusNotFound,

	store.ErrStoreUnavailable: http.StatusServiceUnavailable,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func serverErrorMessage(status int) string {
	if status == http.StatusServiceUnavailable {
		return app.MsgStoreUnavailable
	}
	return app.MsgInternalServerError
}

// writeError logs err and answers with the mapped status. Client errors
// carry the error text, server errors only the status text.
func writeError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", fn).Int("status", status).Msg("request failed")
		http.Error(w, serverErrorMessage(status), status)
		return
	}

	log.Warn().Err(err).Str("func", fn).Int("status", status).Msg("request rejected")
	http.Error(w, err.Error(), status)
}
