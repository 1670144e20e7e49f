// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-daily-puzzle/internal/app"
	"github.com/MKhiriev/go-daily-puzzle/internal/service"
	"github.com/MKhiriev/go-daily-puzzle/internal/store"
	"github.com/MKhiriev/go-daily-puzzle/internal/utils"
	"github.com/MKhiriev/go-daily-puzzle/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation wrapping validator error", err: fmt.Errorf("%w: %w", service.ErrValidation, validators.ErrInvalidMonth), want: http.StatusBadRequest},
		{name: "missing query parameter", err: fmt.Errorf("%w: date", ErrMissingQueryParam), want: http.StatusBadRequest},
		{name: "invalid query parameter", err: ErrInvalidQueryParam, want: http.StatusBadRequest},
		{name: "empty body", err: utils.ErrEmptyBody, want: http.StatusBadRequest},
		{name: "unauthorized", err: service.ErrUnauthorized, want: http.StatusUnauthorized},
		{name: "invalid session", err: service.ErrInvalidSession, want: http.StatusUnauthorized},
		{name: "not found", err: fmt.Errorf("%w: puzzle 7", service.ErrNotFound), want: http.StatusNotFound},
		{name: "store unavailable", err: fmt.Errorf("lookup: %w", store.ErrStoreUnavailable), want: http.StatusServiceUnavailable},
		{name: "scan failure", err: store.ErrScanningRow, want: http.StatusInternalServerError},
		{name: "unknown", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestWriteError_Body(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{name: "client error carries error text", err: service.ErrUnauthorized, wantStatus: http.StatusUnauthorized, wantBody: service.ErrUnauthorized.Error()},
		{name: "store unavailable hides cause", err: fmt.Errorf("%w: dial tcp: refused", store.ErrStoreUnavailable), wantStatus: http.StatusServiceUnavailable, wantBody: app.MsgStoreUnavailable},
		{name: "internal error hides cause", err: errors.New("pq: relation missing"), wantStatus: http.StatusInternalServerError, wantBody: app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/puzzle.getByDate", nil)

			writeError(rec, req, "test", tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody, strings.TrimSpace(rec.Body.String()))
		})
	}
}
