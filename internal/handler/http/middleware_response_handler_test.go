// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseWriter_FirstStatusWins(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.WriteHeader(http.StatusServiceUnavailable)
	w.WriteHeader(http.StatusOK)

	assert.Equal(t, http.StatusServiceUnavailable, w.status)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestResponseWriter_WriteImpliesOK(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	n, err := w.Write([]byte(`{"success":true}`))

	require.NoError(t, err)
	assert.Equal(t, 16, n)
	assert.Equal(t, http.StatusOK, w.status)
	assert.True(t, w.wroteHeader)
}

func TestResponseWriter_SizeAccumulates(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	_, _ = w.Write([]byte("[{"))
	_, _ = w.Write([]byte(`"id":1`))
	_, _ = w.Write([]byte("}]"))

	assert.Equal(t, 10, w.size)
	assert.Equal(t, `[{"id":1}]`, rec.Body.String())
}

func TestResponseWriter_HeadersPassThrough(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.Header().Set(traceIDHeader, "t-1")
	w.WriteHeader(http.StatusNoContent)

	assert.Equal(t, "t-1", rec.Header().Get(traceIDHeader))
	assert.Equal(t, 0, w.size)
}
