// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decode returns the single JSON entry written to buf.
func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLogger_EntryFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("server")
	l.Logger = l.Output(&buf)

	l.Info().Msg("hello")

	entry := decode(t, &buf)
	assert.Equal(t, "server", entry["role"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")
	assert.Equal(t, "func", zerolog.CallerFieldName)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	require.NotNil(t, l)
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String())
}

func TestGetChildLogger(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger("seed")
	parent.Logger = parent.Output(&buf)

	child := parent.GetChildLogger()
	assert.NotSame(t, parent, child)

	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", "t-1")
	})
	child.Info().Msg("child")

	entry := decode(t, &buf)
	assert.Equal(t, "seed", entry["role"])
	assert.Equal(t, "t-1", entry["trace_id"])

	// the parent keeps its own fields
	buf.Reset()
	parent.Info().Msg("parent")
	assert.NotContains(t, decode(t, &buf), "trace_id")
}

func TestFromContext(t *testing.T) {
	require.NotNil(t, FromContext(context.Background()))

	var buf bytes.Buffer
	ctx := zerolog.New(&buf).With().Str("trace_id", "ctx").Logger().WithContext(context.Background())

	FromContext(ctx).Info().Msg("from context")

	assert.Equal(t, "ctx", decode(t, &buf)["trace_id"])
}

func TestFromRequest(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/auth.me", nil)
	require.NotNil(t, FromRequest(req))

	var buf bytes.Buffer
	ctx := zerolog.New(&buf).With().Str("trace_id", "req").Logger().WithContext(context.Background())

	FromRequest(req.WithContext(ctx)).Info().Msg("from request")

	assert.Equal(t, "req", decode(t, &buf)["trace_id"])
}

func TestFromContextOr(t *testing.T) {
	t.Run("fallback when context has no logger", func(t *testing.T) {
		var buf bytes.Buffer
		fallback := &Logger{zerolog.New(&buf)}

		l := FromContextOr(context.Background(), fallback)
		l.Warn().Msg("fallback")

		assert.Same(t, fallback, l)
		assert.Contains(t, buf.String(), "fallback")
	})

	t.Run("context logger wins", func(t *testing.T) {
		var ctxBuf, fallbackBuf bytes.Buffer
		ctx := zerolog.New(&ctxBuf).WithContext(context.Background())

		FromContextOr(ctx, &Logger{zerolog.New(&fallbackBuf)}).Info().Msg("ctx")

		assert.Contains(t, ctxBuf.String(), "ctx")
		assert.Empty(t, fallbackBuf.String())
	})
}

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	require.NoError(t, SetLevel("warn"))
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	require.NoError(t, SetLevel(""))
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	assert.Error(t, SetLevel("loud"))
}
