// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-daily-puzzle/internal/config"
	"github.com/MKhiriev/go-daily-puzzle/internal/handler"
	"github.com/MKhiriev/go-daily-puzzle/internal/logger"
	"github.com/MKhiriev/go-daily-puzzle/internal/service"
	"github.com/MKhiriev/go-daily-puzzle/internal/store"
	"github.com/MKhiriev/go-daily-puzzle/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandlers(t *testing.T) (*handler.Handlers, config.StructuredConfig) {
	t.Helper()

	cfg := *config.Defaults()
	cfg.App.SessionSignKey = "test-key"
	cfg.Server.HTTPAddress = "127.0.0.1:0"

	storages := store.NewStorages(config.DB{}, "", logger.Nop())
	services, err := service.NewServices(storages, cfg, logger.Nop())
	require.NoError(t, err)

	handlers, err := handler.NewHandlers(services, cfg, logger.Nop())
	require.NoError(t, err)

	return handlers, cfg
}

func TestNewServer_NoHandlers(t *testing.T) {
	_, err := NewServer(nil, config.Server{HTTPAddress: ":0"}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)

	_, err = NewServer(&handler.Handlers{}, config.Server{HTTPAddress: ":0"}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestServer_ServesUntilCancelled(t *testing.T) {
	handlers, cfg := newTestHandlers(t)

	hookCalls := 0
	srv, err := NewServer(handlers, cfg.Server, logger.Nop(), WithShutdownHook(func() error {
		hookCalls++
		return nil
	}))
	require.NoError(t, err)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.(*server).run(ctx, listener)
	}()

	client := utils.NewHTTPClient("http://" + listener.Addr().String())
	var status int
	require.Eventually(t, func() bool {
		r, err := client.R().Get("/api/version")
		if err != nil {
			return false
		}
		status = r.StatusCode()
		return true
	}, 2*time.Second, 20*time.Millisecond)
	assert.Equal(t, http.StatusOK, status)

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.Equal(t, 1, hookCalls)
}

func TestServer_DegradedHealth(t *testing.T) {
	handlers, cfg := newTestHandlers(t)

	srv, err := NewServer(handlers, cfg.Server, logger.Nop())
	require.NoError(t, err)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = srv.(*server).run(ctx, listener) }()

	client := utils.NewHTTPClient("http://" + listener.Addr().String())
	require.Eventually(t, func() bool {
		r, err := client.R().Get("/api/health")
		return err == nil && r.StatusCode() == http.StatusServiceUnavailable
	}, 2*time.Second, 20*time.Millisecond)

	r, err := client.R().SetQueryParam("date", "2025-11-01").Get("/api/puzzle.getByDate")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, r.StatusCode())
	assert.Equal(t, "null", r.String())
}
