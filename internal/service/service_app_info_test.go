// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-daily-puzzle/internal/config"
	"github.com/MKhiriev/go-daily-puzzle/internal/logger"
	"github.com/MKhiriev/go-daily-puzzle/internal/store"
	"github.com/MKhiriev/go-daily-puzzle/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(context.Context) error { return m.err }

func configApp() config.App {
	return config.App{
		Version:         "1.0.0",
		SessionSignKey:  testSignKey,
		SessionIssuer:   testIssuer,
		SessionDuration: time.Hour,
	}
}

// ─────────────────────────────────────────────
// NewAppInfoService
// ─────────────────────────────────────────────

func TestNewAppInfoService_Success(t *testing.T) {
	svc, err := NewAppInfoService(configApp(), &mockPinger{}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, svc)
}

func TestNewAppInfoService_EmptyVersion_ReturnsError(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: ""}, &mockPinger{}, logger.Nop())

	assert.Nil(t, svc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVersionIsNotSpecified))
}

// ─────────────────────────────────────────────
// GetAppVersion
// ─────────────────────────────────────────────

func TestGetAppVersion_ReturnsConfiguredVersion(t *testing.T) {
	cfg := configApp()
	cfg.Version = "v1.2.3-beta+build.42"
	svc, err := NewAppInfoService(cfg, &mockPinger{}, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "v1.2.3-beta+build.42", svc.GetAppVersion(context.Background()))
}

func TestGetAppVersion_CancelledContext_StillReturnsVersion(t *testing.T) {
	svc, err := NewAppInfoService(configApp(), &mockPinger{}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, "1.0.0", svc.GetAppVersion(ctx))
}

// ─────────────────────────────────────────────
// CheckStore
// ─────────────────────────────────────────────

func TestCheckStore_Healthy(t *testing.T) {
	svc, err := NewAppInfoService(configApp(), &mockPinger{}, logger.Nop())
	require.NoError(t, err)

	assert.NoError(t, svc.CheckStore(context.Background()))
}

func TestCheckStore_Unavailable(t *testing.T) {
	svc, err := NewAppInfoService(configApp(), &mockPinger{err: store.ErrStoreUnavailable}, logger.Nop())
	require.NoError(t, err)

	assert.ErrorIs(t, svc.CheckStore(context.Background()), store.ErrStoreUnavailable)
}

// ─────────────────────────────────────────────
// NewServices
// ─────────────────────────────────────────────

func TestNewServices_WithoutStore(t *testing.T) {
	storages := store.NewStorages(config.DB{}, "", logger.Nop())
	t.Cleanup(func() { _ = storages.Close() })

	cfg := config.StructuredConfig{App: configApp()}
	services, err := NewServices(storages, cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, services.AuthService)
	require.NotNil(t, services.PuzzleService)
	require.NotNil(t, services.AppInfoService)

	views, err := services.PuzzleService.GetAllForMonth(context.Background(), models.MonthRequest{Year: 2025, Month: 11})
	require.NoError(t, err)
	assert.Empty(t, views)

	assert.ErrorIs(t, services.AppInfoService.CheckStore(context.Background()), store.ErrStoreUnavailable)
}

func TestNewServices_MissingVersion(t *testing.T) {
	storages := store.NewStorages(config.DB{}, "", logger.Nop())

	_, err := NewServices(storages, config.StructuredConfig{}, logger.Nop())

	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
