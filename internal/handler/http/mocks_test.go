// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-daily-puzzle/internal/config"
	"github.com/MKhiriev/go-daily-puzzle/internal/logger"
	"github.com/MKhiriev/go-daily-puzzle/internal/service"
	"github.com/MKhiriev/go-daily-puzzle/models"
)

const testCookieName = "app_session_id"

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

type mockAuthService struct {
	upsertUserFn         func(ctx context.Context, user models.UpsertUser) error
	resolveIdentityFn    func(ctx context.Context, sessionToken string) (*models.User, error)
	createSessionTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseSessionTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) UpsertUser(ctx context.Context, user models.UpsertUser) error {
	if m.upsertUserFn != nil {
		return m.upsertUserFn(ctx, user)
	}
	return nil
}

func (m *mockAuthService) ResolveIdentity(ctx context.Context, sessionToken string) (*models.User, error) {
	if m.resolveIdentityFn != nil {
		return m.resolveIdentityFn(ctx, sessionToken)
	}
	return nil, nil
}

func (m *mockAuthService) CreateSessionToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createSessionTokenFn != nil {
		return m.createSessionTokenFn(ctx, user)
	}
	return models.Token{}, nil
}

func (m *mockAuthService) ParseSessionToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseSessionTokenFn != nil {
		return m.parseSessionTokenFn(ctx, tokenString)
	}
	return models.Token{}, nil
}

// ─────────────────────────────────────────────
// Mock PuzzleService
// ─────────────────────────────────────────────

type mockPuzzleService struct {
	getByDateFn       func(ctx context.Context, req models.DateRequest) (*models.PuzzleView, error)
	getAllForMonthFn  func(ctx context.Context, req models.MonthRequest) ([]models.PuzzleView, error)
	submitFn          func(ctx context.Context, userID int64, req models.SubmitRequest) (models.SubmitResult, error)
	getUserProgressFn func(ctx context.Context, userID int64, req models.MonthRequest) ([]models.UserProgress, error)
}

func (m *mockPuzzleService) GetByDate(ctx context.Context, req models.DateRequest) (*models.PuzzleView, error) {
	if m.getByDateFn != nil {
		return m.getByDateFn(ctx, req)
	}
	return nil, nil
}

func (m *mockPuzzleService) GetAllForMonth(ctx context.Context, req models.MonthRequest) ([]models.PuzzleView, error) {
	if m.getAllForMonthFn != nil {
		return m.getAllForMonthFn(ctx, req)
	}
	return []models.PuzzleView{}, nil
}

func (m *mockPuzzleService) Submit(ctx context.Context, userID int64, req models.SubmitRequest) (models.SubmitResult, error) {
	if m.submitFn != nil {
		return m.submitFn(ctx, userID, req)
	}
	return models.SubmitResult{}, nil
}

func (m *mockPuzzleService) GetUserProgress(ctx context.Context, userID int64, req models.MonthRequest) ([]models.UserProgress, error) {
	if m.getUserProgressFn != nil {
		return m.getUserProgressFn(ctx, userID, req)
	}
	return []models.UserProgress{}, nil
}

// ─────────────────────────────────────────────
// Mock AppInfoService
// ─────────────────────────────────────────────

type mockAppInfoService struct {
	version  string
	storeErr error
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

func (m *mockAppInfoService) CheckStore(_ context.Context) error {
	return m.storeErr
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func testConfig() config.StructuredConfig {
	return config.StructuredConfig{
		App: config.App{
			Version:           "test",
			SessionCookieName: testCookieName,
		},
		Server: config.Server{RequestTimeout: 5 * time.Second},
	}
}

// newTestHandler fills the services left nil with permissive mocks.
func newTestHandler(t *testing.T, services *service.Services) *Handler {
	t.Helper()
	if services == nil {
		services = &service.Services{}
	}
	if services.AuthService == nil {
		services.AuthService = &mockAuthService{}
	}
	if services.PuzzleService == nil {
		services.PuzzleService = &mockPuzzleService{}
	}
	if services.AppInfoService == nil {
		services.AppInfoService = &mockAppInfoService{version: "test"}
	}
	return NewHandler(services, testConfig(), logger.Nop())
}

func strPtr(s string) *string { return &s }

func testUser() *models.User {
	return &models.User{ID: 42, OpenID: "oid-42", Name: strPtr("Ann"), Role: models.RoleUser}
}
