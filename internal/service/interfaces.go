// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-daily-puzzle/models"
)

type AuthService interface {
	// UpsertUser stores the user record. Store failures are returned to the
	// caller so that a sign-in is never silently lost.
	UpsertUser(ctx context.Context, user models.UpsertUser) error

	// ResolveIdentity turns a session token into the caller's user record.
	// It returns nil when the account cannot be loaded.
	ResolveIdentity(ctx context.Context, sessionToken string) (*models.User, error)

	CreateSessionToken(ctx context.Context, user models.User) (models.Token, error)
	ParseSessionToken(ctx context.Context, tokenString string) (models.Token, error)
}

type PuzzleService interface {
	// GetByDate returns nil when no puzzle is scheduled for the date.
	GetByDate(ctx context.Context, req models.DateRequest) (*models.PuzzleView, error)

	// GetAllForMonth returns the puzzles of the month in ascending date order.
	GetAllForMonth(ctx context.Context, req models.MonthRequest) ([]models.PuzzleView, error)

	// Submit checks an answer and records the attempt of userID.
	Submit(ctx context.Context, userID int64, req models.SubmitRequest) (models.SubmitResult, error)

	// GetUserProgress returns the progress of userID for the month.
	GetUserProgress(ctx context.Context, userID int64, req models.MonthRequest) ([]models.UserProgress, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string

	// CheckStore reports whether the store handle can be established.
	CheckStore(ctx context.Context) error
}

// PuzzleServiceWrapper defines middleware composition for PuzzleService.
// Implementations wrap an existing PuzzleService to add behavior such as
// validating.
type PuzzleServiceWrapper interface {
	Wrap(PuzzleService) PuzzleService
}

// StorePinger is the part of the store client used by health checks.
type StorePinger interface {
	Ping(ctx context.Context) error
}
