// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-daily-puzzle/models"
)

// UserRepository persists accounts created from the identity provider.
type UserRepository interface {
	// UpsertUser inserts the user or updates the supplied fields of the
	// existing row with the same OpenID. Skipped when the store is unavailable.
	UpsertUser(ctx context.Context, user models.UpsertUser) error

	// GetUserByOpenID returns nil when no such user exists or the store is
	// unavailable.
	GetUserByOpenID(ctx context.Context, openID string) (*models.User, error)
}

// PuzzleRepository reads the daily puzzle catalogue.
type PuzzleRepository interface {
	// GetPuzzleByDate returns nil when no puzzle is scheduled for date or the
	// store is unavailable.
	GetPuzzleByDate(ctx context.Context, date string) (*models.Puzzle, error)

	// GetPuzzleByID returns nil when no puzzle has the id. Unlike the other
	// reads it reports [ErrStoreUnavailable].
	GetPuzzleByID(ctx context.Context, id int64) (*models.Puzzle, error)

	// GetAllPuzzles returns every puzzle ordered by date ascending, or an
	// empty slice when the store is unavailable.
	GetAllPuzzles(ctx context.Context) ([]models.Puzzle, error)

	// SavePuzzles inserts puzzles or replaces the content of the puzzles
	// scheduled on the same dates. It returns the number of rows written.
	SavePuzzles(ctx context.Context, puzzles ...models.Puzzle) (int, error)
}

// ProgressRepository tracks per-user attempts on puzzles.
type ProgressRepository interface {
	// GetUserProgress returns nil when the user never submitted an answer
	// for the puzzle or the store is unavailable.
	GetUserProgress(ctx context.Context, userID, puzzleID int64) (*models.UserProgress, error)

	// GetUserProgressByMonth returns the user's progress rows for puzzles
	// dated within the calendar month, or an empty slice when the store is
	// unavailable.
	GetUserProgressByMonth(ctx context.Context, userID int64, year, month int) ([]models.UserProgress, error)

	// UpdateUserProgress records one submission: attempts grows by one and
	// solved/solvedAt reflect the latest submission.
	UpdateUserProgress(ctx context.Context, userID, puzzleID int64, solved bool) error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
