// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"

	"github.com/MKhiriev/go-daily-puzzle/models"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*models.User, error) {
	var (
		user                     models.User
		name, email, loginMethod sql.NullString
		role                     string
	)

	if err := row.Scan(&user.ID, &user.OpenID, &name, &email, &loginMethod, &role,
		&user.CreatedAt, &user.UpdatedAt, &user.LastSignedIn); err != nil {
		return nil, err
	}

	user.Name = stringPtr(name)
	user.Email = stringPtr(email)
	user.LoginMethod = stringPtr(loginMethod)
	user.Role = models.Role(role)

	return &user, nil
}

func scanPuzzle(row rowScanner) (*models.Puzzle, error) {
	var (
		puzzle                    models.Puzzle
		latitude, longitude, hint sql.NullString
	)

	if err := row.Scan(&puzzle.ID, &puzzle.Date, &puzzle.Question, &puzzle.Type, &puzzle.Answer,
		&puzzle.Location, &latitude, &longitude, &hint, &puzzle.CreatedAt, &puzzle.UpdatedAt); err != nil {
		return nil, err
	}

	puzzle.Latitude = stringPtr(latitude)
	puzzle.Longitude = stringPtr(longitude)
	puzzle.Hint = stringPtr(hint)

	return &puzzle, nil
}

func scanProgress(row rowScanner) (*models.UserProgress, error) {
	var (
		progress models.UserProgress
		solved   int64
		solvedAt sql.NullTime
	)

	if err := row.Scan(&progress.ID, &progress.UserID, &progress.PuzzleID, &solved, &solvedAt,
		&progress.Attempts, &progress.CreatedAt, &progress.UpdatedAt); err != nil {
		return nil, err
	}

	progress.Solved = solved != 0
	if solvedAt.Valid {
		t := solvedAt.Time
		progress.SolvedAt = &t
	}

	return &progress, nil
}

func stringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
