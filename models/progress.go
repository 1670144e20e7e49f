// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// UserProgress records the submissions of one user for one puzzle.
//
// There is at most one record per (UserID, PuzzleID). Solved and SolvedAt
// reflect the outcome of the most recent submission only; Attempts grows by
// exactly one per submission.
type UserProgress struct {
	ID       int64 `json:"id"`
	UserID   int64 `json:"userId"`
	PuzzleID int64 `json:"puzzleId"`

	Solved   bool       `json:"solved"`
	SolvedAt *time.Time `json:"solvedAt"`
	Attempts int        `json:"attempts"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the UserProgress model.
func (p UserProgress) TableName() string {
	return "user_progress"
}
