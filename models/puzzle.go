// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DateLayout is the layout of Puzzle.Date (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// Puzzle is a single daily puzzle. At most one puzzle exists per Date.
// Puzzles are created by the seeding process and are read-only for the
// application.
type Puzzle struct {
	ID int64 `json:"id" yaml:"-"`

	// Date is the calendar day of the puzzle in YYYY-MM-DD format.
	Date string `json:"date" yaml:"date"`

	Question string `json:"question" yaml:"question"`

	// Type is a free-form tag: riddle, word, logic, etc.
	Type string `json:"type" yaml:"type"`

	Answer string `json:"answer" yaml:"answer"`

	// Location, Latitude and Longitude are the reveal fields disclosed only
	// after a correct submission.
	Location  string  `json:"location" yaml:"location"`
	Latitude  *string `json:"latitude" yaml:"latitude"`
	Longitude *string `json:"longitude" yaml:"longitude"`

	Hint *string `json:"hint" yaml:"hint"`

	CreatedAt time.Time `json:"createdAt" yaml:"-"`
	UpdatedAt time.Time `json:"updatedAt" yaml:"-"`
}

// PuzzleView is the public representation of a puzzle.
// It never carries the answer or the reveal fields.
type PuzzleView struct {
	ID       int64   `json:"id"`
	Date     string  `json:"date"`
	Question string  `json:"question"`
	Type     string  `json:"type"`
	Hint     *string `json:"hint"`
}

// View strips the secret fields from p.
func (p Puzzle) View() PuzzleView {
	return PuzzleView{
		ID:       p.ID,
		Date:     p.Date,
		Question: p.Question,
		Type:     p.Type,
		Hint:     p.Hint,
	}
}

// TableName returns the name of the database table
// associated with the Puzzle model.
func (p Puzzle) TableName() string {
	return "puzzles"
}
