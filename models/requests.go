// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"time"
)

// DateRequest is the input of puzzle.getByDate.
type DateRequest struct {
	Date string `json:"date"`
}

// MonthRequest selects a calendar month.
// Used by puzzle.getAllForMonth and puzzle.getUserProgress.
type MonthRequest struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// Prefix returns the "YYYY-MM" date prefix of the month.
func (m MonthRequest) Prefix() string {
	return fmt.Sprintf("%d-%02d", m.Year, m.Month)
}

// Range returns the first and the last calendar day of the month in
// [DateLayout], e.g. "2024-02-01" and "2024-02-29".
func (m MonthRequest) Range() (first, last string) {
	start := time.Date(m.Year, time.Month(m.Month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start.Format(DateLayout), end.Format(DateLayout)
}

// SubmitRequest is the input of puzzle.submit.
type SubmitRequest struct {
	PuzzleID int64  `json:"puzzleId"`
	Answer   string `json:"answer"`
}

// SubmitResult is the output of puzzle.submit.
//
// Location, Latitude and Longitude are populated only when Correct is true
// and are explicitly null otherwise.
type SubmitResult struct {
	Correct   bool    `json:"correct"`
	Location  *string `json:"location"`
	Latitude  *string `json:"latitude"`
	Longitude *string `json:"longitude"`
}

// LogoutResponse is the output of auth.logout.
type LogoutResponse struct {
	Success bool `json:"success"`
}

// HealthResponse is the output of the health endpoint.
type HealthResponse struct {
	Database string `json:"database"`
}
