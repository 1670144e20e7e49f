// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidDate     = errors.New("date must be a calendar day in YYYY-MM-DD format")
	ErrInvalidYear     = errors.New("year must be between 1 and 9999")
	ErrInvalidMonth    = errors.New("month must be between 1 and 12")
	ErrInvalidPuzzleID = errors.New("puzzleId must be a positive integer")
)
