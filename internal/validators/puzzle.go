// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"time"

	"github.com/MKhiriev/go-daily-puzzle/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldDate     = "date"
	FieldYear     = "year"
	FieldMonth    = "month"
	FieldPuzzleID = "puzzle_id"
)

// PuzzleValidator implements [Validator] for the request contracts of the
// puzzle operations: DateRequest, MonthRequest and SubmitRequest.
// Both value and pointer forms are accepted.
type PuzzleValidator struct {
}

func NewPuzzleValidator() Validator {
	return &PuzzleValidator{}
}

// Validate dispatches on the dynamic type of obj and returns the first
// violated rule. ErrUnsupportedType is returned for any other type.
func (v *PuzzleValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.DateRequest:
		return v.validateDateRequest(value, fields...)
	case *models.DateRequest:
		return v.validateDateRequest(*value, fields...)

	case models.MonthRequest:
		return v.validateMonthRequest(value, fields...)
	case *models.MonthRequest:
		return v.validateMonthRequest(*value, fields...)

	case models.SubmitRequest:
		return v.validateSubmitRequest(value, fields...)
	case *models.SubmitRequest:
		return v.validateSubmitRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *PuzzleValidator) validateDateRequest(req models.DateRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDate}
	}

	for _, f := range fields {
		switch f {
		case FieldDate:
			if !isCalendarDate(req.Date) {
				return ErrInvalidDate
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *PuzzleValidator) validateMonthRequest(req models.MonthRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldYear, FieldMonth}
	}

	for _, f := range fields {
		switch f {
		case FieldYear:
			if req.Year < 1 || req.Year > 9999 {
				return ErrInvalidYear
			}
		case FieldMonth:
			if req.Month < 1 || req.Month > 12 {
				return ErrInvalidMonth
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateSubmitRequest checks only the puzzle id. Any answer string, empty
// included, is a submission that gets graded and counted.
func (v *PuzzleValidator) validateSubmitRequest(req models.SubmitRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPuzzleID}
	}

	for _, f := range fields {
		switch f {
		case FieldPuzzleID:
			if req.PuzzleID <= 0 {
				return ErrInvalidPuzzleID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// isCalendarDate reports whether s is an existing day in YYYY-MM-DD form.
func isCalendarDate(s string) bool {
	if len(s) != len(models.DateLayout) {
		return false
	}
	_, err := time.Parse(models.DateLayout, s)
	return err == nil
}
