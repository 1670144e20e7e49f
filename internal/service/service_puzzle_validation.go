// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-daily-puzzle/internal/validators"
	"github.com/MKhiriev/go-daily-puzzle/models"
)

// PuzzleValidationService rejects malformed requests before they reach the
// wrapped PuzzleService. Every validation failure wraps ErrValidation.
type PuzzleValidationService struct {
	inner     PuzzleService
	validator validators.Validator
}

func NewPuzzleValidationService() PuzzleServiceWrapper {
	return &PuzzleValidationService{
		validator: validators.NewPuzzleValidator(),
	}
}

func (v *PuzzleValidationService) GetByDate(ctx context.Context, req models.DateRequest) (*models.PuzzleView, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.GetByDate(ctx, req)
}

func (v *PuzzleValidationService) GetAllForMonth(ctx context.Context, req models.MonthRequest) ([]models.PuzzleView, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.GetAllForMonth(ctx, req)
}

func (v *PuzzleValidationService) Submit(ctx context.Context, userID int64, req models.SubmitRequest) (models.SubmitResult, error) {
	if userID <= 0 {
		return models.SubmitResult{}, ErrUnauthorized
	}
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.SubmitResult{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.Submit(ctx, userID, req)
}

func (v *PuzzleValidationService) GetUserProgress(ctx context.Context, userID int64, req models.MonthRequest) ([]models.UserProgress, error) {
	if userID <= 0 {
		return nil, ErrUnauthorized
	}
	if err := v.validator.Validate(ctx, req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.GetUserProgress(ctx, userID, req)
}

func (v *PuzzleValidationService) Wrap(inner PuzzleService) PuzzleService {
	v.inner = inner
	return v
}
