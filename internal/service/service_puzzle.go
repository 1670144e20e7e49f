// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-daily-puzzle/internal/logger"
	"github.com/MKhiriev/go-daily-puzzle/internal/store"
	"github.com/MKhiriev/go-daily-puzzle/models"
)

type puzzleService struct {
	puzzleRepository   store.PuzzleRepository
	progressRepository store.ProgressRepository

	logger *logger.Logger
}

// NewPuzzleService returns the puzzle service decorated with request
// validation.
func NewPuzzleService(puzzleRepository store.PuzzleRepository, progressRepository store.ProgressRepository, logger *logger.Logger) PuzzleService {
	return NewPuzzleValidationService().Wrap(&puzzleService{
		puzzleRepository:   puzzleRepository,
		progressRepository: progressRepository,
		logger:             logger,
	})
}

func (s *puzzleService) GetByDate(ctx context.Context, req models.DateRequest) (*models.PuzzleView, error) {
	puzzle, err := s.puzzleRepository.GetPuzzleByDate(ctx, req.Date)
	if err != nil {
		logger.FromContextOr(ctx, s.logger).Err(err).
			Str("func", "*puzzleService.GetByDate").
			Str("date", req.Date).
			Msg("puzzle lookup failed")
		return nil, fmt.Errorf("puzzle lookup failed: %w", err)
	}
	if puzzle == nil {
		return nil, nil
	}

	view := puzzle.View()
	return &view, nil
}

// GetAllForMonth filters the whole catalogue by the "YYYY-MM" prefix.
// The repository already returns puzzles in ascending date order.
func (s *puzzleService) GetAllForMonth(ctx context.Context, req models.MonthRequest) ([]models.PuzzleView, error) {
	puzzles, err := s.puzzleRepository.GetAllPuzzles(ctx)
	if err != nil {
		logger.FromContextOr(ctx, s.logger).Err(err).
			Str("func", "*puzzleService.GetAllForMonth").
			Msg("puzzle listing failed")
		return nil, fmt.Errorf("puzzle listing failed: %w", err)
	}

	prefix := req.Prefix()
	views := make([]models.PuzzleView, 0, len(puzzles))
	for _, p := range puzzles {
		if strings.HasPrefix(p.Date, prefix) {
			views = append(views, p.View())
		}
	}

	return views, nil
}

// Submit records the attempt whatever its outcome. Reveal fields are set
// only for a correct answer.
func (s *puzzleService) Submit(ctx context.Context, userID int64, req models.SubmitRequest) (models.SubmitResult, error) {
	log := logger.FromContextOr(ctx, s.logger)

	puzzle, err := s.puzzleRepository.GetPuzzleByID(ctx, req.PuzzleID)
	if err != nil {
		log.Err(err).Str("func", "*puzzleService.Submit").Int64("puzzle_id", req.PuzzleID).Msg("puzzle lookup failed")
		return models.SubmitResult{}, fmt.Errorf("puzzle lookup failed: %w", err)
	}
	if puzzle == nil {
		return models.SubmitResult{}, fmt.Errorf("%w: puzzle %d", ErrNotFound, req.PuzzleID)
	}

	correct := normalizeAnswer(req.Answer) == normalizeAnswer(puzzle.Answer)

	if err = s.progressRepository.UpdateUserProgress(ctx, userID, puzzle.ID, correct); err != nil {
		log.Err(err).
			Str("func", "*puzzleService.Submit").
			Int64("user_id", userID).
			Int64("puzzle_id", puzzle.ID).
			Msg("progress update failed")
		return models.SubmitResult{}, fmt.Errorf("progress update failed: %w", err)
	}

	if !correct {
		return models.SubmitResult{Correct: false}, nil
	}

	location := puzzle.Location
	return models.SubmitResult{
		Correct:   true,
		Location:  &location,
		Latitude:  puzzle.Latitude,
		Longitude: puzzle.Longitude,
	}, nil
}

func (s *puzzleService) GetUserProgress(ctx context.Context, userID int64, req models.MonthRequest) ([]models.UserProgress, error) {
	progress, err := s.progressRepository.GetUserProgressByMonth(ctx, userID, req.Year, req.Month)
	if err != nil {
		logger.FromContextOr(ctx, s.logger).Err(err).
			Str("func", "*puzzleService.GetUserProgress").
			Int64("user_id", userID).
			Msg("progress listing failed")
		return nil, fmt.Errorf("progress listing failed: %w", err)
	}
	if progress == nil {
		progress = []models.UserProgress{}
	}

	return progress, nil
}

func normalizeAnswer(answer string) string {
	return strings.ToLower(strings.TrimSpace(answer))
}
