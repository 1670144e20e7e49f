// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-daily-puzzle/internal/logger"
	"github.com/MKhiriev/go-daily-puzzle/models"
)

// progressRepository is the SQL implementation of [ProgressRepository]
// backed by the "user_progress" table.
type progressRepository struct {
	client *Client
	logger *logger.Logger
	now    func() time.Time
}

func NewProgressRepository(client *Client, logger *logger.Logger) ProgressRepository {
	logger.Debug().Msg("creating progress repository")
	return &progressRepository{
		client: client,
		logger: logger,
		now:    time.Now,
	}
}

func (r *progressRepository) GetUserProgress(ctx context.Context, userID, puzzleID int64) (*models.UserProgress, error) {
	db, ok := r.client.acquire(ctx, "get user progress")
	if !ok {
		return nil, nil
	}
	log := logger.FromContextOr(ctx, r.logger)

	query, args, err := buildSelectProgressQuery(db.builder, userID, puzzleID)
	if err != nil {
		log.Err(err).Str("func", "*progressRepository.GetUserProgress").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	progress, err := scanProgress(db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		db.classify(log, "*progressRepository.GetUserProgress", err)
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return progress, nil
}

// GetUserProgressByMonth returns the user's progress on puzzles dated from
// the first to the last calendar day of the month.
func (r *progressRepository) GetUserProgressByMonth(ctx context.Context, userID int64, year, month int) ([]models.UserProgress, error) {
	db, ok := r.client.acquire(ctx, "get user progress")
	if !ok {
		return []models.UserProgress{}, nil
	}
	log := logger.FromContextOr(ctx, r.logger)

	query, args, err := buildSelectProgressByMonthQuery(db.builder, userID, models.MonthRequest{Year: year, Month: month})
	if err != nil {
		log.Err(err).Str("func", "*progressRepository.GetUserProgressByMonth").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		db.classify(log, "*progressRepository.GetUserProgressByMonth", err)
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	progress := make([]models.UserProgress, 0)
	for rows.Next() {
		p, err := scanProgress(rows)
		if err != nil {
			log.Err(err).Str("func", "*progressRepository.GetUserProgressByMonth").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		progress = append(progress, *p)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*progressRepository.GetUserProgressByMonth").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return progress, nil
}

// UpdateUserProgress records one submission atomically. Concurrent
// submissions for the same user and puzzle each add one attempt.
func (r *progressRepository) UpdateUserProgress(ctx context.Context, userID, puzzleID int64, solved bool) error {
	db, ok := r.client.acquire(ctx, "update user progress")
	if !ok {
		return nil
	}
	log := logger.FromContextOr(ctx, r.logger)

	query, args, err := buildUpsertProgressQuery(db.builder, userID, puzzleID, solved, r.now())
	if err != nil {
		log.Err(err).Str("func", "*progressRepository.UpdateUserProgress").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = db.ExecContext(ctx, query, args...); err != nil {
		db.classify(log, "*progressRepository.UpdateUserProgress", err)
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
