// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-daily-puzzle/internal/logger"
	"github.com/MKhiriev/go-daily-puzzle/models"
)

// puzzleRepository is the SQL implementation of [PuzzleRepository].
type puzzleRepository struct {
	client *Client
	logger *logger.Logger
}

func NewPuzzleRepository(client *Client, logger *logger.Logger) PuzzleRepository {
	logger.Debug().Msg("creating puzzle repository")
	return &puzzleRepository{
		client: client,
		logger: logger,
	}
}

func (r *puzzleRepository) GetPuzzleByDate(ctx context.Context, date string) (*models.Puzzle, error) {
	db, ok := r.client.acquire(ctx, "get puzzle")
	if !ok {
		return nil, nil
	}

	return r.getOne(ctx, db, sq.Eq{"date": date}, "*puzzleRepository.GetPuzzleByDate")
}

func (r *puzzleRepository) GetPuzzleByID(ctx context.Context, id int64) (*models.Puzzle, error) {
	db, err := r.client.DB(ctx)
	if err != nil {
		logger.FromContextOr(ctx, r.logger).Warn().Err(err).Str("op", "get puzzle by id").Msg("database not available")
		return nil, err
	}

	return r.getOne(ctx, db, sq.Eq{"id": id}, "*puzzleRepository.GetPuzzleByID")
}

func (r *puzzleRepository) getOne(ctx context.Context, db *DB, where sq.Eq, fn string) (*models.Puzzle, error) {
	log := logger.FromContextOr(ctx, r.logger)

	query, args, err := buildSelectPuzzleQuery(db.builder, where)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	puzzle, err := scanPuzzle(db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		db.classify(log, fn, err)
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return puzzle, nil
}

// GetAllPuzzles returns the whole catalogue ordered by date ascending.
func (r *puzzleRepository) GetAllPuzzles(ctx context.Context) ([]models.Puzzle, error) {
	db, ok := r.client.acquire(ctx, "get puzzles")
	if !ok {
		return []models.Puzzle{}, nil
	}
	log := logger.FromContextOr(ctx, r.logger)

	query, args, err := buildSelectAllPuzzlesQuery(db.builder)
	if err != nil {
		log.Err(err).Str("func", "*puzzleRepository.GetAllPuzzles").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		db.classify(log, "*puzzleRepository.GetAllPuzzles", err)
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	puzzles := make([]models.Puzzle, 0)
	for rows.Next() {
		puzzle, err := scanPuzzle(rows)
		if err != nil {
			log.Err(err).Str("func", "*puzzleRepository.GetAllPuzzles").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		puzzles = append(puzzles, *puzzle)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*puzzleRepository.GetAllPuzzles").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return puzzles, nil
}

// SavePuzzles upserts puzzles by date inside one transaction.
// Seeding needs the store, so an unavailable store is reported.
func (r *puzzleRepository) SavePuzzles(ctx context.Context, puzzles ...models.Puzzle) (int, error) {
	if len(puzzles) == 0 {
		return 0, nil
	}

	db, err := r.client.DB(ctx)
	if err != nil {
		return 0, err
	}
	log := logger.FromContextOr(ctx, r.logger)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*puzzleRepository.SavePuzzles").Msg("error beginning transaction")
		return 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	saved := 0
	for _, puzzle := range puzzles {
		if puzzle.Date == "" {
			return 0, ErrPuzzleDateRequired
		}

		query, args, err := buildUpsertPuzzleQuery(db.builder, puzzle)
		if err != nil {
			log.Err(err).Str("func", "*puzzleRepository.SavePuzzles").Msg("error building query")
			return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			db.classify(log, "*puzzleRepository.SavePuzzles", err)
			return 0, fmt.Errorf("%w: puzzle %s: %w", ErrExecutingStatement, puzzle.Date, err)
		}
		if n, err := res.RowsAffected(); err == nil && n > 0 {
			saved++
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*puzzleRepository.SavePuzzles").Msg("error committing transaction")
		return 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return saved, nil
}
