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
	"github.com/jackc/pgerrcode"
)

// userRepository is the SQL implementation of [UserRepository].
// It handles account upserts and lookups against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContextOr] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	client      *Client
	ownerOpenID string
	logger      *logger.Logger
	now         func() time.Time
}

// NewUserRepository constructs a [UserRepository] on top of client.
// Users upserted with ownerOpenID and no explicit role become admins.
func NewUserRepository(client *Client, ownerOpenID string, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		client:      client,
		ownerOpenID: ownerOpenID,
		logger:      logger,
		now:         time.Now,
	}
}

// UpsertUser inserts the user or updates the supplied fields of the existing
// row with the same OpenID in one statement.
//
// Error handling:
//   - empty OpenID → [ErrOpenIDRequired];
//   - store unavailable → warning logged, nil returned;
//   - PostgreSQL check_violation (23514) → [ErrInvalidRole];
//   - any other driver-level error → logged and wrapped in [ErrExecutingStatement].
func (r *userRepository) UpsertUser(ctx context.Context, user models.UpsertUser) error {
	if user.OpenID == "" {
		return ErrOpenIDRequired
	}

	db, ok := r.client.acquire(ctx, "upsert user")
	if !ok {
		return nil
	}
	log := logger.FromContextOr(ctx, r.logger)

	query, args, err := buildUpsertUserQuery(db.builder, user, r.ownerOpenID, r.now())
	if err != nil {
		if errors.Is(err, ErrInvalidRole) {
			return err
		}
		log.Err(err).Str("func", "*userRepository.UpsertUser").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = db.ExecContext(ctx, query, args...); err != nil {
		db.classify(log, "*userRepository.UpsertUser", err)
		if postgresError(err) == pgerrcode.CheckViolation {
			return fmt.Errorf("%w: %w", ErrInvalidRole, err)
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// GetUserByOpenID returns the user with the given OpenID, or nil when no such
// user exists or the store is unavailable.
func (r *userRepository) GetUserByOpenID(ctx context.Context, openID string) (*models.User, error) {
	db, ok := r.client.acquire(ctx, "get user")
	if !ok {
		return nil, nil
	}
	log := logger.FromContextOr(ctx, r.logger)

	query, args, err := buildSelectUserByOpenIDQuery(db.builder, openID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetUserByOpenID").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		db.classify(log, "*userRepository.GetUserByOpenID", err)
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}
