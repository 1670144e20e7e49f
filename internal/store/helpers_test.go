// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-daily-puzzle/internal/config"
	"github.com/MKhiriev/go-daily-puzzle/internal/logger"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 11, 1, 9, 30, 0, 0, time.UTC)

// newTestClient returns a client whose handle is already established on a
// sqlmock connection.
func newTestClient(t *testing.T, dialect Dialect) (*Client, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	l := logger.Nop()
	return &Client{
		cfg:    config.DB{DSN: "postgres://test"},
		logger: l,
		db:     newDB(conn, dialect, l),
	}, mock
}

// unavailableClient has no DSN, so every acquire fails.
func unavailableClient() *Client {
	return NewClient(config.DB{}, logger.Nop())
}

func newTestUserRepo(t *testing.T, ownerOpenID string) (*userRepository, sqlmock.Sqlmock) {
	client, mock := newTestClient(t, DialectPostgres)
	return &userRepository{
		client:      client,
		ownerOpenID: ownerOpenID,
		logger:      logger.Nop(),
		now:         func() time.Time { return fixedNow },
	}, mock
}

func newTestPuzzleRepo(t *testing.T) (*puzzleRepository, sqlmock.Sqlmock) {
	client, mock := newTestClient(t, DialectPostgres)
	return &puzzleRepository{client: client, logger: logger.Nop()}, mock
}

func newTestProgressRepo(t *testing.T) (*progressRepository, sqlmock.Sqlmock) {
	client, mock := newTestClient(t, DialectPostgres)
	return &progressRepository{
		client: client,
		logger: logger.Nop(),
		now:    func() time.Time { return fixedNow },
	}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func ptr[T any](v T) *T {
	return &v
}
