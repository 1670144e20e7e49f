// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-daily-puzzle/internal/config"
	"github.com/MKhiriev/go-daily-puzzle/internal/logger"
)

// openFunc establishes a store handle. Replaced in tests.
type openFunc func(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error)

// Client owns the lifetime of the store handle.
//
// The handle is established on the first call to [Client.DB] and cached for
// the lifetime of the process. A failed attempt is not cached: the next call
// tries again. [Client.Close] tears the handle down.
type Client struct {
	cfg    config.DB
	logger *logger.Logger
	open   openFunc

	mu     sync.Mutex
	db     *DB
	closed bool
}

// NewClient returns a client for cfg. No connection is made until the
// handle is first needed.
func NewClient(cfg config.DB, log *logger.Logger) *Client {
	return &Client{
		cfg:    cfg,
		logger: log,
		open:   Open,
	}
}

// DB returns the store handle, establishing it on first use.
// Every failure is reported as [ErrStoreUnavailable].
func (c *Client) DB(ctx context.Context) (*DB, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db != nil {
		return c.db, nil
	}
	if c.closed {
		return nil, fmt.Errorf("%w: client is closed", ErrStoreUnavailable)
	}
	if c.cfg.DSN == "" {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, ErrStoreNotConfigured)
	}

	db, err := c.open(ctx, c.cfg, c.logger)
	if err != nil {
		c.logger.Warn().Err(err).Str("func", "*Client.DB").Msg("failed to connect to database")
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	if c.cfg.AutoMigrate {
		if err = db.Migrate(ctx); err != nil {
			c.logger.Err(err).Str("func", "*Client.DB").Msg("failed to migrate database")
			db.Close()
			return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		}
	}

	c.db = db
	return db, nil
}

// Ping checks that the store handle can be established and is alive.
func (c *Client) Ping(ctx context.Context) error {
	db, err := c.DB(ctx)
	if err != nil {
		return err
	}
	if err = db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return nil
}

// Close releases the store handle. Subsequent calls to [Client.DB] fail.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	if c.db == nil {
		return nil
	}

	err := c.db.Close()
	c.db = nil
	return err
}

// acquire returns the store handle for a degradable operation. When the store
// is unavailable it logs a warning naming op and reports false.
func (c *Client) acquire(ctx context.Context, op string) (*DB, bool) {
	db, err := c.DB(ctx)
	if err == nil {
		return db, true
	}

	log := logger.FromContextOr(ctx, c.logger)
	if errors.Is(err, ErrStoreNotConfigured) {
		log.Warn().Str("op", op).Msg("cannot " + op + ": database not available")
	} else {
		log.Warn().Err(err).Str("op", op).Msg("cannot " + op + ": database not available")
	}
	return nil, false
}
