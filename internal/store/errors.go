// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by the store client and repository methods to
// signal well-known failure conditions. Callers should use [errors.Is] to
// match against these values.
var (
	// ErrStoreUnavailable is returned when no database handle could be
	// established: the DSN is empty, or connecting, pinging or migrating
	// failed. Read paths degrade to empty results instead of returning it.
	ErrStoreUnavailable = errors.New("store is unavailable")

	// ErrStoreNotConfigured is wrapped into [ErrStoreUnavailable] when the
	// DSN is empty.
	ErrStoreNotConfigured = errors.New("database DSN is not configured")

	// ErrUnsupportedDSN is returned when the dialect cannot be derived from
	// the DSN.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")

	// ErrOpenIDRequired is returned by UpsertUser when the input has no
	// OpenID.
	ErrOpenIDRequired = errors.New("user openId is required for upsert")

	// ErrInvalidRole is returned by UpsertUser when an explicit role is not
	// one of the known roles.
	ErrInvalidRole = errors.New("invalid user role")

	// ErrPuzzleDateRequired is returned when a puzzle without a date is saved.
	ErrPuzzleDateRequired = errors.New("puzzle date is required")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
