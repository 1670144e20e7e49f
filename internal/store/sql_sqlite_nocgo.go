// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build !cgo

package store

// Classify without cgo: the go-sqlite3 stub never yields a sqlite3.Error,
// so every error is non-retryable.
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	return NonRetryable
}
