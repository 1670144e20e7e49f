// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrValidation wraps every boundary validation failure.
	ErrValidation = errors.New("validation error")

	// ErrUnauthorized is returned by protected operations called without an identity.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound is returned when a referenced puzzle does not exist.
	ErrNotFound = errors.New("not found")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrTokenCreationFailed = errors.New("session token creation failed")
	ErrInvalidSession      = errors.New("session token is expired or invalid")
)
