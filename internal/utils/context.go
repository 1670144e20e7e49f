// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// JSON request decoding and response writing, session token generation
// and validation, and identifier generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-daily-puzzle/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserCtxKey is the key under which the identity middleware stores the
// resolved *models.User of the caller.
var UserCtxKey = contextKey("user")

// WithUser returns a copy of ctx carrying user. A nil user leaves the
// request anonymous.
func WithUser(ctx context.Context, user *models.User) context.Context {
	if user == nil {
		return ctx
	}
	return context.WithValue(ctx, UserCtxKey, user)
}

// GetUserFromContext retrieves the caller identity from the context.
//
// Returns the user and an ok flag:
//   - ok == true : a non-nil *models.User is attached
//   - ok == false: the request is anonymous
//
// Example usage:
//
//	user, ok := utils.GetUserFromContext(ctx)
//	if !ok {
//	    // anonymous caller
//	}
func GetUserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(UserCtxKey).(*models.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}
