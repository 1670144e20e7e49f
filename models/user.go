// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Role is the authorization level of a user account.
type Role string

const (
	// RoleUser is the default role assigned by the store.
	RoleUser Role = "user"

	// RoleAdmin is forced for the configured owner account.
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User is an account created from an external identity provider.
// OpenID is the provider identifier: unique and immutable after creation.
type User struct {
	// ID is the surrogate key referenced by user_progress.user_id.
	ID int64 `json:"id"`

	// OpenID is the identifier returned by the OAuth provider.
	OpenID string `json:"openId"`

	Name        *string `json:"name"`
	Email       *string `json:"email"`
	LoginMethod *string `json:"loginMethod"`

	Role Role `json:"role"`

	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	LastSignedIn time.Time `json:"lastSignedIn"`
}

// UpsertUser describes an insert-or-update of a user keyed by OpenID.
//
// Optional fields follow a tri-state convention:
//   - nil pointer         : the field is not touched;
//   - pointer to ""       : the field is explicitly cleared (stored as NULL);
//   - pointer to a value  : the field is set to that value.
type UpsertUser struct {
	OpenID string

	Name        *string
	Email       *string
	LoginMethod *string

	// Role, when set, is persisted as-is. When nil the owner rule applies.
	Role *Role

	// LastSignedIn defaults to the current time when nil.
	LastSignedIn *time.Time
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
