// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the claim set of a session token. The "sub" claim
// carries the user's OpenID.
type SessionClaims struct {
	jwt.RegisteredClaims

	// Name is the display name known at sign-in time.
	Name string `json:"name,omitempty"`
}

// Token wraps a session JWT.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) as sent in the session cookie.
// OpenID and Name are the parsed "sub" and "name" claims.
type Token struct {
	*jwt.Token `json:"-"`

	SignedString string `json:"-"`

	OpenID string `json:"-"`
	Name   string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
