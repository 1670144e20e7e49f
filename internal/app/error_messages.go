// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the response messages shared by the go-daily-puzzle
// HTTP handlers.
//
// Client errors (4xx) carry the error text itself. Server errors (5xx) carry
// one of the messages below so store and driver details never reach the
// caller.
package app

const (
	// MsgInvalidJSON is returned when a request body is not valid JSON or
	// does not match the request contract.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInternalServerError is returned for unexpected server-side failures.
	MsgInternalServerError = "internal server error"

	// MsgStoreUnavailable is returned when an operation needs the store and
	// no handle could be established.
	MsgStoreUnavailable = "database not available"
)
