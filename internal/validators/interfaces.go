// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request contracts at the service boundary.
//
// A Validator receives any value and, optionally, the names of the fields
// to check. Implementations switch on the dynamic type of the value and
// return a package sentinel error for the first violated rule, so callers
// can match it with errors.Is.
package validators

import "context"

// Validator validates arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
