// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors reported while reading procedure input from the query
// string. Both map to 400 Bad Request.
var (
	ErrMissingQueryParam = errors.New("missing query parameter")
	ErrInvalidQueryParam = errors.New("invalid query parameter")
)
