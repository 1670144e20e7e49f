// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "github.com/google/uuid"

const maxTraceIDLength = 64

// TraceIDGenerator resolves the trace id of a request.
type TraceIDGenerator struct {
	newID func() (uuid.UUID, error)
}

func NewTraceIDGenerator() *TraceIDGenerator {
	return &TraceIDGenerator{newID: uuid.NewV7}
}

// Resolve returns incoming when it is a usable trace id. Otherwise it
// returns a new UUIDv7, or a random UUIDv4 when the clock source fails.
func (g *TraceIDGenerator) Resolve(incoming string) string {
	if validTraceID(incoming) {
		return incoming
	}

	id, err := g.newID()
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}

// validTraceID accepts short ids of ASCII letters, digits, '-', '_' and '.'.
func validTraceID(s string) bool {
	if s == "" || len(s) > maxTraceIDLength {
		return false
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-', c == '_', c == '.':
		default:
			return false
		}
	}

	return true
}
