// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/MKhiriev/go-daily-puzzle/internal/config"
	"github.com/MKhiriev/go-daily-puzzle/internal/logger"
)

// Storages bundles the store client with the repositories built on it.
type Storages struct {
	Client             *Client
	UserRepository     UserRepository
	PuzzleRepository   PuzzleRepository
	ProgressRepository ProgressRepository
}

// NewStorages wires the repositories to a lazily connected client.
// No connection is attempted here.
func NewStorages(cfg config.DB, ownerOpenID string, log *logger.Logger) *Storages {
	client := NewClient(cfg, log)

	return &Storages{
		Client:             client,
		UserRepository:     NewUserRepository(client, ownerOpenID, log),
		PuzzleRepository:   NewPuzzleRepository(client, log),
		ProgressRepository: NewProgressRepository(client, log),
	}
}

// Close tears down the store client.
func (s *Storages) Close() error {
	return s.Client.Close()
}
