// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "github.com/rs/zerolog"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// An empty DSN is accepted: the application then runs without a store and
// the data access layer degrades to empty results.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.SessionSignKey == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.App.SessionDuration <= 0 || cfg.App.SessionCookieName == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.App.LogLevel != "" {
		if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
			return ErrInvalidAppConfigs
		}
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DB.MaxOpenConns < 0 {
		return ErrInvalidStorageConfigs
	}

	return nil
}
