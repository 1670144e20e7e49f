// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// platformEnv holds variables set by hosting platforms rather than by the
// application's own prefixed groups.
type platformEnv struct {
	// DatabaseURL is used when STORAGE_DB_DATABASE_URI is unset.
	DatabaseURL string `env:"DATABASE_URL"`
}

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	platform, err := env.ParseAs[platformEnv]()
	if err != nil {
		return fmt.Errorf("error getting platform env configs: %w", err)
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = platform.DatabaseURL
	}

	return nil
}
