// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli holds the cobra commands of the go-daily-puzzle binary.
package cli

import (
	"flag"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-daily-puzzle/internal/config"
	"github.com/MKhiriev/go-daily-puzzle/internal/logger"
	"github.com/MKhiriev/go-daily-puzzle/models"
)

const appName = "go-daily-puzzle"

// RootOptions is shared by all subcommands. Config and Logger are set by
// the root pre-run hook before any subcommand runs.
type RootOptions struct {
	Build  models.AppBuildInfo
	Config *config.StructuredConfig
	Logger *logger.Logger
}

// NewRootCommand creates the root command with every subcommand attached.
func NewRootCommand(build models.AppBuildInfo) *cobra.Command {
	opts := &RootOptions{Build: build}

	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	flagConfig := config.BindFlags(fs)

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Daily puzzle server",
		Long: `Daily puzzle server.

Serves the puzzle RPC API and provides the maintenance commands that
prepare its store: migrations, catalogue seeding and session tokens.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(flagConfig())
		},
	}

	cmd.PersistentFlags().AddGoFlagSet(fs)

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewSeedCommand(opts))
	cmd.AddCommand(NewSessionCommand(opts))
	cmd.AddCommand(NewVersionCommand(opts))

	return cmd
}

func (o *RootOptions) load(flagCfg *config.StructuredConfig) error {
	cfg, err := config.GetStructuredConfig(flagCfg)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	// the build version wins over the default one
	if cfg.App.Version == config.Defaults().App.Version && o.Build.Version != "" && o.Build.Version != "N/A" {
		cfg.App.Version = o.Build.Version
	}

	// NewLogger resets the global level, so the configured one is applied after it
	o.Config = cfg
	o.Logger = logger.NewLogger(appName)
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		return err
	}
	o.Logger.Debug().Str("version", cfg.App.Version).Str("address", cfg.Server.HTTPAddress).Msg("received configs")

	return nil
}
