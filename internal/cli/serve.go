// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-daily-puzzle/internal/handler"
	"github.com/MKhiriev/go-daily-puzzle/internal/server"
	"github.com/MKhiriev/go-daily-puzzle/internal/service"
	"github.com/MKhiriev/go-daily-puzzle/internal/store"
)

// NewServeCommand creates the serve command.
func NewServeCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API until interrupted",
		Long: `Run the HTTP API until SIGINT or SIGTERM.

The store is connected on the first request that needs it. Without a
DSN the server runs degraded: reads are empty and submissions fail.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts)
		},
	}
}

func runServe(ctx context.Context, opts *RootOptions) error {
	cfg := *opts.Config
	log := opts.Logger

	storages := store.NewStorages(cfg.Storage.DB, cfg.App.OwnerOpenID, log)

	services, err := service.NewServices(storages, cfg, log)
	if err != nil {
		storages.Close()
		return fmt.Errorf("error creating services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		storages.Close()
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log, server.WithShutdownHook(storages.Close))
	if err != nil {
		storages.Close()
		return fmt.Errorf("error creating server: %w", err)
	}

	return srv.RunServer(ctx)
}
