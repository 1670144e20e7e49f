// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-daily-puzzle/internal/store"
)

// NewMigrateCommand creates the migrate command.
func NewMigrateCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(cmd.Context(), opts, cmd.OutOrStdout())
		},
	}
}

func runMigrate(ctx context.Context, opts *RootOptions, out io.Writer) error {
	client := store.NewClient(opts.Config.Storage.DB, opts.Logger)
	defer client.Close()

	db, err := client.DB(ctx)
	if err != nil {
		return err
	}

	if err = db.Migrate(ctx); err != nil {
		opts.Logger.Err(err).Str("func", "runMigrate").Msg("migration failed")
		return err
	}

	fmt.Fprintf(out, "migrations applied (%s)\n", db.Dialect())
	return nil
}
