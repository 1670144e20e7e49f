// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-daily-puzzle/internal/seed"
	"github.com/MKhiriev/go-daily-puzzle/internal/store"
)

// NewSeedCommand creates the seed command.
func NewSeedCommand(opts *RootOptions) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load a puzzle catalogue into the store",
		Long: `Load a puzzle catalogue into the store.

Puzzles are upserted by date, so seeding twice is safe. Without --file
the built-in November 2025 catalogue is used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd.Context(), opts, file, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "catalogue file (.yaml, .yml or .json)")

	return cmd
}

func runSeed(ctx context.Context, opts *RootOptions, file string, out io.Writer) error {
	var (
		catalogue seed.Catalogue
		err       error
	)
	if file == "" {
		catalogue, err = seed.Default()
	} else {
		catalogue, err = seed.LoadFile(file)
	}
	if err != nil {
		return err
	}

	storages := store.NewStorages(opts.Config.Storage.DB, opts.Config.App.OwnerOpenID, opts.Logger)
	defer storages.Close()

	written, err := seed.NewSeeder(storages.PuzzleRepository, opts.Logger).Seed(ctx, catalogue)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "seeded %d of %d puzzles\n", written, len(catalogue.Puzzles))
	return nil
}
