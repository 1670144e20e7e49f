// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-daily-puzzle/internal/service"
	"github.com/MKhiriev/go-daily-puzzle/internal/store"
	"github.com/MKhiriev/go-daily-puzzle/models"
)

const cliLoginMethod = "cli"

var errUserNotStored = errors.New("user was not stored")

type sessionOptions struct {
	name  string
	email string
}

// NewSessionCommand creates the session command. It stands in for the
// OAuth callback during development.
func NewSessionCommand(opts *RootOptions) *cobra.Command {
	sessionOpts := &sessionOptions{}

	cmd := &cobra.Command{
		Use:   "session <open-id>",
		Short: "Create a user and print a signed session token",
		Long: `Create or update the user with the given open id and print a signed
session token for it. Send the token as the session cookie or as an
"Authorization: Bearer" header.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(cmd.Context(), opts, sessionOpts, args[0], cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&sessionOpts.name, "name", "", "display name of the user")
	cmd.Flags().StringVar(&sessionOpts.email, "email", "", "email of the user")

	return cmd
}

func runSession(ctx context.Context, opts *RootOptions, sessionOpts *sessionOptions, openID string, out io.Writer) error {
	cfg := *opts.Config

	storages := store.NewStorages(cfg.Storage.DB, cfg.App.OwnerOpenID, opts.Logger)
	defer storages.Close()

	services, err := service.NewServices(storages, cfg, opts.Logger)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	loginMethod := cliLoginMethod
	upsert := models.UpsertUser{
		OpenID:      openID,
		LoginMethod: &loginMethod,
	}
	if sessionOpts.name != "" {
		upsert.Name = &sessionOpts.name
	}
	if sessionOpts.email != "" {
		upsert.Email = &sessionOpts.email
	}

	if err = services.AuthService.UpsertUser(ctx, upsert); err != nil {
		return err
	}

	// an unavailable store skips the write, so read the user back
	user, err := storages.UserRepository.GetUserByOpenID(ctx, openID)
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("%w: %w", errUserNotStored, store.ErrStoreUnavailable)
	}

	token, err := services.AuthService.CreateSessionToken(ctx, *user)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, token.SignedString)
	return nil
}
