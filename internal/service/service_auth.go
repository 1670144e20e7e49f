// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-daily-puzzle/internal/config"
	"github.com/MKhiriev/go-daily-puzzle/internal/logger"
	"github.com/MKhiriev/go-daily-puzzle/internal/store"
	"github.com/MKhiriev/go-daily-puzzle/internal/utils"
	"github.com/MKhiriev/go-daily-puzzle/models"
)

// authService is the concrete implementation of AuthService.
// It owns the session token lifecycle and keeps the user table in sync with
// the identities presented by callers.
type authService struct {
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify session tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	tokenDuration time.Duration

	now    func() time.Time
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with session parameters from cfg.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.SessionSignKey,
		tokenIssuer:    cfg.SessionIssuer,
		tokenDuration:  cfg.SessionDuration,
		now:            time.Now,
		logger:         logger,
	}
}

// UpsertUser delegates to the repository and logs failures before returning
// them.
func (a *authService) UpsertUser(ctx context.Context, user models.UpsertUser) error {
	if err := a.userRepository.UpsertUser(ctx, user); err != nil {
		logger.FromContextOr(ctx, a.logger).Err(err).
			Str("func", "*authService.UpsertUser").
			Str("open_id", user.OpenID).
			Msg("user upsert ended with error")
		return fmt.Errorf("user upsert ended with error: %w", err)
	}

	return nil
}

// ResolveIdentity validates the session token and loads the matching user.
//
// Every successful resolution refreshes last_signed_in. A user seen for the
// first time is created from the token claims. Returns ErrInvalidSession for
// a bad token, the upsert error when the write fails, and a nil user when the
// store is unavailable.
func (a *authService) ResolveIdentity(ctx context.Context, sessionToken string) (*models.User, error) {
	log := logger.FromContextOr(ctx, a.logger)

	token, err := a.ParseSessionToken(ctx, sessionToken)
	if err != nil {
		return nil, err
	}

	user, err := a.userRepository.GetUserByOpenID(ctx, token.OpenID)
	if err != nil {
		log.Err(err).Str("func", "*authService.ResolveIdentity").Msg("user lookup failed")
		return nil, fmt.Errorf("user lookup failed: %w", err)
	}

	signedIn := a.now()
	upsert := models.UpsertUser{
		OpenID:       token.OpenID,
		LastSignedIn: &signedIn,
	}
	if user == nil && token.Name != "" {
		upsert.Name = &token.Name
	}

	if err = a.UpsertUser(ctx, upsert); err != nil {
		return nil, err
	}

	if user != nil {
		user.LastSignedIn = signedIn
		return user, nil
	}

	user, err = a.userRepository.GetUserByOpenID(ctx, token.OpenID)
	if err != nil {
		log.Err(err).Str("func", "*authService.ResolveIdentity").Msg("created user lookup failed")
		return nil, fmt.Errorf("created user lookup failed: %w", err)
	}

	return user, nil
}

// CreateSessionToken issues a signed session token for the given user.
func (a *authService) CreateSessionToken(ctx context.Context, user models.User) (models.Token, error) {
	var name string
	if user.Name != nil {
		name = *user.Name
	}

	token, err := utils.GenerateSessionToken(a.tokenIssuer, user.OpenID, name, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseSessionToken validates the signature, issuer and expiry of a raw
// token. Any failure is normalised to ErrInvalidSession.
func (a *authService) ParseSessionToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseSessionToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContextOr(ctx, a.logger).Debug().Err(err).Msg("session token rejected")
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidSession, err)
	}

	return token, nil
}
