// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-daily-puzzle/internal/config"
	"github.com/MKhiriev/go-daily-puzzle/internal/logger"
	"github.com/MKhiriev/go-daily-puzzle/internal/service"
	"github.com/MKhiriev/go-daily-puzzle/internal/utils"
)

type Handler struct {
	services *service.Services

	// sessionCookieName is the cookie carrying the session token.
	sessionCookieName   string
	sessionCookieSecure bool

	requestTimeout time.Duration
	traceIDs       *utils.TraceIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:            services,
		sessionCookieName:   cfg.App.SessionCookieName,
		sessionCookieSecure: cfg.App.SessionCookieSecure,
		requestTimeout:      cfg.Server.RequestTimeout,
		traceIDs:            utils.NewTraceIDGenerator(),
		logger:              logger,
	}
}
