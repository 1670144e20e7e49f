// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-daily-puzzle/internal/config"
	"github.com/MKhiriev/go-daily-puzzle/internal/logger"
)

type appInfoService struct {
	appVersion string
	store      StorePinger

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, store StorePinger, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		store:      store,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) CheckStore(ctx context.Context) error {
	if err := s.store.Ping(ctx); err != nil {
		logger.FromContextOr(ctx, s.logger).Warn().Err(err).Msg("store health check failed")
		return err
	}

	return nil
}
