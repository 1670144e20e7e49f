// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"fmt"
	"net"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-daily-puzzle/internal/config"
	"github.com/MKhiriev/go-daily-puzzle/internal/handler"
	"github.com/MKhiriev/go-daily-puzzle/internal/logger"
)

type server struct {
	httpServer      *httpServer
	address         string
	shutdownTimeout time.Duration

	// onShutdown runs after the listener is closed, e.g. to close the store.
	onShutdown []func() error

	logger *logger.Logger
}

// Option customises a server created by NewServer.
type Option func(*server)

// WithShutdownHook registers fn to run after the HTTP server has stopped.
// Hooks run in registration order.
func WithShutdownHook(fn func() error) Option {
	return func(s *server) {
		s.onShutdown = append(s.onShutdown, fn)
	}
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger, opts ...Option) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	s := &server{
		httpServer:      newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		address:         cfg.HTTPAddress,
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

func (s *server) RunServer(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("error listening on %s: %w", s.address, err)
	}

	return s.run(ctx, listener)
}

func (s *server) run(ctx context.Context, listener net.Listener) error {
	ctx, stop := signal.NotifyContext(ctx,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.serve(listener)
	}()

	select {
	case err := <-serveErr:
		s.runShutdownHooks()
		return err
	case <-ctx.Done():
		s.logger.Info().Msg("shutdown signal received")
	}

	shutdownCtx := context.Background()
	if s.shutdownTimeout > 0 {
		var cancel context.CancelFunc
		shutdownCtx, cancel = context.WithTimeout(shutdownCtx, s.shutdownTimeout)
		defer cancel()
	}

	err := s.Shutdown(shutdownCtx)
	if serveErrAfter := <-serveErr; err == nil {
		err = serveErrAfter
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return err
}

func (s *server) Shutdown(ctx context.Context) error {
	err := s.httpServer.shutdown(ctx)
	s.runShutdownHooks()
	return err
}

func (s *server) runShutdownHooks() {
	for _, hook := range s.onShutdown {
		if err := hook(); err != nil {
			s.logger.Err(err).Str("func", "*server.runShutdownHooks").Msg("shutdown hook failed")
		}
	}
	s.onShutdown = nil
}
