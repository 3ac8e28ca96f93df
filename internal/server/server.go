package server

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/arc-portal/internal/config"
	"github.com/MKhiriev/arc-portal/internal/handler"
	"github.com/MKhiriev/arc-portal/internal/logger"
)

type server struct {
	httpServer *httpServer

	// resources are closed after the HTTP server has drained, in order.
	resources []Closer

	shutdownTimeout time.Duration
	logger          *logger.Logger
}

// NewServer builds the server for handlers. resources are released during
// Shutdown once in-flight requests have completed.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger, resources ...Closer) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil {
		return nil, errNilHandlers
	}
	if cfg.HTTPAddress == "" || handlers.HTTP == nil {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer:      newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		resources:       resources,
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}, nil
}

// RunServer serves until ctx is cancelled or SIGTERM, SIGINT or SIGQUIT is
// received, then shuts down gracefully. A listener failure also triggers the
// shutdown and is returned.
func (s *server) RunServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	listener, err := s.httpServer.listen()
	if err != nil {
		return errors.Join(err, s.closeResources(context.Background()))
	}

	serveErr := make(chan error, 1)
	go func() {
		s.logger.Info().Msg("Launching HTTP server")
		serveErr <- s.httpServer.serve(listener)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received")
	case runErr = <-serveErr:
		s.logger.Error().Err(runErr).Msg("HTTP server stopped unexpectedly")
	}

	shutdownCtx, cancel := s.shutdownContext()
	defer cancel()

	if err = s.Shutdown(shutdownCtx); err != nil {
		return errors.Join(runErr, err)
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return runErr
}

// Shutdown drains the HTTP server and then closes every attached resource.
// Resources are closed even when draining fails.
func (s *server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	return errors.Join(err, s.closeResources(ctx))
}

func (s *server) closeResources(ctx context.Context) error {
	var errs []error
	for _, r := range s.resources {
		if err := r.Close(ctx); err != nil {
			errs = append(errs, fmt.Errorf("closing resource: %w", err))
		}
	}
	return errors.Join(errs...)
}

// shutdownContext bounds Shutdown by the configured timeout. A zero timeout
// waits for every request to finish.
func (s *server) shutdownContext() (context.Context, context.CancelFunc) {
	if s.shutdownTimeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), s.shutdownTimeout)
}
