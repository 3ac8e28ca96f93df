package http

import (
	"time"

	"github.com/MKhiriev/arc-portal/internal/config"
	"github.com/MKhiriev/arc-portal/internal/logger"
	"github.com/MKhiriev/arc-portal/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// sessionCookieName is the cookie carrying the session token.
const sessionCookieName = "arc_session"

type Handler struct {
	services *service.Services

	// tokenDuration is the session lifetime reported to clients and used as
	// the cookie Max-Age.
	tokenDuration time.Duration

	// secureCookie adds the Secure attribute to the session cookie.
	secureCookie bool

	// requireAuth puts the collection and document routes behind the
	// session guard.
	requireAuth bool

	// maxUploadBytes bounds the decoded attachment size; request bodies on
	// the upload route are capped accordingly.
	maxUploadBytes int64

	// requestTimeout cancels the request context after the given duration.
	// Zero disables the limit.
	requestTimeout time.Duration

	registry *prometheus.Registry
	metrics  *httpMetrics

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		tokenDuration:  cfg.App.TokenDuration,
		secureCookie:   !cfg.App.LocalDev,
		requireAuth:    cfg.Server.RequireAuth,
		maxUploadBytes: cfg.Storage.Files.MaxUploadBytes,
		requestTimeout: cfg.Server.RequestTimeout,
		registry:       registry,
		metrics:        newHTTPMetrics(registry),
		logger:         logger,
	}
}
