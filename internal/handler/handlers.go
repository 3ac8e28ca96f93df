package handler

import (
	"github.com/MKhiriev/arc-portal/internal/config"
	"github.com/MKhiriev/arc-portal/internal/handler/http"
	"github.com/MKhiriev/arc-portal/internal/logger"
	"github.com/MKhiriev/arc-portal/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg, logger),
	}, nil
}
