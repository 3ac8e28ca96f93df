package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/arc-portal/internal/config"
	"github.com/MKhiriev/arc-portal/internal/handler"
	"github.com/MKhiriev/arc-portal/internal/logger"
	"github.com/MKhiriev/arc-portal/internal/server"
	"github.com/MKhiriev/arc-portal/internal/service"
	"github.com/MKhiriev/arc-portal/internal/store"
	"github.com/MKhiriev/arc-portal/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("arc-portal-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := log.WithContext(context.Background())

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	if err = storages.DB.Migrate(ctx); err != nil {
		storages.Close(ctx)
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	services := service.NewServices(storages, *cfg, buildInfo, log)

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		storages.Close(ctx)
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log, storages)
	if err != nil {
		storages.Close(ctx)
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}
