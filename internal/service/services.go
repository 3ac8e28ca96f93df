package service

import (
	"github.com/MKhiriev/arc-portal/internal/config"
	"github.com/MKhiriev/arc-portal/internal/logger"
	"github.com/MKhiriev/arc-portal/internal/store"
	"github.com/MKhiriev/arc-portal/models"
)

// Resource names under which the collection services are exposed.
const (
	ResourceClients = "clients"
	ResourceSites   = "sites"
	ResourceTests   = "tests"
	ResourceJobs    = "jobs"
)

// ClientsFilter keeps attachments that share the clients collection out of
// client reads.
var ClientsFilter = models.Filter{"docType": models.Filter{"$ne": models.AttachmentDocType}}

type Services struct {
	// Collections maps a resource name to the service for its collection.
	Collections map[string]CollectionService

	AttachmentService AttachmentService
	AuthService       AuthService
	AppInfoService    AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	mongoCfg := cfg.Storage.Mongo

	return &Services{
		Collections: map[string]CollectionService{
			ResourceClients: NewCollectionService(mongoCfg.ClientsCollection, ClientsFilter, storages.CollectionRepository, logger),
			ResourceSites:   NewCollectionService(mongoCfg.SitesCollection, nil, storages.CollectionRepository, logger),
			ResourceTests:   NewCollectionService(mongoCfg.TestsCollection, nil, storages.CollectionRepository, logger),
			ResourceJobs:    NewCollectionService(mongoCfg.JobsCollection, nil, storages.CollectionRepository, logger),
		},
		AttachmentService: NewAttachmentValidationService().Wrap(
			NewAttachmentService(storages.AttachmentRepository, cfg.Storage.Files, logger),
		),
		AuthService: NewAuthValidationService().Wrap(
			NewAuthService(storages.UserRepository, cfg.App, logger),
		),
		AppInfoService: NewAppInfoService(buildInfo, logger),
	}
}
