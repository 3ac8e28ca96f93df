package store

import (
	"context"
	"errors"

	"github.com/MKhiriev/arc-portal/internal/config"
	"github.com/MKhiriev/arc-portal/internal/logger"
)

// Storages bundles every repository together with the connections backing
// them.
type Storages struct {
	CollectionRepository CollectionRepository
	AttachmentRepository AttachmentRepository
	UserRepository       UserRepository

	Mongo *MongoConnector
	DB    *DB
}

// NewStorages connects the credential store eagerly and prepares the lazy
// document store connector.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	mongoConnector := NewMongoConnector(cfg.Mongo, log)

	return &Storages{
		CollectionRepository: NewCollectionRepository(mongoConnector, log),
		AttachmentRepository: NewAttachmentRepository(mongoConnector, cfg.Mongo.FilesCollection, log),
		UserRepository:       NewUserRepository(db, log),
		Mongo:                mongoConnector,
		DB:                   db,
	}, nil
}

// Close releases both store connections.
func (s *Storages) Close(ctx context.Context) error {
	var errs []error
	if s.Mongo != nil {
		errs = append(errs, s.Mongo.Disconnect(ctx))
	}
	if s.DB != nil {
		errs = append(errs, s.DB.Close())
	}
	return errors.Join(errs...)
}
