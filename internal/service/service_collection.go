package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/arc-portal/internal/logger"
	"github.com/MKhiriev/arc-portal/internal/store"
	"github.com/MKhiriev/arc-portal/models"
)

// collectionService is the concrete implementation of CollectionService.
// One instance serves one collection; the repository is shared.
type collectionService struct {
	// name is the collection every operation targets.
	name string

	// filter is applied to every List call. Nil means no filter.
	filter models.Filter

	repository store.CollectionRepository

	logger *logger.Logger
}

// NewCollectionService constructs a CollectionService bound to the named
// collection. filter is applied to every read and never to writes.
func NewCollectionService(name string, filter models.Filter, repository store.CollectionRepository, logger *logger.Logger) CollectionService {
	return &collectionService{
		name:       name,
		filter:     filter,
		repository: repository,
		logger:     logger,
	}
}

func (s *collectionService) Name() string {
	return s.name
}

// List returns every record matching the fixed filter. Identifiers are
// strings.
func (s *collectionService) List(ctx context.Context) ([]models.Record, error) {
	records, err := s.repository.Find(ctx, s.name, s.filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*collectionService.List").Str("collection", s.name).Msg("error fetching records")
		return nil, storeFailure(err, ErrFetchRecords)
	}

	return records, nil
}

// Create inserts records in one batch after discarding any client-supplied
// identifier. The returned records carry the store-assigned identifiers.
//
// Returns ErrNoRecordsToInsert when records is empty.
func (s *collectionService) Create(ctx context.Context, records []models.Record) ([]models.Record, error) {
	log := logger.FromContext(ctx)

	if len(records) == 0 {
		return nil, ErrNoRecordsToInsert
	}

	docs := make([]models.Record, 0, len(records))
	for _, record := range records {
		docs = append(docs, record.WithoutID())
	}

	inserted, err := s.repository.InsertMany(ctx, s.name, docs)
	if err != nil {
		log.Err(err).Str("func", "*collectionService.Create").Str("collection", s.name).Int("count", len(docs)).Msg("error inserting records")
		return nil, storeFailure(err, ErrInsertRecords)
	}

	log.Debug().Str("func", "*collectionService.Create").Str("collection", s.name).Int("count", len(inserted)).Msg("records inserted")
	return inserted, nil
}

// Update merges the fields of record into the stored record identified by
// its _id. Fields not present in record are left untouched and a missing
// record is never created.
func (s *collectionService) Update(ctx context.Context, record models.Record) (models.Record, error) {
	log := logger.FromContext(ctx)

	if !record.HasID() {
		return nil, ErrRecordIDRequired
	}

	id, ok := record.ID()
	if !ok || !store.IsValidID(id) {
		return nil, ErrInvalidRecordID
	}

	updated, err := s.repository.UpdateByID(ctx, s.name, id, record.WithoutID())
	if err != nil {
		switch {
		case errors.Is(err, store.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		case errors.Is(err, store.ErrInvalidID):
			return nil, ErrInvalidRecordID
		}
		log.Err(err).Str("func", "*collectionService.Update").Str("collection", s.name).Str("id", id).Msg("error updating record")
		return nil, storeFailure(err, ErrUpdateRecord)
	}

	return updated, nil
}

// Delete removes every record named by req in one operation. Identifiers
// that are not strings of a valid shape are dropped silently; the returned
// count may be lower than the number requested.
//
// Returns ErrNoValidIDs when nothing is left to delete.
func (s *collectionService) Delete(ctx context.Context, req models.DeleteRequest) (int64, error) {
	var ids []string
	for _, raw := range req.Identifiers() {
		id, ok := raw.(string)
		if ok && store.IsValidID(id) {
			ids = append(ids, id)
		}
	}

	if len(ids) == 0 {
		return 0, ErrNoValidIDs
	}

	deleted, err := s.repository.DeleteByIDs(ctx, s.name, ids)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*collectionService.Delete").Str("collection", s.name).Strs("ids", ids).Msg("error deleting records")
		return 0, storeFailure(err, ErrDeleteRecords)
	}

	return deleted, nil
}
