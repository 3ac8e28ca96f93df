package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/arc-portal/internal/logger"
	"github.com/MKhiriev/arc-portal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// collectionRepository is the document store implementation of
// [CollectionRepository]. The collection name is a call argument, so one
// instance serves every resource.
type collectionRepository struct {
	provider CollectionProvider
	logger   *logger.Logger
}

// NewCollectionRepository constructs a [CollectionRepository] on top of
// provider.
func NewCollectionRepository(provider CollectionProvider, logger *logger.Logger) CollectionRepository {
	logger.Debug().Msg("creating collection repository")
	return &collectionRepository{
		provider: provider,
		logger:   logger,
	}
}

func (r *collectionRepository) Find(ctx context.Context, collection string, filter models.Filter) ([]models.Record, error) {
	log := logger.FromContext(ctx)

	coll, err := r.provider.Collection(ctx, collection)
	if err != nil {
		return nil, err
	}

	cur, err := coll.Find(ctx, toFilter(filter))
	if err != nil {
		log.Err(err).Str("func", "*collectionRepository.Find").Str("collection", collection).Msg("error executing find")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer cur.Close(ctx)

	records := make([]models.Record, 0)
	for cur.Next(ctx) {
		var doc bson.M
		if err = cur.Decode(&doc); err != nil {
			log.Err(err).Str("func", "*collectionRepository.Find").Str("collection", collection).Msg("error decoding document")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		records = append(records, toRecord(doc))
	}

	if err = cur.Err(); err != nil {
		log.Err(err).Str("func", "*collectionRepository.Find").Str("collection", collection).Msg("cursor error")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return records, nil
}

func (r *collectionRepository) FindByID(ctx context.Context, collection string, id string) (models.Record, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	coll, err := r.provider.Collection(ctx, collection)
	if err != nil {
		return nil, err
	}

	var doc bson.M
	if err = coll.FindOne(ctx, bson.M{models.IDField: oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrRecordNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*collectionRepository.FindByID").Str("collection", collection).Msg("error executing find one")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return toRecord(doc), nil
}

// InsertMany stores every record in one batch. Atomicity of the batch is
// whatever the document store's insert-many provides.
func (r *collectionRepository) InsertMany(ctx context.Context, collection string, records []models.Record) ([]models.Record, error) {
	log := logger.FromContext(ctx)

	coll, err := r.provider.Collection(ctx, collection)
	if err != nil {
		return nil, err
	}

	docs := make([]any, 0, len(records))
	for _, record := range records {
		docs = append(docs, toDocument(record))
	}

	res, err := coll.InsertMany(ctx, docs)
	if err != nil {
		log.Err(err).Str("func", "*collectionRepository.InsertMany").Str("collection", collection).Msg("error inserting documents")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	inserted := make([]models.Record, 0, len(records))
	for i, record := range records {
		oid, ok := res.InsertedIDs[i].(primitive.ObjectID)
		if !ok {
			log.Error().Str("func", "*collectionRepository.InsertMany").Str("collection", collection).Msgf("unexpected inserted id %T", res.InsertedIDs[i])
			return nil, ErrUnexpectedInsertID
		}
		inserted = append(inserted, record.WithID(oid.Hex()))
	}

	return inserted, nil
}

// UpdateByID applies fields with $set, leaving every other stored field
// untouched. An empty field set performs no write.
func (r *collectionRepository) UpdateByID(ctx context.Context, collection string, id string, fields models.Record) (models.Record, error) {
	fields = fields.WithoutID()
	if len(fields) == 0 {
		return r.FindByID(ctx, collection, id)
	}

	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	coll, err := r.provider.Collection(ctx, collection)
	if err != nil {
		return nil, err
	}

	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetUpsert(false)

	var doc bson.M
	err = coll.FindOneAndUpdate(ctx, bson.M{models.IDField: oid}, bson.M{"$set": bson.M(fields)}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrRecordNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*collectionRepository.UpdateByID").Str("collection", collection).Msg("error updating document")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return toRecord(doc), nil
}

func (r *collectionRepository) DeleteByIDs(ctx context.Context, collection string, ids []string) (int64, error) {
	oids, err := objectIDs(ids)
	if err != nil {
		return 0, err
	}

	coll, err := r.provider.Collection(ctx, collection)
	if err != nil {
		return 0, err
	}

	res, err := coll.DeleteMany(ctx, bson.M{models.IDField: bson.M{"$in": oids}})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*collectionRepository.DeleteByIDs").Str("collection", collection).Msg("error deleting documents")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return res.DeletedCount, nil
}

func (r *collectionRepository) Count(ctx context.Context, collection string) (int64, error) {
	coll, err := r.provider.Collection(ctx, collection)
	if err != nil {
		return 0, err
	}

	n, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*collectionRepository.Count").Str("collection", collection).Msg("error counting documents")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return n, nil
}
