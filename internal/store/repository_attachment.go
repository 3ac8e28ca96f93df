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

// newestFirst orders attachments by upload time, latest first.
var newestFirst = bson.D{{Key: "uploadedAt", Value: -1}}

type attachmentRepository struct {
	provider   CollectionProvider
	collection string
	logger     *logger.Logger
}

// NewAttachmentRepository constructs an [AttachmentRepository] storing
// attachments in the named collection.
func NewAttachmentRepository(provider CollectionProvider, collection string, logger *logger.Logger) AttachmentRepository {
	logger.Debug().Str("collection", collection).Msg("creating attachment repository")
	return &attachmentRepository{
		provider:   provider,
		collection: collection,
		logger:     logger,
	}
}

func (r *attachmentRepository) Save(ctx context.Context, attachment models.Attachment) (models.Attachment, error) {
	coll, err := r.provider.Collection(ctx, r.collection)
	if err != nil {
		return models.Attachment{}, err
	}

	res, err := coll.InsertOne(ctx, newAttachmentDocument(attachment))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*attachmentRepository.Save").Msg("error inserting attachment")
		return models.Attachment{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return models.Attachment{}, ErrUnexpectedInsertID
	}

	attachment.ID = oid.Hex()
	return attachment, nil
}

// FindLatest matches by identifier when query.ID is set and by reference
// otherwise. Among several matches the newest upload wins.
func (r *attachmentRepository) FindLatest(ctx context.Context, query models.AttachmentQuery) (models.Attachment, error) {
	filter := bson.M{"docType": models.AttachmentDocType}
	if query.ID != "" {
		oid, err := objectID(query.ID)
		if err != nil {
			return models.Attachment{}, err
		}
		filter[models.IDField] = oid
	} else {
		filter["testRef"] = query.TestRef
	}

	coll, err := r.provider.Collection(ctx, r.collection)
	if err != nil {
		return models.Attachment{}, err
	}

	var doc attachmentDocument
	err = coll.FindOne(ctx, filter, options.FindOne().SetSort(newestFirst)).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Attachment{}, ErrAttachmentNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*attachmentRepository.FindLatest").Msg("error fetching attachment")
		return models.Attachment{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return doc.toModel(), nil
}

func (r *attachmentRepository) List(ctx context.Context) ([]models.Attachment, error) {
	log := logger.FromContext(ctx)

	coll, err := r.provider.Collection(ctx, r.collection)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetProjection(bson.M{"data": 0}).
		SetSort(newestFirst)

	cur, err := coll.Find(ctx, bson.M{"docType": models.AttachmentDocType}, opts)
	if err != nil {
		log.Err(err).Str("func", "*attachmentRepository.List").Msg("error listing attachments")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer cur.Close(ctx)

	var docs []attachmentDocument
	if err = cur.All(ctx, &docs); err != nil {
		log.Err(err).Str("func", "*attachmentRepository.List").Msg("error decoding attachments")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	attachments := make([]models.Attachment, 0, len(docs))
	for _, doc := range docs {
		attachments = append(attachments, doc.toModel())
	}

	return attachments, nil
}
