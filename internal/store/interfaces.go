package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/arc-portal/models"
	"go.mongodb.org/mongo-driver/mongo"
)

// CollectionRepository gives schemaless access to any named collection of the
// document store. Records cross this interface with string identifiers only.
type CollectionRepository interface {
	// Find returns every record of collection matching filter. A nil filter
	// matches every record.
	Find(ctx context.Context, collection string, filter models.Filter) ([]models.Record, error)

	// FindByID returns one record by identifier or [ErrRecordNotFound].
	FindByID(ctx context.Context, collection string, id string) (models.Record, error)

	// InsertMany stores records in one batch and returns them with their
	// assigned identifiers, in input order.
	InsertMany(ctx context.Context, collection string, records []models.Record) ([]models.Record, error)

	// UpdateByID sets the given fields on an existing record and returns the
	// record as stored after the update. It never creates a record.
	UpdateByID(ctx context.Context, collection string, id string, fields models.Record) (models.Record, error)

	// DeleteByIDs removes every record whose identifier is in ids and
	// reports how many were removed.
	DeleteByIDs(ctx context.Context, collection string, ids []string) (int64, error)

	// Count reports the number of records in collection.
	Count(ctx context.Context, collection string) (int64, error)
}

// AttachmentRepository persists uploaded attachments.
type AttachmentRepository interface {
	// Save stores attachment and returns it with its assigned identifier.
	Save(ctx context.Context, attachment models.Attachment) (models.Attachment, error)

	// FindLatest returns the newest attachment matching query, payload
	// included, or [ErrAttachmentNotFound].
	FindLatest(ctx context.Context, query models.AttachmentQuery) (models.Attachment, error)

	// List returns attachment metadata without payloads, newest first.
	List(ctx context.Context) ([]models.Attachment, error)
}

// UserRepository persists portal accounts in the relational credential store.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// CollectionProvider hands out document store collections, connecting on
// first use when needed.
type CollectionProvider interface {
	Collection(ctx context.Context, name string) (*mongo.Collection, error)
}
