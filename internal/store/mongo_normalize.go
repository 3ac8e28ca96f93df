package store

import (
	"fmt"
	"time"

	"github.com/MKhiriev/arc-portal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IsValidID reports whether id has the shape of a document store identifier
// (24 hexadecimal characters).
func IsValidID(id string) bool {
	return primitive.IsValidObjectID(id)
}

func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return oid, nil
}

func objectIDs(ids []string) ([]primitive.ObjectID, error) {
	out := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := objectID(id)
		if err != nil {
			return nil, err
		}
		out = append(out, oid)
	}
	return out, nil
}

// toRecord converts a decoded document into a [models.Record]. Every store
// specific value is replaced by its plain equivalent, so identifiers leave
// the store as hex strings and dates as time.Time.
func toRecord(doc bson.M) models.Record {
	out := make(models.Record, len(doc))
	for k, v := range doc {
		out[k] = plainValue(v)
	}
	return out
}

func plainValue(v any) any {
	switch value := v.(type) {
	case primitive.ObjectID:
		return value.Hex()
	case primitive.DateTime:
		return value.Time().UTC()
	case bson.M:
		return map[string]any(toRecord(value))
	case primitive.D:
		return map[string]any(toRecord(value.Map()))
	case primitive.A:
		out := make([]any, len(value))
		for i, item := range value {
			out[i] = plainValue(item)
		}
		return out
	default:
		return value
	}
}

// toDocument converts a record into an insertable document. The identifier
// is always stripped; the store assigns its own.
func toDocument(record models.Record) bson.M {
	return bson.M(record.WithoutID())
}

func toFilter(filter models.Filter) bson.M {
	if filter == nil {
		return bson.M{}
	}
	return bson.M(filter)
}

// attachmentDocument is the stored shape of an attachment.
type attachmentDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	DocType     string             `bson:"docType"`
	FileName    string             `bson:"fileName"`
	TestRef     *string            `bson:"testRef"`
	ContentType string             `bson:"contentType"`
	Data        string             `bson:"data,omitempty"`
	SizeBytes   int64              `bson:"sizeBytes"`
	UploadedAt  time.Time          `bson:"uploadedAt"`
}

func newAttachmentDocument(a models.Attachment) attachmentDocument {
	return attachmentDocument{
		DocType:     models.AttachmentDocType,
		FileName:    a.FileName,
		TestRef:     a.TestRef,
		ContentType: a.ContentType,
		Data:        a.Data,
		SizeBytes:   a.SizeBytes,
		UploadedAt:  a.UploadedAt,
	}
}

func (d attachmentDocument) toModel() models.Attachment {
	return models.Attachment{
		ID:          d.ID.Hex(),
		FileName:    d.FileName,
		TestRef:     d.TestRef,
		ContentType: d.ContentType,
		Data:        d.Data,
		SizeBytes:   d.SizeBytes,
		UploadedAt:  d.UploadedAt.UTC(),
	}
}
