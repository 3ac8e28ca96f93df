package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=AuthServiceWrapper,AttachmentServiceWrapper

import (
	"context"

	"github.com/MKhiriev/arc-portal/models"
)

// CollectionService exposes CRUD over one named collection. Instances are
// parameterized by value: a collection name plus an optional fixed filter
// applied to every read.
type CollectionService interface {
	// Name returns the underlying collection name.
	Name() string

	List(ctx context.Context) ([]models.Record, error)
	Create(ctx context.Context, records []models.Record) ([]models.Record, error)
	Update(ctx context.Context, record models.Record) (models.Record, error)
	Delete(ctx context.Context, req models.DeleteRequest) (int64, error)
}

// AttachmentService stores and serves base64 document attachments.
type AttachmentService interface {
	Upload(ctx context.Context, req models.UploadRequest) (models.Attachment, error)

	// Download returns the newest attachment matching query together with its
	// decoded payload.
	Download(ctx context.Context, query models.AttachmentQuery) (models.Attachment, []byte, error)

	// List returns attachment metadata, newest first, without payloads.
	List(ctx context.Context) ([]models.Attachment, error)
}

type AuthService interface {
	Register(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// AuthServiceWrapper defines middleware composition for AuthService.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// AttachmentServiceWrapper defines middleware composition for AttachmentService.
type AttachmentServiceWrapper interface {
	Wrap(AttachmentService) AttachmentService
}
