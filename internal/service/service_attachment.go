package service

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"time"
	"unicode"

	"github.com/MKhiriev/arc-portal/internal/config"
	"github.com/MKhiriev/arc-portal/internal/logger"
	"github.com/MKhiriev/arc-portal/internal/store"
	"github.com/MKhiriev/arc-portal/models"
)

// base64Encodings lists the accepted payload alphabets in the order they
// are tried.
var base64Encodings = []*base64.Encoding{
	base64.StdEncoding,
	base64.RawStdEncoding,
	base64.URLEncoding,
	base64.RawURLEncoding,
}

// attachmentService is the concrete implementation of AttachmentService.
// Payloads are persisted as padded standard base64 regardless of the
// alphabet they were uploaded in.
type attachmentService struct {
	repository store.AttachmentRepository

	// maxUploadBytes is the ceiling on the decoded payload size.
	maxUploadBytes int64

	now func() time.Time

	logger *logger.Logger
}

// NewAttachmentService constructs an AttachmentService enforcing the upload
// ceiling from cfg.
func NewAttachmentService(repository store.AttachmentRepository, cfg config.Files, logger *logger.Logger) AttachmentService {
	return &attachmentService{
		repository:     repository,
		maxUploadBytes: cfg.MaxUploadBytes,
		now:            time.Now,
		logger:         logger,
	}
}

// Upload decodes and stores one attachment.
//
// Returns:
//   - ErrFileNameAndDataRequired if the file name or payload is blank.
//   - ErrInvalidBase64 if the payload does not decode.
//   - ErrFileTooLarge if the decoded payload exceeds the ceiling. Nothing is stored.
//   - ErrStoreDocument (or ErrDatabaseConnection) on repository failure.
func (s *attachmentService) Upload(ctx context.Context, req models.UploadRequest) (models.Attachment, error) {
	log := logger.FromContext(ctx)

	fileName := strings.TrimSpace(req.FileName)
	data := strings.TrimSpace(req.Data)
	if fileName == "" || data == "" {
		return models.Attachment{}, ErrFileNameAndDataRequired
	}

	payload, err := decodeBase64(data)
	if err != nil {
		return models.Attachment{}, ErrInvalidBase64
	}

	size := int64(len(payload))
	if size > s.maxUploadBytes {
		log.Warn().Str("func", "*attachmentService.Upload").Int64("size", size).Int64("limit", s.maxUploadBytes).Msg("upload rejected")
		return models.Attachment{}, ErrFileTooLarge
	}

	contentType := strings.TrimSpace(req.ContentType)
	if contentType == "" {
		contentType = models.DefaultAttachmentContentType
	}

	var testRef *string
	if ref := strings.TrimSpace(req.TestRef); ref != "" {
		testRef = &ref
	}

	stored, err := s.repository.Save(ctx, models.Attachment{
		FileName:    fileName,
		TestRef:     testRef,
		ContentType: contentType,
		Data:        base64.StdEncoding.EncodeToString(payload),
		SizeBytes:   size,
		UploadedAt:  s.now().UTC(),
	})
	if err != nil {
		log.Err(err).Str("func", "*attachmentService.Upload").Str("fileName", fileName).Msg("error storing attachment")
		return models.Attachment{}, storeFailure(err, ErrStoreDocument)
	}

	log.Info().Str("func", "*attachmentService.Upload").Str("id", stored.ID).Int64("size", size).Msg("attachment stored")
	return stored, nil
}

// Download resolves query to the newest matching attachment. An attachment
// without payload is reported as not found.
func (s *attachmentService) Download(ctx context.Context, query models.AttachmentQuery) (models.Attachment, []byte, error) {
	if query.ID != "" && !store.IsValidID(query.ID) {
		return models.Attachment{}, nil, ErrInvalidDocumentID
	}
	if query.ID == "" && query.TestRef == "" {
		return models.Attachment{}, nil, ErrDocumentNotFound
	}

	attachment, err := s.repository.FindLatest(ctx, query)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrAttachmentNotFound):
			return models.Attachment{}, nil, ErrDocumentNotFound
		case errors.Is(err, store.ErrInvalidID):
			return models.Attachment{}, nil, ErrInvalidDocumentID
		}
		logger.FromContext(ctx).Err(err).Str("func", "*attachmentService.Download").Any("query", query).Msg("error fetching attachment")
		return models.Attachment{}, nil, storeFailure(err, ErrFetchDocument)
	}

	if attachment.Data == "" {
		return models.Attachment{}, nil, ErrDocumentNotFound
	}

	payload, err := decodeBase64(attachment.Data)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*attachmentService.Download").Str("id", attachment.ID).Msg("stored payload is not base64")
		return models.Attachment{}, nil, ErrFetchDocument
	}

	if attachment.ContentType == "" {
		attachment.ContentType = models.DefaultAttachmentContentType
	}

	return attachment, payload, nil
}

func (s *attachmentService) List(ctx context.Context) ([]models.Attachment, error) {
	attachments, err := s.repository.List(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*attachmentService.List").Msg("error listing attachments")
		return nil, storeFailure(err, ErrListDocuments)
	}

	return attachments, nil
}

// decodeBase64 accepts standard and URL-safe alphabets, padded or raw.
// Embedded whitespace such as MIME line breaks is ignored.
func decodeBase64(data string) ([]byte, error) {
	data = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, data)

	var err error
	for _, enc := range base64Encodings {
		var payload []byte
		if payload, err = enc.DecodeString(data); err == nil {
			return payload, nil
		}
	}
	return nil, err
}
