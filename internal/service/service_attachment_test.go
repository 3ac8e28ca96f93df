package service

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/arc-portal/internal/config"
	"github.com/MKhiriev/arc-portal/internal/logger"
	"github.com/MKhiriev/arc-portal/internal/mock"
	"github.com/MKhiriev/arc-portal/internal/store"
	"github.com/MKhiriev/arc-portal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func newTestAttachmentSvc(t *testing.T, maxBytes int64) (*attachmentService, *mock.MockAttachmentRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockAttachmentRepository(ctrl)

	svc := NewAttachmentService(repo, config.Files{MaxUploadBytes: maxBytes}, logger.Nop()).(*attachmentService)
	svc.now = func() time.Time { return fixedNow }

	return svc, repo
}

// ── Upload ───────────────────────────────────────────────────────────────────

func TestAttachmentService_Upload_Success(t *testing.T) {
	svc, repo := newTestAttachmentSvc(t, 1024)
	ctx := context.Background()

	payload := []byte("%PDF-1.7 report")

	repo.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, a models.Attachment) (models.Attachment, error) {
			assert.Equal(t, "report.pdf", a.FileName)
			require.NotNil(t, a.TestRef)
			assert.Equal(t, "T-100", *a.TestRef)
			assert.Equal(t, models.DefaultAttachmentContentType, a.ContentType)
			assert.Equal(t, base64.StdEncoding.EncodeToString(payload), a.Data)
			assert.Equal(t, int64(len(payload)), a.SizeBytes)
			assert.Equal(t, fixedNow, a.UploadedAt)
			a.ID = validID
			return a, nil
		},
	)

	got, err := svc.Upload(ctx, models.UploadRequest{
		FileName: "  report.pdf ",
		TestRef:  " T-100 ",
		Data:     base64.StdEncoding.EncodeToString(payload),
	})
	require.NoError(t, err)
	assert.Equal(t, validID, got.ID)
}

func TestAttachmentService_Upload_BlankTestRefIsNull(t *testing.T) {
	svc, repo := newTestAttachmentSvc(t, 1024)

	repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a models.Attachment) (models.Attachment, error) {
			assert.Nil(t, a.TestRef)
			assert.Equal(t, "image/png", a.ContentType)
			return a, nil
		},
	)

	_, err := svc.Upload(context.Background(), models.UploadRequest{
		FileName:    "scan.png",
		TestRef:     "   ",
		ContentType: "image/png",
		Data:        "AAEC",
	})
	require.NoError(t, err)
}

func TestAttachmentService_Upload_AcceptsEncodingVariants(t *testing.T) {
	payload := []byte{0xfb, 0xff, 0xfe, 0x01}

	variants := map[string]string{
		"std":     base64.StdEncoding.EncodeToString(payload),
		"raw std": base64.RawStdEncoding.EncodeToString(payload),
		"url":     base64.URLEncoding.EncodeToString(payload),
		"raw url": base64.RawURLEncoding.EncodeToString(payload),
		"wrapped": "+//+\nAQ==",
	}

	for name, data := range variants {
		t.Run(name, func(t *testing.T) {
			svc, repo := newTestAttachmentSvc(t, 1024)
			repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, a models.Attachment) (models.Attachment, error) {
					assert.Equal(t, base64.StdEncoding.EncodeToString(payload), a.Data)
					assert.Equal(t, int64(4), a.SizeBytes)
					return a, nil
				},
			)

			_, err := svc.Upload(context.Background(), models.UploadRequest{FileName: "f.bin", Data: data})
			require.NoError(t, err)
		})
	}
}

func TestAttachmentService_Upload_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		req     models.UploadRequest
		wantErr error
	}{
		{name: "blank file name", req: models.UploadRequest{FileName: " ", Data: "AAEC"}, wantErr: ErrFileNameAndDataRequired},
		{name: "blank data", req: models.UploadRequest{FileName: "a.pdf", Data: "  "}, wantErr: ErrFileNameAndDataRequired},
		{name: "not base64", req: models.UploadRequest{FileName: "a.pdf", Data: "!!!not base64!!!"}, wantErr: ErrInvalidBase64},
		{name: "too large", req: models.UploadRequest{FileName: "a.pdf", Data: base64.StdEncoding.EncodeToString([]byte(strings.Repeat("x", 9)))}, wantErr: ErrFileTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Save is never expected: nothing may be stored.
			svc, _ := newTestAttachmentSvc(t, 8)

			_, err := svc.Upload(context.Background(), tt.req)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAttachmentService_Upload_ExactlyAtLimit(t *testing.T) {
	svc, repo := newTestAttachmentSvc(t, 8)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a models.Attachment) (models.Attachment, error) { return a, nil },
	)

	_, err := svc.Upload(context.Background(), models.UploadRequest{
		FileName: "a.pdf",
		Data:     base64.StdEncoding.EncodeToString([]byte(strings.Repeat("x", 8))),
	})
	require.NoError(t, err)
}

func TestAttachmentService_Upload_StoreErrors(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{name: "connection", repoErr: connectionError(), wantErr: ErrDatabaseConnection},
		{name: "insert", repoErr: store.ErrExecutingQuery, wantErr: ErrStoreDocument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestAttachmentSvc(t, 1024)
			repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(models.Attachment{}, tt.repoErr)

			_, err := svc.Upload(context.Background(), models.UploadRequest{FileName: "a.pdf", Data: "AAEC"})
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── Download ─────────────────────────────────────────────────────────────────

func TestAttachmentService_Download_ByID(t *testing.T) {
	svc, repo := newTestAttachmentSvc(t, 1024)
	ctx := context.Background()

	query := models.AttachmentQuery{ID: validID}
	repo.EXPECT().FindLatest(ctx, query).Return(models.Attachment{
		ID:       validID,
		FileName: "r.pdf",
		Data:     base64.StdEncoding.EncodeToString([]byte("hello")),
	}, nil)

	a, payload, err := svc.Download(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), payload)
	assert.Equal(t, models.DefaultAttachmentContentType, a.ContentType)
}

func TestAttachmentService_Download_ByTestRef(t *testing.T) {
	svc, repo := newTestAttachmentSvc(t, 1024)
	ctx := context.Background()

	query := models.AttachmentQuery{TestRef: "T-1"}
	repo.EXPECT().FindLatest(ctx, query).Return(models.Attachment{
		ID:          otherValidID,
		ContentType: "image/png",
		Data:        "AAEC",
	}, nil)

	a, payload, err := svc.Download(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 1, 2}, payload)
	assert.Equal(t, "image/png", a.ContentType)
}

func TestAttachmentService_Download_Errors(t *testing.T) {
	tests := []struct {
		name    string
		query   models.AttachmentQuery
		found   models.Attachment
		repoErr error
		noCall  bool
		wantErr error
	}{
		{name: "invalid id", query: models.AttachmentQuery{ID: "nope"}, noCall: true, wantErr: ErrInvalidDocumentID},
		{name: "empty query", query: models.AttachmentQuery{}, noCall: true, wantErr: ErrDocumentNotFound},
		{name: "not found", query: models.AttachmentQuery{ID: validID}, repoErr: store.ErrAttachmentNotFound, wantErr: ErrDocumentNotFound},
		{name: "empty payload", query: models.AttachmentQuery{TestRef: "T-1"}, found: models.Attachment{ID: validID}, wantErr: ErrDocumentNotFound},
		{name: "connection", query: models.AttachmentQuery{ID: validID}, repoErr: connectionError(), wantErr: ErrDatabaseConnection},
		{name: "query", query: models.AttachmentQuery{ID: validID}, repoErr: store.ErrExecutingQuery, wantErr: ErrFetchDocument},
		{name: "corrupt payload", query: models.AttachmentQuery{ID: validID}, found: models.Attachment{ID: validID, Data: "***"}, wantErr: ErrFetchDocument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestAttachmentSvc(t, 1024)
			if !tt.noCall {
				repo.EXPECT().FindLatest(gomock.Any(), tt.query).Return(tt.found, tt.repoErr)
			}

			_, payload, err := svc.Download(context.Background(), tt.query)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, payload)
		})
	}
}

// ── List ─────────────────────────────────────────────────────────────────────

func TestAttachmentService_List(t *testing.T) {
	svc, repo := newTestAttachmentSvc(t, 1024)
	ctx := context.Background()

	want := []models.Attachment{{ID: otherValidID}, {ID: validID}}
	repo.EXPECT().List(ctx).Return(want, nil)

	got, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestAttachmentService_List_Errors(t *testing.T) {
	svc, repo := newTestAttachmentSvc(t, 1024)
	repo.EXPECT().List(gomock.Any()).Return(nil, store.ErrExecutingQuery)

	_, err := svc.List(context.Background())
	require.ErrorIs(t, err, ErrListDocuments)
}
