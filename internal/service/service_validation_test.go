package service

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/arc-portal/internal/mock"
	"github.com/MKhiriev/arc-portal/internal/validators"
	"github.com/MKhiriev/arc-portal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuthValidationService_RejectsBeforeInner(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockAuthService(ctrl)
	svc := NewAuthValidationService().Wrap(inner)

	_, err := svc.Register(context.Background(), models.User{Email: " "})
	require.ErrorIs(t, err, ErrEmailAndPasswordRequired)
	require.ErrorIs(t, err, validators.ErrEmptyEmail)

	_, err = svc.Login(context.Background(), models.User{Email: "a@x.io"})
	require.ErrorIs(t, err, ErrEmailAndPasswordRequired)
	require.ErrorIs(t, err, validators.ErrEmptyPassword)
}

func TestAuthValidationService_PasswordLength(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockAuthService(ctrl)
	svc := NewAuthValidationService().Wrap(inner)
	ctx := context.Background()

	long := models.User{Email: "a@x.io", Password: strings.Repeat("p", 80)}

	_, err := svc.Register(ctx, long)
	require.ErrorIs(t, err, ErrPasswordTooLong)
	require.ErrorIs(t, err, validators.ErrPasswordTooLong)
	assert.NotErrorIs(t, err, ErrEmailAndPasswordRequired)

	// Login still reaches the credential check so the 401 stays uniform.
	inner.EXPECT().Login(ctx, long).Return(models.Token{}, ErrInvalidCredentials)
	_, err = svc.Login(ctx, long)
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthValidationService_Delegates(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockAuthService(ctrl)
	svc := NewAuthValidationService().Wrap(inner)
	ctx := context.Background()

	user := models.User{Email: "a@x.io", Password: "pw"}
	inner.EXPECT().Register(ctx, user).Return(models.User{UserID: 1}, nil)
	inner.EXPECT().Login(ctx, user).Return(models.Token{UserID: 1}, nil)
	inner.EXPECT().ParseToken(ctx, "raw").Return(models.Token{UserID: 1}, nil)

	registered, err := svc.Register(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, int64(1), registered.UserID)

	_, err = svc.Login(ctx, user)
	require.NoError(t, err)

	_, err = svc.ParseToken(ctx, "raw")
	require.NoError(t, err)
}

func TestAttachmentValidationService(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockAttachmentService(ctrl)
	svc := NewAttachmentValidationService().Wrap(inner)
	ctx := context.Background()

	_, err := svc.Upload(ctx, models.UploadRequest{FileName: "a.pdf"})
	require.ErrorIs(t, err, ErrFileNameAndDataRequired)

	req := models.UploadRequest{FileName: "a.pdf", Data: "AAEC"}
	query := models.AttachmentQuery{TestRef: "T-1"}
	inner.EXPECT().Upload(ctx, req).Return(models.Attachment{ID: validID}, nil)
	inner.EXPECT().Download(ctx, query).Return(models.Attachment{ID: validID}, []byte{1}, nil)
	inner.EXPECT().List(ctx).Return(nil, nil)

	uploaded, err := svc.Upload(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, validID, uploaded.ID)

	_, payload, err := svc.Download(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, []byte{1}, payload)

	_, err = svc.List(ctx)
	require.NoError(t, err)
}
