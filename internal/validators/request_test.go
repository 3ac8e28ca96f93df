package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/arc-portal/models"
	"github.com/stretchr/testify/require"
)

func TestNewRequestValidator(t *testing.T) {
	require.NotNil(t, NewRequestValidator())
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, "a string"), ErrUnsupportedType)
	})

	t.Run("UploadRequest value", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, models.UploadRequest{FileName: "a.pdf", Data: "AAEC"}))
	})

	t.Run("UploadRequest pointer", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, &models.UploadRequest{FileName: "a.pdf", Data: "AAEC"}))
	})

	t.Run("User value", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, models.User{Email: "a@x.io", Password: "pw"}))
	})

	t.Run("User pointer", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, &models.User{Email: "a@x.io", Password: "pw"}))
	})
}

func TestValidateUploadRequest(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		req     models.UploadRequest
		fields  []string
		wantErr error
	}{
		{name: "valid", req: models.UploadRequest{FileName: "r.pdf", Data: "AAEC"}},
		{name: "blank file name", req: models.UploadRequest{FileName: "   ", Data: "AAEC"}, wantErr: ErrEmptyFileName},
		{name: "blank data", req: models.UploadRequest{FileName: "r.pdf", Data: " \n"}, wantErr: ErrEmptyData},
		{name: "only data checked", req: models.UploadRequest{Data: "AAEC"}, fields: []string{FieldData}},
		{name: "unknown field", req: models.UploadRequest{FileName: "r.pdf", Data: "AAEC"}, fields: []string{"size"}, wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.req, tt.fields...)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateCredentials(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		user    models.User
		fields  []string
		wantErr error
	}{
		{name: "valid", user: models.User{Email: "a@x.io", Password: "secret"}},
		{name: "blank email", user: models.User{Email: "  ", Password: "secret"}, wantErr: ErrEmptyEmail},
		{name: "empty password", user: models.User{Email: "a@x.io"}, wantErr: ErrEmptyPassword},
		{name: "whitespace password is kept", user: models.User{Email: "a@x.io", Password: "  "}},
		{name: "email only", user: models.User{Email: "a@x.io"}, fields: []string{FieldEmail}},
		{name: "long password passes default fields", user: models.User{Email: "a@x.io", Password: strings.Repeat("p", 80)}},
		{name: "password at bcrypt limit", user: models.User{Email: "a@x.io", Password: strings.Repeat("p", 72)}, fields: []string{FieldPasswordLength}},
		{name: "password over bcrypt limit", user: models.User{Email: "a@x.io", Password: strings.Repeat("p", 73)}, fields: []string{FieldEmail, FieldPassword, FieldPasswordLength}, wantErr: ErrPasswordTooLong},
		{name: "unknown field", user: models.User{Email: "a@x.io", Password: "secret"}, fields: []string{"login"}, wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.user, tt.fields...)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
