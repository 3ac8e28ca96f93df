package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/arc-portal/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldFileName targets the attachment file name of an upload.
	FieldFileName = "file_name"

	// FieldData targets the base64 payload of an upload.
	FieldData = "data"

	// FieldEmail targets the login identifier of a credential pair.
	FieldEmail = "email"

	// FieldPassword targets the plain-text password of a credential pair.
	FieldPassword = "password"

	// FieldPasswordLength limits the password to what bcrypt can hash.
	FieldPasswordLength = "password_length"
)

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

// RequestValidator implements Validator for the inbound request models of
// the portal: attachment uploads and login/registration credentials.
//
// Both value and pointer forms are accepted. Blank means empty after
// trimming surrounding whitespace, except for passwords, which are taken
// verbatim.
type RequestValidator struct{}

// NewRequestValidator constructs a RequestValidator and returns it as the
// Validator interface.
func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches on the dynamic type of obj.
//
// Supported types:
//   - models.UploadRequest / *models.UploadRequest
//   - models.User / *models.User (credentials)
//
// Returns ErrUnsupportedType for anything else.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UploadRequest:
		return v.validateUploadRequest(ctx, value, fields...)
	case *models.UploadRequest:
		return v.validateUploadRequest(ctx, *value, fields...)

	case models.User:
		return v.validateCredentials(ctx, value, fields...)
	case *models.User:
		return v.validateCredentials(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateUploadRequest checks FileName and Data by default.
func (v *RequestValidator) validateUploadRequest(_ context.Context, req models.UploadRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFileName, FieldData}
	}

	for _, f := range fields {
		switch f {
		case FieldFileName:
			if strings.TrimSpace(req.FileName) == "" {
				return ErrEmptyFileName
			}
		case FieldData:
			if strings.TrimSpace(req.Data) == "" {
				return ErrEmptyData
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateCredentials checks Email and Password by default.
func (v *RequestValidator) validateCredentials(_ context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if strings.TrimSpace(user.Email) == "" {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if user.Password == "" {
				return ErrEmptyPassword
			}
		case FieldPasswordLength:
			if len(user.Password) > MaxPasswordBytes {
				return ErrPasswordTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
