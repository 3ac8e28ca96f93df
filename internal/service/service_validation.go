package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/arc-portal/internal/validators"
	"github.com/MKhiriev/arc-portal/models"
)

// AuthValidationService rejects incomplete credentials before they reach
// the wrapped AuthService.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewRequestValidator(),
	}
}

// Register additionally bounds the password length; Login does not, so an
// over-long wrong password still fails as invalid credentials.
func (v *AuthValidationService) Register(ctx context.Context, user models.User) (models.User, error) {
	err := v.validator.Validate(ctx, user, validators.FieldEmail, validators.FieldPassword, validators.FieldPasswordLength)
	if errors.Is(err, validators.ErrPasswordTooLong) {
		return models.User{}, fmt.Errorf("%w: %w", ErrPasswordTooLong, err)
	}
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrEmailAndPasswordRequired, err)
	}

	return v.inner.Register(ctx, user)
}

func (v *AuthValidationService) Login(ctx context.Context, user models.User) (models.Token, error) {
	if err := v.validator.Validate(ctx, user); err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrEmailAndPasswordRequired, err)
	}

	return v.inner.Login(ctx, user)
}

func (v *AuthValidationService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return v.inner.ParseToken(ctx, tokenString)
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.inner = inner
	return v
}

// AttachmentValidationService rejects uploads without a file name or
// payload before they reach the wrapped AttachmentService.
type AttachmentValidationService struct {
	inner     AttachmentService
	validator validators.Validator
}

func NewAttachmentValidationService() AttachmentServiceWrapper {
	return &AttachmentValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *AttachmentValidationService) Upload(ctx context.Context, req models.UploadRequest) (models.Attachment, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Attachment{}, fmt.Errorf("%w: %w", ErrFileNameAndDataRequired, err)
	}

	return v.inner.Upload(ctx, req)
}

func (v *AttachmentValidationService) Download(ctx context.Context, query models.AttachmentQuery) (models.Attachment, []byte, error) {
	return v.inner.Download(ctx, query)
}

func (v *AttachmentValidationService) List(ctx context.Context) ([]models.Attachment, error) {
	return v.inner.List(ctx)
}

func (v *AttachmentValidationService) Wrap(inner AttachmentService) AttachmentService {
	v.inner = inner
	return v
}
