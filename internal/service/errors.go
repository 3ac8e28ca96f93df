package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/arc-portal/internal/store"
)

// Collection errors.
var (
	ErrDatabaseConnection = errors.New("database connection failed")
	ErrFetchRecords       = errors.New("unable to fetch records")
	ErrInsertRecords      = errors.New("unable to insert record")
	ErrUpdateRecord       = errors.New("unable to update record")
	ErrDeleteRecords      = errors.New("unable to delete records")

	ErrNoRecordsToInsert = errors.New("no records to insert")
	ErrRecordIDRequired  = errors.New("record id is required")
	ErrInvalidRecordID   = errors.New("invalid record id")
	ErrRecordNotFound    = errors.New("record not found")
	ErrNoValidIDs        = errors.New("no valid ids provided")
)

// Attachment errors.
var (
	ErrFileNameAndDataRequired = errors.New("fileName and data are required")
	ErrInvalidBase64           = errors.New("data must be base64 encoded")
	ErrFileTooLarge            = errors.New("file exceeds upload size limit")
	ErrStoreDocument           = errors.New("unable to store document")
	ErrInvalidDocumentID       = errors.New("invalid document id")
	ErrDocumentNotFound        = errors.New("document not found")
	ErrFetchDocument           = errors.New("unable to fetch document")
	ErrListDocuments           = errors.New("unable to list documents")
)

// Auth errors.
var (
	ErrEmailAndPasswordRequired = errors.New("email and password are required")
	ErrPasswordTooLong          = errors.New("password is too long")
	ErrEmailAlreadyRegistered   = errors.New("email already registered")
	ErrRegistrationFailed       = errors.New("registration failed")
	ErrInvalidCredentials       = errors.New("invalid credentials")
	ErrAuthenticationFailed     = errors.New("authentication failed")
	ErrTokenIsExpiredOrInvalid  = errors.New("token is expired or invalid")
)

// storeFailure wraps a repository error with fallback, unless the store
// could not be reached at all.
func storeFailure(err, fallback error) error {
	if errors.Is(err, store.ErrDatabaseConnection) {
		return fmt.Errorf("%w: %w", ErrDatabaseConnection, err)
	}
	return fmt.Errorf("%w: %w", fallback, err)
}
