package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrDatabaseConnection is returned when a store connection cannot be
	// established or verified. Repositories wrap it around the driver error.
	ErrDatabaseConnection = errors.New("database connection failed")

	// ErrRecordNotFound is returned when a lookup or update targets a
	// collection record that does not exist.
	ErrRecordNotFound = errors.New("record was not found")

	// ErrInvalidID is returned when an identifier is not a valid document
	// store identifier.
	ErrInvalidID = errors.New("invalid record id")

	// ErrAttachmentNotFound is returned when no attachment matches a query.
	ErrAttachmentNotFound = errors.New("attachment was not found")

	// ErrEmailAlreadyRegistered is returned when registering a user fails
	// because the email is already taken.
	ErrEmailAlreadyRegistered = errors.New("email already registered")

	// ErrUserNotFound is returned when a query expected to match a user
	// produces an empty result set.
	ErrUserNotFound = errors.New("no user was found")
)

// Low-level operation errors. These are returned (or wrapped) by repository
// methods when a driver-level operation fails before any domain logic can be
// applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against either
	// store fails.
	ErrExecutingQuery = errors.New("error executing query")

	// ErrScanningRow is returned when scanning or decoding a single result
	// row or document fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrUnexpectedInsertID is returned when the document store reports an
	// inserted identifier that is not an ObjectID.
	ErrUnexpectedInsertID = errors.New("unexpected insert id type")
)
