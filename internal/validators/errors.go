package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyFileName   = errors.New("file name is required")
	ErrEmptyData       = errors.New("data is required")
	ErrEmptyEmail      = errors.New("email is required")
	ErrEmptyPassword   = errors.New("password is required")
	ErrPasswordTooLong = errors.New("password exceeds 72 bytes")
)
