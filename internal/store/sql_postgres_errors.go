package store

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// classifyPgError maps a driver error to the store's sentinel errors based
// on the PostgreSQL error code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of codes.
//
//   - 23505 unique_violation: [ErrEmailAlreadyRegistered]
//   - class 08 connection exceptions and 57P03: [ErrDatabaseConnection]
//   - anything else: [ErrExecutingQuery]
func classifyPgError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	switch {
	case pgErr.Code == pgerrcode.UniqueViolation:
		return ErrEmailAlreadyRegistered
	case pgerrcode.IsConnectionException(pgErr.Code),
		pgErr.Code == pgerrcode.CannotConnectNow:
		return fmt.Errorf("%w: %w", ErrDatabaseConnection, err)
	default:
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}
