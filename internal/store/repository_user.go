package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/MKhiriev/arc-portal/internal/logger"
	"github.com/MKhiriev/arc-portal/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation and lookup against the "users" table.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts user.Email and user.PasswordHash and returns the stored
// row, including the assigned id and creation time.
//
// Error handling:
//   - unique_violation (23505) → [ErrEmailAlreadyRegistered].
//   - connection failures → wrapped [ErrDatabaseConnection].
//   - anything else → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateUserQuery(user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, err
	}

	var created models.User
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&created.UserID, &created.Email, &created.PasswordHash, &created.CreatedAt)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, classifyPgError(err)
	}

	return created, nil
}

// FindUserByEmail retrieves the account registered under email.
// A missing row is reported as [ErrUserNotFound].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserByEmailQuery(email)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error building query")
		return models.User{}, err
	}

	var found models.User
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&found.UserID, &found.Email, &found.PasswordHash, &found.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error fetching user")
		return models.User{}, classifyPgError(err)
	}

	return found, nil
}
