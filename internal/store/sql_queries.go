package store

import (
	"fmt"

	"github.com/MKhiriev/arc-portal/models"
	sq "github.com/Masterminds/squirrel"
)

// psql builds PostgreSQL statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var userColumns = []string{"id", "email", "password_hash", "created_at"}

func buildCreateUserQuery(user models.User) (string, []any, error) {
	query, args, err := psql.
		Insert(user.TableName()).
		Columns("email", "password_hash").
		Values(user.Email, user.PasswordHash).
		Suffix("RETURNING id, email, password_hash, created_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildFindUserByEmailQuery(email string) (string, []any, error) {
	query, args, err := psql.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
