package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/arc-portal/internal/config"
	"github.com/MKhiriev/arc-portal/internal/logger"
	"github.com/MKhiriev/arc-portal/migrations"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// DB is the relational credential store connection.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// NewConnectPostgres opens and pings the credential store described by cfg.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("%w: %w", ErrDatabaseConnection, err)
	}

	// the credential store sees two queries per login at most
	conn.SetMaxOpenConns(5)
	conn.SetMaxIdleConns(2)

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("%w: %w", ErrDatabaseConnection, err)
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return &DB{
		DB:     conn,
		logger: log,
	}, nil
}

// Migrate applies every pending schema migration.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB)
}

// MigrationStatus reports the applied state of every schema migration.
func (db *DB) MigrationStatus(ctx context.Context) error {
	return migrations.Status(ctx, db.DB)
}
