package cli

import (
	"context"
	"fmt"

	"github.com/MKhiriev/arc-portal/internal/config"
	"github.com/MKhiriev/arc-portal/internal/logger"
	"github.com/MKhiriev/arc-portal/internal/store"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending credential store migrations",
	Long:  `Applies every pending schema migration to the credential store. With --status only the applied state is reported.`,
	Args:  cobra.NoArgs,
	RunE:  runMigrate,
}

// migrateStatus is a flag for the migrate command.
var migrateStatus bool

// migrator is satisfied by *store.DB.
type migrator interface {
	Migrate(ctx context.Context) error
	MigrationStatus(ctx context.Context) error
	Close() error
}

var openMigrator = func(ctx context.Context, cfg config.DB, log *logger.Logger) (migrator, error) {
	return store.NewConnectPostgres(ctx, cfg, log)
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateStatus, "status", false, "Report migration state without applying anything")
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", config.ErrInvalidStorageConfigs)
	}

	ctx := cmd.Context()
	db, err := openMigrator(ctx, cfg.Storage.DB, commandLogger(cmd))
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if migrateStatus {
		return db.MigrationStatus(ctx)
	}

	if err = db.Migrate(ctx); err != nil {
		return err
	}

	cmd.Println("Migrations applied.")
	return nil
}
