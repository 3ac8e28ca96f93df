package cli

import (
	"context"
	"fmt"

	"github.com/MKhiriev/arc-portal/internal/config"
	"github.com/MKhiriev/arc-portal/internal/logger"
	"github.com/MKhiriev/arc-portal/internal/seed"
	"github.com/MKhiriev/arc-portal/internal/store"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load sample records into empty collections",
	Long: `Creates the attachment collection when missing and inserts the sample
sites, tests and jobs into each of those collections that holds no records yet.`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

// seedRunner is satisfied by *seed.Seeder.
type seedRunner interface {
	Run(ctx context.Context) ([]seed.Result, error)
}

// openSeeder prepares a seeder for the document store in cfg. The returned
// function disconnects from the store.
var openSeeder = func(cfg config.Mongo, log *logger.Logger) (seedRunner, func(context.Context) error) {
	connector := store.NewMongoConnector(cfg, log)
	repository := store.NewCollectionRepository(connector, log)
	return seed.NewSeeder(repository, connector, cfg, log), connector.Disconnect
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err = cfg.Storage.Mongo.Validate(); err != nil {
		return err
	}

	ctx := cmd.Context()
	seeder, disconnect := openSeeder(cfg.Storage.Mongo, commandLogger(cmd))
	defer disconnect(context.WithoutCancel(ctx))

	results, err := seeder.Run(ctx)
	for _, r := range results {
		if r.Skipped() {
			cmd.Printf("%s already has %d records. Skipping.\n", r.Collection, r.Existing)
			continue
		}
		cmd.Printf("Inserted %d records into %s.\n", r.Inserted, r.Collection)
	}
	if err != nil {
		return fmt.Errorf("mongo seed failed: %w", err)
	}

	return nil
}
