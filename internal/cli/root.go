// Package cli implements labctl, the maintenance tool of the arc-portal
// backend. Commands run outside the server process and read the same
// configuration sources, except that flags belong to the CLI.
package cli

import (
	"context"

	"github.com/MKhiriev/arc-portal/internal/config"
	"github.com/MKhiriev/arc-portal/internal/logger"
	"github.com/MKhiriev/arc-portal/models"
	"github.com/spf13/cobra"
)

var (
	// configPath is the optional JSON configuration file.
	configPath string

	buildInfo = models.NewAppBuildInfo("", "", "")
)

var rootCmd = &cobra.Command{
	Use:   "labctl",
	Short: "Maintenance tasks for the arc-portal backend",
	Long: `labctl seeds the document store with sample records, applies credential
store migrations and checks that the dashboard spreadsheet is shared publicly.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// loadConfig reads the configuration used by commands that talk to a store.
var loadConfig = func() (*config.StructuredConfig, error) {
	return config.GetToolConfig(configPath)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a JSON configuration file")
}

// Execute runs the command named by os.Args.
func Execute(ctx context.Context, info models.AppBuildInfo) error {
	buildInfo = info
	return rootCmd.ExecuteContext(ctx)
}

// commandLogger writes human-readable log lines to the command's error
// stream.
func commandLogger(cmd *cobra.Command) *logger.Logger {
	return logger.NewConsoleLogger("labctl", cmd.ErrOrStderr())
}
