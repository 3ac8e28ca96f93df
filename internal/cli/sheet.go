package cli

import (
	"errors"
	"time"

	"github.com/MKhiriev/arc-portal/internal/sheet"
	"github.com/MKhiriev/arc-portal/internal/utils"
	"github.com/spf13/cobra"
)

var sheetCmd = &cobra.Command{
	Use:   "sheet",
	Short: "Inspect the records dashboard spreadsheet",
}

var sheetProbeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Check that the spreadsheet can be read as CSV",
	Args:  cobra.NoArgs,
	RunE:  runSheetProbe,
}

// Flags for the probe command.
var (
	sheetID      string
	sheetBaseURL string
	sheetTimeout time.Duration
)

func init() {
	sheetProbeCmd.Flags().StringVar(&sheetID, "sheet-id", sheet.DashboardSheetID, "Spreadsheet identifier")
	sheetProbeCmd.Flags().StringVar(&sheetBaseURL, "base-url", sheet.DefaultBaseURL, "Spreadsheet host")
	sheetProbeCmd.Flags().DurationVar(&sheetTimeout, "timeout", 15*time.Second, "Request timeout")

	sheetCmd.AddCommand(sheetProbeCmd)
	rootCmd.AddCommand(sheetCmd)
}

func runSheetProbe(cmd *cobra.Command, _ []string) error {
	prober := sheet.NewProber(utils.NewHTTPClient(sheetTimeout), sheetBaseURL, commandLogger(cmd))

	result, err := prober.Probe(cmd.Context(), sheetID)
	if err != nil {
		if errors.Is(err, sheet.ErrSheetPrivate) {
			cmd.PrintErrln(sheet.SharingHint)
		}
		return err
	}

	cmd.Printf("Sheet is readable: %d lines, %d bytes.\n", result.Lines, result.Bytes)
	cmd.Printf("Export URL: %s\n", result.URL)
	return nil
}
