package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// logger is shared by all subcommands; initialized in main.
var logger *zap.Logger

// rootCmd is the calgrid command tree entry point.
var rootCmd = &cobra.Command{
	Use:   "calgrid",
	Short: "Inspect, compare, and edit calibration tables",
	Long: `calgrid works with two-dimensional calibration tables stored as
hand-editable text (engine maps indexed by RPM and load).

Available subcommands:
  show   - Parse a table file and print its canonical rendering
  diff   - Compare two table files cell-by-cell
  adjust - Batch-edit the cells around an operating point
  plot   - Emit a gnuplot script for a table`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(adjustCmd)
	rootCmd.AddCommand(plotCmd)
}

func main() {
	var err error
	logger, err = zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "calgrid: logger init: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
