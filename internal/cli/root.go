// Package cli implements the loadcalc command tree: per-building
// calculation, climate lookups, batch runs, and the interactive browser.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// NewRootCmd creates the root Cobra command for the loadcalc CLI.
func NewRootCmd(ver string) *cobra.Command {
	var cleanup func() error

	cmd := &cobra.Command{
		Use:     "loadcalc",
		Short:   "Manual J residential load calculation",
		Long:    "loadcalc: calculate residential heating/cooling loads and size HVAC equipment",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			cleanup, err = setupLogging(cmd)
			return err
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if cleanup != nil {
				return cleanup()
			}
			return nil
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "path to config YAML (default: $LOADCALC_CONFIG or none)")

	cmd.AddCommand(NewCalcCmd(), NewClimateCmd(), NewBatchCmd(), NewTUICmd())

	return cmd
}

const rootCmdExample = `  # Calculate loads for one building
  loadcalc calc --input building.json

  # JSON output for downstream tooling
  loadcalc calc --input building.json --output json

  # Look up climate design conditions
  loadcalc climate 80301

  # Calculate a directory of buildings concurrently
  loadcalc batch --input-dir ./buildings --concurrency 8

  # Browse a result interactively
  loadcalc tui --input building.json`
