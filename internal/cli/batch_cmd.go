package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hvackit/loadcalc/internal/engine/batch"
)

// BatchParams holds the batch command flags. Exported for testing.
type BatchParams struct {
	InputDir    string
	Inputs      []string
	Concurrency int
	Output      string
}

// NewBatchCmd creates the "batch" subcommand: many buildings calculated
// concurrently with a per-building summary.
func NewBatchCmd() *cobra.Command {
	var params BatchParams

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Calculate loads for many buildings concurrently",
		Long: `Run the load calculation for every building JSON in a directory or an
explicit file list. Individual failures are reported per building and never
abort the batch.

Examples:
  loadcalc batch --input-dir ./buildings
  loadcalc batch --input a.json --input b.json --concurrency 8`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeBatch(cmd, params)
		},
	}

	cmd.Flags().StringVar(&params.InputDir, "input-dir", "", "directory of building JSON files")
	cmd.Flags().StringArrayVar(&params.Inputs, "input", nil, "building JSON file (repeatable)")
	cmd.Flags().IntVar(&params.Concurrency, "concurrency", 0, "concurrent calculations (default 4)")
	cmd.Flags().StringVar(&params.Output, "output", "table", "output format (table, json)")

	return cmd
}

func executeBatch(cmd *cobra.Command, params BatchParams) error {
	paths, err := collectInputPaths(params)
	if err != nil {
		return err
	}

	eng, _, err := buildEngine(cmd)
	if err != nil {
		return err
	}

	jobs := make([]batch.Job, 0, len(paths))
	for _, path := range paths {
		building, loadErr := loadBuilding(path)
		if loadErr != nil {
			return loadErr
		}
		jobs = append(jobs, batch.Job{
			Name:     strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
			Building: building,
		})
	}

	runner, err := batch.NewRunner(eng, params.Concurrency)
	if err != nil {
		return err
	}

	if isTerminal(os.Stderr) && params.Output == "table" {
		runner = runner.WithProgress(func(s batch.Snapshot) {
			fmt.Fprintf(cmd.ErrOrStderr(), "\r%d/%d buildings (%.0f%%)",
				s.Completed, s.Total, s.PercentComplete())
			if s.Done() {
				fmt.Fprintln(cmd.ErrOrStderr())
			}
		})
	}

	outcomes, err := runner.Run(cmd.Context(), jobs)
	if err != nil {
		return err
	}

	if params.Output == "json" {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(outcomes)
	}

	fmt.Fprint(cmd.OutOrStdout(), RenderBatchSummary(outcomes))
	return nil
}

// collectInputPaths resolves the flag combination to a sorted file list.
func collectInputPaths(params BatchParams) ([]string, error) {
	paths := append([]string{}, params.Inputs...)

	if params.InputDir != "" {
		matches, err := filepath.Glob(filepath.Join(params.InputDir, "*.json"))
		if err != nil {
			return nil, fmt.Errorf("listing %s: %w", params.InputDir, err)
		}
		paths = append(paths, matches...)
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("no input files: pass --input-dir or --input")
	}

	sort.Strings(paths)
	return paths, nil
}
