package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// CalcParams holds the calc command flags. Exported for testing.
type CalcParams struct {
	InputPath string
	Output    string
}

// NewCalcCmd creates the "calc" subcommand: one building in, one load
// report out.
func NewCalcCmd() *cobra.Command {
	var params CalcParams

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate heating/cooling loads for a building",
		Long: `Run the Manual J load calculation for one building description.

The input file carries the building's location, declared area, story count,
room list, and options (duct configuration, heating fuel, construction
vintage, optional extracted envelope data).

Examples:
  loadcalc calc --input building.json
  loadcalc calc --input building.json --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeCalc(cmd, params)
		},
	}

	cmd.Flags().StringVar(&params.InputPath, "input", "", "path to building JSON (required)")
	cmd.Flags().StringVar(&params.Output, "output", "table", "output format (table, json)")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func executeCalc(cmd *cobra.Command, params CalcParams) error {
	if params.Output != "table" && params.Output != "json" {
		return fmt.Errorf("unknown output format %q (want table or json)", params.Output)
	}

	building, err := loadBuilding(params.InputPath)
	if err != nil {
		return err
	}

	eng, _, err := buildEngine(cmd)
	if err != nil {
		return err
	}

	result, err := eng.Calculate(cmd.Context(), building)
	if err != nil {
		return err
	}

	if params.Output == "json" {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	}

	fmt.Fprint(cmd.OutOrStdout(), RenderResult(result))
	return nil
}
