package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// NewClimateCmd creates the "climate" subcommand for design-condition
// lookups.
func NewClimateCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "climate <location>",
		Short: "Look up climate zone and design temperatures for a location",
		Long: `Resolve a location key (ZIP code or IECC zone label) to its climate zone,
99% heating and 1% cooling design temperatures, and humidity data.

Examples:
  loadcalc climate 80301
  loadcalc climate 4A --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			provider, err := buildProvider(cfg)
			if err != nil {
				return err
			}

			record, err := provider.Lookup(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if output == "json" {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(record)
			}

			fmt.Fprint(cmd.OutOrStdout(), RenderClimate(record))
			return nil
		},
	}

	cmd.Flags().StringVar(&output, "output", "table", "output format (table, json)")

	return cmd
}
