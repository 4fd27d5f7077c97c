package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/hvackit/loadcalc/internal/tui"
)

// NewTUICmd creates the "tui" subcommand: an interactive room-by-room
// browser over a calculation result.
func NewTUICmd() *cobra.Command {
	var inputPath string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Browse a load calculation interactively",
		Long: `Calculate loads for a building and browse the per-room results in an
interactive terminal UI. Select a room to see its full component breakdown.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isTerminal(os.Stdout) {
				return fmt.Errorf("tui requires an interactive terminal")
			}

			building, err := loadBuilding(inputPath)
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

			program := tea.NewProgram(tui.NewBrowser(result), tea.WithAltScreen())
			_, err = program.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "path to building JSON (required)")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
