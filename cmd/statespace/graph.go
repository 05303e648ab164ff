package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/statespace/internal/presentation/graph"
	"github.com/aretw0/statespace/pkg/registry"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph [puzzle]",
	Short: "Export the exploration graph visualization",
	Long: `Solves the puzzle and outputs every explored state and evaluated transition,
as a Mermaid diagram (graph TD) or a Graphviz digraph. The start state is
yellow, the goal green and the solution path is outlined.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := defaultPuzzle
		if len(args) > 0 {
			id = args[0]
		}
		rawFormat, _ := cmd.Flags().GetString("format")
		format, err := graph.ParseFormat(rawFormat)
		if err != nil {
			return err
		}
		workers, _ := cmd.Flags().GetInt("workers")

		logger, err := newLogger(cmd)
		if err != nil {
			return err
		}
		reg, _, err := loadRegistry(cmd.Context(), cmd)
		if err != nil {
			return err
		}
		puzzle, err := reg.Get(id)
		if err != nil {
			return err
		}

		report, err := puzzle.Solve(cmd.Context(), registry.SolveOptions{Logger: logger, Workers: workers})
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}

		output, err := graph.Render(report, format)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().StringP("format", "f", "mermaid", "Output format: mermaid or dot")
}
