package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/statespace/internal/presentation/tui"
	"github.com/aretw0/statespace/pkg/domain"
	"github.com/aretw0/statespace/pkg/observability"
	"github.com/aretw0/statespace/pkg/registry"
)

var solveCmd = &cobra.Command{
	Use:   "solve [puzzle]",
	Short: "Solve a puzzle and print the plan",
	Long: `Searches the puzzle breadth-first, printing every state as it is discovered
("Added: <index>: <state>"), then prints the shortest plan or reports that the
goal cannot be reached.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := defaultPuzzle
		if len(args) > 0 {
			id = args[0]
		}
		quiet, _ := cmd.Flags().GetBool("quiet")
		trace, _ := cmd.Flags().GetBool("trace")
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

		out := cmd.OutOrStdout()
		opts := registry.SolveOptions{Logger: logger, Workers: workers}
		if !quiet {
			opts.Hooks = tui.ProgressHooks(out)
		}
		if trace {
			opts.Hooks = domain.MergeHooks(opts.Hooks, observability.LogHooks(logger))
		}

		report, err := puzzle.Solve(cmd.Context(), opts)
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}

		if !quiet {
			fmt.Fprintln(out)
		}
		if tui.IsTerminal(os.Stdout) && out == os.Stdout {
			rendered, err := tui.NewRenderer()(tui.ReportMarkdown(report))
			if err == nil {
				fmt.Fprint(out, rendered)
				return nil
			}
		}
		fmt.Fprint(out, tui.ReportText(report))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().BoolP("quiet", "q", false, "Do not print discovered states")
	solveCmd.Flags().Bool("trace", false, "Log every transition (use with --log-level debug)")
}
