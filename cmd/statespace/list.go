package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available puzzles",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, _, err := loadRegistry(cmd.Context(), cmd)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for _, p := range reg.List() {
			fmt.Fprintf(w, "%s\t%s\n", p.ID, p.Summary)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
