package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	loamadapter "github.com/aretw0/statespace/pkg/adapters/loam"
	"github.com/aretw0/statespace/pkg/registry"
)

var validateCmd = &cobra.Command{
	Use:   "validate [dir]",
	Short: "Check the puzzle definitions of a directory",
	Long:  `Decodes every definition of the directory and reports the ones that are not valid puzzles.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("dir")
		if len(args) > 0 {
			dir = args[0]
		}
		if dir == "" {
			dir = "."
		}

		loader, err := loamadapter.Open(dir)
		if err != nil {
			return err
		}
		ids, err := loader.ListDefinitions(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		var failed []error
		for _, id := range ids {
			raw, err := loader.GetDefinition(cmd.Context(), id)
			if err == nil {
				_, err = registry.Decode(id, raw)
			}
			if err != nil {
				fmt.Fprintf(out, "✗ %s: %v\n", id, err)
				failed = append(failed, err)
				continue
			}
			fmt.Fprintf(out, "✓ %s\n", id)
		}

		if len(failed) > 0 {
			return fmt.Errorf("%d of %d definitions are invalid: %w", len(failed), len(ids), errors.Join(failed...))
		}
		fmt.Fprintf(out, "All %d definitions are valid!\n", len(ids))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
