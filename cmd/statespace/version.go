package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/statespace"
	"github.com/aretw0/statespace/internal/presentation/tui"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of statespace",
	Run: func(cmd *cobra.Command, args []string) {
		plain, _ := cmd.Flags().GetBool("plain")
		if !plain {
			tui.PrintBanner(cmd.OutOrStdout(), statespace.Version)
			return
		}
		fmt.Fprintf(cmd.OutOrStdout(), "statespace version %s\n", strings.TrimSpace(statespace.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().Bool("plain", false, "Print the version without the banner")
}
