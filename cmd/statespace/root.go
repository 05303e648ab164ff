package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// defaultPuzzle is solved when no puzzle is named.
const defaultPuzzle = "fox-goose-beans"

var rootCmd = &cobra.Command{
	Use:   "statespace",
	Short: "Statespace finds shortest plans by breadth-first search",
	Long: `Statespace explores the state space of a puzzle breadth-first and prints the
shortest sequence of actions reaching its goal.

Built-in puzzles are always available; --dir adds the definitions found in a
directory (one YAML or Markdown document per puzzle).`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("dir", "", "Directory containing puzzle definitions")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().Int("workers", 1, "Goroutines expanding each search layer")
	rootCmd.PersistentFlags().String("redis-addr", "", "Redis address for shared plan storage and locking (e.g. localhost:6379)")
	rootCmd.PersistentFlags().String("plans-dir", "", "Directory where served plans are kept as JSON files")
	rootCmd.PersistentFlags().Duration("redis-ttl", 0, "Expiration of plans stored in Redis (0 keeps them)")
}
