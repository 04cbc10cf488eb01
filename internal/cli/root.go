// Package cli implements the command-line front end: scramble
// generation, solving, table management, live BLE tracking, and
// benchmarking, all built on the core two-phase solver.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	dbPath    string
	verbose   bool
	composite bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "kociemba",
	Short: "Two-phase Rubik's cube scramble generator",
	Long: `kociemba generates and solves Rubik's cube scrambles using a two-phase
Kociemba-style search over precomputed coordinate move and pruning tables.

It can produce uniform random-state scrambles, solve a given scramble,
track a physical smart cube live over Bluetooth, and benchmark the
solver against a batch of random states.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "database file path (default: ~/.kociemba/kociemba.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&composite, "composite", false, "build the tighter composite phase-2 pruning tables")
}

func resolvedDBPath() string {
	return dbPath
}
