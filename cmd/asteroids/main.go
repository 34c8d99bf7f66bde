// asteroids is a terminal Asteroids game with a deterministic simulation core.
//
// Usage:
//
//	asteroids play            - Play in the terminal
//	asteroids sim             - Run the CPU pilot headless
//	asteroids replay <id>     - Re-simulate a recorded run and verify it
//	asteroids runs            - List recorded runs
//	asteroids config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--db <path>      - Set run journal path (default: ~/.asteroids/runs.db)
//	--config <path>  - Use a custom config YAML
//	--log <path>     - Write logs to a file
//	--debug          - Debug logging; panic on simulation invariant violations
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogPath string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "asteroids",
	Short: "Asteroids - a wrapped-space shooter in your terminal",
	Long: `Asteroids is a terminal take on the classic arcade shooter.

Steer the ship, shoot the rocks, and survive the waves. Every run is
driven by a seeded simulation, so recorded runs can be replayed exactly.

Available commands:
  play     - Play in the terminal
  sim      - Run the CPU pilot without a terminal UI
  replay   - Re-simulate a recorded run and verify its result
  runs     - List recorded runs
  config   - Print the effective configuration

Examples:
  asteroids play
  asteroids play --seed 42 --record
  asteroids sim --ticks 36000 --record
  asteroids replay 3
  asteroids config --default`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to the run journal database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Debug logging; panic on invariant violations")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(configCmd)
}
