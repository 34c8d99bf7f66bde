package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Re-simulate a recorded run and verify it",
	Long: `Load a recorded run, simulate it again from its seed, configuration
and input stream, and check that it ends in the recorded state.

Examples:
  asteroids replay 3
  asteroids replay 3 --debug`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func runReplay(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid run id %q", args[0])
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	run, err := store.Run(id)
	if err != nil {
		return err
	}
	if run == nil {
		return fmt.Errorf("run %d not found", id)
	}

	logger, closeLog, err := newLogger("asteroids-replay", os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	stats, err := replayRun(cmd.Context(), run, flagDebug)
	if err != nil {
		return err
	}
	logger.Debug("replay finished", "ticks", stats.Ticks, "games", stats.Games)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Run %d: seed %d, %d ticks, %d games, best %d\n",
		run.ID, run.Seed, stats.Ticks, stats.Games, stats.BestScore)
	if stats.FinalHash != run.FinalHash {
		return fmt.Errorf("replay diverged: hash %016x, recorded %016x", stats.FinalHash, run.FinalHash)
	}
	fmt.Fprintf(out, "Replay verified (hash %016x)\n", stats.FinalHash)
	return nil
}

// replayRun re-simulates a recorded run.
func replayRun(ctx context.Context, run *storage.Run, debug bool) (asteroids.RunStats, error) {
	cfg := config.DefaultAsteroidsConfig()
	if len(run.Config) > 0 {
		var err error
		cfg, err = config.ParseAsteroids(run.Config)
		if err != nil {
			return asteroids.RunStats{}, fmt.Errorf("run %d config: %w", run.ID, err)
		}
	}

	game := asteroids.New(cfg)
	game.Reset(core.RuntimeConfig{TickRate: flagFPS, Seed: run.Seed, Debug: debug})
	if err := game.Err(); err != nil {
		return asteroids.RunStats{}, err
	}

	src := asteroids.NewReplaySource(run.Inputs)
	runner := &asteroids.Runner{
		Game:  game,
		Ticks: asteroids.NewFixedTicks(len(run.Inputs)),
		Input: src,
	}
	stats, err := runner.Run(ctx)
	if err != nil {
		return stats, fmt.Errorf("replay run %d stopped with %d input frames unplayed: %w",
			run.ID, src.Remaining(), err)
	}
	return stats, nil
}
