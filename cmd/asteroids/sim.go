package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
)

var (
	flagSimTicks    int
	flagSimRecord   bool
	flagSimRealtime bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the CPU pilot headless",
	Long: `Run the simulation with the CPU pilot and no terminal UI.

Ticks run as fast as possible unless --realtime is given, in which case
they are paced by --fps. Game overs are logged and followed by a new game.

Examples:
  asteroids sim
  asteroids sim --ticks 36000 --seed 7 --record
  asteroids sim --realtime --debug`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 3600, "Number of ticks to simulate")
	simCmd.Flags().BoolVar(&flagSimRecord, "record", false, "Save the run to the run journal")
	simCmd.Flags().BoolVar(&flagSimRealtime, "realtime", false, "Pace ticks by --fps")
}

func runSim(cmd *cobra.Command, _ []string) error {
	game, err := newGame()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger("asteroids-sim", os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	rt := runtimeConfig(0, 0)
	game.Reset(rt)
	if err := game.Err(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	ticks := asteroids.TickDriver(asteroids.NewFixedTicks(flagSimTicks))
	if flagSimRealtime {
		clock := asteroids.NewClockTicks(flagFPS)
		defer clock.Stop()
		ticks = &limitedTicks{driver: clock, remaining: flagSimTicks}
	}

	rec := asteroids.NewRecorder(asteroids.NewAutoPilot(game))
	runner := &asteroids.Runner{
		Game:   game,
		Ticks:  ticks,
		Input:  rec,
		Ack:    asteroids.LogAcknowledger{Logger: logger},
		Logger: logger,
	}

	logger.Info("simulation started", "seed", rt.Seed, "ticks", flagSimTicks)
	stats, runErr := runner.Run(ctx)
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Seed:        %d\n", rt.Seed)
	fmt.Fprintf(out, "Ticks:       %d\n", stats.Ticks)
	fmt.Fprintf(out, "Games:       %d\n", stats.Games)
	fmt.Fprintf(out, "Best score:  %d\n", stats.BestScore)
	fmt.Fprintf(out, "Last score:  %d (wave %d, lives %d)\n",
		stats.LastScore, stats.FinalState.Wave, stats.FinalState.Lives)
	fmt.Fprintf(out, "Final hash:  %016x\n", stats.FinalHash)

	if flagSimRecord {
		id, err := saveRun(game, rt.Seed, rec.Frames(), stats.Games, stats.BestScore)
		if err != nil {
			return fmt.Errorf("record run: %w", err)
		}
		fmt.Fprintf(out, "Recorded run %d\n", id)
	}
	return nil
}

// limitedTicks caps another driver at a number of ticks.
type limitedTicks struct {
	driver    asteroids.TickDriver
	remaining int
}

func (t *limitedTicks) Next(ctx context.Context) bool {
	if t.remaining <= 0 {
		return false
	}
	if !t.driver.Next(ctx) {
		return false
	}
	t.remaining--
	return true
}
