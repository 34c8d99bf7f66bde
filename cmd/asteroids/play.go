package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-asteroids/internal/platform/tui"
)

var flagPlayRecord bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Up/W       - Thrust
  Left/A     - Turn left
  Right/D    - Turn right
  Space/F    - Fire
  P/Esc      - Pause
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

When the game ends the final score stays on screen until a key is
pressed, then a new game starts.

Examples:
  asteroids play
  asteroids play --fps 30
  asteroids play --seed 42 --record
  asteroids play --config ./my-asteroids.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagPlayRecord, "record", false, "Save the session to the run journal")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	game, err := newGame()
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	rt := runtimeConfig(width, height)

	// stdout belongs to the UI, so logs only go to a file
	logger, closeLog, err := newLogger("asteroids", nil)
	if err != nil {
		return err
	}
	defer closeLog()

	res, runErr := tui.Run(game, rt, tui.Options{Logger: logger})

	if flagPlayRecord && len(res.Inputs) > 0 {
		id, err := saveRun(game, res.Seed, res.Inputs, res.Games, res.BestScore)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not record run: %v\n", err)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded run %d (seed %d, %d ticks)\n", id, res.Seed, len(res.Inputs))
		}
	}

	if runErr != nil {
		return runErr
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Games: %d  Best score: %d\n", res.Games, res.BestScore)
	return nil
}
