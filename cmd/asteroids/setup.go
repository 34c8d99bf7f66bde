package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

// newLogger builds the command logger. With --log it writes to that file;
// otherwise it writes to fallback, which may be nil to discard output.
// The returned close function must be called when done.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	out := fallback
	closer := func() {}

	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closer = func() { f.Close() }
	}
	if out == nil {
		out = io.Discard
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}

// runtimeConfig returns the runtime settings from the global flags.
// A zero seed is replaced by the current time so it can be recorded.
func runtimeConfig(width, height int) core.RuntimeConfig {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
		Debug:    flagDebug,
	}
}

// newGame loads the configuration and creates a game from it.
func newGame() (*asteroids.Game, error) {
	cfg, err := config.LoadAsteroids(flagConfig)
	if err != nil {
		return nil, err
	}
	return asteroids.New(cfg), nil
}

// saveRun writes a finished run to the journal and returns its id.
func saveRun(game *asteroids.Game, seed int64, inputs []core.InputFrame, games, best int) (int64, error) {
	cfgYAML, err := config.MarshalAsteroids(game.Config())
	if err != nil {
		return 0, err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return 0, err
	}
	defer store.Close()

	snap := game.Snapshot()
	return store.SaveRun(storage.Run{
		GameID:     game.ID(),
		Seed:       seed,
		Config:     cfgYAML,
		Inputs:     inputs,
		Ticks:      len(inputs),
		Games:      games,
		BestScore:  best,
		FinalScore: game.State().Score,
		FinalHash:  snap.Hash(),
	})
}
