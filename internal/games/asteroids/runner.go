package asteroids

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// TickDriver decides when the next tick runs. Next blocks until it is time
// and reports false when no more ticks should run.
type TickDriver interface {
	Next(ctx context.Context) bool
}

// Renderer receives the post-tick frame. It must not retain the game.
type Renderer interface {
	Render(f Frame)
}

// Acknowledger surfaces the final score when a game ends. The runner waits
// for it to return before the full reset; an error stops the run.
type Acknowledger interface {
	Acknowledge(ctx context.Context, finalScore int) error
}

// FixedTicks runs a fixed number of ticks as fast as possible.
type FixedTicks struct {
	remaining int
}

// NewFixedTicks creates a driver that allows n ticks.
func NewFixedTicks(n int) *FixedTicks {
	return &FixedTicks{remaining: n}
}

// Next reports whether ticks remain and the context is live.
func (t *FixedTicks) Next(ctx context.Context) bool {
	if t.remaining <= 0 || ctx.Err() != nil {
		return false
	}
	t.remaining--
	return true
}

// ClockTicks paces ticks by the wall clock. Each tick is still one fixed
// unit of motion; a slow consumer gets fewer ticks, never larger ones.
type ClockTicks struct {
	ticker *time.Ticker
}

// NewClockTicks creates a driver firing rate times per second.
func NewClockTicks(rate int) *ClockTicks {
	if rate <= 0 {
		rate = 60
	}
	return &ClockTicks{ticker: time.NewTicker(time.Second / time.Duration(rate))}
}

// Next waits for the next clock edge or cancellation.
func (t *ClockTicks) Next(ctx context.Context) bool {
	if ctx.Err() != nil {
		return false
	}
	select {
	case <-ctx.Done():
		return false
	case <-t.ticker.C:
		return true
	}
}

// Stop releases the underlying ticker.
func (t *ClockTicks) Stop() {
	t.ticker.Stop()
}

// LogAcknowledger reports game over through a logger and returns at once.
type LogAcknowledger struct {
	Logger *log.Logger
}

// Acknowledge logs the final score.
func (a LogAcknowledger) Acknowledge(_ context.Context, finalScore int) error {
	if a.Logger != nil {
		a.Logger.Info("game over", "score", finalScore)
	}
	return nil
}

// RunStats summarizes a finished run.
type RunStats struct {
	Ticks      int    // Ticks simulated, across all games
	Games      int    // Games that ended in game over
	BestScore  int    // Highest final score
	LastScore  int    // Score when the run stopped
	FinalHash  uint64 // Snapshot hash after the last tick
	FinalState core.GameState
}

// Runner drives a Game with injected collaborators. Game, Ticks and Input
// are required; the rest are optional.
type Runner struct {
	Game     *Game
	Ticks    TickDriver
	Input    core.IntentSource
	Renderer Renderer
	Ack      Acknowledger
	Logger   *log.Logger
}

// Run ticks the game until the driver stops, the context is cancelled or an
// invariant violation occurs. A game over is acknowledged and followed by a
// full reset, then play continues.
func (r *Runner) Run(ctx context.Context) (RunStats, error) {
	var stats RunStats
	logger := r.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	prev := r.Game.State()
	for r.Ticks.Next(ctx) {
		in := r.Input.Intents()
		res := r.Game.Step(in)
		stats.Ticks++
		if res.Err != nil {
			logger.Error("simulation halted", "tick", r.Game.Tick(), "err", res.Err)
			return r.finish(stats), res.Err
		}

		cur := res.State
		if cur.Lives < prev.Lives {
			logger.Debug("life lost", "tick", r.Game.Tick(), "lives", cur.Lives)
		}
		if cur.Wave != prev.Wave {
			logger.Debug("wave cleared", "tick", r.Game.Tick(), "wave", cur.Wave, "score", cur.Score)
		}

		if r.Renderer != nil {
			r.Renderer.Render(r.Game.Frame())
		}

		if cur.GameOver {
			stats.Games++
			stats.BestScore = core.Max(stats.BestScore, cur.Score)
			if r.Ack != nil {
				if err := r.Ack.Acknowledge(ctx, cur.Score); err != nil {
					return r.finish(stats), err
				}
			}
			r.Game.Restart()
			cur = r.Game.State()
			logger.Info("reset", "lives", cur.Lives, "wave", cur.Wave)
		}
		prev = cur
	}

	return r.finish(stats), ctx.Err()
}

func (r *Runner) finish(stats RunStats) RunStats {
	snap := r.Game.Snapshot()
	stats.FinalHash = snap.Hash()
	stats.FinalState = r.Game.State()
	stats.LastScore = stats.FinalState.Score
	stats.BestScore = core.Max(stats.BestScore, stats.LastScore)
	return stats
}
