package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The simulation uses it for screen-independent setup and deterministic seeding.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Ticks per second requested from the tick driver (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
	Debug    bool  // Panic on internal invariant violations instead of reporting them
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Lives    int  // Remaining lives
	Wave     int  // Current asteroid wave size
	GameOver bool // Whether the game has ended and awaits acknowledgement
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// Err reports a fatal invariant violation detected during the tick.
	// The simulation refuses to advance further once it is set.
	Err error
}
