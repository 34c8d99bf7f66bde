// Package asteroids implements the Asteroids simulation: a ship that turns
// and thrusts on a toroidal playfield, shoots drifting rocks and loses a life
// on contact. The package is pure logic. Time, input and drawing reach it
// through core types and small interfaces.
package asteroids

import (
	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Phase is the state of the game state machine.
type Phase int

const (
	PhasePlaying  Phase = iota // Ticks advance the simulation
	PhaseGameOver              // Lives ran out; waiting for Restart
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Option configures a Game.
type Option func(*Game)

// WithRandom injects the random source. Without it, Reset seeds a SimpleRNG
// from RuntimeConfig.Seed.
func WithRandom(r Random) Option {
	return func(g *Game) {
		g.rng = r
		g.rngInjected = true
	}
}

// Game owns the whole simulation state and sequences ticks.
type Game struct {
	cfg     config.AsteroidsConfig
	runtime core.RuntimeConfig

	rng         Random
	rngInjected bool

	spawner    *Spawner
	integrator Integrator
	resolver   *Resolver

	ship      Ship
	asteroids []Asteroid
	wave      int
	phase     Phase
	tickCount int

	// err is a fatal invariant violation; once set the game no longer advances.
	err error
}

// New creates a game with the given configuration. Call Reset before Step.
func New(cfg config.AsteroidsConfig, opts ...Option) *Game {
	g := &Game{cfg: cfg}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "asteroids"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Asteroids"
}

// Reset initializes the game from scratch: components are rebuilt, the
// random source is reseeded unless it was injected, and a cold start follows.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if !g.rngInjected {
		g.rng = NewSimpleRNG(runtime.Seed)
	}

	g.spawner = NewSpawner(g.rng, g.cfg.Asteroids, g.cfg.Playfield)
	g.integrator = NewIntegrator(g.cfg.Ship, g.cfg.Playfield)
	g.resolver = NewResolver(g.spawner, g.cfg.Gameplay.ScoreReward, g.cfg.Bullets.Radius,
		g.cfg.Playfield.Width, g.cfg.Playfield.Height)

	g.err = nil
	g.coldStart()
}

// Restart performs the full reset that follows a game over. Every game
// variable returns to its initial value and a fresh first wave spawns. The
// random source keeps its position, so a seeded session stays reproducible
// across several games.
func (g *Game) Restart() {
	if g.err != nil {
		return
	}
	g.coldStart()
}

// coldStart puts the game in its initial state.
func (g *Game) coldStart() {
	g.ship = Ship{
		Radius:  g.cfg.Ship.Radius,
		Lives:   g.cfg.Gameplay.InitialLives,
		Bullets: make([]Bullet, 0, 16),
	}
	g.ship.resetPose(g.cfg.Playfield.Width, g.cfg.Playfield.Height)

	g.wave = g.cfg.Gameplay.InitialWave
	g.phase = PhasePlaying
	g.tickCount = 0

	wave, err := g.spawner.SpawnWave(g.wave)
	if err != nil {
		g.asteroids = nil
		g.err = err
		return
	}
	g.asteroids = wave
}

// Step advances the game by one tick.
//
// Order within a tick: steering and thrust intents are applied, every entity
// is integrated, collisions are resolved, an empty field spawns the next
// wave, and finally queued fire presses launch bullets. A bullet fired on
// tick T is therefore present through tick T+lifetime-1.
//
// While the game is over Step does nothing until Restart is called.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.err != nil {
		return core.StepResult{State: g.State(), Err: g.err}
	}
	if g.phase == PhaseGameOver {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	g.applyIntents(in)

	if err := g.integrator.Advance(&g.ship, g.asteroids); err != nil {
		return g.fail(err)
	}

	rocks, out, err := g.resolver.Resolve(&g.ship, g.asteroids)
	g.asteroids = rocks
	if err != nil {
		return g.fail(err)
	}
	if out.GameOver {
		g.phase = PhaseGameOver
		return core.StepResult{State: g.State()}
	}

	if len(g.asteroids) == 0 {
		g.wave++
		wave, err := g.spawner.SpawnWave(g.wave)
		if err != nil {
			return g.fail(err)
		}
		g.asteroids = wave
	}

	for i := 0; i < in.Fire; i++ {
		g.fire()
	}

	return core.StepResult{State: g.State()}
}

// applyIntents turns the intent snapshot into ship controls.
func (g *Game) applyIntents(in core.InputFrame) {
	g.ship.Thrusting = in.Thrust
	switch in.Steer {
	case core.SteerLeft:
		g.ship.Spin = -g.cfg.Ship.SteerRate
	case core.SteerRight:
		g.ship.Spin = g.cfg.Ship.SteerRate
	default:
		g.ship.Spin = 0
	}
}

// fire launches one bullet from the nose along the heading.
func (g *Game) fire() {
	g.ship.Bullets = append(g.ship.Bullets, Bullet{
		Pos:  g.ship.Nose(),
		Vel:  g.ship.Forward().Scale(g.cfg.Bullets.Speed),
		Life: g.cfg.Bullets.Lifetime,
	})
}

// fail records a fatal invariant violation. Debug builds panic.
func (g *Game) fail(err error) core.StepResult {
	g.err = err
	if g.runtime.Debug {
		panic(err)
	}
	return core.StepResult{State: g.State(), Err: err}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.ship.Score,
		Lives:    g.ship.Lives,
		Wave:     g.wave,
		GameOver: g.phase == PhaseGameOver,
	}
}

// Phase returns the state machine phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Tick returns the number of ticks simulated since the last cold start.
func (g *Game) Tick() int {
	return g.tickCount
}

// Err returns the invariant violation that stopped the game, if any.
func (g *Game) Err() error {
	return g.err
}

// Config returns the configuration the game was created with.
func (g *Game) Config() config.AsteroidsConfig {
	return g.cfg
}
