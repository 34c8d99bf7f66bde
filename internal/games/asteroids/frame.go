package asteroids

import (
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Frame is a read-only copy of everything a renderer needs after a tick.
// It shares no memory with the game.
type Frame struct {
	Tick   int
	Width  float64 // Playfield width
	Height float64 // Playfield height

	ShipPos       core.Vec2
	ShipHeading   float64
	ShipRadius    float64
	ShipThrusting bool

	Asteroids []Asteroid
	Bullets   []core.Vec2

	Score    int
	Lives    int
	Wave     int
	GameOver bool
}

// Frame returns the post-tick render snapshot.
func (g *Game) Frame() Frame {
	bullets := make([]core.Vec2, len(g.ship.Bullets))
	for i, b := range g.ship.Bullets {
		bullets[i] = b.Pos
	}

	return Frame{
		Tick:   g.tickCount,
		Width:  g.cfg.Playfield.Width,
		Height: g.cfg.Playfield.Height,

		ShipPos:       g.ship.Pos,
		ShipHeading:   g.ship.Heading,
		ShipRadius:    g.ship.Radius,
		ShipThrusting: g.ship.Thrusting,

		Asteroids: append([]Asteroid(nil), g.asteroids...),
		Bullets:   bullets,

		Score:    g.ship.Score,
		Lives:    g.ship.Lives,
		Wave:     g.wave,
		GameOver: g.phase == PhaseGameOver,
	}
}

// Snapshot contains the complete game state for replay verification.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick  uint64
	Phase int
	Score int
	Lives int
	Wave  int

	// Ship is 7 values: X, Y, VX, VY, Heading, Spin, Radius
	Ship [7]float64

	// Each asteroid is 5 values: X, Y, VX, VY, Radius
	AsteroidCount int
	AsteroidData  []float64

	// Each bullet is 5 values: X, Y, VX, VY, Life
	BulletCount int
	BulletData  []float64

	// RNG state, when the random source exposes one
	RNGState uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	asteroidData := make([]float64, 0, len(g.asteroids)*5)
	for _, a := range g.asteroids {
		asteroidData = append(asteroidData, a.Pos.X, a.Pos.Y, a.Vel.X, a.Vel.Y, a.Radius)
	}

	bulletData := make([]float64, 0, len(g.ship.Bullets)*5)
	for _, b := range g.ship.Bullets {
		bulletData = append(bulletData, b.Pos.X, b.Pos.Y, b.Vel.X, b.Vel.Y, float64(b.Life))
	}

	var rngState uint64
	if s, ok := g.rng.(stater); ok {
		rngState = s.State()
	}

	s := g.ship
	return Snapshot{
		Tick:  uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		Phase: int(g.phase),
		Score: s.Score,
		Lives: s.Lives,
		Wave:  g.wave,

		Ship: [7]float64{s.Pos.X, s.Pos.Y, s.Vel.X, s.Vel.Y, s.Heading, s.Spin, s.Radius},

		AsteroidCount: len(g.asteroids),
		AsteroidData:  asteroidData,
		BulletCount:   len(g.ship.Bullets),
		BulletData:    bulletData,

		RNGState: rngState,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
// Floats contribute their exact bit patterns.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Phase)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Wave)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.AsteroidCount) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BulletCount)   //#nosec G115 -- hash computation

	for _, v := range snap.Ship {
		h = h*31 + math.Float64bits(v)
	}

	for _, v := range snap.AsteroidData {
		h = h*31 + math.Float64bits(v)
	}

	for _, v := range snap.BulletData {
		h = h*31 + math.Float64bits(v)
	}

	h = h*31 + snap.RNGState

	return h
}
