package asteroids

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Integrator advances entity motion by exactly one tick.
// It is not time-delta based: every call moves each entity by one velocity step.
type Integrator struct {
	ship   config.AsteroidsShip
	width  float64
	height float64
}

// NewIntegrator creates an integrator for the given ship physics and playfield.
func NewIntegrator(ship config.AsteroidsShip, field config.AsteroidsPlayfield) Integrator {
	return Integrator{
		ship:   ship,
		width:  field.Width,
		height: field.Height,
	}
}

// Advance moves the ship, every asteroid and every bullet, then drops
// expired bullets. It returns an error wrapping ErrNonFinite if any entity
// left the real numbers.
func (in Integrator) Advance(s *Ship, rocks []Asteroid) error {
	in.Ship(s)
	in.Asteroids(rocks)
	s.Bullets = in.Bullets(s.Bullets)
	return checkFinite(s, rocks)
}

// Ship applies thrust or drag, moves and wraps the ship, then turns it.
func (in Integrator) Ship(s *Ship) {
	if s.Thrusting {
		s.Vel = s.Vel.Add(s.Forward().Scale(in.ship.Thrust))
	} else {
		s.Vel = s.Vel.Scale(in.ship.Damping)
	}

	s.Pos = in.wrap(s.Pos.Add(s.Vel), s.Radius)
	s.Heading += s.Spin
}

// Asteroids moves and wraps every asteroid in place.
func (in Integrator) Asteroids(rocks []Asteroid) {
	for i := range rocks {
		a := &rocks[i]
		a.Pos = in.wrap(a.Pos.Add(a.Vel), a.Radius)
	}
}

// Bullets moves every bullet, ages it by one tick and removes those whose
// lifetime ran out. Bullets never wrap. The slice is filtered in place and
// keeps its order.
func (in Integrator) Bullets(bullets []Bullet) []Bullet {
	alive := bullets[:0]
	for _, b := range bullets {
		b.Pos = b.Pos.Add(b.Vel)
		b.Life--
		if b.Life <= 0 {
			continue
		}
		alive = append(alive, b)
	}
	return alive
}

// wrap teleports a circle that has moved more than its radius past an edge
// to just beyond the opposite edge. Each axis is handled independently.
func (in Integrator) wrap(p core.Vec2, radius float64) core.Vec2 {
	return core.Vec2{
		X: wrapAxis(p.X, radius, in.width),
		Y: wrapAxis(p.Y, radius, in.height),
	}
}

func wrapAxis(v, radius, size float64) float64 {
	if v < -radius {
		v = size + radius
	}
	if v > size+radius {
		v = -radius
	}
	return v
}

// checkFinite reports the first entity with a NaN or infinite component.
func checkFinite(s *Ship, rocks []Asteroid) error {
	if !s.Pos.IsFinite() || !s.Vel.IsFinite() || math.IsNaN(s.Heading) || math.IsInf(s.Heading, 0) {
		return fmt.Errorf("asteroids: ship pos=%v vel=%v heading=%v: %w", s.Pos, s.Vel, s.Heading, ErrNonFinite)
	}
	for i, a := range rocks {
		if !a.Pos.IsFinite() || !a.Vel.IsFinite() {
			return fmt.Errorf("asteroids: asteroid %d pos=%v vel=%v: %w", i, a.Pos, a.Vel, ErrNonFinite)
		}
	}
	for i, b := range s.Bullets {
		if !b.Pos.IsFinite() || !b.Vel.IsFinite() {
			return fmt.Errorf("asteroids: bullet %d pos=%v vel=%v: %w", i, b.Pos, b.Vel, ErrNonFinite)
		}
	}
	return nil
}
