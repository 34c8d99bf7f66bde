package asteroids

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

var (
	// ErrInvalidRadius is returned when an asteroid would be created with a
	// radius that is zero, negative or not a finite number.
	ErrInvalidRadius = errors.New("invalid asteroid radius")

	// ErrNonFinite reports an entity whose position or velocity became NaN or
	// infinite. It is a fatal invariant violation; the game stops advancing.
	ErrNonFinite = errors.New("non-finite entity state")
)

// Ship is the player's vessel. It owns its bullets, lives and score.
type Ship struct {
	Pos       core.Vec2
	Vel       core.Vec2
	Heading   float64 // Radians; 0 points along -Y (screen up)
	Spin      float64 // Angular velocity in radians per tick
	Thrusting bool
	Radius    float64 // Constant for the ship's lifetime

	Lives int
	Score int

	Bullets []Bullet
}

// Forward returns the unit vector the nose points along.
func (s *Ship) Forward() core.Vec2 {
	return core.FromAngle(s.Heading-math.Pi/2, 1)
}

// Nose returns the position bullets are fired from.
func (s *Ship) Nose() core.Vec2 {
	return s.Pos.Add(s.Forward().Scale(s.Radius))
}

// resetPose returns the ship to the centre of the playfield, pointing up and
// at rest. Lives, score, steering and bullets are untouched.
func (s *Ship) resetPose(width, height float64) {
	s.Pos = core.Vec2{X: width / 2, Y: height / 2}
	s.Heading = 0
	s.Vel = core.Vec2{}
}

// Asteroid is a drifting rock.
type Asteroid struct {
	Pos    core.Vec2
	Vel    core.Vec2
	Radius float64
}

// Bullet is a projectile owned by the ship.
type Bullet struct {
	Pos  core.Vec2
	Vel  core.Vec2
	Life int // Ticks remaining; removed at <= 0
}

// NewAsteroid creates an asteroid at pos with a random drift.
// The heading is uniform in [0, 2π) and the speed uniform in [minSpeed, maxSpeed).
// Fragments use this too, so they never inherit the parent's motion.
func NewAsteroid(rng Random, pos core.Vec2, radius, minSpeed, maxSpeed float64) (Asteroid, error) {
	if radius <= 0 || math.IsNaN(radius) || math.IsInf(radius, 0) {
		return Asteroid{}, fmt.Errorf("asteroids: radius %v: %w", radius, ErrInvalidRadius)
	}
	if !pos.IsFinite() {
		return Asteroid{}, fmt.Errorf("asteroids: spawn position %v: %w", pos, ErrNonFinite)
	}

	angle := rng.Float64() * math.Pi * 2
	speed := rng.Float64()*(maxSpeed-minSpeed) + minSpeed

	return Asteroid{
		Pos:    pos,
		Vel:    core.FromAngle(angle, speed),
		Radius: radius,
	}, nil
}
