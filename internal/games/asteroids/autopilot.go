package asteroids

import (
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// FrameSource exposes the latest render frame.
type FrameSource interface {
	Frame() Frame
}

// AutoPilot is a CPU pilot. It turns toward the nearest asteroid, fires when
// roughly lined up and thrusts only when everything is far away. It is
// deterministic, so seeded headless runs are reproducible.
type AutoPilot struct {
	src FrameSource

	AimTolerance   float64 // Radians of heading error allowed when firing
	FireInterval   int     // Minimum ticks between shots
	ThrustDistance float64 // Thrust when the nearest asteroid is farther than this

	cooldown int
}

// NewAutoPilot creates a pilot reading the game through src.
func NewAutoPilot(src FrameSource) *AutoPilot {
	return &AutoPilot{
		src:            src,
		AimTolerance:   0.15,
		FireInterval:   10,
		ThrustDistance: 250,
	}
}

// Intents computes the pilot's intents for the next tick.
func (p *AutoPilot) Intents() core.InputFrame {
	in := core.NewInputFrame()
	if p.cooldown > 0 {
		p.cooldown--
	}

	f := p.src.Frame()
	if f.GameOver || len(f.Asteroids) == 0 {
		return in
	}

	target, dist := nearest(f.ShipPos, f.Asteroids)
	dx := target.Pos.X - f.ShipPos.X
	dy := target.Pos.Y - f.ShipPos.Y

	// Heading 0 points up, so the heading toward a target is its bearing plus 90°
	want := math.Atan2(dy, dx) + math.Pi/2
	diff := normalizeAngle(want - f.ShipHeading)

	switch {
	case diff > p.AimTolerance/2:
		in.Steer = core.SteerRight
	case diff < -p.AimTolerance/2:
		in.Steer = core.SteerLeft
	}

	if math.Abs(diff) <= p.AimTolerance && p.cooldown == 0 {
		in.Fire = 1
		p.cooldown = p.FireInterval
	}

	in.Thrust = dist > p.ThrustDistance && math.Abs(diff) <= p.AimTolerance
	return in
}

// nearest returns the asteroid closest to pos and its distance.
func nearest(pos core.Vec2, rocks []Asteroid) (Asteroid, float64) {
	best := rocks[0]
	bestDist := core.Distance(pos, best.Pos)
	for _, a := range rocks[1:] {
		if d := core.Distance(pos, a.Pos); d < bestDist {
			best, bestDist = a, d
		}
	}
	return best, bestDist
}

// normalizeAngle maps an angle into (-π, π].
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a > math.Pi {
		a -= 2 * math.Pi
	} else if a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

var _ core.IntentSource = (*AutoPilot)(nil)
