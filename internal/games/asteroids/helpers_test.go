package asteroids

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// fixedRandom returns a scripted sequence of values, cycling when exhausted.
type fixedRandom struct {
	values []float64
	i      int
}

func (r *fixedRandom) Float64() float64 {
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[r.i%len(r.values)]
	r.i++
	return v
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     12345,
	}
}

func newTestGame(t *testing.T, opts ...Option) *Game {
	t.Helper()
	g := New(config.DefaultAsteroidsConfig(), opts...)
	g.Reset(testRuntime())
	if g.Err() != nil {
		t.Fatalf("Reset failed: %v", g.Err())
	}
	return g
}

// quietField replaces the random wave with one stationary asteroid in a
// corner, far from the ship and from anything fired upward.
func quietField(g *Game) {
	g.asteroids = []Asteroid{{Pos: core.Vec2{X: 60, Y: 540}, Radius: 20}}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func vecApprox(a, b core.Vec2) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y)
}
