package asteroids

import (
	"testing"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

func newTestResolver() *Resolver {
	cfg := config.DefaultAsteroidsConfig()
	spawner := NewSpawner(NewSimpleRNG(9), cfg.Asteroids, cfg.Playfield)
	return NewResolver(spawner, cfg.Gameplay.ScoreReward, cfg.Bullets.Radius, cfg.Playfield.Width, cfg.Playfield.Height)
}

func newTestShip() Ship {
	return Ship{Pos: core.Vec2{X: 400, Y: 300}, Radius: 15, Lives: 3}
}

func TestShipCollisionThreshold(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		wantHit  bool
	}{
		{"tangent does not collide", 55, false},
		{"just inside collides", 55 - 1e-6, true},
		{"far away", 200, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestResolver()
			s := newTestShip()
			rocks := []Asteroid{{Pos: core.Vec2{X: 400 + tt.distance, Y: 300}, Radius: 40}}

			_, out, err := r.Resolve(&s, rocks)
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			if (out.ShipHits == 1) != tt.wantHit {
				t.Errorf("ShipHits = %d, expected hit=%v", out.ShipHits, tt.wantHit)
			}
		})
	}
}

func TestBulletCollisionThreshold(t *testing.T) {
	r := newTestResolver()

	// Bullets are points: a bullet exactly on the rim misses
	s := newTestShip()
	s.Bullets = []Bullet{{Pos: core.Vec2{X: 130, Y: 100}, Life: 10}}
	rocks, _, _ := r.Resolve(&s, []Asteroid{{Pos: core.Vec2{X: 100, Y: 100}, Radius: 30}})
	if len(rocks) != 1 || len(s.Bullets) != 1 || s.Score != 0 {
		t.Errorf("bullet on the rim should miss: rocks=%d bullets=%d score=%d", len(rocks), len(s.Bullets), s.Score)
	}

	s.Bullets = []Bullet{{Pos: core.Vec2{X: 129.999, Y: 100}, Life: 10}}
	rocks, _, _ = r.Resolve(&s, rocks)
	if len(rocks) != 0 || len(s.Bullets) != 0 || s.Score != 10 {
		t.Errorf("bullet inside the rim should hit: rocks=%d bullets=%d score=%d", len(rocks), len(s.Bullets), s.Score)
	}
}

func TestLifeLossResetsShip(t *testing.T) {
	r := newTestResolver()
	s := Ship{
		Pos:     core.Vec2{X: 100, Y: 100},
		Vel:     core.Vec2{X: 3, Y: 4},
		Heading: 1,
		Radius:  15,
		Lives:   3,
		Score:   20,
	}
	rocks := []Asteroid{{Pos: core.Vec2{X: 110, Y: 100}, Radius: 30}}

	rocks, out, err := r.Resolve(&s, rocks)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if s.Lives != 2 {
		t.Errorf("Lives = %d, expected 2", s.Lives)
	}
	if s.Score != 20 {
		t.Errorf("Score = %d, life loss must not change the score", s.Score)
	}
	if s.Pos != (core.Vec2{X: 400, Y: 300}) || s.Vel != (core.Vec2{}) || s.Heading != 0 {
		t.Errorf("ship not reset: pos=%v vel=%v heading=%v", s.Pos, s.Vel, s.Heading)
	}
	if len(rocks) != 1 {
		t.Errorf("ship collision must not remove the asteroid, %d left", len(rocks))
	}
	if out.ShipHits != 1 || out.GameOver {
		t.Errorf("Outcome = %+v", out)
	}
}

func TestScoringIgnoresSize(t *testing.T) {
	tests := []struct {
		name          string
		radius        float64
		wantFragments int
	}{
		{"small annihilated", 25, 0},
		{"large split", 45, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestResolver()
			s := newTestShip()
			s.Bullets = []Bullet{{Pos: core.Vec2{X: 100, Y: 110}, Life: 10}}

			rocks, out, err := r.Resolve(&s, []Asteroid{{Pos: core.Vec2{X: 100, Y: 100}, Radius: tt.radius}})
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			if s.Score != 10 {
				t.Errorf("Score = %d, expected 10", s.Score)
			}
			if len(rocks) != tt.wantFragments {
				t.Errorf("%d asteroids left, expected %d fragments", len(rocks), tt.wantFragments)
			}
			if len(s.Bullets) != 0 {
				t.Errorf("bullet should be consumed, %d left", len(s.Bullets))
			}
			if out.Kills != 1 {
				t.Errorf("Kills = %d, expected 1", out.Kills)
			}
		})
	}
}

func TestNewestBulletWins(t *testing.T) {
	r := newTestResolver()
	s := newTestShip()
	s.Bullets = []Bullet{
		{Pos: core.Vec2{X: 100, Y: 105}, Life: 10},
		{Pos: core.Vec2{X: 100, Y: 95}, Life: 20},
	}

	rocks, out, err := r.Resolve(&s, []Asteroid{{Pos: core.Vec2{X: 100, Y: 100}, Radius: 45}})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if s.Score != 10 || out.Kills != 1 {
		t.Errorf("one asteroid can only be destroyed once per tick: score=%d kills=%d", s.Score, out.Kills)
	}
	if len(s.Bullets) != 1 || s.Bullets[0].Life != 10 {
		t.Errorf("the newest bullet should be consumed, remaining %+v", s.Bullets)
	}
	// Fragments join after the pass, so the surviving bullet cannot hit them this tick
	if len(rocks) != 2 {
		t.Errorf("expected 2 fragments, got %d asteroids", len(rocks))
	}
}

func TestAsteroidsVisitedLastToFirst(t *testing.T) {
	r := newTestResolver()
	s := newTestShip()
	s.Bullets = []Bullet{{Pos: core.Vec2{X: 100, Y: 100}, Life: 10}}

	rocks := []Asteroid{
		{Pos: core.Vec2{X: 95, Y: 100}, Radius: 25},
		{Pos: core.Vec2{X: 105, Y: 100}, Radius: 24},
	}
	rocks, _, err := r.Resolve(&s, rocks)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if len(rocks) != 1 || rocks[0].Radius != 25 {
		t.Errorf("the last asteroid should take the bullet, remaining %+v", rocks)
	}
}

func TestGameOverStopsPass(t *testing.T) {
	r := newTestResolver()
	s := newTestShip()
	s.Lives = 1
	s.Bullets = []Bullet{{Pos: core.Vec2{X: 100, Y: 100}, Life: 10}}

	rocks := []Asteroid{
		{Pos: core.Vec2{X: 100, Y: 100}, Radius: 25}, // would take the bullet
		{Pos: core.Vec2{X: 400, Y: 300}, Radius: 25}, // hits the ship, visited first
	}
	rocks, out, err := r.Resolve(&s, rocks)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if !out.GameOver || s.Lives != 0 {
		t.Errorf("expected game over, lives=%d outcome=%+v", s.Lives, out)
	}
	if s.Score != 0 || len(s.Bullets) != 1 || len(rocks) != 2 {
		t.Errorf("no asteroid should be processed after game over: score=%d bullets=%d rocks=%d",
			s.Score, len(s.Bullets), len(rocks))
	}
}

func TestSameTickDoubleFate(t *testing.T) {
	r := newTestResolver()
	s := Ship{Pos: core.Vec2{X: 100, Y: 100}, Radius: 15, Lives: 3}
	s.Bullets = []Bullet{{Pos: core.Vec2{X: 110, Y: 100}, Life: 10}}

	rocks, out, err := r.Resolve(&s, []Asteroid{{Pos: core.Vec2{X: 100, Y: 100}, Radius: 45}})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	// The asteroid costs a life and is also shot in the same tick
	if s.Lives != 2 || s.Score != 10 {
		t.Errorf("lives=%d score=%d, expected 2 and 10", s.Lives, s.Score)
	}
	if out.ShipHits != 1 || out.Kills != 1 {
		t.Errorf("Outcome = %+v", out)
	}
	if len(rocks) != 2 {
		t.Errorf("expected the 2 fragments, got %d asteroids", len(rocks))
	}
}

func TestLaterAsteroidsSeeResetShip(t *testing.T) {
	r := newTestResolver()
	s := Ship{Pos: core.Vec2{X: 100, Y: 100}, Radius: 15, Lives: 3}

	rocks := []Asteroid{
		{Pos: core.Vec2{X: 400, Y: 300}, Radius: 20}, // sits on the centre
		{Pos: core.Vec2{X: 100, Y: 100}, Radius: 20}, // hits the ship where it was
	}
	_, out, err := r.Resolve(&s, rocks)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if out.ShipHits != 2 || s.Lives != 1 {
		t.Errorf("reset ship should be hit again at the centre: hits=%d lives=%d", out.ShipHits, s.Lives)
	}
}
