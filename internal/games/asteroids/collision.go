package asteroids

import (
	"slices"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Outcome summarizes one collision pass.
type Outcome struct {
	ShipHits int  // Ship-asteroid contacts, each costing one life
	Kills    int  // Asteroids destroyed by bullets
	GameOver bool // Lives ran out; processing stopped at that asteroid
}

// Resolver detects ship-asteroid and bullet-asteroid overlaps and applies
// their effects: life loss, scoring, splitting and removal.
type Resolver struct {
	spawner      *Spawner
	reward       int
	bulletRadius float64
	width        float64
	height       float64
}

// NewResolver creates a resolver. Fragments of destroyed asteroids come from spawner.
func NewResolver(spawner *Spawner, reward int, bulletRadius, width, height float64) *Resolver {
	return &Resolver{
		spawner:      spawner,
		reward:       reward,
		bulletRadius: bulletRadius,
		width:        width,
		height:       height,
	}
}

// Resolve runs one collision pass and returns the new asteroid collection.
//
// Asteroids are visited from the last to the first. For each one the ship is
// tested first: a hit costs a life and returns the ship to the centre, and
// when no lives remain the pass ends immediately. The asteroid is not removed
// by a ship hit, so it is then tested against the bullets, newest first. The
// first overlapping bullet destroys it: the score grows by the reward, both
// are removed and the fragments are appended after the pass.
func (r *Resolver) Resolve(s *Ship, rocks []Asteroid) ([]Asteroid, Outcome, error) {
	var (
		out       Outcome
		fragments []Asteroid
	)

	for i := len(rocks) - 1; i >= 0; i-- {
		a := rocks[i]

		if core.CirclesOverlap(a.Pos, a.Radius, s.Pos, s.Radius) {
			s.Lives--
			s.resetPose(r.width, r.height)
			out.ShipHits++
			if s.Lives <= 0 {
				out.GameOver = true
				return append(rocks, fragments...), out, nil
			}
		}

		for j := len(s.Bullets) - 1; j >= 0; j-- {
			if !core.CirclesOverlap(a.Pos, a.Radius, s.Bullets[j].Pos, r.bulletRadius) {
				continue
			}

			s.Score += r.reward
			rocks = slices.Delete(rocks, i, i+1)
			s.Bullets = slices.Delete(s.Bullets, j, j+1)
			out.Kills++

			parts, err := r.spawner.Split(a)
			if err != nil {
				return append(rocks, fragments...), out, err
			}
			fragments = append(fragments, parts...)
			break
		}
	}

	return append(rocks, fragments...), out, nil
}
