package asteroids

import (
	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Spawner creates asteroid waves and splits destroyed asteroids.
type Spawner struct {
	rng    Random
	rocks  config.AsteroidsRocks
	width  float64
	height float64
}

// NewSpawner creates a spawner for the given playfield.
func NewSpawner(rng Random, rocks config.AsteroidsRocks, field config.AsteroidsPlayfield) *Spawner {
	return &Spawner{
		rng:    rng,
		rocks:  rocks,
		width:  field.Width,
		height: field.Height,
	}
}

// SpawnWave places count asteroids uniformly over the playfield with radii
// uniform in [MinSize, MaxSize).
func (s *Spawner) SpawnWave(count int) ([]Asteroid, error) {
	wave := make([]Asteroid, 0, count)
	for i := 0; i < count; i++ {
		pos := core.Vec2{
			X: s.rng.Float64() * s.width,
			Y: s.rng.Float64() * s.height,
		}
		radius := s.rng.Float64()*(s.rocks.MaxSize-s.rocks.MinSize) + s.rocks.MinSize

		a, err := NewAsteroid(s.rng, pos, radius, s.rocks.MinSpeed, s.rocks.MaxSpeed)
		if err != nil {
			return nil, err
		}
		wave = append(wave, a)
	}
	return wave, nil
}

// Split returns the fragments of a destroyed asteroid: two rocks of half the
// radius at the parent's position, or none when half the radius is below
// MinSize.
func (s *Spawner) Split(parent Asteroid) ([]Asteroid, error) {
	size := parent.Radius / 2
	if size < s.rocks.MinSize {
		return nil, nil
	}

	fragments := make([]Asteroid, 0, 2)
	for i := 0; i < 2; i++ {
		a, err := NewAsteroid(s.rng, parent.Pos, size, s.rocks.MinSpeed, s.rocks.MaxSpeed)
		if err != nil {
			return nil, err
		}
		fragments = append(fragments, a)
	}
	return fragments, nil
}
