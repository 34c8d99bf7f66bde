// Package config provides YAML-based game configuration loading for the
// asteroids simulation. Every tunable constant of the simulation lives here.
package config

import (
	"errors"
	"fmt"
)

// AsteroidsConfig contains all configuration for the Asteroids game.
type AsteroidsConfig struct {
	Playfield AsteroidsPlayfield `yaml:"playfield"`
	Ship      AsteroidsShip      `yaml:"ship"`
	Bullets   AsteroidsBullets   `yaml:"bullets"`
	Asteroids AsteroidsRocks     `yaml:"asteroids"`
	Gameplay  AsteroidsGameplay  `yaml:"gameplay"`
}

// AsteroidsPlayfield defines the logical size of the toroidal playfield.
// Positions are in playfield units, independent of terminal size.
type AsteroidsPlayfield struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// AsteroidsShip defines ship physics.
type AsteroidsShip struct {
	Radius    float64 `yaml:"radius"`     // Collision and drawing radius
	Thrust    float64 `yaml:"thrust"`     // Acceleration per tick while thrusting
	Damping   float64 `yaml:"damping"`    // Velocity multiplier per tick while not thrusting
	SteerRate float64 `yaml:"steer_rate"` // Angular velocity in radians per tick while steering
}

// AsteroidsBullets defines projectile parameters.
type AsteroidsBullets struct {
	Speed    float64 `yaml:"speed"`    // Units per tick
	Lifetime int     `yaml:"lifetime"` // Ticks before expiry
	Radius   float64 `yaml:"radius"`   // Collision radius (0 = point)
}

// AsteroidsRocks defines asteroid spawn parameters.
type AsteroidsRocks struct {
	MinSize  float64 `yaml:"min_size"`  // Smallest spawn radius, also the split floor
	MaxSize  float64 `yaml:"max_size"`  // Spawn radius upper bound (exclusive)
	MinSpeed float64 `yaml:"min_speed"` // Lower bound of random drift speed
	MaxSpeed float64 `yaml:"max_speed"` // Upper bound of random drift speed (exclusive)
}

// AsteroidsGameplay defines scoring and progression.
type AsteroidsGameplay struct {
	InitialLives int `yaml:"initial_lives"`
	InitialWave  int `yaml:"initial_wave"` // Asteroids in the first wave
	ScoreReward  int `yaml:"score_reward"` // Points per destroyed asteroid
}

// Validate checks that the configuration can drive a simulation.
// All problems are reported together.
func (c AsteroidsConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Playfield.Width > 0, "playfield.width must be positive, got %v", c.Playfield.Width)
	check(c.Playfield.Height > 0, "playfield.height must be positive, got %v", c.Playfield.Height)

	check(c.Ship.Radius > 0, "ship.radius must be positive, got %v", c.Ship.Radius)
	check(c.Ship.Thrust >= 0, "ship.thrust must not be negative, got %v", c.Ship.Thrust)
	check(c.Ship.Damping > 0 && c.Ship.Damping <= 1, "ship.damping must be in (0, 1], got %v", c.Ship.Damping)
	check(c.Ship.SteerRate >= 0, "ship.steer_rate must not be negative, got %v", c.Ship.SteerRate)

	check(c.Bullets.Speed > 0, "bullets.speed must be positive, got %v", c.Bullets.Speed)
	check(c.Bullets.Lifetime > 0, "bullets.lifetime must be positive, got %d", c.Bullets.Lifetime)
	check(c.Bullets.Radius >= 0, "bullets.radius must not be negative, got %v", c.Bullets.Radius)

	check(c.Asteroids.MinSize > 0, "asteroids.min_size must be positive, got %v", c.Asteroids.MinSize)
	check(c.Asteroids.MaxSize >= c.Asteroids.MinSize,
		"asteroids.max_size (%v) must not be below min_size (%v)", c.Asteroids.MaxSize, c.Asteroids.MinSize)
	check(c.Asteroids.MinSpeed >= 0, "asteroids.min_speed must not be negative, got %v", c.Asteroids.MinSpeed)
	check(c.Asteroids.MaxSpeed >= c.Asteroids.MinSpeed,
		"asteroids.max_speed (%v) must not be below min_speed (%v)", c.Asteroids.MaxSpeed, c.Asteroids.MinSpeed)

	check(c.Gameplay.InitialLives > 0, "gameplay.initial_lives must be positive, got %d", c.Gameplay.InitialLives)
	check(c.Gameplay.InitialWave > 0, "gameplay.initial_wave must be positive, got %d", c.Gameplay.InitialWave)
	check(c.Gameplay.ScoreReward >= 0, "gameplay.score_reward must not be negative, got %d", c.Gameplay.ScoreReward)

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid asteroids config: %w", errors.Join(errs...))
	}
	return nil
}
