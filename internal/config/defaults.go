package config

import (
	_ "embed"
)

//go:embed defaults/asteroids.yaml
var defaultAsteroidsYAML []byte

// DefaultAsteroidsConfig returns the default Asteroids configuration.
func DefaultAsteroidsConfig() AsteroidsConfig {
	return AsteroidsConfig{
		Playfield: AsteroidsPlayfield{
			Width:  800,
			Height: 600,
		},
		Ship: AsteroidsShip{
			Radius:    15,
			Thrust:    0.1,
			Damping:   0.99,
			SteerRate: 0.05,
		},
		Bullets: AsteroidsBullets{
			Speed:    5,
			Lifetime: 60,
			Radius:   0, // Bullets hit as points
		},
		Asteroids: AsteroidsRocks{
			MinSize:  20,
			MaxSize:  50,
			MinSpeed: 1,
			MaxSpeed: 3,
		},
		Gameplay: AsteroidsGameplay{
			InitialLives: 3,
			InitialWave:  5,
			ScoreReward:  10,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "asteroids":
		return defaultAsteroidsYAML
	default:
		return nil
	}
}
