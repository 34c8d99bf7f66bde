package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigDirName is the directory under the user's home holding overrides.
const ConfigDirName = ".asteroids"

// LoadAsteroids loads Asteroids configuration.
// Search order: customPath -> ~/.asteroids/configs/asteroids.yaml -> ./configs/asteroids.yaml -> embedded default
//
// Files are layered over the defaults, so a file only needs the keys it changes.
// The resulting configuration is validated before it is returned.
func LoadAsteroids(customPath string) (AsteroidsConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return AsteroidsConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseAsteroids(data)
		if err != nil {
			return AsteroidsConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("asteroids.yaml"), filepath.Join("configs", "asteroids.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return AsteroidsConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		cfg, err := ParseAsteroids(data)
		if err != nil {
			return AsteroidsConfig{}, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := ParseAsteroids(defaultAsteroidsYAML)
	if err != nil {
		return DefaultAsteroidsConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseAsteroids decodes YAML on top of the default configuration and validates the result.
func ParseAsteroids(data []byte) (AsteroidsConfig, error) {
	cfg := DefaultAsteroidsConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AsteroidsConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return AsteroidsConfig{}, err
	}
	return cfg, nil
}

// MarshalAsteroids encodes a configuration as YAML.
func MarshalAsteroids(cfg AsteroidsConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal asteroids: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ConfigDirName, "configs", filename)
}
