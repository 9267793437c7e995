package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.colorguess/config.yaml -> ./configs/colorguess.yaml -> embedded default
//
// Files are decoded over DefaultGameConfig, so a partial file only overrides
// the keys it names. The result is validated before it is returned.
func Load(customPath string) (GameConfig, error) {
	cfg := DefaultGameConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("config.yaml"), filepath.Join("configs", "colorguess.yaml")} {
		if path == "" {
			continue
		}
		if c, ok := tryLoad(path); ok {
			return c, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultGameYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultGameConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Missing or broken files are skipped.
func tryLoad(path string) (GameConfig, bool) {
	cfg := DefaultGameConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".colorguess", filename)
}
