// Package config provides YAML-based configuration loading for the color game:
// difficulty modes, feedback messages and their tones.
package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/colorguess/internal/core"
)

// MaxSwatches is the fixed number of swatch slots on the board.
const MaxSwatches = 6

// GameConfig contains all configuration for the color game.
type GameConfig struct {
	DefaultMode string         `yaml:"default_mode"`
	StorageKey  string         `yaml:"storage_key"`
	Modes       ModesConfig    `yaml:"modes"`
	Labels      LabelsConfig   `yaml:"labels"`
	Messages    MessagesConfig `yaml:"messages"`
	Tones       TonesConfig    `yaml:"tones"`
}

// ModesConfig defines the two difficulty modes.
type ModesConfig struct {
	Easy ModeConfig `yaml:"easy"`
	Hard ModeConfig `yaml:"hard"`
}

// ModeConfig defines a single difficulty mode.
type ModeConfig struct {
	Label    string `yaml:"label"`
	Swatches int    `yaml:"swatches"`
	Accent   Color  `yaml:"accent"`
}

// LabelsConfig holds the round-advance control labels.
type LabelsConfig struct {
	NewRound  string `yaml:"new_round"`
	NextRound string `yaml:"next_round"`
}

// MessagesConfig holds every feedback text the game can show.
type MessagesConfig struct {
	Pick        string `yaml:"pick"`
	FirstWin    string `yaml:"first_win"`
	Streak      string `yaml:"streak"`
	NewBest     string `yaml:"new_best"`
	Correct     string `yaml:"correct"`
	TryAgain    string `yaml:"try_again"`
	Reset       string `yaml:"reset"`
	ResetPrompt string `yaml:"reset_prompt"`
}

// TonesConfig holds message colors plus the winning-swatch highlight.
type TonesConfig struct {
	Neutral   Color `yaml:"neutral"`
	FirstWin  Color `yaml:"first_win"`
	Streak    Color `yaml:"streak"`
	NewBest   Color `yaml:"new_best"`
	Correct   Color `yaml:"correct"`
	Wrong     Color `yaml:"wrong"`
	Highlight Color `yaml:"highlight"`
}

// Color is a core.RGB that reads and writes itself as "#rrggbb" or "rgb(r, g, b)" in YAML.
type Color struct {
	core.RGB
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	rgb, err := core.ParseRGB(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	c.RGB = rgb
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (c Color) MarshalYAML() (any, error) {
	return c.Hex(), nil
}

// Validate reports the first problem that would make the game unplayable.
func (c GameConfig) Validate() error {
	if c.StorageKey == "" {
		return fmt.Errorf("config: storage_key must not be empty")
	}
	if _, err := ParseMode(c.DefaultMode); err != nil {
		return fmt.Errorf("config: default_mode: %w", err)
	}
	for _, mode := range AllModes() {
		if n := c.Mode(mode).Swatches; n < 1 || n > MaxSwatches {
			return fmt.Errorf("config: modes.%s.swatches must be in [1, %d], got %d", mode, MaxSwatches, n)
		}
	}
	return nil
}
