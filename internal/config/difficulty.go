package config

import (
	"fmt"
	"strings"
)

// Mode is a difficulty mode. Exactly one is active at a time.
type Mode int

const (
	ModeEasy Mode = iota
	ModeHard
)

// AllModes lists the modes in display order.
func AllModes() []Mode {
	return []Mode{ModeEasy, ModeHard}
}

// String returns the mode's identifier as used in flags and storage.
func (m Mode) String() string {
	switch m {
	case ModeEasy:
		return "easy"
	case ModeHard:
		return "hard"
	default:
		return "unknown"
	}
}

// ParseMode converts a string to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return ModeEasy, nil
	case "hard":
		return ModeHard, nil
	default:
		return ModeHard, fmt.Errorf("unknown mode %q (want easy or hard)", s)
	}
}

// Mode returns the settings for the given difficulty mode.
func (c GameConfig) Mode(m Mode) ModeConfig {
	if m == ModeEasy {
		return c.Modes.Easy
	}
	return c.Modes.Hard
}

// StartMode returns the configured default mode, falling back to hard.
func (c GameConfig) StartMode() Mode {
	m, err := ParseMode(c.DefaultMode)
	if err != nil {
		return ModeHard
	}
	return m
}
