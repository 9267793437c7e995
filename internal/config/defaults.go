package config

import (
	_ "embed"

	"github.com/vovakirdan/colorguess/internal/core"
)

//go:embed defaults/colorguess.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the default game configuration.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		DefaultMode: "hard",
		StorageKey:  "colorGameBestStreak",
		Modes: ModesConfig{
			Easy: ModeConfig{Label: "Easy", Swatches: 3, Accent: hex("#008000")},
			Hard: ModeConfig{Label: "Hard", Swatches: 6, Accent: hex("#5f5fd7")},
		},
		Labels: LabelsConfig{
			NewRound:  "New Round",
			NextRound: "Next Round",
		},
		Messages: MessagesConfig{
			Pick:        "Pick a color!",
			FirstWin:    "First Win!",
			Streak:      "Streak!",
			NewBest:     "🎉 NEW BEST STREAK! 🎉",
			Correct:     "Correct! 🎯",
			TryAgain:    "Try Again!",
			Reset:       "Streak reset! Start fresh!",
			ResetPrompt: "Are you sure you want to reset your best streak?",
		},
		Tones: TonesConfig{
			Neutral:   hex("#ffffff"),
			FirstWin:  hex("#90ee90"),
			Streak:    hex("#008000"),
			NewBest:   hex("#4ecdc4"),
			Correct:   hex("#4ecdc4"),
			Wrong:     hex("#ff6b6b"),
			Highlight: hex("#ffd700"),
		},
	}
}

func hex(s string) Color {
	return Color{RGB: core.MustParseRGB(s)}
}
