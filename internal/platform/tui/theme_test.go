package tui

import (
	"testing"

	"github.com/vovakirdan/colorguess/internal/config"
	"github.com/vovakirdan/colorguess/internal/core"
)

func TestBlend(t *testing.T) {
	red := core.RGB{R: 255}

	if got := blend(red, black, 0); got != red {
		t.Errorf("blend by 0 = %v, want %v", got, red)
	}
	if got := blend(red, black, 1); got != black {
		t.Errorf("blend by 1 = %v, want %v", got, black)
	}

	half := blend(white, black, 0.5)
	if half.R < 120 || half.R > 135 || half.R != half.G || half.G != half.B {
		t.Errorf("blend halfway = %v, expected mid gray", half)
	}
}

func TestContrast(t *testing.T) {
	tests := []struct {
		bg   core.RGB
		want core.RGB
	}{
		{white, black},
		{black, white},
		{core.RGB{R: 255, G: 255}, black},
		{core.RGB{B: 139}, white},
		{core.RGB{R: 240, G: 240, B: 240}, black},
	}

	for _, tt := range tests {
		if got := contrast(tt.bg); got != tt.want {
			t.Errorf("contrast(%v) = %v, want %v", tt.bg, got, tt.want)
		}
	}
}

func TestBoardIgnoresOutOfRangeSlots(t *testing.T) {
	b := NewBoard(config.DefaultGameConfig())

	b.SetSwatchVisible(-1, true)
	b.SetSwatchColor(6, white)
	b.SetModeSelected(config.Mode(5), true, white)

	if b.VisibleCount() != 0 {
		t.Errorf("visible = %d, expected 0", b.VisibleCount())
	}
	if b.Modes[0].Label != "Easy" || b.Modes[1].Label != "Hard" {
		t.Errorf("mode labels = %q, %q", b.Modes[0].Label, b.Modes[1].Label)
	}
}
