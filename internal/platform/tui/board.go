package tui

import (
	"github.com/vovakirdan/colorguess/internal/config"
	"github.com/vovakirdan/colorguess/internal/core"
	"github.com/vovakirdan/colorguess/internal/game"
)

// SwatchView is the display state of one swatch slot.
type SwatchView struct {
	Visible        bool
	Enabled        bool
	Faded          bool
	Wrong          bool
	Highlight      bool
	Color          core.RGB
	HighlightColor core.RGB
}

// ModeView is the display state of one difficulty control.
type ModeView struct {
	Label    string
	Selected bool
	Accent   core.RGB
}

// Board holds everything the view draws. The controller mutates it through
// the game.Renderer methods; View reads it.
type Board struct {
	Target     string
	Emphasized bool

	Message string
	Tone    core.RGB

	Swatches [game.MaxSwatches]SwatchView

	Accent    core.RGB
	HasAccent bool

	AdvanceLabel string
	Modes        [2]ModeView

	Current int
	Best    int
}

// NewBoard creates an empty board with mode labels taken from cfg.
func NewBoard(cfg config.GameConfig) *Board {
	b := &Board{AdvanceLabel: cfg.Labels.NewRound}
	for _, m := range config.AllModes() {
		mc := cfg.Mode(m)
		b.Modes[m] = ModeView{Label: mc.Label, Accent: mc.Accent.RGB}
	}
	return b
}

func (b *Board) SetTarget(text string) { b.Target = text }

func (b *Board) SetTargetEmphasis(on bool) { b.Emphasized = on }

func (b *Board) SetMessage(text string, tone core.RGB) {
	b.Message = text
	b.Tone = tone
}

func (b *Board) SetSwatchVisible(i int, on bool) {
	if s := b.swatch(i); s != nil {
		s.Visible = on
	}
}

func (b *Board) SetSwatchColor(i int, c core.RGB) {
	if s := b.swatch(i); s != nil {
		s.Color = c
	}
}

func (b *Board) SetSwatchFaded(i int, on bool) {
	if s := b.swatch(i); s != nil {
		s.Faded = on
	}
}

func (b *Board) SetSwatchWrong(i int, on bool) {
	if s := b.swatch(i); s != nil {
		s.Wrong = on
	}
}

func (b *Board) SetSwatchHighlight(i int, on bool, c core.RGB) {
	if s := b.swatch(i); s != nil {
		s.Highlight = on
		s.HighlightColor = c
	}
}

func (b *Board) SetSwatchEnabled(i int, on bool) {
	if s := b.swatch(i); s != nil {
		s.Enabled = on
	}
}

func (b *Board) SetAccent(c core.RGB, ok bool) {
	b.Accent = c
	b.HasAccent = ok
}

func (b *Board) SetAdvanceLabel(text string) { b.AdvanceLabel = text }

func (b *Board) SetModeSelected(m config.Mode, selected bool, accent core.RGB) {
	if int(m) < 0 || int(m) >= len(b.Modes) {
		return
	}
	b.Modes[m].Selected = selected
	b.Modes[m].Accent = accent
}

func (b *Board) SetStreak(current, best int) {
	b.Current = current
	b.Best = best
}

// VisibleCount returns how many swatch slots are shown.
func (b *Board) VisibleCount() int {
	n := 0
	for _, s := range b.Swatches {
		if s.Visible {
			n++
		}
	}
	return n
}

func (b *Board) swatch(i int) *SwatchView {
	if i < 0 || i >= len(b.Swatches) {
		return nil
	}
	return &b.Swatches[i]
}

var _ game.Renderer = (*Board)(nil)
