package game

import (
	"github.com/vovakirdan/colorguess/internal/config"
	"github.com/vovakirdan/colorguess/internal/core"
)

// Renderer is the display surface. Every method is a plain mutation with no
// return value; the controller never reads display state back.
type Renderer interface {
	SetTarget(text string)
	SetTargetEmphasis(bold bool)
	SetMessage(text string, tone core.RGB)

	SetSwatchVisible(slot int, visible bool)
	SetSwatchColor(slot int, c core.RGB)
	SetSwatchFaded(slot int, faded bool)
	SetSwatchWrong(slot int, wrong bool)
	SetSwatchHighlight(slot int, on bool, c core.RGB)
	SetSwatchEnabled(slot int, enabled bool)

	// SetAccent colors the header surface; ok=false clears it.
	SetAccent(c core.RGB, ok bool)
	SetAdvanceLabel(label string)
	SetModeSelected(m config.Mode, selected bool, accent core.RGB)
	SetStreak(current, best int)
}

// Persistence is the key/value store holding the best streak as decimal text.
type Persistence interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Remove(key string) error
}

// Confirmer is the blocking yes/no prompt used before destructive actions.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to the Confirmer interface.
type ConfirmFunc func(prompt string) bool

// Confirm calls f(prompt).
func (f ConfirmFunc) Confirm(prompt string) bool {
	return f(prompt)
}

var (
	// AlwaysConfirm answers yes to every prompt.
	AlwaysConfirm = ConfirmFunc(func(string) bool { return true })
	// NeverConfirm answers no to every prompt.
	NeverConfirm = ConfirmFunc(func(string) bool { return false })
)

// StreakRecorder receives every streak when it ends.
type StreakRecorder interface {
	RecordStreak(mode string, length int) error
}

// NopRenderer discards all display updates. Embed it to implement only part of Renderer.
type NopRenderer struct{}

func (NopRenderer) SetTarget(string) {}
func (NopRenderer) SetTargetEmphasis(bool) {}
func (NopRenderer) SetMessage(string, core.RGB) {}
func (NopRenderer) SetSwatchVisible(int, bool) {}
func (NopRenderer) SetSwatchColor(int, core.RGB) {}
func (NopRenderer) SetSwatchFaded(int, bool) {}
func (NopRenderer) SetSwatchWrong(int, bool) {}
func (NopRenderer) SetSwatchHighlight(int, bool, core.RGB) {}
func (NopRenderer) SetSwatchEnabled(int, bool) {}
func (NopRenderer) SetAccent(core.RGB, bool) {}
func (NopRenderer) SetAdvanceLabel(string) {}
func (NopRenderer) SetModeSelected(config.Mode, bool, core.RGB) {}
func (NopRenderer) SetStreak(int, int) {}

var _ Renderer = NopRenderer{}
