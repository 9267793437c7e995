package game

import (
	"math/rand"

	"github.com/vovakirdan/colorguess/internal/config"
	"github.com/vovakirdan/colorguess/internal/core"
)

// MaxSwatches is the number of swatch slots on the board.
const MaxSwatches = config.MaxSwatches

// Palette is the ordered list of candidate colors for one round.
// Entries are drawn independently; duplicates are allowed.
type Palette []core.RGB

// NewPalette draws n independent uniformly random colors.
func NewPalette(rng *rand.Rand, n int) Palette {
	p := make(Palette, n)
	for i := range p {
		p[i] = core.RandomRGB(rng)
	}
	return p
}

// Contains reports whether c appears in the palette.
func (p Palette) Contains(c core.RGB) bool {
	for _, pc := range p {
		if pc == c {
			return true
		}
	}
	return false
}

// Round is one target selection plus its palette.
type Round struct {
	Palette     Palette
	Target      core.RGB
	TargetIndex int
	Resolved    bool
}

// Streak holds the consecutive-correct counter and the persisted best.
type Streak struct {
	Current int
	Best    int
}

// Outcome is the result of activating a swatch.
type Outcome int

const (
	OutcomeIgnored Outcome = iota // activation not accepted (hidden, disabled, resolved)
	OutcomeCorrect
	OutcomeWrong
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeCorrect:
		return "correct"
	case OutcomeWrong:
		return "wrong"
	default:
		return "ignored"
	}
}

// MessageKind identifies which feedback message is on screen.
type MessageKind int

const (
	MessagePick MessageKind = iota
	MessageFirstWin
	MessageStreak
	MessageNewBest
	MessageCorrect
	MessageTryAgain
	MessageReset
)

// String returns a short identifier for the message kind.
func (k MessageKind) String() string {
	switch k {
	case MessagePick:
		return "pick"
	case MessageFirstWin:
		return "first_win"
	case MessageStreak:
		return "streak"
	case MessageNewBest:
		return "new_best"
	case MessageCorrect:
		return "correct"
	case MessageTryAgain:
		return "try_again"
	case MessageReset:
		return "reset"
	default:
		return "unknown"
	}
}

// slot is the controller's own record of one swatch's state.
type slot struct {
	color     core.RGB
	visible   bool
	enabled   bool
	wrong     bool
	highlight bool
}
