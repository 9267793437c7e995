package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/colorguess/internal/core"
)

// KeyMap defines the key bindings for the board.
// It translates Bubble Tea key messages to game inputs so bindings stay testable.
type KeyMap struct {
	Guess    key.Binding
	Left     key.Binding
	Right    key.Binding
	Select   key.Binding
	NewRound key.Binding
	Easy     key.Binding
	Hard     key.Binding
	Reset    key.Binding
	History  key.Binding
	Copy     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Guess, k.NewRound, k.Easy, k.Hard, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Guess, k.Left, k.Right, k.Select},
		{k.NewRound, k.Easy, k.Hard},
		{k.Reset, k.History, k.Copy},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Guess: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6"),
			key.WithHelp("1-6", "pick swatch"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "prev swatch"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "next swatch"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "pick"),
		),
		NewRound: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new round"),
		),
		Easy: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "easy"),
		),
		Hard: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "hard"),
		),
		Reset: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "reset streak"),
		),
		History: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "history"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy color"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to a game input. Keys that only affect the
// view (cursor, copy, help) map to core.ActionNone; the model handles those itself.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Input {
	switch {
	case key.Matches(msg, k.Quit):
		return core.Input{Action: core.ActionQuit}
	case key.Matches(msg, k.Guess):
		return core.Input{Action: core.ActionGuess, Slot: int(msg.String()[0] - '1')}
	case key.Matches(msg, k.NewRound):
		return core.Input{Action: core.ActionNewRound}
	case key.Matches(msg, k.Easy):
		return core.Input{Action: core.ActionEasy}
	case key.Matches(msg, k.Hard):
		return core.Input{Action: core.ActionHard}
	case key.Matches(msg, k.Reset):
		return core.Input{Action: core.ActionReset}
	case key.Matches(msg, k.History):
		return core.Input{Action: core.ActionHistory}
	}
	return core.Input{Action: core.ActionNone}
}

// ModalAnswer is the reply to the reset confirmation modal.
type ModalAnswer int

const (
	ModalNone ModalAnswer = iota
	ModalYes
	ModalNo
	ModalQuit
)

// MapKeyToModal translates a key to a modal answer.
func MapKeyToModal(msg tea.KeyMsg) ModalAnswer {
	switch msg.String() {
	case "ctrl+c":
		return ModalQuit
	case "y", "Y":
		return ModalYes
	case "n", "N", "esc":
		return ModalNo
	}
	return ModalNone
}
