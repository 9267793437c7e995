// Package tui provides the Bubble Tea front end for the color game.
// It draws the board, maps keys to controller operations, and serves
// sessions over SSH.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/colorguess/internal/config"
	"github.com/vovakirdan/colorguess/internal/core"
	"github.com/vovakirdan/colorguess/internal/game"
	"github.com/vovakirdan/colorguess/internal/storage"
)

// Store is the persistence a play session needs.
// Both storage.Bucket and storage.Memory satisfy it.
type Store interface {
	game.Persistence
	game.StreakRecorder
	HistorySource
}

var (
	_ Store = (*storage.Bucket)(nil)
	_ Store = (*storage.Memory)(nil)
)

// Options configures a Model.
type Options struct {
	Game    config.GameConfig
	Runtime core.RuntimeConfig
	Store   Store

	// Mode overrides the configured starting mode when set.
	Mode    config.Mode
	HasMode bool

	Logger   *log.Logger
	Renderer *lipgloss.Renderer // nil = lipgloss default

	// Clipboard receives the target color text on the copy key.
	// nil disables copying (SSH sessions have no local clipboard).
	Clipboard func(text string) error
}

// modalState is shared between the model and the controller's confirmer,
// so it must outlive the model's value copies.
type modalState struct {
	open     bool
	prompt   string
	answered bool
	answer   bool
}

// confirm is the controller's Confirmer. Without an answer it opens the
// modal with the controller's prompt and declines; the modal key then
// calls ResetStreak again with the answer set.
func (s *modalState) confirm(prompt string) bool {
	if !s.answered {
		s.open = true
		s.prompt = prompt
		return false
	}
	yes := s.answer
	s.answered, s.answer = false, false
	return yes
}

// Model is the Bubble Tea model for one play session.
type Model struct {
	ctrl  *game.Controller
	board *Board
	modal *modalState

	theme   Theme
	keys    KeyMap
	help    help.Model
	history historyView
	copy    func(string) error
	status  string

	showHistory bool
	cursor      int
	width       int
	height      int
	quitting    bool
}

// NewModel creates a model and starts the first round.
func NewModel(opts Options) Model {
	if opts.Store == nil {
		opts.Store = storage.NewMemory()
	}
	board := NewBoard(opts.Game)
	modal := &modalState{}

	ctrlOpts := []game.Option{
		game.WithSeed(opts.Runtime.Seed),
		game.WithRecorder(opts.Store),
		game.WithConfirm(game.ConfirmFunc(modal.confirm)),
	}
	if opts.Logger != nil {
		ctrlOpts = append(ctrlOpts, game.WithLogger(opts.Logger))
	}
	if opts.HasMode {
		ctrlOpts = append(ctrlOpts, game.WithMode(opts.Mode))
	}

	ctrl := game.NewController(opts.Game, board, opts.Store, ctrlOpts...)
	ctrl.Initialize()

	h := help.New()
	h.Width = opts.Runtime.ScreenW

	return Model{
		ctrl:    ctrl,
		board:   board,
		modal:   modal,
		theme:   NewTheme(opts.Renderer),
		keys:    DefaultKeyMap(),
		help:    h,
		history: newHistoryView(opts.Store, opts.Runtime.ScreenH),
		copy:    opts.Clipboard,
		width:   opts.Runtime.ScreenW,
		height:  opts.Runtime.ScreenH,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("colorguess")
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case m.modal.open:
			return m.handleModalKey(msg)
		case m.showHistory:
			return m.handleHistoryKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.history.table = newHistoryTable(msg.Height)
		if m.showHistory {
			m.history.load()
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input on the board.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Left):
		m.cursor = core.Wrap(m.cursor-1, m.ctrl.SwatchCount())
		return m, nil
	case key.Matches(msg, m.keys.Right):
		m.cursor = core.Wrap(m.cursor+1, m.ctrl.SwatchCount())
		return m, nil
	case key.Matches(msg, m.keys.Select):
		m.ctrl.Guess(m.cursor)
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Copy):
		m.status = m.copyTarget()
		return m, nil
	}

	return m.dispatch(m.keys.MapKey(msg))
}

// dispatch runs the controller operation for a mapped input.
func (m Model) dispatch(in core.Input) (tea.Model, tea.Cmd) {
	switch in.Action {
	case core.ActionQuit:
		return m.quit()
	case core.ActionGuess:
		if in.Slot < m.ctrl.SwatchCount() {
			m.cursor = in.Slot
		}
		m.ctrl.Guess(in.Slot)
	case core.ActionNewRound:
		m.ctrl.StartRound()
		m.cursor = 0
	case core.ActionEasy:
		m.ctrl.SetMode(config.ModeEasy)
		m.cursor = 0
	case core.ActionHard:
		m.ctrl.SetMode(config.ModeHard)
		m.cursor = 0
	case core.ActionReset:
		m.ctrl.ResetStreak()
	case core.ActionHistory:
		m.history.load()
		m.showHistory = true
	}
	return m, nil
}

// handleModalKey answers the reset confirmation.
func (m Model) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToModal(msg) {
	case ModalYes:
		m.modal.open = false
		m.modal.answered = true
		m.modal.answer = true
		m.ctrl.ResetStreak()
	case ModalNo:
		m.modal.open = false
	case ModalQuit:
		m.modal.open = false
		return m.quit()
	}
	return m, nil
}

func (m Model) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m.quit()
	case "esc", "t":
		m.showHistory = false
		return m, nil
	}

	var cmd tea.Cmd
	m.history, cmd = m.history.update(msg)
	return m, cmd
}

func (m Model) copyTarget() string {
	if m.copy == nil {
		return "Clipboard not available"
	}
	text := m.ctrl.Round().Target.String()
	if err := m.copy(text); err != nil {
		return "Could not copy: " + err.Error()
	}
	return "Copied " + text
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.ctrl.Close()
	m.quitting = true
	return m, tea.Quit
}

// Controller returns the model's game controller.
func (m Model) Controller() *game.Controller {
	return m.ctrl
}

// Board returns the current display state.
func (m Model) Board() *Board {
	return m.board
}

// Cursor returns the keyboard-selected swatch slot.
func (m Model) Cursor() int {
	return m.cursor
}

// ConfirmOpen reports whether the reset confirmation is showing.
func (m Model) ConfirmOpen() bool {
	return m.modal.open
}

// HistoryOpen reports whether the streak history overlay is showing.
func (m Model) HistoryOpen() bool {
	return m.showHistory
}

// Status returns the transient status line, if any.
func (m Model) Status() string {
	return m.status
}

// IsQuitting returns true if the user asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts a local Bubble Tea program for the given options.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
