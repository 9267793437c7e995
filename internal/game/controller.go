// Package game implements the color game's round controller: it generates
// rounds, evaluates guesses, tracks the streak and best streak, and pushes
// every visible change through a Renderer.
package game

import (
	"io"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/colorguess/internal/config"
	"github.com/vovakirdan/colorguess/internal/core"
)

// Controller owns all game state. It is not safe for concurrent use; every
// operation is expected to run to completion on the caller's event loop.
type Controller struct {
	cfg      config.GameConfig
	render   Renderer
	store    Persistence
	confirm  Confirmer
	recorder StreakRecorder
	rng      *rand.Rand
	logger   *log.Logger

	mode       config.Mode
	round      Round
	streak     Streak
	slots      [MaxSwatches]slot
	message    MessageKind
	emphasized bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithConfirm sets the prompt used by ResetStreak. Defaults to NeverConfirm.
func WithConfirm(c Confirmer) Option {
	return func(ctl *Controller) { ctl.confirm = c }
}

// WithRand sets the random source for palettes and targets.
func WithRand(rng *rand.Rand) Option {
	return func(ctl *Controller) { ctl.rng = rng }
}

// WithSeed seeds the random source. A zero seed uses the current time.
func WithSeed(seed int64) Option {
	return func(ctl *Controller) {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		ctl.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRecorder sets where finished streaks are reported.
func WithRecorder(r StreakRecorder) Option {
	return func(ctl *Controller) { ctl.recorder = r }
}

// WithLogger sets the logger. Defaults to a discarding logger.
func WithLogger(l *log.Logger) Option {
	return func(ctl *Controller) { ctl.logger = l }
}

// WithMode overrides the configured starting mode.
func WithMode(m config.Mode) Option {
	return func(ctl *Controller) { ctl.mode = m }
}

// NewController creates a controller. Call Initialize before dispatching input.
func NewController(cfg config.GameConfig, r Renderer, p Persistence, opts ...Option) *Controller {
	c := &Controller{
		cfg:     cfg,
		render:  r,
		store:   p,
		confirm: NeverConfirm,
		mode:    cfg.StartMode(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if c.logger == nil {
		c.logger = log.New(io.Discard)
	}
	return c
}

// Initialize loads the best streak, selects the starting mode and starts the first round.
func (c *Controller) Initialize() {
	c.Restore()
	c.selectMode()
	c.StartRound()
	c.render.SetStreak(c.streak.Current, c.streak.Best)
}

// Restore reloads the best streak from persistence. Missing, unreadable,
// non-numeric or negative values all count as no prior best.
func (c *Controller) Restore() {
	c.streak.Best = c.loadBest()
}

// StartRound replaces the current round with a freshly generated one.
func (c *Controller) StartRound() {
	n := c.swatchCount()
	palette := NewPalette(c.rng, n)
	idx := c.rng.Intn(n)

	c.round = Round{
		Palette:     palette,
		Target:      palette[idx],
		TargetIndex: idx,
	}

	c.render.SetTarget(strings.ToUpper(c.round.Target.String()))
	c.setMessage(MessagePick)

	for i := range c.slots {
		if i < n {
			c.slots[i] = slot{color: palette[i], visible: true, enabled: true}
			c.render.SetSwatchVisible(i, true)
			c.render.SetSwatchColor(i, palette[i])
			c.render.SetSwatchFaded(i, false)
			c.render.SetSwatchWrong(i, false)
			c.render.SetSwatchHighlight(i, false, c.cfg.Tones.Highlight.RGB)
			c.render.SetSwatchEnabled(i, true)
			continue
		}
		// Surplus slots stay hidden and inert.
		c.slots[i] = slot{}
		c.render.SetSwatchVisible(i, false)
		c.render.SetSwatchEnabled(i, false)
	}

	c.render.SetAccent(core.RGB{}, false)
	c.render.SetAdvanceLabel(c.cfg.Labels.NewRound)

	c.logger.Debug("round started", "mode", c.mode, "swatches", n, "target", c.round.Target)
}

// Guess activates the swatch in the given slot. Activations of hidden or
// disabled swatches, or any activation after the round is resolved, are
// ignored and change nothing.
func (c *Controller) Guess(i int) Outcome {
	if i < 0 || i >= len(c.slots) || c.round.Resolved {
		return OutcomeIgnored
	}
	s := c.slots[i]
	if !s.visible || !s.enabled {
		return OutcomeIgnored
	}

	if s.color == c.round.Target {
		c.correct(i)
		return OutcomeCorrect
	}
	c.wrong(i)
	return OutcomeWrong
}

func (c *Controller) correct(i int) {
	prevBest := c.streak.Best
	c.streak.Current++

	kind := MessageCorrect
	switch {
	case c.streak.Current > prevBest:
		c.streak.Best = c.streak.Current
		c.saveBest()
		c.emphasized = true
		c.render.SetTargetEmphasis(true)
		kind = MessageNewBest
	case c.streak.Current == 1:
		kind = MessageFirstWin
	case c.streak.Current >= 3:
		kind = MessageStreak
	}
	c.setMessage(kind)

	c.round.Resolved = true

	// Reveal: every visible swatch takes the target color and goes inert.
	for j := range c.slots {
		if !c.slots[j].visible {
			continue
		}
		c.slots[j].color = c.round.Target
		c.slots[j].wrong = false
		c.slots[j].highlight = false
		c.slots[j].enabled = false
		c.render.SetSwatchColor(j, c.round.Target)
		c.render.SetSwatchFaded(j, false)
		c.render.SetSwatchWrong(j, false)
		c.render.SetSwatchHighlight(j, false, c.cfg.Tones.Highlight.RGB)
		c.render.SetSwatchEnabled(j, false)
	}

	c.slots[i].highlight = true
	c.render.SetSwatchHighlight(i, true, c.cfg.Tones.Highlight.RGB)
	c.render.SetAccent(c.round.Target, true)
	c.render.SetAdvanceLabel(c.cfg.Labels.NextRound)
	c.render.SetStreak(c.streak.Current, c.streak.Best)

	c.logger.Debug("correct guess", "slot", i, "streak", c.streak.Current, "best", c.streak.Best)
}

func (c *Controller) wrong(i int) {
	ended := c.streak.Current
	c.streak.Current = 0
	c.render.SetStreak(c.streak.Current, c.streak.Best)

	c.slots[i].wrong = true
	c.slots[i].enabled = false
	c.render.SetSwatchFaded(i, true)
	c.render.SetSwatchWrong(i, true)
	c.render.SetSwatchEnabled(i, false)

	c.setMessage(MessageTryAgain)
	c.recordStreak(ended)

	c.logger.Debug("wrong guess", "slot", i, "ended_streak", ended)
}

// SetMode switches difficulty and immediately starts a new round.
func (c *Controller) SetMode(m config.Mode) {
	c.mode = m
	c.selectMode()
	c.StartRound()
}

func (c *Controller) selectMode() {
	for _, m := range config.AllModes() {
		c.render.SetModeSelected(m, m == c.mode, c.cfg.Mode(m).Accent.RGB)
	}
}

// ResetStreak zeroes both counters and forgets the persisted best after the
// user confirms. Returns false, with nothing changed, if the user declines.
// The current round is left as it is.
func (c *Controller) ResetStreak() bool {
	if !c.confirm.Confirm(c.cfg.Messages.ResetPrompt) {
		return false
	}

	ended := c.streak.Current
	c.streak = Streak{}
	if err := c.store.Remove(c.cfg.StorageKey); err != nil {
		c.logger.Warn("could not remove best streak", "key", c.cfg.StorageKey, "error", err)
	}
	c.render.SetStreak(c.streak.Current, c.streak.Best)
	c.setMessage(MessageReset)
	c.recordStreak(ended)

	c.logger.Info("streak reset")
	return true
}

// Close reports the streak in progress, if any, as finished.
func (c *Controller) Close() {
	c.recordStreak(c.streak.Current)
}

// Mode returns the active difficulty mode.
func (c *Controller) Mode() config.Mode {
	return c.mode
}

// Round returns a copy of the current round.
func (c *Controller) Round() Round {
	r := c.round
	r.Palette = append(Palette(nil), c.round.Palette...)
	return r
}

// Streak returns the current streak state.
func (c *Controller) Streak() Streak {
	return c.streak
}

// Message returns the kind of feedback message currently shown.
func (c *Controller) Message() MessageKind {
	return c.message
}

// Emphasized reports whether the target text has been emphasized for a new best.
func (c *Controller) Emphasized() bool {
	return c.emphasized
}

// Enabled reports whether the swatch in slot i currently accepts activation.
func (c *Controller) Enabled(i int) bool {
	if i < 0 || i >= len(c.slots) || c.round.Resolved {
		return false
	}
	return c.slots[i].visible && c.slots[i].enabled
}

// SwatchCount returns the number of visible swatches for the active mode.
func (c *Controller) SwatchCount() int {
	return c.swatchCount()
}

func (c *Controller) swatchCount() int {
	return core.Clamp(c.cfg.Mode(c.mode).Swatches, 1, MaxSwatches)
}

func (c *Controller) setMessage(kind MessageKind) {
	text, tone := c.messageFor(kind)
	c.message = kind
	c.render.SetMessage(text, tone)
}

func (c *Controller) messageFor(kind MessageKind) (string, core.RGB) {
	msgs, tones := c.cfg.Messages, c.cfg.Tones
	switch kind {
	case MessageFirstWin:
		return msgs.FirstWin, tones.FirstWin.RGB
	case MessageStreak:
		return msgs.Streak, tones.Streak.RGB
	case MessageNewBest:
		return msgs.NewBest, tones.NewBest.RGB
	case MessageCorrect:
		return msgs.Correct, tones.Correct.RGB
	case MessageTryAgain:
		return msgs.TryAgain, tones.Wrong.RGB
	case MessageReset:
		return msgs.Reset, tones.Neutral.RGB
	default:
		return msgs.Pick, tones.Neutral.RGB
	}
}

func (c *Controller) loadBest() int {
	v, ok, err := c.store.Get(c.cfg.StorageKey)
	if err != nil {
		c.logger.Warn("could not load best streak", "key", c.cfg.StorageKey, "error", err)
		return 0
	}
	if !ok {
		return 0
	}
	n, ok := leadingInt(v)
	if !ok || n < 0 {
		c.logger.Debug("ignoring stored best streak", "value", v)
		return 0
	}
	return n
}

// leadingInt parses the integer at the start of s and ignores whatever
// follows it, so "12abc" reads as 12.
func leadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	return n, err == nil
}

func (c *Controller) saveBest() {
	if err := c.store.Set(c.cfg.StorageKey, strconv.Itoa(c.streak.Best)); err != nil {
		c.logger.Warn("could not save best streak", "key", c.cfg.StorageKey, "error", err)
	}
}

func (c *Controller) recordStreak(length int) {
	if length <= 0 || c.recorder == nil {
		return
	}
	if err := c.recorder.RecordStreak(c.mode.String(), length); err != nil {
		c.logger.Warn("could not record streak", "length", length, "error", err)
	}
}
