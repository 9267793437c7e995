package game

import (
	"math/rand"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/vovakirdan/colorguess/internal/config"
)

const testKey = "colorGameBestStreak"

func newTestController(t *testing.T, store *fakeStore, opts ...Option) (*Controller, *fakeRenderer) {
	t.Helper()
	r := newFakeRenderer()
	opts = append([]Option{WithRand(rand.New(rand.NewSource(1)))}, opts...)
	c := NewController(config.DefaultGameConfig(), r, store, opts...)
	c.Initialize()
	return c, r
}

// wrongSlot returns a visible slot whose color differs from the target.
func wrongSlot(t *testing.T, c *Controller) int {
	t.Helper()
	round := c.Round()
	for i, col := range round.Palette {
		if col != round.Target {
			return i
		}
	}
	t.Fatal("palette has no color different from the target")
	return -1
}

// winRound guesses the target and starts the next round.
func winRound(t *testing.T, c *Controller) MessageKind {
	t.Helper()
	if got := c.Guess(c.Round().TargetIndex); got != OutcomeCorrect {
		t.Fatalf("Guess(target) = %v, expected correct", got)
	}
	kind := c.Message()
	c.StartRound()
	return kind
}

func TestInitializeDefaults(t *testing.T) {
	c, r := newTestController(t, newFakeStore())
	cfg := config.DefaultGameConfig()

	if c.Mode() != config.ModeHard {
		t.Errorf("Mode() = %v, expected hard", c.Mode())
	}
	if !r.selected[config.ModeHard] || r.selected[config.ModeEasy] {
		t.Errorf("mode selection = %v, expected only hard selected", r.selected)
	}

	round := c.Round()
	if len(round.Palette) != 6 {
		t.Fatalf("palette length = %d, expected 6", len(round.Palette))
	}
	if round.Resolved {
		t.Error("new round should not be resolved")
	}
	if r.target != strings.ToUpper(round.Target.String()) {
		t.Errorf("target text = %q, expected %q", r.target, strings.ToUpper(round.Target.String()))
	}
	for i := 0; i < MaxSwatches; i++ {
		sw := r.swatches[i]
		if !sw.visible || !sw.enabled {
			t.Errorf("slot %d should be visible and enabled", i)
		}
		if sw.color != round.Palette[i] {
			t.Errorf("slot %d color = %v, expected %v", i, sw.color, round.Palette[i])
		}
	}
	if r.message != cfg.Messages.Pick || c.Message() != MessagePick {
		t.Errorf("message = %q (%v), expected pick message", r.message, c.Message())
	}
	if r.advanceLabel != cfg.Labels.NewRound {
		t.Errorf("advance label = %q, expected %q", r.advanceLabel, cfg.Labels.NewRound)
	}
	if r.accentSet {
		t.Error("accent should be cleared at start")
	}
	if r.current != 0 || r.best != 0 {
		t.Errorf("streak display = %d/%d, expected 0/0", r.current, r.best)
	}
}

func TestTargetAlwaysInPalette(t *testing.T) {
	c, _ := newTestController(t, newFakeStore())

	for i := 0; i < 500; i++ {
		if i%2 == 0 {
			c.SetMode(config.ModeEasy)
		} else {
			c.SetMode(config.ModeHard)
		}
		round := c.Round()
		if len(round.Palette) != c.SwatchCount() {
			t.Fatalf("palette length = %d, expected %d", len(round.Palette), c.SwatchCount())
		}
		if !round.Palette.Contains(round.Target) {
			t.Fatalf("target %v not in palette %v", round.Target, round.Palette)
		}
		if round.Palette[round.TargetIndex] != round.Target {
			t.Fatalf("palette[%d] = %v, expected target %v", round.TargetIndex, round.Palette[round.TargetIndex], round.Target)
		}
	}
}

func TestRestoreBest(t *testing.T) {
	tests := []struct {
		name     string
		stored   *string
		storeErr error
		expected int
	}{
		{name: "absent", expected: 0},
		{name: "number", stored: ptr("7"), expected: 7},
		{name: "padded", stored: ptr(" 12 "), expected: 12},
		{name: "zero", stored: ptr("0"), expected: 0},
		{name: "garbage", stored: ptr("abc"), expected: 0},
		{name: "trailing garbage", stored: ptr("12abc"), expected: 12},
		{name: "decimal", stored: ptr("4.9"), expected: 4},
		{name: "plus sign", stored: ptr("+5"), expected: 5},
		{name: "sign only", stored: ptr("-"), expected: 0},
		{name: "negative with suffix", stored: ptr("-2x"), expected: 0},
		{name: "overflow", stored: ptr("99999999999999999999999"), expected: 0},
		{name: "negative", stored: ptr("-3"), expected: 0},
		{name: "empty", stored: ptr(""), expected: 0},
		{name: "store error", stored: ptr("9"), storeErr: errStoreDown, expected: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := newFakeStore()
			if tc.stored != nil {
				store.data[testKey] = *tc.stored
			}
			store.err = tc.storeErr

			c, r := newTestController(t, store)
			if c.Streak().Best != tc.expected {
				t.Errorf("Best = %d, expected %d", c.Streak().Best, tc.expected)
			}
			if r.best != tc.expected {
				t.Errorf("displayed best = %d, expected %d", r.best, tc.expected)
			}
		})
	}
}

func ptr(s string) *string { return &s }

func TestFirstCorrectGuessIsNewBest(t *testing.T) {
	store := newFakeStore()
	c, r := newTestController(t, store)
	cfg := config.DefaultGameConfig()

	round := c.Round()
	clicked := round.TargetIndex
	if got := c.Guess(clicked); got != OutcomeCorrect {
		t.Fatalf("Guess() = %v, expected correct", got)
	}

	if s := c.Streak(); s.Current != 1 || s.Best != 1 {
		t.Errorf("streak = %+v, expected 1/1", s)
	}
	if c.Message() != MessageNewBest || r.message != cfg.Messages.NewBest {
		t.Errorf("message = %q (%v), expected new best", r.message, c.Message())
	}
	if r.tone != cfg.Tones.NewBest.RGB {
		t.Errorf("tone = %v, expected %v", r.tone, cfg.Tones.NewBest.RGB)
	}
	if store.data[testKey] != "1" {
		t.Errorf("persisted best = %q, expected %q", store.data[testKey], "1")
	}
	if !r.emphasized || !c.Emphasized() {
		t.Error("target text should be emphasized on a new best")
	}
	if !c.Round().Resolved {
		t.Error("round should be resolved")
	}

	for i := 0; i < len(round.Palette); i++ {
		sw := r.swatches[i]
		if sw.color != round.Target {
			t.Errorf("slot %d color = %v, expected target %v", i, sw.color, round.Target)
		}
		if sw.enabled || c.Enabled(i) {
			t.Errorf("slot %d should be disabled after a correct guess", i)
		}
		if sw.faded || sw.wrong {
			t.Errorf("slot %d should have no fade/wrong decoration", i)
		}
		if sw.highlight != (i == clicked) {
			t.Errorf("slot %d highlight = %v, expected %v", i, sw.highlight, i == clicked)
		}
	}
	if !r.accentSet || r.accent != round.Target {
		t.Errorf("accent = %v (set %v), expected target %v", r.accent, r.accentSet, round.Target)
	}
	if r.advanceLabel != cfg.Labels.NextRound {
		t.Errorf("advance label = %q, expected %q", r.advanceLabel, cfg.Labels.NextRound)
	}
	if r.current != 1 || r.best != 1 {
		t.Errorf("streak display = %d/%d, expected 1/1", r.current, r.best)
	}
}

func TestFirstWinWhenBestIsHigher(t *testing.T) {
	store := newFakeStore()
	store.data[testKey] = "5"
	c, r := newTestController(t, store)
	callsBefore := len(store.calls)

	if kind := winRound(t, c); kind != MessageFirstWin {
		t.Errorf("message = %v, expected first_win", kind)
	}
	if s := c.Streak(); s.Current != 1 || s.Best != 5 {
		t.Errorf("streak = %+v, expected 1/5", s)
	}
	if len(store.calls) != callsBefore {
		t.Errorf("unexpected persistence calls: %v", store.calls[callsBefore:])
	}
	if r.emphasized {
		t.Error("target text should not be emphasized without a new best")
	}
}

func TestMessagePriority(t *testing.T) {
	tests := []struct {
		name     string
		best     string
		expected []MessageKind
	}{
		{
			name:     "best far ahead",
			best:     "10",
			expected: []MessageKind{MessageFirstWin, MessageCorrect, MessageStreak, MessageStreak},
		},
		{
			name:     "new best overrides streak",
			best:     "2",
			expected: []MessageKind{MessageFirstWin, MessageCorrect, MessageNewBest, MessageNewBest},
		},
		{
			name:     "no prior best",
			best:     "0",
			expected: []MessageKind{MessageNewBest, MessageNewBest, MessageNewBest},
		},
		{
			name:     "ties are not new bests",
			best:     "3",
			expected: []MessageKind{MessageFirstWin, MessageCorrect, MessageStreak, MessageNewBest},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := newFakeStore()
			store.data[testKey] = tc.best
			c, _ := newTestController(t, store)

			for i, want := range tc.expected {
				if got := winRound(t, c); got != want {
					t.Errorf("win %d: message = %v, expected %v", i+1, got, want)
				}
			}
		})
	}
}

func TestWrongGuess(t *testing.T) {
	store := newFakeStore()
	store.data[testKey] = "10"
	rec := &fakeRecorder{}
	c, r := newTestController(t, store, WithRecorder(rec))
	cfg := config.DefaultGameConfig()

	winRound(t, c)
	winRound(t, c)
	if c.Streak().Current != 2 {
		t.Fatalf("Current = %d, expected 2", c.Streak().Current)
	}

	bad := wrongSlot(t, c)
	if got := c.Guess(bad); got != OutcomeWrong {
		t.Fatalf("Guess() = %v, expected wrong", got)
	}

	if s := c.Streak(); s.Current != 0 || s.Best != 10 {
		t.Errorf("streak = %+v, expected 0/10", s)
	}
	if r.current != 0 {
		t.Errorf("displayed current = %d, expected 0", r.current)
	}
	sw := r.swatches[bad]
	if !sw.faded || !sw.wrong || sw.enabled {
		t.Errorf("wrong swatch = %+v, expected faded, wrong and disabled", sw)
	}
	for i := 0; i < c.SwatchCount(); i++ {
		if i == bad {
			continue
		}
		if !r.swatches[i].enabled || !c.Enabled(i) {
			t.Errorf("slot %d should stay enabled after a wrong guess elsewhere", i)
		}
	}
	if c.Message() != MessageTryAgain || r.message != cfg.Messages.TryAgain {
		t.Errorf("message = %q (%v), expected try again", r.message, c.Message())
	}
	if r.tone != cfg.Tones.Wrong.RGB {
		t.Errorf("tone = %v, expected %v", r.tone, cfg.Tones.Wrong.RGB)
	}
	if c.Round().Resolved {
		t.Error("round should stay unresolved after a wrong guess")
	}
	if !reflect.DeepEqual(rec.streaks, []int{2}) || rec.modes[0] != "hard" {
		t.Errorf("recorded streaks = %v %v, expected [2] in hard", rec.streaks, rec.modes)
	}

	// Same swatch again is ignored.
	if got := c.Guess(bad); got != OutcomeIgnored {
		t.Errorf("second Guess() on wrong swatch = %v, expected ignored", got)
	}

	// The round can still be won.
	if got := c.Guess(c.Round().TargetIndex); got != OutcomeCorrect {
		t.Errorf("Guess(target) after a miss = %v, expected correct", got)
	}
	if c.Streak().Current != 1 {
		t.Errorf("Current = %d, expected 1", c.Streak().Current)
	}
}

func TestWrongGuessAlwaysZeroesCurrent(t *testing.T) {
	for _, wins := range []int{0, 1, 4} {
		c, _ := newTestController(t, newFakeStore())
		for i := 0; i < wins; i++ {
			winRound(t, c)
		}
		c.Guess(wrongSlot(t, c))
		if c.Streak().Current != 0 {
			t.Errorf("after %d wins and a miss, Current = %d, expected 0", wins, c.Streak().Current)
		}
		if c.Streak().Best != wins {
			t.Errorf("after %d wins and a miss, Best = %d, expected %d", wins, c.Streak().Best, wins)
		}
	}
}

func TestGuessAfterResolutionIsIgnored(t *testing.T) {
	store := newFakeStore()
	c, r := newTestController(t, store)

	c.Guess(c.Round().TargetIndex)
	streak := c.Streak()
	calls := len(store.calls)
	message := r.message

	for i := -1; i <= MaxSwatches; i++ {
		if got := c.Guess(i); got != OutcomeIgnored {
			t.Errorf("Guess(%d) after resolution = %v, expected ignored", i, got)
		}
	}
	if c.Streak() != streak {
		t.Errorf("streak changed after resolution: %+v -> %+v", streak, c.Streak())
	}
	if len(store.calls) != calls {
		t.Errorf("persistence touched after resolution: %v", store.calls[calls:])
	}
	if r.message != message {
		t.Errorf("message changed after resolution: %q -> %q", message, r.message)
	}
}

func TestGuessOutOfRangeOrHidden(t *testing.T) {
	c, _ := newTestController(t, newFakeStore(), WithMode(config.ModeEasy))

	for _, i := range []int{-1, 3, 4, 5, 6, 100} {
		if got := c.Guess(i); got != OutcomeIgnored {
			t.Errorf("Guess(%d) in easy mode = %v, expected ignored", i, got)
		}
	}
	if c.Streak().Current != 0 || c.Message() != MessagePick {
		t.Error("ignored guesses should not change state")
	}
}

func TestSetMode(t *testing.T) {
	c, r := newTestController(t, newFakeStore())
	c.Guess(c.Round().TargetIndex)

	c.SetMode(config.ModeEasy)
	if c.Mode() != config.ModeEasy {
		t.Fatalf("Mode() = %v, expected easy", c.Mode())
	}
	if !r.selected[config.ModeEasy] || r.selected[config.ModeHard] {
		t.Errorf("mode selection = %v, expected only easy selected", r.selected)
	}
	round := c.Round()
	if round.Resolved {
		t.Error("mode switch should start a fresh round")
	}
	if len(round.Palette) != 3 {
		t.Fatalf("easy palette length = %d, expected 3", len(round.Palette))
	}
	for i := 0; i < MaxSwatches; i++ {
		sw := r.swatches[i]
		if i < 3 {
			if !sw.visible || !sw.enabled {
				t.Errorf("slot %d should be visible and enabled in easy mode", i)
			}
			continue
		}
		if sw.visible || sw.enabled || c.Enabled(i) {
			t.Errorf("slot %d should be hidden and disabled in easy mode", i)
		}
	}

	c.SetMode(config.ModeHard)
	if len(c.Round().Palette) != 6 {
		t.Fatalf("hard palette length = %d, expected 6", len(c.Round().Palette))
	}
	if !r.selected[config.ModeHard] || r.selected[config.ModeEasy] {
		t.Errorf("mode selection = %v, expected only hard selected", r.selected)
	}
	for i := 0; i < MaxSwatches; i++ {
		if !r.swatches[i].visible || !r.swatches[i].enabled {
			t.Errorf("slot %d should be visible and enabled in hard mode", i)
		}
	}
}

func TestStartRoundClearsDecorations(t *testing.T) {
	c, r := newTestController(t, newFakeStore())
	cfg := config.DefaultGameConfig()

	c.Guess(wrongSlot(t, c))
	c.Guess(c.Round().TargetIndex)
	c.StartRound()

	for i := 0; i < MaxSwatches; i++ {
		sw := r.swatches[i]
		if sw.faded || sw.wrong || sw.highlight || !sw.enabled {
			t.Errorf("slot %d not reset: %+v", i, sw)
		}
	}
	if r.accentSet {
		t.Error("accent should be cleared on a new round")
	}
	if r.advanceLabel != cfg.Labels.NewRound {
		t.Errorf("advance label = %q, expected %q", r.advanceLabel, cfg.Labels.NewRound)
	}
	if c.Message() != MessagePick {
		t.Errorf("message = %v, expected pick", c.Message())
	}
}

// constSource makes every palette color and every target index zero.
type constSource struct{}

func (constSource) Int63() int64 { return 0 }
func (constSource) Seed(int64) {}

func TestGuessMatchesByColor(t *testing.T) {
	t.Run("duplicate of target", func(t *testing.T) {
		c, r := newTestController(t, newFakeStore(), WithRand(rand.New(constSource{})))
		round := c.Round()
		if round.TargetIndex != 0 || round.Palette[1] != round.Target {
			t.Fatalf("expected slot 1 to repeat the target, got %+v", round)
		}

		if got := c.Guess(1); got != OutcomeCorrect {
			t.Fatalf("Guess(1) = %v, expected correct", got)
		}
		if s := c.Streak(); s.Current != 1 || s.Best != 1 {
			t.Errorf("streak = %+v, expected 1/1", s)
		}
		if !r.swatches[1].highlight || r.swatches[0].highlight {
			t.Error("only the activated swatch should be highlighted")
		}
	})

	t.Run("win clears wrong marks", func(t *testing.T) {
		c, r := newTestController(t, newFakeStore())
		miss := wrongSlot(t, c)
		c.Guess(miss)
		if !r.swatches[miss].faded || !r.swatches[miss].wrong {
			t.Fatalf("slot %d should be marked wrong: %+v", miss, r.swatches[miss])
		}

		c.Guess(c.Round().TargetIndex)
		target := c.Round().Target
		for i := 0; i < MaxSwatches; i++ {
			sw := r.swatches[i]
			if sw.faded || sw.wrong || sw.enabled {
				t.Errorf("slot %d after win: %+v", i, sw)
			}
			if sw.color != target {
				t.Errorf("slot %d color = %v, expected %v", i, sw.color, target)
			}
		}
	})
}

func TestResetStreakDeclined(t *testing.T) {
	store := newFakeStore()
	store.data[testKey] = "1"
	rec := &fakeRecorder{}
	var prompts []string
	confirm := ConfirmFunc(func(p string) bool {
		prompts = append(prompts, p)
		return false
	})
	c, r := newTestController(t, store, WithConfirm(confirm), WithRecorder(rec))

	winRound(t, c)
	winRound(t, c)
	streak := c.Streak()
	round := c.Round()
	message := r.message
	calls := len(store.calls)

	if c.ResetStreak() {
		t.Error("ResetStreak() should report false when declined")
	}
	if len(prompts) != 1 || prompts[0] != config.DefaultGameConfig().Messages.ResetPrompt {
		t.Errorf("prompts = %v, expected the reset prompt once", prompts)
	}
	if c.Streak() != streak {
		t.Errorf("streak changed: %+v -> %+v", streak, c.Streak())
	}
	if len(store.calls) != calls {
		t.Errorf("persistence touched: %v", store.calls[calls:])
	}
	if r.message != message {
		t.Errorf("message changed: %q -> %q", message, r.message)
	}
	if !reflect.DeepEqual(c.Round(), round) {
		t.Error("round changed on declined reset")
	}
	if len(rec.streaks) != 0 {
		t.Errorf("recorded streaks = %v, expected none", rec.streaks)
	}
}

func TestResetStreakConfirmed(t *testing.T) {
	store := newFakeStore()
	rec := &fakeRecorder{}
	c, r := newTestController(t, store, WithConfirm(AlwaysConfirm), WithRecorder(rec))

	winRound(t, c)
	winRound(t, c)
	round := c.Round()

	if !c.ResetStreak() {
		t.Fatal("ResetStreak() should report true when confirmed")
	}
	if c.Streak() != (Streak{}) {
		t.Errorf("streak = %+v, expected zero", c.Streak())
	}
	if _, ok := store.data[testKey]; ok {
		t.Error("persisted best should be removed")
	}
	if last := store.calls[len(store.calls)-1]; last != "remove "+testKey {
		t.Errorf("last persistence call = %q, expected remove", last)
	}
	if r.current != 0 || r.best != 0 {
		t.Errorf("streak display = %d/%d, expected 0/0", r.current, r.best)
	}
	if c.Message() != MessageReset || r.message != config.DefaultGameConfig().Messages.Reset {
		t.Errorf("message = %q (%v), expected reset", r.message, c.Message())
	}
	if !reflect.DeepEqual(c.Round(), round) {
		t.Error("reset should not start a new round")
	}
	if !reflect.DeepEqual(rec.streaks, []int{2}) {
		t.Errorf("recorded streaks = %v, expected [2]", rec.streaks)
	}

	// Next win is a new best again.
	if kind := winRound(t, c); kind != MessageNewBest {
		t.Errorf("first win after reset = %v, expected new_best", kind)
	}
}

func TestDefaultConfirmDeclines(t *testing.T) {
	store := newFakeStore()
	r := newFakeRenderer()
	c := NewController(config.DefaultGameConfig(), r, store, WithSeed(3))
	c.Initialize()
	winRound(t, c)

	if c.ResetStreak() {
		t.Error("ResetStreak() without a confirmer should decline")
	}
	if c.Streak().Best != 1 {
		t.Errorf("Best = %d, expected 1", c.Streak().Best)
	}
}

func TestBestRoundTripsThroughPersistence(t *testing.T) {
	for _, k := range []int{0, 1, 3, 42, 1_000_000} {
		store := newFakeStore()
		store.data[testKey] = strconv.Itoa(k)
		c, _ := newTestController(t, store)
		if c.Streak().Best != k {
			t.Errorf("stored %d, loaded %d", k, c.Streak().Best)
		}
	}

	// A session's best survives a restart.
	store := newFakeStore()
	first, _ := newTestController(t, store)
	for i := 0; i < 3; i++ {
		winRound(t, first)
	}
	second, r := newTestController(t, store)
	if second.Streak().Best != 3 || second.Streak().Current != 0 {
		t.Errorf("restarted streak = %+v, expected best 3 current 0", second.Streak())
	}
	if r.best != 3 {
		t.Errorf("displayed best = %d, expected 3", r.best)
	}
}

func TestBestIsMonotonic(t *testing.T) {
	c, _ := newTestController(t, newFakeStore())
	rng := rand.New(rand.NewSource(99))

	best := 0
	for i := 0; i < 400; i++ {
		switch rng.Intn(4) {
		case 0:
			c.Guess(c.Round().TargetIndex)
		case 1:
			c.Guess(rng.Intn(MaxSwatches))
		case 2:
			c.StartRound()
		case 3:
			if rng.Intn(2) == 0 {
				c.SetMode(config.ModeEasy)
			} else {
				c.SetMode(config.ModeHard)
			}
		}
		if c.Streak().Best < best {
			t.Fatalf("step %d: best decreased from %d to %d", i, best, c.Streak().Best)
		}
		if c.Streak().Current > c.Streak().Best {
			t.Fatalf("step %d: current %d exceeds best %d", i, c.Streak().Current, c.Streak().Best)
		}
		best = c.Streak().Best
	}
}

func TestPersistenceErrorsAreNotFatal(t *testing.T) {
	store := newFakeStore()
	store.err = errStoreDown
	c, r := newTestController(t, store, WithConfirm(AlwaysConfirm))

	winRound(t, c)
	winRound(t, c)
	if s := c.Streak(); s.Current != 2 || s.Best != 2 {
		t.Errorf("streak = %+v, expected 2/2 despite store errors", s)
	}
	if !c.ResetStreak() {
		t.Error("reset should still complete when the store fails")
	}
	if r.best != 0 {
		t.Errorf("displayed best = %d, expected 0", r.best)
	}
}

func TestCloseRecordsStreakInProgress(t *testing.T) {
	rec := &fakeRecorder{}
	c, _ := newTestController(t, newFakeStore(), WithRecorder(rec), WithMode(config.ModeEasy))

	c.Close()
	if len(rec.streaks) != 0 {
		t.Errorf("Close() with no streak recorded %v", rec.streaks)
	}

	winRound(t, c)
	winRound(t, c)
	c.Close()
	if !reflect.DeepEqual(rec.streaks, []int{2}) || rec.modes[0] != "easy" {
		t.Errorf("recorded = %v %v, expected [2] in easy", rec.streaks, rec.modes)
	}
}

func TestSeededControllersAgree(t *testing.T) {
	a := NewController(config.DefaultGameConfig(), NopRenderer{}, newFakeStore(), WithSeed(1234))
	b := NewController(config.DefaultGameConfig(), NopRenderer{}, newFakeStore(), WithSeed(1234))
	a.Initialize()
	b.Initialize()

	for i := 0; i < 20; i++ {
		if !reflect.DeepEqual(a.Round(), b.Round()) {
			t.Fatalf("round %d differs between identically seeded controllers", i)
		}
		a.StartRound()
		b.StartRound()
	}
}
