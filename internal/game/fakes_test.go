package game

import (
	"errors"

	"github.com/vovakirdan/colorguess/internal/config"
	"github.com/vovakirdan/colorguess/internal/core"
)

// fakeSwatch mirrors what a display would show for one slot.
type fakeSwatch struct {
	visible   bool
	color     core.RGB
	faded     bool
	wrong     bool
	highlight bool
	enabled   bool
}

// fakeRenderer records the latest value of every display mutation.
type fakeRenderer struct {
	target       string
	emphasized   bool
	message      string
	tone         core.RGB
	swatches     [MaxSwatches]fakeSwatch
	accent       core.RGB
	accentSet    bool
	advanceLabel string
	selected     map[config.Mode]bool
	current      int
	best         int
	calls        int
}

func newFakeRenderer() *fakeRenderer {
	return &fakeRenderer{selected: make(map[config.Mode]bool)}
}

func (f *fakeRenderer) SetTarget(text string) {
	f.calls++
	f.target = text
}

func (f *fakeRenderer) SetTargetEmphasis(bold bool) {
	f.calls++
	f.emphasized = bold
}

func (f *fakeRenderer) SetMessage(text string, tone core.RGB) {
	f.calls++
	f.message = text
	f.tone = tone
}

func (f *fakeRenderer) SetSwatchVisible(i int, v bool) {
	f.calls++
	f.swatches[i].visible = v
}

func (f *fakeRenderer) SetSwatchColor(i int, c core.RGB) {
	f.calls++
	f.swatches[i].color = c
}

func (f *fakeRenderer) SetSwatchFaded(i int, v bool) {
	f.calls++
	f.swatches[i].faded = v
}

func (f *fakeRenderer) SetSwatchWrong(i int, v bool) {
	f.calls++
	f.swatches[i].wrong = v
}

func (f *fakeRenderer) SetSwatchHighlight(i int, v bool, _ core.RGB) {
	f.calls++
	f.swatches[i].highlight = v
}

func (f *fakeRenderer) SetSwatchEnabled(i int, v bool) {
	f.calls++
	f.swatches[i].enabled = v
}

func (f *fakeRenderer) SetAccent(c core.RGB, ok bool) {
	f.calls++
	f.accent = c
	f.accentSet = ok
}

func (f *fakeRenderer) SetAdvanceLabel(label string) {
	f.calls++
	f.advanceLabel = label
}

func (f *fakeRenderer) SetModeSelected(m config.Mode, selected bool, _ core.RGB) {
	f.calls++
	f.selected[m] = selected
}

func (f *fakeRenderer) SetStreak(current, best int) {
	f.calls++
	f.current = current
	f.best = best
}

// fakeStore is an in-memory Persistence that logs every call.
type fakeStore struct {
	data  map[string]string
	calls []string
	err   error
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: make(map[string]string)}
}

func (s *fakeStore) Get(key string) (string, bool, error) {
	s.calls = append(s.calls, "get "+key)
	if s.err != nil {
		return "", false, s.err
	}
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *fakeStore) Set(key, value string) error {
	s.calls = append(s.calls, "set "+key+"="+value)
	if s.err != nil {
		return s.err
	}
	s.data[key] = value
	return nil
}

func (s *fakeStore) Remove(key string) error {
	s.calls = append(s.calls, "remove "+key)
	if s.err != nil {
		return s.err
	}
	delete(s.data, key)
	return nil
}

var errStoreDown = errors.New("store down")

// fakeRecorder collects finished streaks.
type fakeRecorder struct {
	streaks []int
	modes   []string
}

func (r *fakeRecorder) RecordStreak(mode string, length int) error {
	r.modes = append(r.modes, mode)
	r.streaks = append(r.streaks, length)
	return nil
}
