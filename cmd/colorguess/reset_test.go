package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/colorguess/internal/config"
	"github.com/vovakirdan/colorguess/internal/game"
	"github.com/vovakirdan/colorguess/internal/storage"
)

func TestStdinConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"  yes  \n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"y", true},
	}

	for _, tt := range tests {
		var out bytes.Buffer
		confirm := stdinConfirm(strings.NewReader(tt.input), &out)
		if got := confirm("Reset?"); got != tt.want {
			t.Errorf("confirm(%q) = %v, want %v", tt.input, got, tt.want)
		}
		if !strings.Contains(out.String(), "Reset? [y/N]") {
			t.Errorf("prompt not written, got %q", out.String())
		}
	}
}

func TestResetThroughController(t *testing.T) {
	cfg := config.DefaultGameConfig()
	store := storage.NewMemory()
	if err := store.Set(cfg.StorageKey, "9"); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	ctrl := game.NewController(cfg, consoleRenderer{out: &out}, store,
		game.WithConfirm(stdinConfirm(strings.NewReader("y\n"), &out)),
	)
	ctrl.Restore()
	if ctrl.Streak().Best != 9 {
		t.Fatalf("best = %d, expected 9", ctrl.Streak().Best)
	}

	if !ctrl.ResetStreak() {
		t.Fatal("expected reset to be confirmed")
	}
	if _, ok, _ := store.Get(cfg.StorageKey); ok {
		t.Error("best streak should be removed")
	}
	if !strings.Contains(out.String(), cfg.Messages.Reset) {
		t.Errorf("reset message not printed, got %q", out.String())
	}
}
