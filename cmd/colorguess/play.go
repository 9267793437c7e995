package main

import (
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/colorguess/internal/config"
	"github.com/vovakirdan/colorguess/internal/core"
	"github.com/vovakirdan/colorguess/internal/platform/tui"
	"github.com/vovakirdan/colorguess/internal/storage"
)

var flagMode string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the color game",
	Long: `Start a game in the terminal.

Controls:
  1-6          - Pick a swatch
  Left/Right   - Move the cursor, Enter/Space to pick
  N            - New round
  E / H        - Easy (3 swatches) / Hard (6 swatches)
  X            - Reset best streak (asks first)
  T            - Streak history
  C            - Copy the target color to the clipboard
  ?            - More help
  Q/Ctrl+C     - Quit

Logs are written to ~/.colorguess/colorguess.log.

Examples:
  colorguess play
  colorguess play --mode easy
  colorguess play --seed 42 --config ./my-colors.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMode, "mode", "", "Starting mode: easy or hard (default from config)")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameCfg := loadConfig()

	opts := tui.Options{Game: gameCfg}
	if !clipboard.Unsupported {
		opts.Clipboard = clipboard.WriteAll
	}
	if flagMode != "" {
		mode, err := config.ParseMode(flagMode)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		opts.Mode = mode
		opts.HasMode = true
	}

	// The alt screen owns stdout, so logs go to a file.
	var logOut io.Writer = io.Discard
	if f, err := openLogFile(); err == nil {
		defer f.Close()
		logOut = f
	} else {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
	}
	logger := newLogger(logOut)
	opts.Logger = logger

	opts.Runtime = core.DefaultConfig()
	opts.Runtime.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		opts.Runtime.ScreenW = w
		opts.Runtime.ScreenH = h
	}

	store, bucket, err := openBucket(storage.DefaultNamespace)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open streak database: %v\n", err)
		logger.Warn("falling back to memory store", "error", err)
		// Continue without the database; the best streak lasts for this run.
		opts.Store = storage.NewMemory()
	} else {
		opts.Store = bucket
	}

	runErr := tui.Run(opts)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
