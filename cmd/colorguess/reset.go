package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/colorguess/internal/core"
	"github.com/vovakirdan/colorguess/internal/game"
	"github.com/vovakirdan/colorguess/internal/storage"
)

var (
	flagResetUser    string
	flagYes          bool
	flagResetHistory bool
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the best streak",
	Long: `Reset a player's best streak to zero. Asks for confirmation
unless --yes is given. Streak history is kept unless --history is given.

Examples:
  colorguess reset
  colorguess reset --user alice --yes
  colorguess reset --history`,
	Run: runReset,
}

func init() {
	resetCmd.Flags().StringVar(&flagResetUser, "user", storage.DefaultNamespace, "Player whose best streak to reset")
	resetCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "Do not ask for confirmation")
	resetCmd.Flags().BoolVar(&flagResetHistory, "history", false, "Also delete the streak history")
}

// consoleRenderer prints feedback messages and ignores board updates.
type consoleRenderer struct {
	game.NopRenderer
	out io.Writer
}

func (r consoleRenderer) SetMessage(text string, _ core.RGB) {
	fmt.Fprintln(r.out, text)
}

// stdinConfirm asks a yes/no question on the terminal. Anything but y/yes is no.
func stdinConfirm(in io.Reader, out io.Writer) game.ConfirmFunc {
	reader := bufio.NewReader(in)
	return func(prompt string) bool {
		fmt.Fprintf(out, "%s [y/N]: ", prompt)
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return false
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true
		}
		return false
	}
}

func runReset(cmd *cobra.Command, args []string) {
	gameCfg := loadConfig()

	store, bucket, err := openBucket(flagResetUser)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening streak database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	var confirm game.Confirmer = stdinConfirm(os.Stdin, os.Stdout)
	if flagYes {
		confirm = game.AlwaysConfirm
	}

	ctrl := game.NewController(gameCfg, consoleRenderer{out: os.Stdout}, bucket,
		game.WithConfirm(confirm),
		game.WithLogger(newLogger(os.Stderr)),
	)
	ctrl.Restore()

	if ctrl.Streak().Best == 0 && !flagResetHistory {
		fmt.Printf("No best streak recorded for %s.\n", bucket.Namespace())
		return
	}
	fmt.Printf("Best streak for %s: %d\n", bucket.Namespace(), ctrl.Streak().Best)

	if !ctrl.ResetStreak() {
		fmt.Println("Nothing changed.")
		return
	}

	if flagResetHistory {
		if err := store.ClearStreaks(bucket.Namespace()); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing streak history: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Streak history cleared.")
	}
}
