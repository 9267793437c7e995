// colorguess is a terminal color guessing game: read an rgb(...) value and
// pick the swatch that matches it.
//
// Usage:
//
//	colorguess play              - Play in the terminal
//	colorguess serve             - Start SSH server for remote play
//	colorguess scores            - Show best streak and streak history
//	colorguess reset             - Reset the best streak
//	colorguess modes             - List difficulty modes
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible rounds
//	--db <path>          - Set database path (default: ~/.colorguess/colorguess.db)
//	--config <path>      - Use a custom game config YAML
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/colorguess/internal/config"
	"github.com/vovakirdan/colorguess/internal/storage"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "colorguess",
	Short: "Color Guess - match rgb() values to swatches in your terminal",
	Long: `Color Guess shows you an rgb(r, g, b) value and a grid of color
swatches. Pick the swatch that matches to grow your streak.

Available commands:
  play     - Play in the terminal
  serve    - Start SSH server for remote play
  scores   - View best streak and streak history
  reset    - Reset the best streak
  modes    - List difficulty modes

Examples:
  colorguess play
  colorguess play --mode easy
  colorguess serve --ssh :2222
  colorguess scores --user alice

Environment (also read from ./.env):
  COLORGUESS_DB, COLORGUESS_CONFIG, COLORGUESS_LOG_LEVEL
  set the matching flag when it is not given on the command line.`,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		applyEnv(cmd)
	},
}

// envFlags maps global flags to the environment variables that can set them.
var envFlags = map[string]string{
	"db":        "COLORGUESS_DB",
	"config":    "COLORGUESS_CONFIG",
	"log-level": "COLORGUESS_LOG_LEVEL",
}

// applyEnv loads ./.env if present and fills unset flags from the environment.
func applyEnv(cmd *cobra.Command) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Warning: could not read .env: %v\n", err)
	}

	for name, env := range envFlags {
		v := os.Getenv(env)
		if v == "" || cmd.Flags().Changed(name) {
			continue
		}
		if err := cmd.Flags().Set(name, v); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: ignoring %s: %v\n", env, err)
		}
	}
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.colorguess/colorguess.db", "Path to streak database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(modesCmd)
}

// loadConfig loads the game config or exits.
func loadConfig() config.GameConfig {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// newLogger creates a logger at the --log-level level writing to w.
func newLogger(w io.Writer) *log.Logger {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using info\n", err)
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "colorguess",
		Level:           level,
	})
}

// openLogFile opens the play log next to the database.
func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(home, ".colorguess")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "colorguess.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

// openBucket opens the database and returns the namespace view for user.
// The caller closes the returned store.
func openBucket(user string) (*storage.Store, *storage.Bucket, error) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return nil, nil, err
	}
	return store, store.Bucket(user), nil
}
