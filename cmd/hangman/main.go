// hangman is a terminal word-guessing game.
//
// Usage:
//
//	hangman play             - Play in the terminal
//	hangman lengths          - Show how many words exist per length
//	hangman scores           - Show total score and recent rounds
//	hangman name [nick]      - Show or set the player name
//
// Global flags:
//
//	--config <path>     - Custom config YAML
//	--db <path>         - Preferences database (default: ~/.hangman/hangman.db)
//	--dict <source>     - Dictionary source: builtin or file:<path>
//	--seed <value>      - RNG seed for reproducible word selection
//	--log-level <level> - Log level: debug, info, warn or error
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/shiraezri/hanging-man/internal/config"
	"github.com/shiraezri/hanging-man/internal/words"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagDict     string
	flagSeed     int64
	flagLogLevel string

	// Resolved in PersistentPreRunE
	appConfig config.Config
	logger    *log.Logger
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hangman",
	Short: "Hangman - guess the word before the man is hanged",
	Long: `Hangman picks a hidden word of the length you choose. Guess one letter
at a time: every hit reveals the letter and scores a point per position,
six misses and the round is lost.

Available commands:
  play     - Play in the terminal
  lengths  - Show available word lengths
  scores   - Show total score and recent rounds
  name     - Show or set your nickname

Examples:
  hangman play
  hangman play --length 5
  hangman play --dict file:/usr/share/dict/words
  hangman name Shira
  hangman scores`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to preferences database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagDict, "dict", "", "Dictionary source: "+strings.Join(words.Schemes(), ", ")+" (file takes file:<path>, overrides config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(lengthsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(nameCmd)
}

// loadConfig reads .env, the YAML config and the environment, then applies flags.
func loadConfig(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cannot load .env: %w", err)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	if flagDict != "" {
		cfg.Dictionary.Source = flagDict
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}

	appConfig = cfg
	logger = newLogger(os.Stderr, cfg.Log.Level)
	return nil
}
