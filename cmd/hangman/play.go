package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/shiraezri/hanging-man/internal/core"
	"github.com/shiraezri/hanging-man/internal/games/hangman"
	"github.com/shiraezri/hanging-man/internal/platform/tui"
	"github.com/shiraezri/hanging-man/internal/storage"
)

var flagLength int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play hangman in the terminal",
	Long: `Start a hangman session.

Controls:
  A-Z        - Guess a letter
  Left/Right - Change word length (starts a new word)
  Enter      - Next word after a round ends
  Ctrl+R     - Restart with a new word
  Tab        - Round history
  Ctrl+N     - Set your nickname
  Ctrl+C     - Quit

Examples:
  hangman play
  hangman play --length 5
  hangman play --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLength, "length", 0, "Word length to play (saved as preference)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg := core.DefaultConfig()
	cfg.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	// The TUI owns the terminal, so logs go to a file
	gameLogger, closeLog, err := openLogFile(appConfig.Log.File, appConfig.Log.Level)
	if err != nil {
		logger.Warn("logging disabled", "error", err)
		gameLogger, closeLog = log.New(io.Discard), func() {}
	}
	defer closeLog()

	store, err := storage.Open(appConfig.Storage.Path)
	if err != nil {
		return fmt.Errorf("cannot open preferences database: %w", err)
	}
	defer store.Close()

	game, err := hangman.New(cmd.Context(), hangman.Options{
		Config:   appConfig.Game,
		SourceID: appConfig.Dictionary.Source,
		Prefs:    store,
		Rounds:   store,
		Logger:   gameLogger,
		Runtime:  cfg,
	})
	if err != nil {
		return err
	}

	if flagLength != 0 {
		if err := game.SetWordLength(flagLength); err != nil {
			return err
		}
	}

	gameLogger.Info("session started", "db", appConfig.Storage.Path, "dictionary", appConfig.Dictionary.Source)
	if err := tui.Run(game, store, cfg); err != nil {
		return fmt.Errorf("cannot run game: %w", err)
	}
	return nil
}
