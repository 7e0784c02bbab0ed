package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shiraezri/hanging-man/internal/games/hangman/engine"
	"github.com/shiraezri/hanging-man/internal/storage"
	"github.com/shiraezri/hanging-man/internal/words"
)

var lengthsCmd = &cobra.Command{
	Use:   "lengths",
	Short: "Show available word lengths",
	Long: `Lists the allowed word lengths with the number of dictionary words
of each length. The selected length is marked with *.`,
	Args: cobra.NoArgs,
	RunE: runLengths,
}

func runLengths(cmd *cobra.Command, args []string) error {
	lines, err := words.Registry{}.LoadWords(cmd.Context(), appConfig.Dictionary.Source)
	if err != nil {
		return err
	}
	counts := engine.CountByLength(lines)

	selected := appConfig.Game.DefaultWordLength
	if store, err := storage.Open(appConfig.Storage.Path); err == nil {
		if n, err := store.WordLength(selected); err == nil && appConfig.Game.IsAllowedLength(n) {
			selected = n
		}
		store.Close()
	} else {
		logger.Warn("could not open preferences database", "error", err)
	}

	fmt.Printf("Dictionary: %s\n", appConfig.Dictionary.Source)
	fmt.Println()
	fmt.Printf("  %-8s  %s\n", "Length", "Words")
	fmt.Printf("  %-8s  %s\n", "------", "-----")

	for _, n := range appConfig.Game.AllowedLengths {
		mark := " "
		if n == selected {
			mark = "*"
		}
		fmt.Printf("%s %-8d  %d\n", mark, n, counts[n])
	}

	fmt.Println()
	fmt.Println("Run 'hangman play --length <n>' to play a length.")
	return nil
}
