package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shiraezri/hanging-man/internal/games/hangman/engine"
	"github.com/shiraezri/hanging-man/internal/storage"
)

var flagClearName bool

var nameCmd = &cobra.Command{
	Use:   "name [nickname]",
	Short: "Show or set your nickname",
	Long: `Without arguments, prints the stored nickname. With an argument,
validates and stores it. A nickname starts with an English letter and
continues with letters and digits; an invalid one clears the stored name.

Examples:
  hangman name
  hangman name Shira
  hangman name --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runName,
}

func init() {
	nameCmd.Flags().BoolVar(&flagClearName, "clear", false, "Remove the stored nickname")
}

func runName(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(appConfig.Storage.Path)
	if err != nil {
		return fmt.Errorf("cannot open preferences database: %w", err)
	}
	defer store.Close()

	if flagClearName {
		if err := store.ClearPlayerName(); err != nil {
			return err
		}
		fmt.Println("Nickname cleared.")
		return nil
	}

	if len(args) == 0 {
		name, err := store.PlayerName()
		if err != nil {
			return err
		}
		if name == "" {
			fmt.Println("No nickname set.")
			return nil
		}
		fmt.Println(name)
		return nil
	}

	name, err := engine.ValidatePlayerName(args[0])
	if err != nil {
		if clearErr := store.ClearPlayerName(); clearErr != nil {
			logger.Warn("cannot clear nickname", "error", clearErr)
		}
		return err
	}
	if err := store.SetPlayerName(name); err != nil {
		return err
	}
	fmt.Printf("Nickname set to %s.\n", name)
	return nil
}
