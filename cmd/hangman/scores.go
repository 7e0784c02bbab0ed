package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shiraezri/hanging-man/internal/storage"
)

var (
	flagLimit int
	flagReset bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show total score and recent rounds",
	Long: `Display the lifetime total score, round statistics and the most
recent rounds.

Examples:
  hangman scores
  hangman scores --limit 20
  hangman scores --reset`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of recent rounds to show")
	scoresCmd.Flags().BoolVar(&flagReset, "reset", false, "Delete the round history (total score is kept)")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(appConfig.Storage.Path)
	if err != nil {
		return fmt.Errorf("cannot open preferences database: %w", err)
	}
	defer store.Close()

	if flagReset {
		if err := store.ClearRounds(); err != nil {
			return err
		}
		fmt.Println("Round history cleared.")
		return nil
	}

	total, err := store.TotalScore()
	if err != nil {
		return err
	}
	stats, err := store.Stats()
	if err != nil {
		return err
	}
	rounds, err := store.RecentRounds(flagLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Total score: %d\n", total)
	if stats.Played > 0 {
		fmt.Printf("Rounds: %d played, %d won, %d lost (%.0f%% wins)\n",
			stats.Played, stats.Won, stats.Lost, stats.WinRate()*100)
	}
	fmt.Println()

	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Println("Run 'hangman play' to start!")
		return nil
	}

	fmt.Printf("  %-16s  %-10s  %-10s  %-9s  %5s  %6s\n", "Date", "Player", "Word", "Result", "Wrong", "Points")
	fmt.Printf("  %-16s  %-10s  %-10s  %-9s  %5s  %6s\n", "----", "------", "----", "------", "-----", "------")
	for _, r := range rounds {
		player := r.PlayerName
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-16s  %-10s  %-10s  %-9s  %5d  %6d\n",
			r.CreatedAt.Local().Format("2006-01-02 15:04"), player, r.Word, r.Outcome, r.WrongGuesses, r.Points)
	}
	return nil
}
