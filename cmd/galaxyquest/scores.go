package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IGOLIVIT/galaxy-quest/internal/platform/tui"
	"github.com/IGOLIVIT/galaxy-quest/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show Cash Catcher high scores",
	Run:   runScores,
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatal(fmt.Errorf("cannot open save database: %w", err))
	}
	defer store.Close()

	scores, err := store.TopScores(tui.CatcherGameID, 10)
	if err != nil {
		fatal(fmt.Errorf("cannot read scores: %w", err))
	}

	fmt.Println("High Scores - Cash Catcher")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'galaxyquest catcher' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  $%-9d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}
}
