package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/IGOLIVIT/galaxy-quest/internal/platform/tui"
	"github.com/IGOLIVIT/galaxy-quest/internal/storage"
)

var catcherCmd = &cobra.Command{
	Use:   "catcher",
	Short: "Play the Cash Catcher mini-game",
	Long: `Catch falling space bills with a tray. Each catch is worth its
denomination; three misses end the run. High scores are saved.

Controls:
  Left/Right - Move tray
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit`,
	Run: runCatcher,
}

func runCatcher(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatal(fmt.Errorf("cannot open save database: %w", err))
	}
	defer store.Close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	score, err := tui.RunCatcher(store, width, height)
	if err != nil {
		fatal(err)
	}
	if score > 0 {
		fmt.Printf("Final haul: $%d\n", score)
		if best, bestErr := store.HighScore(tui.CatcherGameID); bestErr == nil {
			fmt.Printf("Best: $%d\n", best)
		}
	}
}
