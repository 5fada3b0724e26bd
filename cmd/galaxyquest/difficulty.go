package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/IGOLIVIT/galaxy-quest/internal/economy"
)

var difficultyCmd = &cobra.Command{
	Use:   "difficulty [tier]",
	Short: "Show or change the difficulty tier",
	Long: `Without arguments, show the current tier and the reward multipliers.
With a tier name, switch to it; already-earned rewards are untouched.

Tiers: beginner, intermediate, advanced, expert.

Examples:
  galaxyquest difficulty
  galaxyquest difficulty advanced`,
	Args: cobra.MaximumNArgs(1),
	Run:  runDifficulty,
}

func runDifficulty(_ *cobra.Command, args []string) {
	eng, store, err := openGame()
	if err != nil {
		fatal(err)
	}
	defer store.Close()

	if len(args) == 0 {
		progress, _, _, _ := eng.LoadGameData()
		fmt.Printf("Current tier: %s (%s)\n\n", progress.CurrentDifficulty, progress.CurrentDifficulty.Rank())
		for _, tier := range economy.Tiers() {
			marker := "  "
			if tier == progress.CurrentDifficulty {
				marker = "* "
			}
			fmt.Printf("%s%-12s  %s  x%.1f rewards, %d xp per mission\n",
				marker, tier, tier.Rank(), tier.Multiplier(), tier.ExperienceAward())
		}
		return
	}

	tier := economy.DifficultyTier(args[0])
	if !tier.Valid() {
		fmt.Fprintf(os.Stderr, "Error: unknown tier %q (beginner, intermediate, advanced, expert)\n", args[0])
		os.Exit(1)
	}

	eng.ChangeDifficulty(tier)
	fmt.Printf("Difficulty set to %s (%s). Future rewards scale x%.1f.\n", tier, tier.Rank(), tier.Multiplier())
}
