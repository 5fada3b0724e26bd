package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IGOLIVIT/galaxy-quest/internal/content"
)

var flagCategory string

var missionsCmd = &cobra.Command{
	Use:   "missions",
	Short: "List missions and their availability",
	Long: `List every mission with its state, difficulty, and reward at the
current difficulty tier.

Examples:
  galaxyquest missions
  galaxyquest missions --category investing`,
	Run: runMissions,
}

func init() {
	missionsCmd.Flags().StringVar(&flagCategory, "category", "", "Only show one category (e.g. budgeting, investing)")
}

func runMissions(_ *cobra.Command, _ []string) {
	eng, store, err := openGame()
	if err != nil {
		fatal(err)
	}
	defer store.Close()

	_, _, missions, _ := eng.LoadGameData()

	fmt.Printf("  %-6s  %-26s  %-20s  %-12s  %s\n", "State", "Mission", "Category", "Difficulty", "Reward")
	fmt.Printf("  %-6s  %-26s  %-20s  %-12s  %s\n", "-----", "-------", "--------", "----------", "------")

	for _, m := range missions {
		if flagCategory != "" && string(m.Category) != flagCategory {
			continue
		}
		marker := " "
		switch m.State {
		case content.MissionCompleted:
			marker = "done"
		case content.MissionLocked:
			marker = "lock"
		case content.MissionAvailable:
			marker = "open"
		}
		fmt.Printf("  %-6s  %-26s  %-20s  %-12s  %d cr\n",
			marker, m.ID, m.Category.Title(), m.Difficulty, m.AdjustedReward())
	}
}
