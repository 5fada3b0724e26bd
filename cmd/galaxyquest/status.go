package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IGOLIVIT/galaxy-quest/internal/content"
	"github.com/IGOLIVIT/galaxy-quest/internal/economy"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show commander progress and colony state",
	Run:   runStatus,
}

func runStatus(_ *cobra.Command, _ []string) {
	eng, store, err := openGame()
	if err != nil {
		fatal(err)
	}
	defer store.Close()

	progress, colony, missions, achievements := eng.LoadGameData()

	completed := 0
	for _, m := range missions {
		if m.State == content.MissionCompleted {
			completed++
		}
	}
	unlocked := 0
	for _, a := range achievements {
		if a.State == content.AchievementUnlocked {
			unlocked++
		}
	}

	fmt.Printf("Commander (%s, level %d)\n", progress.CurrentDifficulty.Rank(), progress.Level)
	fmt.Printf("  Credits:      %d\n", progress.Credits)
	fmt.Printf("  Experience:   %d / %d to next level\n", progress.Experience, progress.Level*100)
	fmt.Printf("  Missions:     %d / %d completed\n", completed, len(missions))
	fmt.Printf("  Achievements: %d / %d unlocked\n", unlocked, len(achievements))
	fmt.Println()

	fmt.Printf("%s  (population %d, happiness %.0f%%)\n", colony.Name, colony.Population, colony.Happiness*100)
	for kind := economy.ResourceKind(0); kind < economy.ResourceCount; kind++ {
		r := colony.Resource(kind)
		fmt.Printf("  %s %-10s %4d / %4d  (%3.0f%%)\n", r.Icon, r.Name, r.Amount, r.MaxCapacity, r.FillPercentage()*100)
	}
	fmt.Println()

	for _, b := range colony.Buildings {
		if b.IsBuilt {
			fmt.Printf("  %-18s level %d", b.Name, b.Level)
			if _, produces := b.Type.Produces(); produces {
				fmt.Printf("  (+%d/tick)", b.ProductionRate)
			}
			fmt.Println()
		} else {
			fmt.Printf("  %-18s not built\n", b.Name)
		}
	}
}
