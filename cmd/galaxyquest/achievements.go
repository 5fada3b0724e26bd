package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IGOLIVIT/galaxy-quest/internal/content"
)

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "List achievements",
	Run:   runAchievements,
}

func runAchievements(_ *cobra.Command, _ []string) {
	eng, store, err := openGame()
	if err != nil {
		fatal(err)
	}
	defer store.Close()

	_, _, _, achievements := eng.LoadGameData()

	for _, a := range achievements {
		if a.State == content.AchievementUnlocked {
			fmt.Printf("%s %s [%s] - unlocked %s\n", a.Icon, a.Title, a.Rarity, a.UnlockedAt.Format("2006-01-02"))
		} else {
			fmt.Printf("%s %s [%s] - locked\n", a.Icon, a.Title, a.Rarity)
		}
		fmt.Printf("   %s\n", a.Description)
	}
}
