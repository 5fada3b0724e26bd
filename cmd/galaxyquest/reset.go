package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var flagForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Wipe the save and start over",
	Long: `Delete all progress: credits, levels, completed missions, unlocked
achievements, and colony buildings. Cash Catcher high scores are kept.

Examples:
  galaxyquest reset
  galaxyquest reset --force`,
	Run: runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&flagForce, "force", false, "Skip the confirmation prompt")
}

func runReset(_ *cobra.Command, _ []string) {
	if !flagForce {
		fmt.Print("This deletes all progress. Type 'yes' to continue: ")
		line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		if strings.TrimSpace(line) != "yes" {
			fmt.Println("Aborted.")
			return
		}
	}

	eng, store, err := openGame()
	if err != nil {
		fatal(err)
	}
	defer store.Close()

	eng.ResetGame()
	fmt.Println("Save wiped. A fresh game starts on the next command.")
}
