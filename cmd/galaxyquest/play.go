package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/IGOLIVIT/galaxy-quest/internal/challenge"
	"github.com/IGOLIVIT/galaxy-quest/internal/content"
	"github.com/IGOLIVIT/galaxy-quest/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play [mission]",
	Short: "Play the game, or one mission's quiz directly",
	Long: `With no arguments, open the full terminal UI: mission browser, colony
view, achievements, and the Cash Catcher mini-game. Resource production
runs while the UI is open.

With a mission id, run that mission's challenge quiz directly and
settle the rewards on a pass.

Controls (full UI):
  m/c/a/g    - Switch screens
  up/down    - Move cursor
  enter      - Select
  q/Ctrl+C   - Quit

Examples:
  galaxyquest play
  galaxyquest play basic_budget`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	eng, store, err := openGame()
	if err != nil {
		fatal(err)
	}
	defer store.Close()

	eng.StartProduction()
	defer eng.StopProduction()

	if len(args) == 0 {
		if err := tui.Run(eng, store); err != nil {
			fatal(err)
		}
		return
	}

	missionID := args[0]
	_, _, missions, _ := eng.LoadGameData()

	var mission *content.Mission
	for i := range missions {
		if missions[i].ID == missionID {
			mission = &missions[i]
			break
		}
	}
	if mission == nil {
		fmt.Fprintf(os.Stderr, "Error: unknown mission %q\n", missionID)
		fmt.Fprintln(os.Stderr, "Run 'galaxyquest missions' to see the mission list.")
		os.Exit(1)
	}

	switch mission.State {
	case content.MissionCompleted:
		fmt.Printf("Mission %q is already completed.\n", missionID)
		return
	case content.MissionLocked:
		fmt.Fprintf(os.Stderr, "Mission %q is locked; complete its prerequisites first.\n", missionID)
		os.Exit(1)
	}

	outcome, err := tui.RunQuiz(tui.NewQuizModel(*mission))
	if err != nil {
		fatal(err)
	}
	if outcome == nil {
		fmt.Println("Challenge abandoned; no reward.")
		return
	}

	fmt.Printf("%s  %.0f%%\n", challenge.PerformanceRating(outcome.Fraction), outcome.Fraction*100)
	if !outcome.Passed {
		fmt.Println("Below the 60% pass mark; try again any time.")
		return
	}

	eng.CompleteMission(outcome.MissionID, outcome.Fraction)
	progress, _, _, _ := eng.LoadGameData()
	fmt.Printf("Mission settled. Credits: %d, level %d.\n", progress.Credits, progress.Level)
}
