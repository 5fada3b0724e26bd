// galaxyquest is a space-colony finance game for the terminal.
//
// Usage:
//
//	galaxyquest status             - Show commander progress and colony state
//	galaxyquest missions           - List missions and their availability
//	galaxyquest play [mission]     - Play (full TUI, or one mission's quiz)
//	galaxyquest colony build <id>  - Construct a building
//	galaxyquest colony upgrade <id>- Upgrade a building
//	galaxyquest achievements       - List achievements
//	galaxyquest difficulty <tier>  - Change the difficulty tier
//	galaxyquest catcher            - Play the Cash Catcher mini-game
//	galaxyquest scores             - Show Cash Catcher high scores
//	galaxyquest serve              - Serve the game over SSH
//	galaxyquest reset              - Wipe the save and start over
//
// Global flags:
//
//	--db <path>      - Save database path (default: ~/.galaxyquest/save.db)
//	--config <path>  - Custom game config YAML
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/IGOLIVIT/galaxy-quest/internal/config"
	"github.com/IGOLIVIT/galaxy-quest/internal/content"
	"github.com/IGOLIVIT/galaxy-quest/internal/engine"
	"github.com/IGOLIVIT/galaxy-quest/internal/storage"
)

var (
	// Global flags
	flagDBPath  string
	flagConfig  string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "galaxyquest",
	Short: "Galaxy Quest - learn personal finance by running a space colony",
	Long: `Galaxy Quest is a terminal game where financial literacy missions fund
a growing space colony. Pass a mission's quiz to earn credits and
experience, then spend credits on colony buildings that produce
resources over time.

Examples:
  galaxyquest status
  galaxyquest missions
  galaxyquest play
  galaxyquest play basic_budget
  galaxyquest colony build solar_array
  galaxyquest serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.galaxyquest/save.db", "Path to the save database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(missionsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(colonyCmd)
	rootCmd.AddCommand(achievementsCmd)
	rootCmd.AddCommand(difficultyCmd)
	rootCmd.AddCommand(catcherCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(resetCmd)
}

func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "galaxyquest",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// openGame wires config, content, storage, and the engine together.
// The caller owns the returned store and must Close it.
func openGame() (*engine.Engine, *storage.Store, error) {
	cfg, err := config.LoadGame(flagConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot load game config: %w", err)
	}

	catalog, err := content.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("cannot load content catalog: %w", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open save database: %w", err)
	}

	eng, err := engine.New(cfg, catalog, store, engine.WithLogger(newLogger()))
	if err != nil {
		store.Close()
		return nil, nil, fmt.Errorf("cannot start engine: %w", err)
	}

	return eng, store, nil
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
