package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var colonyCmd = &cobra.Command{
	Use:   "colony",
	Short: "Manage colony buildings",
	Long: `Construct and upgrade colony buildings.

Building ids:
  command_center, solar_array, hydroponic_farm, mining_facility,
  research_lab

Examples:
  galaxyquest colony build solar_array
  galaxyquest colony upgrade solar_array`,
}

var colonyBuildCmd = &cobra.Command{
	Use:   "build <building>",
	Short: "Construct a building",
	Args:  cobra.ExactArgs(1),
	Run:   runColonyBuild,
}

var colonyUpgradeCmd = &cobra.Command{
	Use:   "upgrade <building>",
	Short: "Upgrade a built building",
	Args:  cobra.ExactArgs(1),
	Run:   runColonyUpgrade,
}

func init() {
	colonyCmd.AddCommand(colonyBuildCmd)
	colonyCmd.AddCommand(colonyUpgradeCmd)
}

func runColonyBuild(_ *cobra.Command, args []string) {
	eng, store, err := openGame()
	if err != nil {
		fatal(err)
	}
	defer store.Close()

	buildingID := args[0]
	if !eng.ConstructBuilding(buildingID) {
		fmt.Fprintf(os.Stderr, "Cannot construct %q: check the id, your credits, and whether it is already built.\n", buildingID)
		os.Exit(1)
	}

	progress, colony, _, _ := eng.LoadGameData()
	b := colony.Building(buildingID)
	fmt.Printf("%s constructed (level %d). Credits left: %d.\n", b.Name, b.Level, progress.Credits)
}

func runColonyUpgrade(_ *cobra.Command, args []string) {
	eng, store, err := openGame()
	if err != nil {
		fatal(err)
	}
	defer store.Close()

	buildingID := args[0]
	if !eng.UpgradeBuilding(buildingID) {
		fmt.Fprintf(os.Stderr, "Cannot upgrade %q: check the id, your credits, and whether it is built.\n", buildingID)
		os.Exit(1)
	}

	progress, colony, _, _ := eng.LoadGameData()
	b := colony.Building(buildingID)
	fmt.Printf("%s upgraded to level %d", b.Name, b.Level)
	if _, produces := b.Type.Produces(); produces {
		fmt.Printf(" (+%d/tick)", b.ProductionRate)
	}
	fmt.Printf(". Credits left: %d.\n", progress.Credits)
}
