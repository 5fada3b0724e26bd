package config

import (
	_ "embed"
)

//go:embed defaults/game.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the canonical game balance.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Colony: ColonyConfig{
			Name: "New Terra",
		},
		Economy: EconomyConfig{
			StartingCredits:     100,
			ConstructionCost:    200,
			ReconstructionCost:  500,
			UpgradeCostPerLevel: 100,
		},
		Production: ProductionConfig{
			IntervalSeconds:     30,
			AdministrativeBoost: 2,
		},
	}
}
