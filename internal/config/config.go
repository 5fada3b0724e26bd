// Package config provides YAML-based tuning for the colony engine:
// starting values, construction costs, and the production cadence.
package config

import "time"

// GameConfig contains all tunables for a game session. The defaults match
// the canonical balance; overriding them rebalances new games but never
// rescales an existing snapshot.
type GameConfig struct {
	Colony     ColonyConfig     `yaml:"colony"`
	Economy    EconomyConfig    `yaml:"economy"`
	Production ProductionConfig `yaml:"production"`
}

// ColonyConfig names the player's colony.
type ColonyConfig struct {
	Name string `yaml:"name"`
}

// EconomyConfig defines credit costs and starting funds.
type EconomyConfig struct {
	StartingCredits     int `yaml:"starting_credits"`
	ConstructionCost    int `yaml:"construction_cost"`   // first construction, level 0
	ReconstructionCost  int `yaml:"reconstruction_cost"` // construction of a leveled building
	UpgradeCostPerLevel int `yaml:"upgrade_cost_per_level"`
}

// ProductionConfig defines the resource production loop.
type ProductionConfig struct {
	IntervalSeconds     int `yaml:"interval_seconds"`
	AdministrativeBoost int `yaml:"administrative_boost"` // flat amount added to every resource per tick
}

// Interval returns the production tick period.
func (p ProductionConfig) Interval() time.Duration {
	if p.IntervalSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(p.IntervalSeconds) * time.Second
}
