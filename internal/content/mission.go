// Package content holds the static mission and achievement catalogs. The
// canonical catalogs ship embedded as YAML and can be overridden from
// disk; the engine loads them once at start and re-derives runtime state
// from the player's progress.
package content

import (
	"github.com/IGOLIVIT/galaxy-quest/internal/economy"
)

// ChallengeCategory is one of the six fixed mission categories. Settlement
// keys its colony side effects on it.
type ChallengeCategory string

const (
	CategoryBudgeting         ChallengeCategory = "budgeting"
	CategoryInvesting         ChallengeCategory = "investing"
	CategorySaving            ChallengeCategory = "saving"
	CategoryDebtManagement    ChallengeCategory = "debt_management"
	CategoryRiskManagement    ChallengeCategory = "risk_management"
	CategoryEmergencyPlanning ChallengeCategory = "emergency_planning"
)

// Categories lists every challenge category.
func Categories() []ChallengeCategory {
	return []ChallengeCategory{
		CategoryBudgeting,
		CategoryInvesting,
		CategorySaving,
		CategoryDebtManagement,
		CategoryRiskManagement,
		CategoryEmergencyPlanning,
	}
}

// Title returns the display name of the category.
func (c ChallengeCategory) Title() string {
	switch c {
	case CategoryBudgeting:
		return "Budgeting"
	case CategoryInvesting:
		return "Investing"
	case CategorySaving:
		return "Saving"
	case CategoryDebtManagement:
		return "Debt Management"
	case CategoryRiskManagement:
		return "Risk Management"
	case CategoryEmergencyPlanning:
		return "Emergency Planning"
	default:
		return string(c)
	}
}

// MissionState is the explicit mission lifecycle. Transitions only move
// forward: Locked -> Available -> Completed.
type MissionState int

const (
	MissionLocked MissionState = iota
	MissionAvailable
	MissionCompleted
)

func (s MissionState) String() string {
	switch s {
	case MissionLocked:
		return "locked"
	case MissionAvailable:
		return "available"
	case MissionCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Mission is one catalog entry. Identity fields are immutable after load;
// only State changes, and only through the engine.
type Mission struct {
	ID                 string                 `yaml:"id"`
	Title              string                 `yaml:"title"`
	Description        string                 `yaml:"description"`
	Difficulty         economy.DifficultyTier `yaml:"difficulty"`
	Reward             int                    `yaml:"reward"`
	EducationalContent string                 `yaml:"educational_content"`
	Category           ChallengeCategory      `yaml:"category"`
	Prerequisites      []string               `yaml:"prerequisites,omitempty"`
	State              MissionState           `yaml:"-"`
}

// AdjustedReward returns the mission's base reward scaled by its own
// difficulty multiplier, truncated to an integer.
func (m *Mission) AdjustedReward() int {
	return int(float64(m.Reward) * m.Difficulty.Multiplier())
}

// Available reports whether the mission can be started right now.
func (m *Mission) Available() bool {
	return m.State == MissionAvailable
}
