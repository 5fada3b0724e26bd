package economy

import "time"

// DifficultyTier scales mission rewards. Tiers are strictly increasing in
// multiplier and carry a flavour rank for display.
type DifficultyTier string

const (
	DifficultyBeginner     DifficultyTier = "beginner"
	DifficultyIntermediate DifficultyTier = "intermediate"
	DifficultyAdvanced     DifficultyTier = "advanced"
	DifficultyExpert       DifficultyTier = "expert"
)

// Tiers lists every difficulty tier in ascending order.
func Tiers() []DifficultyTier {
	return []DifficultyTier{
		DifficultyBeginner,
		DifficultyIntermediate,
		DifficultyAdvanced,
		DifficultyExpert,
	}
}

// Valid reports whether t is one of the four known tiers.
func (t DifficultyTier) Valid() bool {
	switch t {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced, DifficultyExpert:
		return true
	}
	return false
}

// Multiplier returns the reward scalar for the tier.
func (t DifficultyTier) Multiplier() float64 {
	switch t {
	case DifficultyIntermediate:
		return 1.5
	case DifficultyAdvanced:
		return 2.0
	case DifficultyExpert:
		return 2.5
	default:
		return 1.0
	}
}

// ExperienceAward returns the flat XP granted for completing a mission of
// this tier.
func (t DifficultyTier) ExperienceAward() int {
	switch t {
	case DifficultyBeginner:
		return 50
	case DifficultyIntermediate:
		return 100
	default:
		return 200
	}
}

// Rank returns the in-universe rank name for the tier.
func (t DifficultyTier) Rank() string {
	switch t {
	case DifficultyBeginner:
		return "Cadet"
	case DifficultyIntermediate:
		return "Officer"
	case DifficultyAdvanced:
		return "Commander"
	case DifficultyExpert:
		return "Admiral"
	default:
		return "Cadet"
	}
}

// UserProgress is the player's persistent state. Credits never go
// negative: spending is rejected, not clamped.
type UserProgress struct {
	Credits                int
	Level                  int
	Experience             int
	CompletedMissions      map[string]bool
	UnlockedAchievements   map[string]bool
	CurrentDifficulty      DifficultyTier
	HasCompletedOnboarding bool
	LastPlayed             time.Time
}

// NewUserProgress returns a fresh first-run progress record.
func NewUserProgress() *UserProgress {
	return &UserProgress{
		Credits:              100,
		Level:                1,
		CompletedMissions:    make(map[string]bool),
		UnlockedAchievements: make(map[string]bool),
		CurrentDifficulty:    DifficultyBeginner,
		LastPlayed:           time.Now(),
	}
}

// AddCredits grants credits. Amounts are always non-negative; use
// SpendCredits to debit.
func (p *UserProgress) AddCredits(amount int) {
	if amount < 0 {
		return
	}
	p.Credits += amount
}

// SpendCredits debits cost if the balance covers it. Returns false with no
// mutation otherwise.
func (p *UserProgress) SpendCredits(cost int) bool {
	if cost < 0 || p.Credits < cost {
		return false
	}
	p.Credits -= cost
	return true
}

// AddExperience grants XP and applies level-ups. The threshold for the
// next level is level*100 at the pre-increment level, checked iteratively
// so a single large award can cross several levels.
func (p *UserProgress) AddExperience(amount int) {
	if amount < 0 {
		return
	}
	p.Experience += amount
	for p.Experience >= p.Level*100 {
		p.Experience -= p.Level * 100
		p.Level++
	}
}

// CompleteMission records a mission id as completed.
func (p *UserProgress) CompleteMission(missionID string) {
	p.CompletedMissions[missionID] = true
}

// HasCompleted reports whether a mission id is recorded as completed.
func (p *UserProgress) HasCompleted(missionID string) bool {
	return p.CompletedMissions[missionID]
}

// UnlockAchievement records an achievement id as unlocked.
func (p *UserProgress) UnlockAchievement(achievementID string) {
	p.UnlockedAchievements[achievementID] = true
}

// HasUnlocked reports whether an achievement id is recorded as unlocked.
func (p *UserProgress) HasUnlocked(achievementID string) bool {
	return p.UnlockedAchievements[achievementID]
}

// Clone returns a deep copy, used to hand state across the engine boundary
// without sharing the live aggregate.
func (p *UserProgress) Clone() UserProgress {
	out := *p
	out.CompletedMissions = make(map[string]bool, len(p.CompletedMissions))
	for id := range p.CompletedMissions {
		out.CompletedMissions[id] = true
	}
	out.UnlockedAchievements = make(map[string]bool, len(p.UnlockedAchievements))
	for id := range p.UnlockedAchievements {
		out.UnlockedAchievements[id] = true
	}
	return out
}
