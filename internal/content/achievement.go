package content

import "time"

// AchievementState is the explicit achievement lifecycle: Locked or
// Unlocked, never back.
type AchievementState int

const (
	AchievementLocked AchievementState = iota
	AchievementUnlocked
)

func (s AchievementState) String() string {
	if s == AchievementUnlocked {
		return "unlocked"
	}
	return "locked"
}

// AchievementRarity is display metadata carried from the catalog.
type AchievementRarity string

const (
	RarityCommon    AchievementRarity = "common"
	RarityRare      AchievementRarity = "rare"
	RarityEpic      AchievementRarity = "epic"
	RarityLegendary AchievementRarity = "legendary"
)

// Achievement is one unlockable badge. The engine flips State exactly once
// and stamps UnlockedAt at the transition.
type Achievement struct {
	ID          string            `yaml:"id"`
	Title       string            `yaml:"title"`
	Description string            `yaml:"description"`
	Icon        string            `yaml:"icon"`
	Category    string            `yaml:"category"`
	Rarity      AchievementRarity `yaml:"rarity"`
	State       AchievementState  `yaml:"-"`
	UnlockedAt  time.Time         `yaml:"-"`
}

// Unlocked reports whether the badge has been earned.
func (a *Achievement) Unlocked() bool {
	return a.State == AchievementUnlocked
}
