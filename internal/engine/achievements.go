package engine

import (
	"time"

	"github.com/IGOLIVIT/galaxy-quest/internal/content"
	"github.com/IGOLIVIT/galaxy-quest/internal/economy"
)

// achievementRule is one unlock predicate plus its optional one-time
// reward. Predicates read state only; rewards mutate it.
type achievementRule struct {
	id        string
	predicate func(e *Engine) bool
	reward    func(e *Engine)
}

// achievementRules is the fixed predicate list, evaluated in order on
// every sweep.
var achievementRules = []achievementRule{
	{
		id: "first_mission",
		predicate: func(e *Engine) bool {
			return len(e.progress.CompletedMissions) == 1
		},
		reward: func(e *Engine) {
			e.progress.AddCredits(100)
		},
	},
	{
		id: "budget_master",
		predicate: func(e *Engine) bool {
			return e.completedInCategory(content.CategoryBudgeting) >= 2
		},
		reward: func(e *Engine) {
			e.colony.Resource(economy.ResourceEnergy).Add(100)
		},
	},
	{
		id: "investment_guru",
		predicate: func(e *Engine) bool {
			return e.completedInCategory(content.CategoryInvesting) >= 2
		},
		reward: func(e *Engine) {
			e.progress.AddCredits(500)
		},
	},
	{
		id: "risk_expert",
		predicate: func(e *Engine) bool {
			return e.completedInCategory(content.CategoryRiskManagement) >= 1
		},
		reward: func(e *Engine) {
			e.colony.AddToAllResources(50)
		},
	},
	{
		id: "wealth_builder",
		predicate: func(e *Engine) bool {
			return e.progress.Credits >= 5000
		},
		reward: func(e *Engine) {
			e.colony.GrowPopulation(50)
		},
	},
	{
		id: "colony_growth",
		predicate: func(e *Engine) bool {
			return e.colony.Population >= 500
		},
	},
	{
		id: "happy_colony",
		predicate: func(e *Engine) bool {
			return e.colony.Happiness >= 0.9
		},
		reward: func(e *Engine) {
			e.progress.AddCredits(300)
		},
	},
	{
		id: "experienced_commander",
		predicate: func(e *Engine) bool {
			return e.progress.Level >= 5
		},
	},
	{
		id: "veteran_commander",
		predicate: func(e *Engine) bool {
			return e.progress.Level >= 10
		},
	},
}

// sweepAchievements evaluates every rule. The "not already unlocked"
// guard sits immediately before the reward is applied, so re-running the
// sweep never double-grants. Several rules can fire in one sweep. Caller
// holds the lock.
func (e *Engine) sweepAchievements() {
	for _, rule := range achievementRules {
		if e.progress.HasUnlocked(rule.id) {
			continue
		}
		if !rule.predicate(e) {
			continue
		}

		e.progress.UnlockAchievement(rule.id)
		if a := e.achievementByID(rule.id); a != nil {
			a.State = content.AchievementUnlocked
			a.UnlockedAt = time.Now()
		}
		if rule.reward != nil {
			rule.reward(e)
			e.colony.UpdateHappiness()
		}
		e.logger.Info("achievement unlocked", "id", rule.id)
	}
}

// completedInCategory counts completed missions of the given category.
// Caller holds the lock.
func (e *Engine) completedInCategory(category content.ChallengeCategory) int {
	count := 0
	for i := range e.missions {
		if e.missions[i].Category == category && e.progress.HasCompleted(e.missions[i].ID) {
			count++
		}
	}
	return count
}

// achievementByID returns the working-copy achievement, or nil. Caller
// holds the lock.
func (e *Engine) achievementByID(id string) *content.Achievement {
	for i := range e.achievements {
		if e.achievements[i].ID == id {
			return &e.achievements[i]
		}
	}
	return nil
}
