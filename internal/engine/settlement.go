package engine

import (
	"github.com/IGOLIVIT/galaxy-quest/internal/content"
	"github.com/IGOLIVIT/galaxy-quest/internal/economy"
)

// CompleteMission settles a passed mission challenge. scoreFraction is
// the challenge runner's verified result in [0,1]; failed attempts never
// reach settlement. Settling an already-completed mission is a no-op:
// rewards are granted at most once per mission.
func (e *Engine) CompleteMission(missionID string, scoreFraction float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	mission := e.missionByID(missionID)
	if mission == nil {
		e.logger.Warn("settlement: unknown mission", "id", missionID)
		return
	}
	if mission.State == content.MissionCompleted {
		return
	}

	if scoreFraction < 0 {
		scoreFraction = 0
	} else if scoreFraction > 1 {
		scoreFraction = 1
	}

	baseReward := mission.AdjustedReward()
	bonusReward := int(float64(baseReward) * scoreFraction)
	totalReward := baseReward + bonusReward

	e.progress.CompleteMission(mission.ID)
	mission.State = content.MissionCompleted

	e.progress.AddCredits(totalReward)
	e.progress.AddExperience(mission.Difficulty.ExperienceAward())

	e.applyCategoryEffects(mission.Category, totalReward)
	e.colony.UpdateHappiness()

	e.recomputeAvailability()
	e.sweepAchievements()

	e.logger.Info("mission settled",
		"id", mission.ID,
		"score", scoreFraction,
		"reward", totalReward,
		"credits", e.progress.Credits,
		"level", e.progress.Level,
	)
	e.persistLocked()
}

// applyCategoryEffects applies the colony side effects keyed by the
// mission's challenge category. bonus scales with the settled reward.
// Caller holds the lock and recomputes happiness afterwards.
func (e *Engine) applyCategoryEffects(category content.ChallengeCategory, totalReward int) {
	bonus := totalReward / 10

	switch category {
	case content.CategoryBudgeting:
		e.colony.Resource(economy.ResourceEnergy).Add(bonus + 30)
		e.colony.GrowPopulation(5)

	case content.CategoryInvesting:
		e.progress.AddCredits(bonus + 50)
		e.colony.Resource(economy.ResourceResearch).Add(bonus + 15)

	case content.CategorySaving:
		e.colony.Resource(economy.ResourceFood).Add(bonus + 25)
		e.colony.GrowPopulation(10)

	case content.CategoryDebtManagement:
		e.colony.Resource(economy.ResourceMaterials).Add(bonus + 35)
		e.progress.AddCredits(bonus + 25)

	case content.CategoryRiskManagement:
		e.colony.Resource(economy.ResourceResearch).Add(bonus + 20)
		e.colony.AddToAllResources(5)

	case content.CategoryEmergencyPlanning:
		e.colony.AddToAllResources(bonus + 15)
		e.colony.GrowPopulation(3)
	}
}

// missionByID returns the working-copy mission, or nil. Caller holds the
// lock.
func (e *Engine) missionByID(id string) *content.Mission {
	for i := range e.missions {
		if e.missions[i].ID == id {
			return &e.missions[i]
		}
	}
	return nil
}
