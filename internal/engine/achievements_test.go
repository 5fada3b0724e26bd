package engine

import (
	"testing"

	"github.com/IGOLIVIT/galaxy-quest/internal/content"
	"github.com/IGOLIVIT/galaxy-quest/internal/economy"
)

func TestFirstMissionUnlocksExactlyOnce(t *testing.T) {
	e := newTestEngine(t, nil)

	e.CompleteMission("save_1", 0)
	progress, _, _, _ := e.LoadGameData()
	if !progress.HasUnlocked("first_mission") {
		t.Fatal("first_mission should unlock after the first settlement")
	}
	creditsAfterFirst := progress.Credits

	// save_1: base 100, total 100; plus the 100-credit badge bonus.
	if creditsAfterFirst != 100+100+100 {
		t.Errorf("credits = %d, want 300", creditsAfterFirst)
	}

	e.CompleteMission("budget_1", 0)
	progress, _, _, _ = e.LoadGameData()

	// Second settlement: +100 mission reward only, no badge re-grant.
	if progress.Credits != creditsAfterFirst+100 {
		t.Errorf("credits = %d, want %d (no duplicate badge bonus)", progress.Credits, creditsAfterFirst+100)
	}
}

func TestBudgetMasterNeedsTwoMissions(t *testing.T) {
	e := newTestEngine(t, nil)

	e.CompleteMission("budget_1", 0)
	progress, _, _, _ := e.LoadGameData()
	if progress.HasUnlocked("budget_master") {
		t.Error("budget_master must not unlock after one budgeting mission")
	}

	e.CompleteMission("budget_2", 0)
	progress, colony, _, _ := e.LoadGameData()
	if !progress.HasUnlocked("budget_master") {
		t.Error("budget_master should unlock after two budgeting missions")
	}

	// The badge adds a flat 100 Energy on top of the mission effects.
	if colony.Resource(economy.ResourceEnergy).Amount <= 150 {
		t.Errorf("energy = %d, badge bonus missing", colony.Resource(economy.ResourceEnergy).Amount)
	}
}

func TestRiskExpertBoostsAllResources(t *testing.T) {
	e := newTestEngine(t, nil)

	_, before, _, _ := e.LoadGameData()
	e.CompleteMission("risk_1", 0)
	_, after, _, _ := e.LoadGameData()

	// risk_1 total = 1000: category gives Research +120 and all +5;
	// the badge adds another +50 to every resource.
	for kind := economy.ResourceKind(0); kind < economy.ResourceCount; kind++ {
		min := before.Resource(kind).Amount + 55
		if min > after.Resource(kind).MaxCapacity {
			min = after.Resource(kind).MaxCapacity
		}
		if after.Resource(kind).Amount < min {
			t.Errorf("%s = %d, want at least %d", kind, after.Resource(kind).Amount, min)
		}
	}

	progress, _, _, _ := e.LoadGameData()
	if !progress.HasUnlocked("risk_expert") {
		t.Error("risk_expert should unlock after one risk mission")
	}
}

func TestWealthBuilderAndLevelBadges(t *testing.T) {
	gw := &memoryGateway{}
	snapshot := economy.NewUserProgress()
	snapshot.Credits = 4900
	snapshot.Level = 5
	snapshot.CompleteMission("save_1")
	snapshot.UnlockAchievement("first_mission")
	gw.snapshot = snapshot
	e := newTestEngine(t, gw)

	_, before, _, _ := e.LoadGameData()

	// Any settlement pushes credits past 5000 and triggers the sweep.
	e.CompleteMission("budget_1", 0)

	progress, colony, _, _ := e.LoadGameData()
	if !progress.HasUnlocked("wealth_builder") {
		t.Error("wealth_builder should unlock at 5000 credits")
	}
	if colony.Population != before.Population+5+50 {
		t.Errorf("population = %d, want mission +5 and badge +50 on %d", colony.Population, before.Population)
	}
	if !progress.HasUnlocked("experienced_commander") {
		t.Error("experienced_commander should unlock at level 5")
	}
	if progress.HasUnlocked("veteran_commander") {
		t.Error("veteran_commander must stay locked below level 10")
	}
}

func TestSweepIsIdempotent(t *testing.T) {
	e := newTestEngine(t, nil)
	e.CompleteMission("save_1", 0)

	progress, _, _, _ := e.LoadGameData()
	credits := progress.Credits

	// Direct re-sweep with no new state must change nothing.
	e.mu.Lock()
	e.sweepAchievements()
	e.mu.Unlock()

	progress, _, _, _ = e.LoadGameData()
	if progress.Credits != credits {
		t.Errorf("idle sweep changed credits: %d -> %d", credits, progress.Credits)
	}
}

func TestUnlockStampsDate(t *testing.T) {
	e := newTestEngine(t, nil)
	e.CompleteMission("save_1", 0)

	_, _, _, achievements := e.LoadGameData()
	for _, a := range achievements {
		if a.ID != "first_mission" {
			continue
		}
		if a.State != content.AchievementUnlocked {
			t.Fatal("first_mission should be unlocked")
		}
		if a.UnlockedAt.IsZero() {
			t.Error("unlock must stamp UnlockedAt")
		}
	}
}
