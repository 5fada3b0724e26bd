package engine

import (
	"errors"
	"testing"

	"github.com/IGOLIVIT/galaxy-quest/internal/config"
	"github.com/IGOLIVIT/galaxy-quest/internal/content"
	"github.com/IGOLIVIT/galaxy-quest/internal/economy"
)

// memoryGateway is an in-memory persistence stub for engine tests.
type memoryGateway struct {
	snapshot *economy.UserProgress
	saves    int
	clears   int
	failSave bool
}

func (g *memoryGateway) SaveProgress(p economy.UserProgress) error {
	g.saves++
	if g.failSave {
		return errors.New("disk full")
	}
	clone := p.Clone()
	g.snapshot = &clone
	return nil
}

func (g *memoryGateway) LoadProgress() (*economy.UserProgress, error) {
	if g.snapshot == nil {
		return nil, nil
	}
	clone := g.snapshot.Clone()
	return &clone, nil
}

func (g *memoryGateway) ClearProgress() error {
	g.clears++
	g.snapshot = nil
	return nil
}

func testCatalog() content.Catalog {
	missions := []content.Mission{
		{ID: "budget_1", Title: "Budget 1", Difficulty: economy.DifficultyBeginner, Reward: 100, Category: content.CategoryBudgeting},
		{ID: "budget_2", Title: "Budget 2", Difficulty: economy.DifficultyIntermediate, Reward: 200, Category: content.CategoryBudgeting, Prerequisites: []string{"budget_1"}},
		{ID: "invest_1", Title: "Invest 1", Difficulty: economy.DifficultyBeginner, Reward: 120, Category: content.CategoryInvesting},
		{ID: "invest_2", Title: "Invest 2", Difficulty: economy.DifficultyExpert, Reward: 550, Category: content.CategoryInvesting},
		{ID: "save_1", Title: "Save 1", Difficulty: economy.DifficultyBeginner, Reward: 100, Category: content.CategorySaving},
		{ID: "risk_1", Title: "Risk 1", Difficulty: economy.DifficultyAdvanced, Reward: 500, Category: content.CategoryRiskManagement},
		{ID: "debt_1", Title: "Debt 1", Difficulty: economy.DifficultyIntermediate, Reward: 300, Category: content.CategoryDebtManagement},
		{ID: "emergency_1", Title: "Emergency 1", Difficulty: economy.DifficultyIntermediate, Reward: 290, Category: content.CategoryEmergencyPlanning},
	}
	achievements := []content.Achievement{
		{ID: "first_mission"}, {ID: "budget_master"}, {ID: "investment_guru"},
		{ID: "risk_expert"}, {ID: "wealth_builder"}, {ID: "colony_growth"},
		{ID: "happy_colony"}, {ID: "experienced_commander"}, {ID: "veteran_commander"},
	}
	return content.Catalog{Missions: missions, Achievements: achievements}
}

func newTestEngine(t *testing.T, gw *memoryGateway) *Engine {
	t.Helper()
	if gw == nil {
		gw = &memoryGateway{}
	}
	e, err := New(config.DefaultGameConfig(), testCatalog(), gw)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return e
}

func TestNewFirstRunDefaults(t *testing.T) {
	e := newTestEngine(t, nil)

	progress, colony, missions, achievements := e.LoadGameData()
	if progress.Credits != 100 {
		t.Errorf("fresh credits = %d, want 100", progress.Credits)
	}
	if colony.Name != "New Terra" {
		t.Errorf("colony name = %q, want New Terra", colony.Name)
	}
	if len(missions) != 8 || len(achievements) != 9 {
		t.Errorf("catalog sizes = %d/%d, want 8/9", len(missions), len(achievements))
	}

	for _, m := range missions {
		switch m.ID {
		case "budget_2":
			if m.State != content.MissionLocked {
				t.Errorf("budget_2 should be locked behind budget_1, got %v", m.State)
			}
		default:
			if m.State != content.MissionAvailable {
				t.Errorf("%s should be available, got %v", m.ID, m.State)
			}
		}
	}
}

func TestNewRestoresSnapshot(t *testing.T) {
	gw := &memoryGateway{}
	snapshot := economy.NewUserProgress()
	snapshot.Credits = 999
	snapshot.CompleteMission("budget_1")
	snapshot.UnlockAchievement("first_mission")
	gw.snapshot = snapshot

	e := newTestEngine(t, gw)

	progress, _, missions, achievements := e.LoadGameData()
	if progress.Credits != 999 {
		t.Errorf("credits = %d, want 999", progress.Credits)
	}

	for _, m := range missions {
		switch m.ID {
		case "budget_1":
			if m.State != content.MissionCompleted {
				t.Errorf("budget_1 should load completed, got %v", m.State)
			}
		case "budget_2":
			if m.State != content.MissionAvailable {
				t.Errorf("budget_2 should unlock once budget_1 is done, got %v", m.State)
			}
		}
	}

	for _, a := range achievements {
		if a.ID == "first_mission" && a.State != content.AchievementUnlocked {
			t.Error("first_mission should load unlocked")
		}
	}
}

func TestConstructBuilding(t *testing.T) {
	gw := &memoryGateway{}
	snapshot := economy.NewUserProgress()
	snapshot.Credits = 1000
	gw.snapshot = snapshot
	e := newTestEngine(t, gw)

	if !e.ConstructBuilding("solar_array") {
		t.Fatal("construction should succeed with 1000 credits")
	}

	progress, colony, _, _ := e.LoadGameData()
	if progress.Credits != 800 {
		t.Errorf("credits after construction = %d, want 800", progress.Credits)
	}
	b := colony.Building("solar_array")
	if !b.IsBuilt || b.Level != 1 {
		t.Errorf("solar array built=%v level=%d, want built at level 1", b.IsBuilt, b.Level)
	}

	// Second construction of the same building fails.
	if e.ConstructBuilding("solar_array") {
		t.Error("constructing a built building must fail")
	}
}

func TestConstructBuildingInsufficientFunds(t *testing.T) {
	gw := &memoryGateway{}
	snapshot := economy.NewUserProgress()
	snapshot.Credits = 150
	gw.snapshot = snapshot
	e := newTestEngine(t, gw)

	if e.ConstructBuilding("solar_array") {
		t.Fatal("construction should fail with 150 credits against cost 200")
	}

	progress, colony, _, _ := e.LoadGameData()
	if progress.Credits != 150 {
		t.Errorf("failed construction must not touch credits, got %d", progress.Credits)
	}
	if colony.Building("solar_array").IsBuilt {
		t.Error("failed construction must not flip isBuilt")
	}
}

func TestUpgradeBuilding(t *testing.T) {
	gw := &memoryGateway{}
	snapshot := economy.NewUserProgress()
	snapshot.Credits = 300
	gw.snapshot = snapshot
	e := newTestEngine(t, gw)

	// Command center starts built at level 1; raise it to level 2 first.
	if !e.UpgradeBuilding("command_center") {
		t.Fatal("level-1 upgrade should cost 100 and succeed")
	}

	// Now level 2 with 200 credits left: cost 200, exact spend.
	if !e.UpgradeBuilding("command_center") {
		t.Fatal("level-2 upgrade should cost 200 and succeed")
	}

	progress, colony, _, _ := e.LoadGameData()
	if progress.Credits != 0 {
		t.Errorf("credits = %d, want 0", progress.Credits)
	}
	b := colony.Building("command_center")
	if b.Level != 3 {
		t.Errorf("level = %d, want 3", b.Level)
	}
	if b.ProductionRate != economy.DefaultProductionRate+2*economy.UpgradeProductionBonus {
		t.Errorf("production rate = %d, want %d", b.ProductionRate, economy.DefaultProductionRate+10)
	}

	// Broke now: upgrade must leave everything unchanged.
	if e.UpgradeBuilding("command_center") {
		t.Error("upgrade with 0 credits must fail")
	}
	_, colony2, _, _ := e.LoadGameData()
	b2 := colony2.Building("command_center")
	if b2.Level != 3 || b2.ProductionRate != b.ProductionRate {
		t.Error("failed upgrade must not mutate the building")
	}
}

func TestUpgradeUnbuiltBuildingFails(t *testing.T) {
	gw := &memoryGateway{}
	snapshot := economy.NewUserProgress()
	snapshot.Credits = 10000
	gw.snapshot = snapshot
	e := newTestEngine(t, gw)

	if e.UpgradeBuilding("research_lab") {
		t.Error("an unbuilt building cannot be upgraded")
	}
}

func TestChangeDifficultyIdempotent(t *testing.T) {
	e := newTestEngine(t, nil)

	e.ChangeDifficulty(economy.DifficultyExpert)
	first, _, _, _ := e.LoadGameData()

	e.ChangeDifficulty(economy.DifficultyExpert)
	second, _, _, _ := e.LoadGameData()

	if first.CurrentDifficulty != economy.DifficultyExpert {
		t.Errorf("difficulty = %q, want expert", first.CurrentDifficulty)
	}
	if second.Credits != first.Credits || second.Level != first.Level ||
		second.CurrentDifficulty != first.CurrentDifficulty {
		t.Error("repeating ChangeDifficulty must not change state")
	}
}

func TestChangeDifficultyRejectsUnknownTier(t *testing.T) {
	e := newTestEngine(t, nil)

	e.ChangeDifficulty(economy.DifficultyTier("nightmare"))

	progress, _, _, _ := e.LoadGameData()
	if progress.CurrentDifficulty != economy.DifficultyBeginner {
		t.Errorf("unknown tier must be ignored, got %q", progress.CurrentDifficulty)
	}
}

func TestResetGame(t *testing.T) {
	gw := &memoryGateway{}
	e := newTestEngine(t, gw)

	e.CompleteMission("budget_1", 1.0)
	e.ResetGame()

	if gw.clears != 1 {
		t.Errorf("reset must clear the persisted snapshot, clears = %d", gw.clears)
	}

	progress, colony, missions, achievements := e.LoadGameData()
	if progress.Credits != 100 || progress.Level != 1 || len(progress.CompletedMissions) != 0 {
		t.Errorf("progress not reset: %+v", progress)
	}
	if colony.Population != 25 || colony.Happiness != 0.5 {
		t.Errorf("colony not reset: pop=%d happiness=%v", colony.Population, colony.Happiness)
	}
	for _, m := range missions {
		if m.State == content.MissionCompleted {
			t.Errorf("mission %s still completed after reset", m.ID)
		}
	}
	for _, a := range achievements {
		if a.State == content.AchievementUnlocked {
			t.Errorf("achievement %s still unlocked after reset", a.ID)
		}
	}
}

func TestResetGameRestartsProduction(t *testing.T) {
	e := newTestEngine(t, nil)
	e.StartProduction()
	defer e.StopProduction()

	e.ResetGame()
	if !e.ProductionRunning() {
		t.Error("reset must restart a running production loop")
	}

	e.StopProduction()
	e.ResetGame()
	if e.ProductionRunning() {
		t.Error("reset must not start a stopped production loop")
	}
}

func TestPersistenceIsFireAndForget(t *testing.T) {
	gw := &memoryGateway{failSave: true}
	e := newTestEngine(t, gw)

	// The save fails, but the mutation must stick in memory.
	e.CompleteMission("budget_1", 1.0)

	progress, _, _, _ := e.LoadGameData()
	if !progress.HasCompleted("budget_1") {
		t.Error("in-memory state must survive a failed persistence write")
	}
	if gw.saves == 0 {
		t.Error("a persistence write must still be issued")
	}
}

func TestCompleteOnboardingPersistsOnce(t *testing.T) {
	gw := &memoryGateway{}
	e := newTestEngine(t, gw)

	e.CompleteOnboarding()
	progress, _, _, _ := e.LoadGameData()
	if !progress.HasCompletedOnboarding {
		t.Fatal("onboarding flag should be set")
	}
	saves := gw.saves

	e.CompleteOnboarding()
	if gw.saves != saves {
		t.Error("repeat calls must not re-persist")
	}
}
