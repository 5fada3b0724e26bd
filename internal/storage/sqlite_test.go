package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/IGOLIVIT/galaxy-quest/internal/economy"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestLoadProgressFirstRun(t *testing.T) {
	store := openTestStore(t)

	p, err := store.LoadProgress()
	if err != nil {
		t.Fatalf("LoadProgress() failed: %v", err)
	}
	if p != nil {
		t.Errorf("first run should yield nil snapshot, got %+v", p)
	}
}

func TestProgressRoundTrip(t *testing.T) {
	store := openTestStore(t)

	p := economy.NewUserProgress()
	p.Credits = 3200
	p.Level = 4
	p.Experience = 75
	p.CurrentDifficulty = economy.DifficultyAdvanced
	p.HasCompletedOnboarding = true
	p.LastPlayed = time.Date(2026, 8, 30, 14, 0, 0, 0, time.UTC)
	p.CompleteMission("basic_budget")
	p.CompleteMission("stock_basics")
	p.UnlockAchievement("first_mission")

	if err := store.SaveProgress(*p); err != nil {
		t.Fatalf("SaveProgress() failed: %v", err)
	}

	loaded, err := store.LoadProgress()
	if err != nil {
		t.Fatalf("LoadProgress() failed: %v", err)
	}
	if loaded == nil {
		t.Fatal("expected a snapshot after save")
	}

	if loaded.Credits != 3200 || loaded.Level != 4 || loaded.Experience != 75 {
		t.Errorf("scalar fields lost: %+v", loaded)
	}
	if loaded.CurrentDifficulty != economy.DifficultyAdvanced {
		t.Errorf("difficulty = %q, want advanced", loaded.CurrentDifficulty)
	}
	if !loaded.HasCompletedOnboarding {
		t.Error("onboarding flag lost")
	}
	if !loaded.HasCompleted("basic_budget") || !loaded.HasCompleted("stock_basics") {
		t.Errorf("mission set lost: %v", loaded.CompletedMissions)
	}
	if !loaded.HasUnlocked("first_mission") {
		t.Errorf("achievement set lost: %v", loaded.UnlockedAchievements)
	}
	if !loaded.LastPlayed.Equal(p.LastPlayed) {
		t.Errorf("last played = %v, want %v", loaded.LastPlayed, p.LastPlayed)
	}
}

func TestSaveProgressReplacesIDSets(t *testing.T) {
	store := openTestStore(t)

	p := economy.NewUserProgress()
	p.CompleteMission("basic_budget")
	if err := store.SaveProgress(*p); err != nil {
		t.Fatalf("SaveProgress() failed: %v", err)
	}

	// A second save with a different set must fully replace the first.
	p2 := economy.NewUserProgress()
	p2.CompleteMission("emergency_fund")
	if err := store.SaveProgress(*p2); err != nil {
		t.Fatalf("SaveProgress() failed: %v", err)
	}

	loaded, err := store.LoadProgress()
	if err != nil {
		t.Fatalf("LoadProgress() failed: %v", err)
	}
	if loaded.HasCompleted("basic_budget") {
		t.Error("stale mission id survived a snapshot replace")
	}
	if !loaded.HasCompleted("emergency_fund") {
		t.Error("new mission id not stored")
	}
}

func TestClearProgress(t *testing.T) {
	store := openTestStore(t)

	p := economy.NewUserProgress()
	p.CompleteMission("basic_budget")
	p.UnlockAchievement("first_mission")
	if err := store.SaveProgress(*p); err != nil {
		t.Fatalf("SaveProgress() failed: %v", err)
	}

	if _, err := store.SaveScore("cash_catcher", 120); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	if err := store.ClearProgress(); err != nil {
		t.Fatalf("ClearProgress() failed: %v", err)
	}

	loaded, err := store.LoadProgress()
	if err != nil {
		t.Fatalf("LoadProgress() failed: %v", err)
	}
	if loaded != nil {
		t.Errorf("expected nil snapshot after clear, got %+v", loaded)
	}

	// High scores are not part of the progress snapshot.
	high, err := store.HighScore("cash_catcher")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 120 {
		t.Errorf("scores must survive a reset, got %d", high)
	}
}

func TestTopScoresOrdering(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("cash_catcher", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("cash_catcher", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("scores not sorted descending: %v", scores)
	}
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}
