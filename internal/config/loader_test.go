package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadGameEmbeddedDefaults(t *testing.T) {
	cfg, err := LoadGame("")
	if err != nil {
		t.Fatalf("LoadGame() failed: %v", err)
	}

	want := DefaultGameConfig()
	if cfg != want {
		t.Errorf("embedded defaults = %+v, want %+v", cfg, want)
	}
}

func TestLoadGameCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "game.yaml")

	custom := `colony:
  name: Kepler Outpost
economy:
  starting_credits: 500
  construction_cost: 200
  reconstruction_cost: 500
  upgrade_cost_per_level: 100
production:
  interval_seconds: 5
  administrative_boost: 2
`
	if err := os.WriteFile(path, []byte(custom), 0o644); err != nil {
		t.Fatalf("cannot write fixture: %v", err)
	}

	cfg, err := LoadGame(path)
	if err != nil {
		t.Fatalf("LoadGame(custom) failed: %v", err)
	}
	if cfg.Colony.Name != "Kepler Outpost" {
		t.Errorf("colony name = %q, want Kepler Outpost", cfg.Colony.Name)
	}
	if cfg.Economy.StartingCredits != 500 {
		t.Errorf("starting credits = %d, want 500", cfg.Economy.StartingCredits)
	}
	if cfg.Production.Interval() != 5*time.Second {
		t.Errorf("interval = %v, want 5s", cfg.Production.Interval())
	}
}

func TestProductionIntervalGuardsZero(t *testing.T) {
	p := ProductionConfig{IntervalSeconds: 0}
	if p.Interval() != 30*time.Second {
		t.Errorf("zero interval should fall back to 30s, got %v", p.Interval())
	}
}
