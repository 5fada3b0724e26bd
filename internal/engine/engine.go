// Package engine owns all mutable game state: mission settlement, the
// production loop, construction economics, achievement evaluation, and
// persistence. One engine instance exists per player session; every
// mutating operation is serialized behind a single mutex.
package engine

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/IGOLIVIT/galaxy-quest/internal/config"
	"github.com/IGOLIVIT/galaxy-quest/internal/content"
	"github.com/IGOLIVIT/galaxy-quest/internal/economy"
)

// Gateway is the persistence boundary. The engine issues writes after
// successful mutations and treats failures as losses of durability, not
// of correctness: in-memory state is always the newer value.
type Gateway interface {
	SaveProgress(economy.UserProgress) error
	LoadProgress() (*economy.UserProgress, error)
	ClearProgress() error
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger attaches a structured logger. Without it the engine is
// silent.
func WithLogger(logger *log.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// Engine is the single owner of the economy state aggregate.
type Engine struct {
	mu sync.Mutex

	cfg     config.GameConfig
	catalog content.Catalog
	store   Gateway
	logger  *log.Logger

	progress     *economy.UserProgress
	colony       *economy.PlanetColony
	missions     []content.Mission
	achievements []content.Achievement

	prodRunning bool
	prodPaused  bool
	prodDone    chan struct{}
	prodWG      sync.WaitGroup
}

// New constructs the engine: it loads the persisted snapshot (absence
// means first run), derives colony and catalog state from it, and
// recomputes mission availability. The production loop is not started;
// call StartProduction.
func New(cfg config.GameConfig, catalog content.Catalog, store Gateway, opts ...Option) (*Engine, error) {
	e := &Engine{
		cfg:     cfg,
		catalog: catalog,
		store:   store,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(e)
	}

	snapshot, err := store.LoadProgress()
	if err != nil {
		return nil, err
	}
	if snapshot == nil {
		snapshot = economy.NewUserProgress()
		if cfg.Economy.StartingCredits > 0 {
			snapshot.Credits = cfg.Economy.StartingCredits
		}
		e.logger.Info("no snapshot found, starting fresh", "credits", snapshot.Credits)
	} else {
		e.logger.Info("snapshot loaded",
			"credits", snapshot.Credits,
			"level", snapshot.Level,
			"missions", len(snapshot.CompletedMissions),
		)
	}

	e.progress = snapshot
	e.rebuildDerivedState()
	return e, nil
}

// rebuildDerivedState re-creates the colony and working catalog copies
// from the pristine catalog plus the progress id sets. Caller holds the
// lock (or is the constructor).
func (e *Engine) rebuildDerivedState() {
	e.colony = economy.NewPlanetColony(e.cfg.Colony.Name)

	e.missions = append([]content.Mission(nil), e.catalog.Missions...)
	for i := range e.missions {
		if e.progress.HasCompleted(e.missions[i].ID) {
			e.missions[i].State = content.MissionCompleted
		}
	}

	e.achievements = append([]content.Achievement(nil), e.catalog.Achievements...)
	for i := range e.achievements {
		if e.progress.HasUnlocked(e.achievements[i].ID) {
			e.achievements[i].State = content.AchievementUnlocked
		}
	}

	e.recomputeAvailability()
	e.colony.UpdateHappiness()
}

// recomputeAvailability re-derives every non-completed mission's state
// from its prerequisites. Caller holds the lock.
func (e *Engine) recomputeAvailability() {
	for i := range e.missions {
		m := &e.missions[i]
		if m.State == content.MissionCompleted {
			continue
		}
		met := true
		for _, pre := range m.Prerequisites {
			if !e.progress.HasCompleted(pre) {
				met = false
				break
			}
		}
		if met {
			m.State = content.MissionAvailable
		} else {
			m.State = content.MissionLocked
		}
	}
}

// LoadGameData returns deep copies of the current state for presentation.
func (e *Engine) LoadGameData() (economy.UserProgress, economy.PlanetColony, []content.Mission, []content.Achievement) {
	e.mu.Lock()
	defer e.mu.Unlock()

	missions := append([]content.Mission(nil), e.missions...)
	achievements := append([]content.Achievement(nil), e.achievements...)
	return e.progress.Clone(), e.colony.Clone(), missions, achievements
}

// ConstructBuilding constructs the named building. Returns false with no
// mutation when the building is unknown, already built, or the balance
// does not cover the cost.
func (e *Engine) ConstructBuilding(buildingID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	b := e.colony.Building(buildingID)
	if b == nil {
		e.logger.Warn("construct: unknown building", "id", buildingID)
		return false
	}
	if b.IsBuilt {
		return false
	}

	cost := e.cfg.Economy.ConstructionCost
	if b.Level > 0 {
		cost = e.cfg.Economy.ReconstructionCost
	}
	if !e.progress.SpendCredits(cost) {
		return false
	}

	b.IsBuilt = true
	if b.Level == 0 {
		b.Level = 1
	}

	e.logger.Info("building constructed", "id", buildingID, "cost", cost, "credits", e.progress.Credits)
	e.persistLocked()
	return true
}

// UpgradeBuilding raises the building one level for level*cost credits.
// Unbuilt buildings cannot be upgraded: construction is the only way out
// of level 0.
func (e *Engine) UpgradeBuilding(buildingID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	b := e.colony.Building(buildingID)
	if b == nil {
		e.logger.Warn("upgrade: unknown building", "id", buildingID)
		return false
	}
	if !b.IsBuilt {
		return false
	}

	cost := b.Level * e.cfg.Economy.UpgradeCostPerLevel
	if !e.progress.SpendCredits(cost) {
		return false
	}

	b.Level++
	b.ProductionRate += economy.UpgradeProductionBonus

	e.logger.Info("building upgraded", "id", buildingID, "level", b.Level, "cost", cost)
	e.persistLocked()
	return true
}

// ChangeDifficulty sets the player's difficulty tier. Already-completed
// missions are never rescaled.
func (e *Engine) ChangeDifficulty(tier economy.DifficultyTier) {
	if !tier.Valid() {
		e.logger.Warn("ignoring unknown difficulty tier", "tier", tier)
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.progress.CurrentDifficulty = tier
	e.persistLocked()
}

// CompleteOnboarding marks the intro as seen. Idempotent.
func (e *Engine) CompleteOnboarding() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.progress.HasCompletedOnboarding {
		return
	}
	e.progress.HasCompletedOnboarding = true
	e.persistLocked()
}

// ResetGame clears the persisted snapshot and rebuilds all state to its
// default construction. The production loop is restarted if it was
// running. No partially-reset state is observable.
func (e *Engine) ResetGame() {
	wasRunning := e.ProductionRunning()
	e.StopProduction()

	e.mu.Lock()
	if err := e.store.ClearProgress(); err != nil {
		e.logger.Warn("could not clear persisted snapshot", "error", err)
	}

	e.progress = economy.NewUserProgress()
	if e.cfg.Economy.StartingCredits > 0 {
		e.progress.Credits = e.cfg.Economy.StartingCredits
	}
	e.rebuildDerivedState()
	e.logger.Info("game reset")
	e.mu.Unlock()

	if wasRunning {
		e.StartProduction()
	}
}

// persistLocked pushes the current snapshot to the gateway. Failures are
// logged and otherwise ignored: a crash between mutation and persistence
// loses progress, never corrupts it. Caller holds the lock.
func (e *Engine) persistLocked() {
	e.progress.LastPlayed = time.Now()
	if err := e.store.SaveProgress(e.progress.Clone()); err != nil {
		e.logger.Warn("could not persist snapshot", "error", err)
	}
}
