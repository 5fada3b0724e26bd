package engine

import "time"

// StartProduction launches the periodic resource production loop. The
// loop is an engine-owned goroutine firing at the configured interval;
// every tick takes the same mutex as user-initiated operations. Starting
// an already-running loop is a no-op.
func (e *Engine) StartProduction() {
	e.mu.Lock()
	if e.prodRunning {
		e.mu.Unlock()
		return
	}
	e.prodRunning = true
	e.prodPaused = false
	done := make(chan struct{})
	e.prodDone = done
	e.mu.Unlock()

	e.prodWG.Add(1)
	go e.runProduction(done)
	e.logger.Debug("production loop started", "interval", e.cfg.Production.Interval())
}

// StopProduction stops the loop and waits for the goroutine to exit.
func (e *Engine) StopProduction() {
	e.mu.Lock()
	if !e.prodRunning {
		e.mu.Unlock()
		return
	}
	e.prodRunning = false
	done := e.prodDone
	e.prodDone = nil
	e.mu.Unlock()

	close(done)
	e.prodWG.Wait()
	e.logger.Debug("production loop stopped")
}

// PauseProduction suspends tick application. Ticks fired while paused
// are dropped, never backfilled.
func (e *Engine) PauseProduction() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.prodPaused = true
}

// ResumeProduction re-enables tick application.
func (e *Engine) ResumeProduction() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.prodPaused = false
}

// ProductionRunning reports whether the loop goroutine is active.
func (e *Engine) ProductionRunning() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.prodRunning
}

func (e *Engine) runProduction(done chan struct{}) {
	defer e.prodWG.Done()

	ticker := time.NewTicker(e.cfg.Production.Interval())
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			e.applyProductionTick()
		}
	}
}

// applyProductionTick runs one production pass: every built building
// feeds its resource, administrative buildings add a flat boost to all
// four, then happiness is recomputed. The snapshot holds UserProgress
// only, so a tick has nothing to persist.
func (e *Engine) applyProductionTick() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.prodPaused {
		return
	}

	for i := range e.colony.Buildings {
		b := &e.colony.Buildings[i]
		if !b.IsBuilt {
			continue
		}
		if kind, ok := b.Type.Produces(); ok {
			e.colony.Resource(kind).Add(b.ProductionRate)
		} else {
			e.colony.AddToAllResources(e.cfg.Production.AdministrativeBoost)
		}
	}

	e.colony.UpdateHappiness()
	e.logger.Debug("production tick applied", "happiness", e.colony.Happiness)
}
