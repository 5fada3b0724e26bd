// Package catcher implements the Cash Catcher mini-game: space bills
// fall from the top of the field and the player slides a tray along
// the bottom to catch them. Catching a bill scores its denomination;
// three misses end the run. The simulation is fully deterministic for
// a given seed.
package catcher

import "math/rand"

// Tuning constants. The step rate is 10 ticks per second.
const (
	TrayWidth       = 7  // cells covered by the tray
	SpawnEveryTicks = 15 // one bill every 1.5 s
	MaxMisses       = 3
	DurationTicks   = 600 // 60 s run cap

	MinFallDelay = 2 // slowest bill: one row per 2 ticks
	MaxFallDelay = 4
)

// Input is a single player action fed into Step.
type Input int

const (
	InputNone Input = iota
	InputLeft
	InputRight
)

// denominations and their spawn weights in percent.
var (
	denominations = []int{1, 5, 10, 20, 50, 100}
	spawnWeights  = []int{35, 25, 20, 12, 6, 2}
)

// Bill is one falling bill on the field.
type Bill struct {
	X, Y  int
	Value int

	fallDelay int // ticks per row
	phase     int
}

// State is a renderable snapshot of the run.
type State struct {
	Score    int
	Caught   int
	Missed   int
	Tick     int
	TrayX    int
	Bills    []Bill
	GameOver bool
}

// Accuracy is caught over caught plus missed, in [0, 1].
func (s State) Accuracy() float64 {
	total := s.Caught + s.Missed
	if total == 0 {
		return 0
	}
	return float64(s.Caught) / float64(total)
}

// RemainingTicks is the time budget left in the run.
func (s State) RemainingTicks() int {
	if s.Tick >= DurationTicks {
		return 0
	}
	return DurationTicks - s.Tick
}

// Game is the Cash Catcher simulation.
type Game struct {
	width, height int
	rng           *rand.Rand

	trayX    int
	bills    []Bill
	score    int
	caught   int
	missed   int
	tick     int
	gameOver bool
}

// New creates an idle game; call Reset before stepping.
func New() *Game {
	return &Game{}
}

// Reset starts a fresh run on a field of the given size. The same
// seed always produces the same run for the same inputs.
func (g *Game) Reset(seed int64, width, height int) {
	if width < TrayWidth+2 {
		width = TrayWidth + 2
	}
	if height < 6 {
		height = 6
	}
	g.width = width
	g.height = height
	g.rng = rand.New(rand.NewSource(seed))
	g.trayX = (width - TrayWidth) / 2
	g.bills = g.bills[:0]
	g.score = 0
	g.caught = 0
	g.missed = 0
	g.tick = 0
	g.gameOver = false
}

// Step advances the simulation by one tick.
func (g *Game) Step(in Input) State {
	if g.gameOver {
		return g.State()
	}

	g.tick++

	switch in {
	case InputLeft:
		if g.trayX > 0 {
			g.trayX--
		}
	case InputRight:
		if g.trayX < g.width-TrayWidth {
			g.trayX++
		}
	}

	if g.tick%SpawnEveryTicks == 0 {
		g.spawnBill()
	}

	g.advanceBills()

	if g.missed >= MaxMisses || g.tick >= DurationTicks {
		g.gameOver = true
	}

	return g.State()
}

func (g *Game) spawnBill() {
	g.bills = append(g.bills, Bill{
		X:         g.rng.Intn(g.width),
		Y:         0,
		Value:     g.rollDenomination(),
		fallDelay: MinFallDelay + g.rng.Intn(MaxFallDelay-MinFallDelay+1),
	})
}

// rollDenomination draws a bill value from the weighted table.
func (g *Game) rollDenomination() int {
	roll := g.rng.Intn(100)
	acc := 0
	for i, w := range spawnWeights {
		acc += w
		if roll < acc {
			return denominations[i]
		}
	}
	return denominations[0]
}

// advanceBills moves every bill down at its own rate and resolves
// bills reaching the tray row: caught when over the tray, missed
// otherwise.
func (g *Game) advanceBills() {
	kept := g.bills[:0]
	for _, b := range g.bills {
		b.phase++
		if b.phase < b.fallDelay {
			kept = append(kept, b)
			continue
		}
		b.phase = 0
		b.Y++

		if b.Y < g.height-1 {
			kept = append(kept, b)
			continue
		}

		if b.X >= g.trayX && b.X < g.trayX+TrayWidth {
			g.score += b.Value
			g.caught++
		} else {
			g.missed++
		}
	}
	g.bills = kept
}

// State returns a snapshot of the run. The bill slice is copied so the
// caller can hold it across steps.
func (g *Game) State() State {
	bills := make([]Bill, len(g.bills))
	copy(bills, g.bills)
	return State{
		Score:    g.score,
		Caught:   g.caught,
		Missed:   g.missed,
		Tick:     g.tick,
		TrayX:    g.trayX,
		Bills:    bills,
		GameOver: g.gameOver,
	}
}

// Width and Height report the field size set at Reset.
func (g *Game) Width() int  { return g.width }
func (g *Game) Height() int { return g.height }
