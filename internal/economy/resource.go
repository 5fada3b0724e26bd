// Package economy provides the value types of the colony economy:
// resources, buildings, the planet colony aggregate, and the player's
// persistent progress. All mutation is bounded; callers that need
// atomicity across several values coordinate through the engine.
package economy

// ResourceKind identifies one of the four colony resources. The order is
// fixed: it matches the colony's resource slice and is relied on by
// production and settlement.
type ResourceKind int

const (
	ResourceEnergy ResourceKind = iota
	ResourceFood
	ResourceMaterials
	ResourceResearch

	ResourceCount = 4
)

// String returns the display name of the resource kind.
func (k ResourceKind) String() string {
	switch k {
	case ResourceEnergy:
		return "Energy"
	case ResourceFood:
		return "Food"
	case ResourceMaterials:
		return "Materials"
	case ResourceResearch:
		return "Research"
	default:
		return "Unknown"
	}
}

// GameResource is a single stockpiled resource with a hard capacity.
type GameResource struct {
	Name        string
	Amount      int
	MaxCapacity int
	Icon        string
	Description string
}

// Add increases the amount, saturating at MaxCapacity.
func (r *GameResource) Add(value int) {
	r.Amount += value
	if r.Amount > r.MaxCapacity {
		r.Amount = r.MaxCapacity
	}
}

// Subtract removes value from the stockpile. It returns false and leaves
// the amount unchanged if the stockpile does not cover the request.
func (r *GameResource) Subtract(value int) bool {
	if r.Amount < value {
		return false
	}
	r.Amount -= value
	return true
}

// FillPercentage returns Amount/MaxCapacity in [0,1].
func (r *GameResource) FillPercentage() float64 {
	if r.MaxCapacity <= 0 {
		return 0
	}
	return float64(r.Amount) / float64(r.MaxCapacity)
}

// AtCapacity reports whether the stockpile is full.
func (r *GameResource) AtCapacity() bool {
	return r.Amount >= r.MaxCapacity
}

// DefaultResources returns the four colony resources in their fixed order
// with their starting amounts and capacities.
func DefaultResources() []GameResource {
	return []GameResource{
		{Name: "Energy", Amount: 100, MaxCapacity: 1000, Icon: "⚡", Description: "Powers all colony operations"},
		{Name: "Food", Amount: 50, MaxCapacity: 800, Icon: "🌱", Description: "Keeps colonists healthy and productive"},
		{Name: "Materials", Amount: 30, MaxCapacity: 600, Icon: "🧱", Description: "Used for construction and repairs"},
		{Name: "Research", Amount: 0, MaxCapacity: 400, Icon: "🧠", Description: "Unlocks new technologies"},
	}
}
