package economy

// PlanetColony is the player's colony: population, happiness, the four
// resources in fixed order, and the five-building catalog.
type PlanetColony struct {
	Name       string
	Population int
	Happiness  float64
	Resources  []GameResource
	Buildings  []Building
}

// NewPlanetColony returns a default-constructed colony. An empty name
// falls back to the canonical "New Terra".
func NewPlanetColony(name string) *PlanetColony {
	if name == "" {
		name = "New Terra"
	}
	return &PlanetColony{
		Name:       name,
		Population: 25,
		Happiness:  0.5,
		Resources:  DefaultResources(),
		Buildings:  DefaultBuildings(),
	}
}

// Resource returns the stockpile for the given kind.
func (c *PlanetColony) Resource(kind ResourceKind) *GameResource {
	return &c.Resources[kind]
}

// Building returns the building with the given id, or nil.
func (c *PlanetColony) Building(id string) *Building {
	for i := range c.Buildings {
		if c.Buildings[i].ID == id {
			return &c.Buildings[i]
		}
	}
	return nil
}

// AddToAllResources adds value to every stockpile, each saturating at its
// own capacity.
func (c *PlanetColony) AddToAllResources(value int) {
	for i := range c.Resources {
		c.Resources[i].Add(value)
	}
}

// GrowPopulation increases the population. Negative growth is ignored;
// nothing in the economy shrinks a colony.
func (c *PlanetColony) GrowPopulation(amount int) {
	if amount < 0 {
		return
	}
	c.Population += amount
}

// UpdateHappiness recomputes happiness as the mean resource fill
// percentage, clamped to [0,1]. Call after every resource or population
// mutation.
func (c *PlanetColony) UpdateHappiness() {
	if len(c.Resources) == 0 {
		c.Happiness = 0
		return
	}
	var sum float64
	for i := range c.Resources {
		sum += c.Resources[i].FillPercentage()
	}
	mean := sum / float64(len(c.Resources))
	if mean < 0 {
		mean = 0
	} else if mean > 1 {
		mean = 1
	}
	c.Happiness = mean
}

// Clone returns a deep copy for handing across the engine boundary.
func (c *PlanetColony) Clone() PlanetColony {
	out := *c
	out.Resources = append([]GameResource(nil), c.Resources...)
	out.Buildings = append([]Building(nil), c.Buildings...)
	return out
}
