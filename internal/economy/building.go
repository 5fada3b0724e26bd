package economy

// BuildingType classifies a colony building. Each non-administrative type
// produces exactly one resource kind.
type BuildingType string

const (
	BuildingAdministrative BuildingType = "administrative"
	BuildingEnergy         BuildingType = "energy"
	BuildingFood           BuildingType = "food"
	BuildingMaterials      BuildingType = "materials"
	BuildingResearch       BuildingType = "research"
)

// Produces returns the resource kind this building type feeds and whether
// it feeds a single resource at all. Administrative buildings return false:
// they boost every resource instead.
func (t BuildingType) Produces() (ResourceKind, bool) {
	switch t {
	case BuildingEnergy:
		return ResourceEnergy, true
	case BuildingFood:
		return ResourceFood, true
	case BuildingMaterials:
		return ResourceMaterials, true
	case BuildingResearch:
		return ResourceResearch, true
	default:
		return 0, false
	}
}

// Building is one colony structure. An unbuilt building sits at level 0 and
// produces nothing.
type Building struct {
	ID             string
	Name           string
	Level          int
	Type           BuildingType
	IsBuilt        bool
	ProductionRate int
}

// DefaultProductionRate is the production of a freshly constructed
// building; each upgrade adds UpgradeProductionBonus.
const (
	DefaultProductionRate  = 10
	UpgradeProductionBonus = 5
)

// DefaultBuildings returns the fixed five-building catalog. The command
// center is built from colony creation and is never constructed explicitly.
func DefaultBuildings() []Building {
	return []Building{
		{ID: "command_center", Name: "Command Center", Level: 1, Type: BuildingAdministrative, IsBuilt: true, ProductionRate: DefaultProductionRate},
		{ID: "solar_array", Name: "Solar Array", Level: 0, Type: BuildingEnergy, IsBuilt: false, ProductionRate: DefaultProductionRate},
		{ID: "hydroponic_farm", Name: "Hydroponic Farm", Level: 0, Type: BuildingFood, IsBuilt: false, ProductionRate: DefaultProductionRate},
		{ID: "mining_facility", Name: "Mining Facility", Level: 0, Type: BuildingMaterials, IsBuilt: false, ProductionRate: DefaultProductionRate},
		{ID: "research_lab", Name: "Research Lab", Level: 0, Type: BuildingResearch, IsBuilt: false, ProductionRate: DefaultProductionRate},
	}
}
