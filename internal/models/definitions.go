package models

import "fmt"

// ShipDefinition is the immutable per-type ship data shared by every instance
type ShipDefinition struct {
	ID                    ShipTypeID   `yaml:"id"`
	Name                  string       `yaml:"name"`
	Description           string       `yaml:"description"`
	Attack                int          `yaml:"attack"`
	Shield                int          `yaml:"shield"`
	Bombardment           int          `yaml:"bombardment"`
	Cost                  Resources    `yaml:"cost"`
	BuildTime             int          `yaml:"build_time"`
	Counters              []ShipTypeID `yaml:"counters"`
	RequiredShipyardLevel int          `yaml:"required_shipyard_level"`
	ColonyShip            bool         `yaml:"colony_ship"`
}

// Counts reports whether this type gains the counter bonus against the given type
func (d *ShipDefinition) Counts(target ShipTypeID) bool {
	for _, c := range d.Counters {
		if c == target {
			return true
		}
	}
	return false
}

// StructurePrerequisite requires another structure at a minimum level per target level.
// RequiredLevels is indexed by target level minus one; zero means no requirement.
type StructurePrerequisite struct {
	StructureID    StructureID `yaml:"structure_id"`
	RequiredLevels []int       `yaml:"required_levels"`
}

// StructureDefinition is the immutable per-kind level table shared by every instance.
// All per-level slices are indexed by level minus one; optional slices may be empty.
type StructureDefinition struct {
	ID                StructureID             `yaml:"id"`
	Name              string                  `yaml:"name"`
	Description       string                  `yaml:"description"`
	MaxLevel          int                     `yaml:"max_level"`
	Costs             []Resources             `yaml:"costs"`
	UpgradeTime       []int                   `yaml:"upgrade_time"`
	EnergyConsumption []int                   `yaml:"energy_consumption"`
	Hitpoints         []int                   `yaml:"hitpoints"`
	Production        []Resources             `yaml:"production"`
	StorageCapacity   []Resources             `yaml:"storage_capacity"`
	Prerequisites     []StructurePrerequisite `yaml:"prerequisites"`
	ShieldRegenTurns  int                     `yaml:"shield_regen_turns"`
}

// CostAt returns the cost of reaching the given level
func (d *StructureDefinition) CostAt(level int) (Resources, error) {
	if level < 1 || level > d.MaxLevel {
		return Resources{}, &InvalidLevelError{StructureID: d.ID, Level: level, MaxLevel: d.MaxLevel}
	}
	return d.Costs[level-1], nil
}

// UpgradeTimeAt returns the number of turns to reach the given level
func (d *StructureDefinition) UpgradeTimeAt(level int) (int, error) {
	if level < 1 || level > d.MaxLevel {
		return 0, &InvalidLevelError{StructureID: d.ID, Level: level, MaxLevel: d.MaxLevel}
	}
	return d.UpgradeTime[level-1], nil
}

// HitpointsAt returns the hit points at the given level (zero if the table omits them)
func (d *StructureDefinition) HitpointsAt(level int) int {
	return levelValue(d.Hitpoints, level)
}

// EnergyConsumptionAt returns the energy draw at the given level
func (d *StructureDefinition) EnergyConsumptionAt(level int) int {
	return levelValue(d.EnergyConsumption, level)
}

// ProductionAt returns the per-turn production at the given level
func (d *StructureDefinition) ProductionAt(level int) Resources {
	if level < 1 || level > len(d.Production) {
		return Resources{}
	}
	return d.Production[level-1]
}

// StorageAt returns the storage contribution at the given level
func (d *StructureDefinition) StorageAt(level int) Resources {
	if level < 1 || level > len(d.StorageCapacity) {
		return Resources{}
	}
	return d.StorageCapacity[level-1]
}

// PrerequisiteAt returns the prerequisite levels that gate building the given level
func (d *StructureDefinition) PrerequisiteAt(level int) []StructurePrerequisite {
	var reqs []StructurePrerequisite
	for _, p := range d.Prerequisites {
		if level >= 1 && level <= len(p.RequiredLevels) && p.RequiredLevels[level-1] > 0 {
			reqs = append(reqs, p)
		}
	}
	return reqs
}

func levelValue(table []int, level int) int {
	if level < 1 || level > len(table) {
		return 0
	}
	return table[level-1]
}

// StructureTable is an immutable, validated lookup of structure definitions by kind id
type StructureTable struct {
	defs  map[StructureID]*StructureDefinition
	order []StructureID
}

// NewStructureTable validates the definitions and builds the lookup table
func NewStructureTable(defs []*StructureDefinition) (*StructureTable, error) {
	t := &StructureTable{defs: make(map[StructureID]*StructureDefinition, len(defs))}
	for _, d := range defs {
		if d.ID == "" {
			return nil, fmt.Errorf("structure definition with empty id")
		}
		if _, dup := t.defs[d.ID]; dup {
			return nil, fmt.Errorf("duplicate structure definition %q", d.ID)
		}
		if d.MaxLevel < 1 {
			return nil, fmt.Errorf("structure %q: max_level must be at least 1", d.ID)
		}
		if len(d.Costs) != d.MaxLevel {
			return nil, fmt.Errorf("structure %q: %d cost entries for %d levels", d.ID, len(d.Costs), d.MaxLevel)
		}
		if len(d.UpgradeTime) != d.MaxLevel {
			return nil, fmt.Errorf("structure %q: %d upgrade_time entries for %d levels", d.ID, len(d.UpgradeTime), d.MaxLevel)
		}
		optional := []struct {
			name string
			n    int
		}{
			{"energy_consumption", len(d.EnergyConsumption)},
			{"hitpoints", len(d.Hitpoints)},
			{"production", len(d.Production)},
			{"storage_capacity", len(d.StorageCapacity)},
		}
		for _, o := range optional {
			if o.n != 0 && o.n != d.MaxLevel {
				return nil, fmt.Errorf("structure %q: %d %s entries for %d levels", d.ID, o.n, o.name, d.MaxLevel)
			}
		}
		t.defs[d.ID] = d
		t.order = append(t.order, d.ID)
	}
	for _, d := range defs {
		for _, p := range d.Prerequisites {
			if _, ok := t.defs[p.StructureID]; !ok {
				return nil, fmt.Errorf("structure %q: unknown prerequisite %q", d.ID, p.StructureID)
			}
			if len(p.RequiredLevels) != d.MaxLevel {
				return nil, fmt.Errorf("structure %q: %d required_levels for prerequisite %q, want %d",
					d.ID, len(p.RequiredLevels), p.StructureID, d.MaxLevel)
			}
		}
	}
	return t, nil
}

// Get returns the definition for a structure kind
func (t *StructureTable) Get(id StructureID) (*StructureDefinition, bool) {
	d, ok := t.defs[id]
	return d, ok
}

// IDs returns every structure kind in definition order
func (t *StructureTable) IDs() []StructureID {
	return t.order
}

// ShipTable is an immutable, validated lookup of ship definitions by type id
type ShipTable struct {
	defs  map[ShipTypeID]*ShipDefinition
	order []ShipTypeID
}

// NewShipTable validates the definitions and builds the lookup table
func NewShipTable(defs []*ShipDefinition) (*ShipTable, error) {
	t := &ShipTable{defs: make(map[ShipTypeID]*ShipDefinition, len(defs))}
	for _, d := range defs {
		if d.ID == "" {
			return nil, fmt.Errorf("ship definition with empty id")
		}
		if _, dup := t.defs[d.ID]; dup {
			return nil, fmt.Errorf("duplicate ship definition %q", d.ID)
		}
		if d.BuildTime < 1 {
			return nil, fmt.Errorf("ship %q: build_time must be at least 1", d.ID)
		}
		t.defs[d.ID] = d
		t.order = append(t.order, d.ID)
	}
	for _, d := range defs {
		for _, c := range d.Counters {
			if _, ok := t.defs[c]; !ok {
				return nil, fmt.Errorf("ship %q: unknown counter type %q", d.ID, c)
			}
		}
	}
	return t, nil
}

// Get returns the definition for a ship type
func (t *ShipTable) Get(id ShipTypeID) (*ShipDefinition, bool) {
	d, ok := t.defs[id]
	return d, ok
}

// IDs returns every ship type in definition order
func (t *ShipTable) IDs() []ShipTypeID {
	return t.order
}
