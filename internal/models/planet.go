package models

// Connection is a bidirectional weighted edge to another planet.
// Distance is the number of turns a fleet needs to traverse it.
type Connection struct {
	To       PlanetID
	Distance int
}

// Planet is a node of the galaxy map: ownership, structures, resource ledger
// and the planetary shield.
type Planet struct {
	ID          PlanetID
	Name        string
	Owner       PlayerID // empty = neutral
	Connections []Connection

	Structures      map[StructureID]*Structure
	Available       Resources
	StorageCapacity Resources
	ProductionRate  Resources

	ShieldHP         int
	ShieldRegenTimer int
}

// NewPlanet creates a neutral planet with no structures
func NewPlanet(id PlanetID, name string) *Planet {
	return &Planet{
		ID:         id,
		Name:       name,
		Structures: make(map[StructureID]*Structure),
	}
}

// IsNeutral reports whether no player owns the planet
func (p *Planet) IsNeutral() bool {
	return p.Owner == ""
}

// AddConnection links this planet to another (one direction of the edge)
func (p *Planet) AddConnection(to PlanetID, distance int) {
	p.Connections = append(p.Connections, Connection{To: to, Distance: distance})
}

// ConnectionTo returns the edge to the given planet, if one exists
func (p *Planet) ConnectionTo(to PlanetID) (Connection, bool) {
	for _, c := range p.Connections {
		if c.To == to {
			return c, true
		}
	}
	return Connection{}, false
}

// StructureLevel returns the operational level of a structure kind, zero if the
// planet has no operational instance of it
func (p *Planet) StructureLevel(id StructureID) int {
	s, ok := p.Structures[id]
	if !ok || s.State != StructureOperational {
		return 0
	}
	return s.Level
}

// ConstructionInfo captures the cost and duration of a validated build or upgrade
type ConstructionInfo struct {
	Cost  Resources
	Turns int
}

// ValidateBuild checks a new construction of the given kind and returns its cost
// and duration without mutating anything.
func (p *Planet) ValidateBuild(id StructureID, table *StructureTable) (ConstructionInfo, error) {
	def, ok := table.Get(id)
	if !ok {
		return ConstructionInfo{}, &DefinitionNotFoundError{Kind: "structure", ID: string(id)}
	}
	if s, exists := p.Structures[id]; exists && s.State != StructureUnbuilt {
		return ConstructionInfo{}, &StructureExistsError{PlanetID: p.ID, StructureID: id}
	}
	if err := p.checkPrerequisites(def, 1); err != nil {
		return ConstructionInfo{}, err
	}
	cost, err := def.CostAt(1)
	if err != nil {
		return ConstructionInfo{}, err
	}
	if !p.Available.HasEnough(cost) {
		return ConstructionInfo{}, &NotEnoughResourcesError{Subject: string(id), Cost: cost, Available: p.Available}
	}
	turns, err := def.UpgradeTimeAt(1)
	if err != nil {
		return ConstructionInfo{}, err
	}
	return ConstructionInfo{Cost: cost, Turns: turns}, nil
}

// ValidateUpgrade checks an upgrade of an existing structure and returns its cost
// and duration without mutating anything.
func (p *Planet) ValidateUpgrade(id StructureID, table *StructureTable) (ConstructionInfo, error) {
	if _, ok := table.Get(id); !ok {
		return ConstructionInfo{}, &DefinitionNotFoundError{Kind: "structure", ID: string(id)}
	}
	s, ok := p.Structures[id]
	if !ok || s.State == StructureUnbuilt {
		return ConstructionInfo{}, &StructureNotFoundError{PlanetID: p.ID, StructureID: id}
	}
	switch s.State {
	case StructureUpgrading:
		return ConstructionInfo{}, &AlreadyUpgradingError{StructureID: id}
	case StructureDestroyed:
		return ConstructionInfo{}, &StructureDestroyedError{PlanetID: p.ID, StructureID: id}
	}
	if s.IsMaxLevel() {
		return ConstructionInfo{}, &MaxLevelError{StructureID: id, MaxLevel: s.Definition.MaxLevel}
	}
	if err := p.checkPrerequisites(s.Definition, s.Level+1); err != nil {
		return ConstructionInfo{}, err
	}
	cost, err := s.NextCost()
	if err != nil {
		return ConstructionInfo{}, err
	}
	if !p.Available.HasEnough(cost) {
		return ConstructionInfo{}, &NotEnoughResourcesError{Subject: string(id), Cost: cost, Available: p.Available}
	}
	turns, err := s.NextUpgradeTime()
	if err != nil {
		return ConstructionInfo{}, err
	}
	return ConstructionInfo{Cost: cost, Turns: turns}, nil
}

func (p *Planet) checkPrerequisites(def *StructureDefinition, targetLevel int) error {
	for _, req := range def.PrerequisiteAt(targetLevel) {
		need := req.RequiredLevels[targetLevel-1]
		have := p.StructureLevel(req.StructureID)
		if have < need {
			return &PrerequisiteError{
				StructureID:   def.ID,
				RequiredID:    req.StructureID,
				RequiredLevel: need,
				ActualLevel:   have,
			}
		}
	}
	return nil
}

// BeginBuild validates and starts a new construction, charging its cost
func (p *Planet) BeginBuild(id StructureID, table *StructureTable) (ConstructionInfo, error) {
	info, err := p.ValidateBuild(id, table)
	if err != nil {
		return ConstructionInfo{}, err
	}
	s, ok := p.Structures[id]
	if !ok {
		def, _ := table.Get(id)
		s = NewStructure(def)
		p.Structures[id] = s
	}
	if err := s.StartBuild(); err != nil {
		return ConstructionInfo{}, err
	}
	p.Available = p.Available.Subtract(info.Cost)
	return info, nil
}

// BeginUpgrade validates and starts an upgrade, charging its cost
func (p *Planet) BeginUpgrade(id StructureID, table *StructureTable) (ConstructionInfo, error) {
	info, err := p.ValidateUpgrade(id, table)
	if err != nil {
		return ConstructionInfo{}, err
	}
	if err := p.Structures[id].StartUpgrade(); err != nil {
		return ConstructionInfo{}, err
	}
	p.Available = p.Available.Subtract(info.Cost)
	return info, nil
}

// TickConstruction advances an in-flight build or upgrade by one turn.
// On completion the aggregates are refreshed and a just-finished defense shield
// fills the planetary shield pool.
func (p *Planet) TickConstruction(id StructureID) (bool, error) {
	s, ok := p.Structures[id]
	if !ok {
		return false, &StructureNotFoundError{PlanetID: p.ID, StructureID: id}
	}
	if s.State != StructureUpgrading {
		return false, &NotUpgradingError{StructureID: id}
	}
	if !s.Tick() {
		return false, nil
	}
	p.RecalculateAggregates()
	if pool := s.ShieldCapacity(); s.Definition.ShieldRegenTurns > 0 && pool > 0 {
		p.ShieldHP = pool
		p.ShieldRegenTimer = 0
	}
	return true, nil
}

// CancelConstruction reverts an in-flight build or upgrade and refunds the
// reserved cost up to free storage. It returns the refunded amount and the
// excess that did not fit and was wasted.
func (p *Planet) CancelConstruction(id StructureID, reserved Resources) (refunded, wasted Resources, err error) {
	s, ok := p.Structures[id]
	if !ok {
		return Resources{}, Resources{}, &StructureNotFoundError{PlanetID: p.ID, StructureID: id}
	}
	if err := s.CancelUpgrade(); err != nil {
		return Resources{}, Resources{}, err
	}
	free := p.StorageCapacity.Subtract(p.Available)
	refunded = reserved.CappedAt(free)
	wasted = reserved.Subtract(refunded)
	p.Available = p.Available.Add(refunded)
	return refunded, wasted, nil
}

// RecalculateAggregates rebuilds production and storage from operational structures
func (p *Planet) RecalculateAggregates() {
	prod := Resources{}
	storage := Resources{}
	for _, s := range p.Structures {
		prod = prod.Add(s.Production())
		storage = storage.Add(s.Storage())
	}
	p.ProductionRate = prod
	p.StorageCapacity = storage
}

// EnergyDraw sums the energy consumption of all operational structures
func (p *Planet) EnergyDraw() int {
	total := 0
	for _, s := range p.Structures {
		total += s.EnergyConsumption()
	}
	return total
}

// ShieldGenerator returns the planet's defense shield structure, if operational
func (p *Planet) ShieldGenerator() *Structure {
	s, ok := p.Structures[ShieldStructure]
	if !ok || s.State != StructureOperational {
		return nil
	}
	return s
}

// MaxShieldHP returns the shield capacity supplied by the defense shield
func (p *Planet) MaxShieldHP() int {
	s := p.ShieldGenerator()
	if s == nil {
		return 0
	}
	return s.ShieldCapacity()
}

// TakeShieldDamage depletes the shield pool, resetting the regeneration timer,
// and returns the remaining shield HP.
func (p *Planet) TakeShieldDamage(amount int) int {
	p.ShieldHP = satSub(p.ShieldHP, amount)
	p.ShieldRegenTimer = 0
	return p.ShieldHP
}

// EndRoundProduction applies one round of production and shield upkeep:
// energy draw is subtracted, production added and clamped to storage, and an
// undisturbed damaged shield regenerates once its timer reaches the threshold.
func (p *Planet) EndRoundProduction() {
	p.RecalculateAggregates()
	p.Available = p.Available.Subtract(Resources{Energy: p.EnergyDraw()})
	p.Available = p.Available.Add(p.ProductionRate).CappedAt(p.StorageCapacity)

	gen := p.ShieldGenerator()
	if gen == nil {
		return
	}
	max := gen.ShieldCapacity()
	if p.ShieldHP >= max {
		p.ShieldHP = max
		return
	}
	p.ShieldRegenTimer++
	if p.ShieldRegenTimer >= gen.Definition.ShieldRegenTurns {
		p.ShieldHP = max
		p.ShieldRegenTimer = 0
	}
}

// Colonize installs the capital at level 1 and fills resources to capacity.
// Ownership bookkeeping is the caller's responsibility.
func (p *Planet) Colonize(table *StructureTable) error {
	def, ok := table.Get(CapitalStructure)
	if !ok {
		return &DefinitionNotFoundError{Kind: "structure", ID: string(CapitalStructure)}
	}
	capital, err := NewOperationalStructure(def, 1)
	if err != nil {
		return err
	}
	p.Structures[CapitalStructure] = capital
	p.RecalculateAggregates()
	p.Available = p.StorageCapacity
	p.ShieldHP = 0
	p.ShieldRegenTimer = 0
	return nil
}
