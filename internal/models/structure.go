package models

// StructureState tags the lifecycle state of a structure instance
type StructureState int

const (
	StructureUnbuilt StructureState = iota
	StructureUpgrading
	StructureOperational
	StructureDestroyed
)

// String renders the state for status output
func (s StructureState) String() string {
	switch s {
	case StructureUnbuilt:
		return "unbuilt"
	case StructureUpgrading:
		return "upgrading"
	case StructureOperational:
		return "operational"
	case StructureDestroyed:
		return "destroyed"
	}
	return "unknown"
}

// Structure is a per-planet instance of a structure kind: a pointer to the shared
// immutable definition plus mutable level, hit points and upgrade progress.
type Structure struct {
	Definition     *StructureDefinition
	Level          int // 0 = not yet built
	HP             int
	State          StructureState
	TurnsRemaining int // meaningful only while Upgrading
	TargetLevel    int // meaningful only while Upgrading
}

// NewStructure creates an unbuilt instance of the given kind
func NewStructure(def *StructureDefinition) *Structure {
	return &Structure{Definition: def, State: StructureUnbuilt}
}

// NewOperationalStructure creates an already-built instance at the given level
func NewOperationalStructure(def *StructureDefinition, level int) (*Structure, error) {
	if level < 1 || level > def.MaxLevel {
		return nil, &InvalidLevelError{StructureID: def.ID, Level: level, MaxLevel: def.MaxLevel}
	}
	return &Structure{
		Definition: def,
		Level:      level,
		HP:         def.HitpointsAt(level),
		State:      StructureOperational,
	}, nil
}

// IsMaxLevel reports whether the structure has reached its definition's maximum
func (s *Structure) IsMaxLevel() bool {
	return s.Level >= s.Definition.MaxLevel
}

// NextCost returns the cost of the next level
func (s *Structure) NextCost() (Resources, error) {
	return s.Definition.CostAt(s.Level + 1)
}

// NextUpgradeTime returns the number of turns the next level takes
func (s *Structure) NextUpgradeTime() (int, error) {
	return s.Definition.UpgradeTimeAt(s.Level + 1)
}

// StartBuild begins initial construction. Legal only from Unbuilt.
func (s *Structure) StartBuild() error {
	if s.State == StructureUpgrading {
		return &AlreadyUpgradingError{StructureID: s.Definition.ID}
	}
	if s.State != StructureUnbuilt {
		return &StructureExistsError{StructureID: s.Definition.ID}
	}
	return s.beginUpgrade()
}

// StartUpgrade begins an upgrade to the next level. Legal only from Operational
// below max level.
func (s *Structure) StartUpgrade() error {
	switch s.State {
	case StructureUpgrading:
		return &AlreadyUpgradingError{StructureID: s.Definition.ID}
	case StructureUnbuilt:
		return &StructureNotFoundError{StructureID: s.Definition.ID}
	case StructureDestroyed:
		return &StructureDestroyedError{StructureID: s.Definition.ID}
	}
	return s.beginUpgrade()
}

func (s *Structure) beginUpgrade() error {
	if s.IsMaxLevel() {
		return &MaxLevelError{StructureID: s.Definition.ID, MaxLevel: s.Definition.MaxLevel}
	}
	turns, err := s.NextUpgradeTime()
	if err != nil {
		return err
	}
	s.State = StructureUpgrading
	s.TargetLevel = s.Level + 1
	s.TurnsRemaining = turns
	return nil
}

// Tick advances an in-flight upgrade by one turn and reports completion.
// On completion the structure becomes Operational at the target level with
// full hit points.
func (s *Structure) Tick() bool {
	if s.State != StructureUpgrading {
		return false
	}
	if s.TurnsRemaining > 0 {
		s.TurnsRemaining--
	}
	if s.TurnsRemaining > 0 {
		return false
	}
	s.Level = s.TargetLevel
	s.HP = s.Definition.HitpointsAt(s.Level)
	s.State = StructureOperational
	s.TargetLevel = 0
	return true
}

// CancelUpgrade reverts an in-flight upgrade to the previous level. The first
// build reverts to Unbuilt. Hit points lost before the upgrade are not restored;
// the resource refund is the caller's responsibility.
func (s *Structure) CancelUpgrade() error {
	if s.State != StructureUpgrading {
		return &NotUpgradingError{StructureID: s.Definition.ID}
	}
	s.TargetLevel = 0
	s.TurnsRemaining = 0
	if s.Level == 0 {
		s.State = StructureUnbuilt
		return nil
	}
	s.State = StructureOperational
	return nil
}

// TakeDamage reduces hit points and reports whether the structure was destroyed
func (s *Structure) TakeDamage(amount int) bool {
	if s.Level == 0 {
		return false
	}
	s.HP = satSub(s.HP, amount)
	if s.HP == 0 {
		s.State = StructureDestroyed
		return true
	}
	return false
}

// Production returns the per-turn output, zero unless Operational
func (s *Structure) Production() Resources {
	if s.State != StructureOperational {
		return Resources{}
	}
	return s.Definition.ProductionAt(s.Level)
}

// Storage returns the storage contribution, zero unless Operational
func (s *Structure) Storage() Resources {
	if s.State != StructureOperational {
		return Resources{}
	}
	return s.Definition.StorageAt(s.Level)
}

// EnergyConsumption returns the energy draw, zero unless Operational
func (s *Structure) EnergyConsumption() int {
	if s.State != StructureOperational {
		return 0
	}
	return s.Definition.EnergyConsumptionAt(s.Level)
}

// ShieldCapacity returns the shield pool this structure supplies, zero unless
// Operational. Only the defense shield kind carries hit-point tables used this way.
func (s *Structure) ShieldCapacity() int {
	if s.State != StructureOperational {
		return 0
	}
	return s.Definition.HitpointsAt(s.Level)
}
