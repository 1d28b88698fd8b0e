package models

// Ship is a single built vessel. Stats live on the shared definition; the
// instance tracks identity, location and fleet membership.
type Ship struct {
	ID       ShipID
	Type     ShipTypeID
	Location PlanetID
	Fleet    FleetID // empty = unassigned
}

// InFleet reports whether the ship is assigned to a fleet
func (s *Ship) InFleet() bool {
	return s.Fleet != ""
}

// Fleet is an ordered group of ships that moves and fights as a unit.
// A fleet with zero ships is disbanded and removed by its owner.
type Fleet struct {
	ID       FleetID
	Name     string
	Ships    []ShipID
	Location PlanetID
}

// AddShip appends a ship to the fleet roster
func (f *Fleet) AddShip(id ShipID) {
	f.Ships = append(f.Ships, id)
}

// RemoveShip drops a ship from the roster, preserving order
func (f *Fleet) RemoveShip(id ShipID) {
	for i, s := range f.Ships {
		if s == id {
			f.Ships = append(f.Ships[:i], f.Ships[i+1:]...)
			return
		}
	}
}

// Contains reports whether the ship is part of the fleet
func (f *Fleet) Contains(id ShipID) bool {
	for _, s := range f.Ships {
		if s == id {
			return true
		}
	}
	return false
}

// IsEmpty reports whether the fleet has no ships left
func (f *Fleet) IsEmpty() bool {
	return len(f.Ships) == 0
}
