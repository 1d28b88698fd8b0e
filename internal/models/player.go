package models

import (
	"fmt"
	"sort"
)

// Player owns planets, ships, fleets and an ordered list of pending actions.
type Player struct {
	ID      PlayerID
	Name    string
	Planets []PlanetID

	Ships  map[ShipID]*Ship
	Fleets map[FleetID]*Fleet

	PendingActions []*PendingAction

	shipCounters map[ShipTypeID]int
	fleetCounter int
}

// NewPlayer creates a player with no holdings
func NewPlayer(id PlayerID, name string) *Player {
	return &Player{
		ID:           id,
		Name:         name,
		Ships:        make(map[ShipID]*Ship),
		Fleets:       make(map[FleetID]*Fleet),
		shipCounters: make(map[ShipTypeID]int),
	}
}

// OwnsPlanet reports whether the planet belongs to this player
func (p *Player) OwnsPlanet(id PlanetID) bool {
	for _, pl := range p.Planets {
		if pl == id {
			return true
		}
	}
	return false
}

// AddPlanet records ownership of a planet
func (p *Player) AddPlanet(id PlanetID) {
	if !p.OwnsPlanet(id) {
		p.Planets = append(p.Planets, id)
	}
}

// RemovePlanet drops ownership of a planet
func (p *Player) RemovePlanet(id PlanetID) {
	for i, pl := range p.Planets {
		if pl == id {
			p.Planets = append(p.Planets[:i], p.Planets[i+1:]...)
			return
		}
	}
}

// AddPendingAction queues an action, enforcing one action per planet
func (p *Player) AddPendingAction(a *PendingAction) error {
	if p.PendingActionOn(a.PlanetID) != nil {
		return &PendingActionExistsError{PlanetID: a.PlanetID}
	}
	p.PendingActions = append(p.PendingActions, a)
	return nil
}

// PendingActionOn returns the action anchored to the given planet, if any
func (p *Player) PendingActionOn(planet PlanetID) *PendingAction {
	for _, a := range p.PendingActions {
		if a.PlanetID == planet {
			return a
		}
	}
	return nil
}

// RemovePendingAction drops the given action from the queue
func (p *Player) RemovePendingAction(a *PendingAction) {
	for i, q := range p.PendingActions {
		if q == a {
			p.PendingActions = append(p.PendingActions[:i], p.PendingActions[i+1:]...)
			return
		}
	}
}

// FleetAction returns the pending move or bombardment involving the fleet, if any
func (p *Player) FleetAction(fleet FleetID) *PendingAction {
	for _, a := range p.PendingActions {
		if a.FleetID == fleet && (a.Kind == ActionMoveFleet || a.Kind == ActionBombardPlanet) {
			return a
		}
	}
	return nil
}

// AddShip builds a ship of the given type at a planet, generating the next
// sequential instance id for that type.
func (p *Player) AddShip(shipType ShipTypeID, location PlanetID) *Ship {
	p.shipCounters[shipType]++
	ship := &Ship{
		ID:       ShipID(fmt.Sprintf("%s_%d", shipType, p.shipCounters[shipType])),
		Type:     shipType,
		Location: location,
	}
	p.Ships[ship.ID] = ship
	return ship
}

// RemoveShip destroys a ship, cleaning up its fleet membership and disbanding
// the fleet if it ends up empty.
func (p *Player) RemoveShip(id ShipID) {
	ship, ok := p.Ships[id]
	if !ok {
		return
	}
	if ship.Fleet != "" {
		if fleet, ok := p.Fleets[ship.Fleet]; ok {
			fleet.RemoveShip(id)
			if fleet.IsEmpty() {
				delete(p.Fleets, fleet.ID)
			}
		}
	}
	delete(p.Ships, id)
}

// NewFleet creates an empty fleet at a planet with the next sequential fleet id
func (p *Player) NewFleet(name string, location PlanetID) *Fleet {
	p.fleetCounter++
	fleet := &Fleet{
		ID:       FleetID(fmt.Sprintf("fleet_%d", p.fleetCounter)),
		Name:     name,
		Location: location,
	}
	p.Fleets[fleet.ID] = fleet
	return fleet
}

// DisbandFleet dissolves a fleet, leaving its ships in place unassigned
func (p *Player) DisbandFleet(id FleetID) {
	fleet, ok := p.Fleets[id]
	if !ok {
		return
	}
	for _, sid := range fleet.Ships {
		if ship, ok := p.Ships[sid]; ok {
			ship.Fleet = ""
		}
	}
	delete(p.Fleets, id)
}

// ShipsAt returns this player's ships located at the given planet, sorted by id
func (p *Player) ShipsAt(planet PlanetID) []*Ship {
	var ships []*Ship
	for _, s := range p.Ships {
		if s.Location == planet {
			ships = append(ships, s)
		}
	}
	sort.Slice(ships, func(i, j int) bool { return ships[i].ID < ships[j].ID })
	return ships
}

// AllShips returns every ship sorted by id
func (p *Player) AllShips() []*Ship {
	ships := make([]*Ship, 0, len(p.Ships))
	for _, s := range p.Ships {
		ships = append(ships, s)
	}
	sort.Slice(ships, func(i, j int) bool { return ships[i].ID < ships[j].ID })
	return ships
}

// AllFleets returns every fleet sorted by id
func (p *Player) AllFleets() []*Fleet {
	fleets := make([]*Fleet, 0, len(p.Fleets))
	for _, f := range p.Fleets {
		fleets = append(fleets, f)
	}
	sort.Slice(fleets, func(i, j int) bool { return fleets[i].ID < fleets[j].ID })
	return fleets
}
