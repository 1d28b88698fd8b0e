package models

import "fmt"

// ActionKind tags the variant of a pending action
type ActionKind int

const (
	ActionBuildStructure ActionKind = iota
	ActionUpgradeStructure
	ActionBuildShip
	ActionMoveFleet
	ActionBombardPlanet
)

// String renders the kind for status output
func (k ActionKind) String() string {
	switch k {
	case ActionBuildStructure:
		return "build"
	case ActionUpgradeStructure:
		return "upgrade"
	case ActionBuildShip:
		return "build_ship"
	case ActionMoveFleet:
		return "move"
	case ActionBombardPlanet:
		return "bombard"
	}
	return "unknown"
}

// PendingAction is a queued timed intent. Every action is anchored to a planet:
// the construction site, the fleet's departure planet for movement, or the
// target for bombardment. Bombardment carries no cooldown at all; it ends when
// the target's shields reach zero, never by countdown.
type PendingAction struct {
	Kind     ActionKind
	PlanetID PlanetID

	StructureID StructureID // build / upgrade
	ShipType    ShipTypeID  // build_ship
	FleetID     FleetID     // move / bombard
	Destination PlanetID    // move

	Cooldown int       // turns remaining; unused for bombardment
	Reserved Resources // charged at submission, refunded on cancel
}

// NewBuildStructureAction queues initial construction on a planet
func NewBuildStructureAction(planet PlanetID, structure StructureID, turns int, cost Resources) *PendingAction {
	return &PendingAction{
		Kind:        ActionBuildStructure,
		PlanetID:    planet,
		StructureID: structure,
		Cooldown:    turns,
		Reserved:    cost,
	}
}

// NewUpgradeStructureAction queues a structure upgrade on a planet
func NewUpgradeStructureAction(planet PlanetID, structure StructureID, turns int, cost Resources) *PendingAction {
	return &PendingAction{
		Kind:        ActionUpgradeStructure,
		PlanetID:    planet,
		StructureID: structure,
		Cooldown:    turns,
		Reserved:    cost,
	}
}

// NewBuildShipAction queues ship production at a planet's shipyard
func NewBuildShipAction(planet PlanetID, shipType ShipTypeID, turns int, cost Resources) *PendingAction {
	return &PendingAction{
		Kind:     ActionBuildShip,
		PlanetID: planet,
		ShipType: shipType,
		Cooldown: turns,
		Reserved: cost,
	}
}

// NewMoveFleetAction queues a fleet transfer from its current planet
func NewMoveFleetAction(from PlanetID, fleet FleetID, destination PlanetID, turns int) *PendingAction {
	return &PendingAction{
		Kind:        ActionMoveFleet,
		PlanetID:    from,
		FleetID:     fleet,
		Destination: destination,
		Cooldown:    turns,
	}
}

// NewBombardAction starts an open-ended bombardment of the target planet
func NewBombardAction(target PlanetID, fleet FleetID) *PendingAction {
	return &PendingAction{
		Kind:     ActionBombardPlanet,
		PlanetID: target,
		FleetID:  fleet,
	}
}

// Tick decrements the cooldown (saturating) and reports whether the action
// completed. Bombardment never completes this way.
func (a *PendingAction) Tick() bool {
	if a.Kind == ActionBombardPlanet {
		return false
	}
	if a.Cooldown > 0 {
		a.Cooldown--
	}
	return a.Cooldown == 0
}

// Describe renders the action for status output
func (a *PendingAction) Describe() string {
	switch a.Kind {
	case ActionBuildStructure:
		return fmt.Sprintf("building %s on %s (%d turns left)", a.StructureID, a.PlanetID, a.Cooldown)
	case ActionUpgradeStructure:
		return fmt.Sprintf("upgrading %s on %s (%d turns left)", a.StructureID, a.PlanetID, a.Cooldown)
	case ActionBuildShip:
		return fmt.Sprintf("building %s at %s (%d turns left)", a.ShipType, a.PlanetID, a.Cooldown)
	case ActionMoveFleet:
		return fmt.Sprintf("%s moving %s -> %s (%d turns left)", a.FleetID, a.PlanetID, a.Destination, a.Cooldown)
	case ActionBombardPlanet:
		return fmt.Sprintf("%s bombarding %s", a.FleetID, a.PlanetID)
	}
	return "unknown action"
}
