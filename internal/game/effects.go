package game

import (
	"fmt"

	"github.com/Cemonix/ColonyProtocol/internal/models"
)

// Effect is a validated player intent, applied to the game state by Apply.
// The set is closed: adding a variant must update the Apply switch.
type Effect interface {
	isEffect()
}

// BuildStructureEffect starts construction of a new structure on an owned planet
type BuildStructureEffect struct {
	PlanetID    models.PlanetID
	StructureID models.StructureID
}

// UpgradeStructureEffect starts an upgrade of an existing structure
type UpgradeStructureEffect struct {
	PlanetID    models.PlanetID
	StructureID models.StructureID
}

// BuildShipEffect queues ship production at an owned planet's shipyard
type BuildShipEffect struct {
	PlanetID models.PlanetID
	ShipType models.ShipTypeID
}

// CancelActionEffect cancels the pending action on an owned planet
type CancelActionEffect struct {
	PlanetID models.PlanetID
}

// CreateFleetEffect groups ships at one location into a new fleet
type CreateFleetEffect struct {
	Name    string
	ShipIDs []models.ShipID
}

// AddToFleetEffect adds ships to an existing fleet
type AddToFleetEffect struct {
	FleetID models.FleetID
	ShipIDs []models.ShipID
}

// RemoveFromFleetEffect removes ships from a fleet
type RemoveFromFleetEffect struct {
	FleetID models.FleetID
	ShipIDs []models.ShipID
}

// DisbandFleetEffect dissolves a fleet, leaving its ships in place
type DisbandFleetEffect struct {
	FleetID models.FleetID
}

// MoveFleetEffect queues a fleet transfer along a direct connection
type MoveFleetEffect struct {
	FleetID     models.FleetID
	Destination models.PlanetID
}

// BombardEffect starts bombarding the enemy planet the fleet orbits
type BombardEffect struct {
	FleetID models.FleetID
}

// CancelBombardEffect stops a fleet's bombardment
type CancelBombardEffect struct {
	FleetID models.FleetID
}

// ColonizeEffect claims the shield-depleted planet the fleet orbits
type ColonizeEffect struct {
	FleetID models.FleetID
}

// EndTurnEffect passes the turn, closing the round if this player was last
type EndTurnEffect struct{}

func (BuildStructureEffect) isEffect()   {}
func (UpgradeStructureEffect) isEffect() {}
func (BuildShipEffect) isEffect()        {}
func (CancelActionEffect) isEffect()     {}
func (CreateFleetEffect) isEffect()      {}
func (AddToFleetEffect) isEffect()       {}
func (RemoveFromFleetEffect) isEffect()  {}
func (DisbandFleetEffect) isEffect()     {}
func (MoveFleetEffect) isEffect()        {}
func (BombardEffect) isEffect()          {}
func (CancelBombardEffect) isEffect()    {}
func (ColonizeEffect) isEffect()         {}
func (EndTurnEffect) isEffect()          {}

// Apply validates and executes an effect for the acting player, returning the
// lines to show. Validation failures leave the state untouched.
func (g *GameState) Apply(effect Effect) ([]string, error) {
	if g.Over() {
		return nil, &GameOverError{Winner: g.Winner}
	}
	player, err := g.Player(g.CurrentPlayer())
	if err != nil {
		return nil, err
	}
	switch e := effect.(type) {
	case BuildStructureEffect:
		return g.applyBuildStructure(player, e)
	case UpgradeStructureEffect:
		return g.applyUpgradeStructure(player, e)
	case BuildShipEffect:
		return g.applyBuildShip(player, e)
	case CancelActionEffect:
		return g.applyCancelAction(player, e)
	case CreateFleetEffect:
		return g.applyCreateFleet(player, e)
	case AddToFleetEffect:
		return g.applyAddToFleet(player, e)
	case RemoveFromFleetEffect:
		return g.applyRemoveFromFleet(player, e)
	case DisbandFleetEffect:
		return g.applyDisbandFleet(player, e)
	case MoveFleetEffect:
		return g.applyMoveFleet(player, e)
	case BombardEffect:
		return g.applyBombard(player, e)
	case CancelBombardEffect:
		return g.applyCancelBombard(player, e)
	case ColonizeEffect:
		return g.applyColonize(player, e)
	case EndTurnEffect:
		return g.applyEndTurn()
	}
	return nil, fmt.Errorf("unknown effect %T", effect)
}

func (g *GameState) ownedPlanet(player *models.Player, id models.PlanetID) (*models.Planet, error) {
	planet, ok := g.Planets[id]
	if !ok {
		return nil, &PlanetNotFoundError{PlanetID: id}
	}
	if planet.Owner != player.ID {
		return nil, &NotYourPlanetError{PlanetID: id}
	}
	return planet, nil
}

func (g *GameState) applyBuildStructure(player *models.Player, e BuildStructureEffect) ([]string, error) {
	planet, err := g.ownedPlanet(player, e.PlanetID)
	if err != nil {
		return nil, err
	}
	if player.PendingActionOn(planet.ID) != nil {
		return nil, &models.PendingActionExistsError{PlanetID: planet.ID}
	}
	info, err := planet.BeginBuild(e.StructureID, g.Structures)
	if err != nil {
		return nil, err
	}
	action := models.NewBuildStructureAction(planet.ID, e.StructureID, info.Turns, info.Cost)
	if err := player.AddPendingAction(action); err != nil {
		return nil, err
	}
	return []string{fmt.Sprintf("Construction of %s started on %s (%d turns)",
		e.StructureID, planet.Name, info.Turns)}, nil
}

func (g *GameState) applyUpgradeStructure(player *models.Player, e UpgradeStructureEffect) ([]string, error) {
	planet, err := g.ownedPlanet(player, e.PlanetID)
	if err != nil {
		return nil, err
	}
	if player.PendingActionOn(planet.ID) != nil {
		return nil, &models.PendingActionExistsError{PlanetID: planet.ID}
	}
	info, err := planet.BeginUpgrade(e.StructureID, g.Structures)
	if err != nil {
		return nil, err
	}
	target := planet.Structures[e.StructureID].TargetLevel
	action := models.NewUpgradeStructureAction(planet.ID, e.StructureID, info.Turns, info.Cost)
	if err := player.AddPendingAction(action); err != nil {
		return nil, err
	}
	return []string{fmt.Sprintf("Upgrade of %s to level %d started on %s (%d turns)",
		e.StructureID, target, planet.Name, info.Turns)}, nil
}

func (g *GameState) applyBuildShip(player *models.Player, e BuildShipEffect) ([]string, error) {
	planet, err := g.ownedPlanet(player, e.PlanetID)
	if err != nil {
		return nil, err
	}
	if player.PendingActionOn(planet.ID) != nil {
		return nil, &models.PendingActionExistsError{PlanetID: planet.ID}
	}
	def, ok := g.Ships.Get(e.ShipType)
	if !ok {
		return nil, &models.DefinitionNotFoundError{Kind: "ship", ID: string(e.ShipType)}
	}
	if level := planet.StructureLevel(models.ShipyardStructure); level < def.RequiredShipyardLevel {
		return nil, &models.ShipyardLevelError{
			ShipType:      e.ShipType,
			RequiredLevel: def.RequiredShipyardLevel,
			ActualLevel:   level,
		}
	}
	if !planet.Available.HasEnough(def.Cost) {
		return nil, &models.NotEnoughResourcesError{
			Subject:   string(e.ShipType),
			Cost:      def.Cost,
			Available: planet.Available,
		}
	}
	planet.Available = planet.Available.Subtract(def.Cost)
	action := models.NewBuildShipAction(planet.ID, e.ShipType, def.BuildTime, def.Cost)
	if err := player.AddPendingAction(action); err != nil {
		return nil, err
	}
	return []string{fmt.Sprintf("Production of %s started at %s (%d turns)",
		def.Name, planet.Name, def.BuildTime)}, nil
}

func (g *GameState) applyCancelAction(player *models.Player, e CancelActionEffect) ([]string, error) {
	planet, err := g.ownedPlanet(player, e.PlanetID)
	if err != nil {
		return nil, err
	}
	action := player.PendingActionOn(planet.ID)
	if action == nil {
		return nil, &models.NoPendingActionError{PlanetID: planet.ID}
	}

	var refunded, wasted models.Resources
	switch action.Kind {
	case models.ActionBuildStructure, models.ActionUpgradeStructure:
		refunded, wasted, err = planet.CancelConstruction(action.StructureID, action.Reserved)
		if err != nil {
			return nil, err
		}
	case models.ActionBuildShip:
		free := planet.StorageCapacity.Subtract(planet.Available)
		refunded = action.Reserved.CappedAt(free)
		wasted = action.Reserved.Subtract(refunded)
		planet.Available = planet.Available.Add(refunded)
	case models.ActionMoveFleet:
		// nothing to revert, the fleet never left
	}
	player.RemovePendingAction(action)

	lines := []string{fmt.Sprintf("Cancelled %s", action.Describe())}
	if !refunded.IsZero() {
		lines = append(lines, fmt.Sprintf("Refunded %s", refunded))
	}
	if !wasted.IsZero() {
		lines = append(lines, fmt.Sprintf("Wasted (storage full): %s", wasted))
	}
	return lines, nil
}

func (g *GameState) applyCreateFleet(player *models.Player, e CreateFleetEffect) ([]string, error) {
	ships, location, err := g.shipsAtOneLocation(player, e.ShipIDs, "")
	if err != nil {
		return nil, err
	}
	fleet := player.NewFleet(e.Name, location)
	for _, ship := range ships {
		ship.Fleet = fleet.ID
		fleet.AddShip(ship.ID)
	}
	return []string{fmt.Sprintf("Fleet %s (%s) formed at %s with %d ships",
		fleet.ID, fleet.Name, location, len(fleet.Ships))}, nil
}

func (g *GameState) applyAddToFleet(player *models.Player, e AddToFleetEffect) ([]string, error) {
	fleet, ok := player.Fleets[e.FleetID]
	if !ok {
		return nil, &FleetNotFoundError{FleetID: e.FleetID}
	}
	if action := player.FleetAction(fleet.ID); action != nil {
		return nil, &FleetBusyError{FleetID: fleet.ID, Activity: fleetActivity(action)}
	}
	ships, _, err := g.shipsAtOneLocation(player, e.ShipIDs, fleet.Location)
	if err != nil {
		return nil, err
	}
	for _, ship := range ships {
		ship.Fleet = fleet.ID
		fleet.AddShip(ship.ID)
	}
	return []string{fmt.Sprintf("Added %d ships to fleet %s", len(ships), fleet.ID)}, nil
}

// shipsAtOneLocation resolves ship ids, requiring each to be unassigned and all
// at the same location (the given one, or any shared location when empty).
func (g *GameState) shipsAtOneLocation(player *models.Player, ids []models.ShipID,
	location models.PlanetID) ([]*models.Ship, models.PlanetID, error) {

	if len(ids) == 0 {
		return nil, "", fmt.Errorf("at least one ship required")
	}
	var ships []*models.Ship
	for _, id := range ids {
		ship, ok := player.Ships[id]
		if !ok {
			return nil, "", &ShipNotFoundError{ShipID: id}
		}
		if ship.InFleet() {
			return nil, "", &ShipInFleetError{ShipID: id, FleetID: ship.Fleet}
		}
		if location == "" {
			location = ship.Location
		}
		if ship.Location != location {
			return nil, "", &ShipElsewhereError{ShipID: id, Location: ship.Location, Expected: location}
		}
		ships = append(ships, ship)
	}
	return ships, location, nil
}

func (g *GameState) applyRemoveFromFleet(player *models.Player, e RemoveFromFleetEffect) ([]string, error) {
	fleet, ok := player.Fleets[e.FleetID]
	if !ok {
		return nil, &FleetNotFoundError{FleetID: e.FleetID}
	}
	if action := player.FleetAction(fleet.ID); action != nil {
		return nil, &FleetBusyError{FleetID: fleet.ID, Activity: fleetActivity(action)}
	}
	for _, id := range e.ShipIDs {
		if !fleet.Contains(id) {
			return nil, &ShipNotInFleetError{ShipID: id, FleetID: fleet.ID}
		}
	}
	for _, id := range e.ShipIDs {
		fleet.RemoveShip(id)
		if ship, ok := player.Ships[id]; ok {
			ship.Fleet = ""
		}
	}
	lines := []string{fmt.Sprintf("Removed %d ships from fleet %s", len(e.ShipIDs), fleet.ID)}
	if fleet.IsEmpty() {
		delete(player.Fleets, fleet.ID)
		lines = append(lines, fmt.Sprintf("Fleet %s is empty and has been disbanded", fleet.ID))
	}
	return lines, nil
}

func (g *GameState) applyDisbandFleet(player *models.Player, e DisbandFleetEffect) ([]string, error) {
	fleet, ok := player.Fleets[e.FleetID]
	if !ok {
		return nil, &FleetNotFoundError{FleetID: e.FleetID}
	}
	if action := player.FleetAction(fleet.ID); action != nil {
		return nil, &FleetBusyError{FleetID: fleet.ID, Activity: fleetActivity(action)}
	}
	player.DisbandFleet(fleet.ID)
	return []string{fmt.Sprintf("Fleet %s disbanded", fleet.ID)}, nil
}

func (g *GameState) applyMoveFleet(player *models.Player, e MoveFleetEffect) ([]string, error) {
	fleet, ok := player.Fleets[e.FleetID]
	if !ok {
		return nil, &FleetNotFoundError{FleetID: e.FleetID}
	}
	if fleet.IsEmpty() {
		return nil, &EmptyFleetError{FleetID: fleet.ID}
	}
	if action := player.FleetAction(fleet.ID); action != nil {
		return nil, &FleetBusyError{FleetID: fleet.ID, Activity: fleetActivity(action)}
	}
	if _, ok := g.Planets[e.Destination]; !ok {
		return nil, &PlanetNotFoundError{PlanetID: e.Destination}
	}
	if fleet.Location == e.Destination {
		return nil, &SamePlanetError{PlanetID: e.Destination}
	}
	from, err := g.Planet(fleet.Location)
	if err != nil {
		return nil, err
	}
	conn, ok := from.ConnectionTo(e.Destination)
	if !ok {
		return nil, &NoConnectionError{From: fleet.Location, To: e.Destination}
	}
	if player.PendingActionOn(from.ID) != nil {
		return nil, &models.PendingActionExistsError{PlanetID: from.ID}
	}
	action := models.NewMoveFleetAction(from.ID, fleet.ID, e.Destination, conn.Distance)
	if err := player.AddPendingAction(action); err != nil {
		return nil, err
	}
	return []string{fmt.Sprintf("Fleet %s departing %s for %s (%d turns)",
		fleet.ID, from.Name, e.Destination, conn.Distance)}, nil
}

func (g *GameState) applyBombard(player *models.Player, e BombardEffect) ([]string, error) {
	fleet, ok := player.Fleets[e.FleetID]
	if !ok {
		return nil, &FleetNotFoundError{FleetID: e.FleetID}
	}
	if fleet.IsEmpty() {
		return nil, &EmptyFleetError{FleetID: fleet.ID}
	}
	if action := player.FleetAction(fleet.ID); action != nil {
		return nil, &FleetBusyError{FleetID: fleet.ID, Activity: fleetActivity(action)}
	}
	power := g.fleetBombardment(player, fleet)
	if power == 0 {
		return nil, &NoBombardmentPowerError{FleetID: fleet.ID}
	}
	target, err := g.Planet(fleet.Location)
	if err != nil {
		return nil, err
	}
	if target.Owner == player.ID {
		return nil, &OwnPlanetBombardError{PlanetID: target.ID}
	}
	if target.IsNeutral() {
		return nil, &NeutralPlanetBombardError{PlanetID: target.ID}
	}
	action := models.NewBombardAction(target.ID, fleet.ID)
	if err := player.AddPendingAction(action); err != nil {
		return nil, err
	}
	return []string{fmt.Sprintf("Fleet %s is bombarding %s (%d power per round)",
		fleet.ID, target.Name, power)}, nil
}

func (g *GameState) applyCancelBombard(player *models.Player, e CancelBombardEffect) ([]string, error) {
	if _, ok := player.Fleets[e.FleetID]; !ok {
		return nil, &FleetNotFoundError{FleetID: e.FleetID}
	}
	action := player.FleetAction(e.FleetID)
	if action == nil || action.Kind != models.ActionBombardPlanet {
		return nil, &NotBombardingError{FleetID: e.FleetID}
	}
	player.RemovePendingAction(action)
	return []string{fmt.Sprintf("Fleet %s stopped bombarding %s", e.FleetID, action.PlanetID)}, nil
}

func (g *GameState) applyColonize(player *models.Player, e ColonizeEffect) ([]string, error) {
	fleet, ok := player.Fleets[e.FleetID]
	if !ok {
		return nil, &FleetNotFoundError{FleetID: e.FleetID}
	}
	if fleet.IsEmpty() {
		return nil, &EmptyFleetError{FleetID: fleet.ID}
	}
	if !g.fleetHasColonyShip(player, fleet) {
		return nil, &NoColonyShipError{FleetID: fleet.ID}
	}
	planet, err := g.Planet(fleet.Location)
	if err != nil {
		return nil, err
	}
	if planet.Owner == player.ID {
		return nil, &AlreadyOwnedError{PlanetID: planet.ID}
	}
	if planet.ShieldHP > 0 {
		return nil, &ShieldsUpError{PlanetID: planet.ID, ShieldHP: planet.ShieldHP}
	}
	previous := planet.Owner
	if err := planet.Colonize(g.Structures); err != nil {
		return nil, fmt.Errorf("colonization of %s failed: %w", planet.Name, err)
	}
	if previous != "" {
		if prevPlayer, ok := g.Players[previous]; ok {
			prevPlayer.RemovePlanet(planet.ID)
		}
	}
	planet.Owner = player.ID
	player.AddPlanet(planet.ID)
	return []string{fmt.Sprintf("%s colonized %s", player.Name, planet.Name)}, nil
}

func (g *GameState) applyEndTurn() ([]string, error) {
	next, report, err := g.EndTurn()
	if err != nil {
		return nil, err
	}
	var lines []string
	if report != nil {
		lines = append(lines, report.Lines...)
	}
	if g.Over() {
		lines = append(lines, fmt.Sprintf("%s has conquered the galaxy!", g.PlayerName(g.Winner)))
		return lines, nil
	}
	lines = append(lines, fmt.Sprintf("Turn passed to %s", g.PlayerName(next)))
	return lines, nil
}

func fleetActivity(a *models.PendingAction) string {
	if a.Kind == models.ActionBombardPlanet {
		return "bombarding"
	}
	return "moving"
}
