package game

import (
	"slices"

	"github.com/Cemonix/ColonyProtocol/internal/models"
)

// counterBonus multiplies a ship's contribution when its type counters any
// opposing ship type present in the engagement.
const counterBonus = 1.5

// fleetShips resolves the fleet's roster to ship instances, skipping dangling ids
func fleetShips(player *models.Player, fleet *models.Fleet) []*models.Ship {
	ships := make([]*models.Ship, 0, len(fleet.Ships))
	for _, id := range fleet.Ships {
		if ship, ok := player.Ships[id]; ok {
			ships = append(ships, ship)
		}
	}
	return ships
}

// fleetBombardment sums the bombardment stat over the fleet's ships
func (g *GameState) fleetBombardment(player *models.Player, fleet *models.Fleet) int {
	total := 0
	for _, ship := range fleetShips(player, fleet) {
		if def, ok := g.Ships.Get(ship.Type); ok {
			total += def.Bombardment
		}
	}
	return total
}

// fleetHasColonyShip reports whether any ship in the fleet is a colony type
func (g *GameState) fleetHasColonyShip(player *models.Player, fleet *models.Fleet) bool {
	for _, ship := range fleetShips(player, fleet) {
		if def, ok := g.Ships.Get(ship.Type); ok && def.ColonyShip {
			return true
		}
	}
	return false
}

// combatStrength sums one side's contribution. Attackers contribute their
// attack stat, defenders their shield stat; either is multiplied by the
// counter bonus when the ship's type counters any opposing type.
func (g *GameState) combatStrength(side, opponents []*models.Ship, useShield bool) float64 {
	present := make(map[models.ShipTypeID]bool, len(opponents))
	for _, ship := range opponents {
		present[ship.Type] = true
	}
	total := 0.0
	for _, ship := range side {
		def, ok := g.Ships.Get(ship.Type)
		if !ok {
			continue
		}
		base := float64(def.Attack)
		if useShield {
			base = float64(def.Shield)
		}
		for _, counter := range def.Counters {
			if present[counter] {
				base *= counterBonus
				break
			}
		}
		total += base
	}
	return total
}

// ResolveCombat computes both strengths and the winner for the given rosters.
// A strictly greater attacker strength wins; a tie favors the defender.
func (g *GameState) ResolveCombat(attackers, defenders []*models.Ship) (attackerWins bool, attackStrength, defenseStrength float64) {
	attackStrength = g.combatStrength(attackers, defenders, false)
	defenseStrength = g.combatStrength(defenders, attackers, true)
	return attackStrength > defenseStrength, attackStrength, defenseStrength
}

// resolveArrival handles a fleet reaching its destination: relocation into
// friendly or undefended space, or combat against every defending ship at the
// planet. Arrival never transfers ownership; only colonization does.
func (g *GameState) resolveArrival(player *models.Player, action *models.PendingAction, report *RoundReport) {
	fleet, ok := player.Fleets[action.FleetID]
	if !ok || fleet.IsEmpty() {
		report.Add("%s: fleet %s was lost before reaching %s",
			player.Name, action.FleetID, action.Destination)
		return
	}
	dest, err := g.Planet(action.Destination)
	if err != nil {
		report.Add("%v", err)
		return
	}

	if dest.Owner == player.ID || dest.IsNeutral() {
		g.relocateFleet(player, fleet, dest.ID)
		report.Add("%s: fleet %s arrived at %s", player.Name, fleet.ID, dest.Name)
		return
	}

	defender, err := g.Player(dest.Owner)
	if err != nil {
		report.Add("%v", err)
		return
	}
	defenders := defender.ShipsAt(dest.ID)
	if len(defenders) == 0 {
		g.relocateFleet(player, fleet, dest.ID)
		report.Add("%s: fleet %s entered orbit of %s unopposed", player.Name, fleet.ID, dest.Name)
		return
	}

	attackers := fleetShips(player, fleet)
	attackerWins, attackStrength, defenseStrength := g.ResolveCombat(attackers, defenders)
	if attackerWins {
		for _, ship := range defenders {
			defender.RemoveShip(ship.ID)
		}
		g.relocateFleet(player, fleet, dest.ID)
		report.Add("Battle at %s: %s's fleet %s wins (%.1f vs %.1f), %d defending ships destroyed",
			dest.Name, player.Name, fleet.ID, attackStrength, defenseStrength, len(defenders))
		return
	}
	for _, id := range slices.Clone(fleet.Ships) {
		player.RemoveShip(id)
	}
	report.Add("Battle at %s: %s holds (%.1f vs %.1f), %s's fleet %s destroyed",
		dest.Name, defender.Name, attackStrength, defenseStrength, player.Name, fleet.ID)
}

// relocateFleet moves the fleet and every member ship to the planet
func (g *GameState) relocateFleet(player *models.Player, fleet *models.Fleet, to models.PlanetID) {
	fleet.Location = to
	for _, id := range fleet.Ships {
		if ship, ok := player.Ships[id]; ok {
			ship.Location = to
		}
	}
}
