package game

import (
	"fmt"
	"slices"

	"github.com/Cemonix/ColonyProtocol/internal/models"
)

// RoundReport collects the summary lines of one closed round
type RoundReport struct {
	Turn  int
	Lines []string
}

// Add appends a formatted summary line
func (r *RoundReport) Add(format string, args ...any) {
	r.Lines = append(r.Lines, fmt.Sprintf(format, args...))
}

// EndTurn rotates the acting player to the back of the queue. When every player
// has acted the round closes and the batch runs in fixed order: bombardment,
// action completion, production, win check. Returns the next acting player and,
// on round closure, the report.
func (g *GameState) EndTurn() (models.PlayerID, *RoundReport, error) {
	if g.Over() {
		return "", nil, &GameOverError{Winner: g.Winner}
	}
	g.TurnOrder = append(g.TurnOrder[1:], g.TurnOrder[0])
	g.remainingThisRound--
	if g.remainingThisRound > 0 {
		return g.CurrentPlayer(), nil, nil
	}

	report := g.processRound()
	if !g.Over() {
		g.remainingThisRound = len(g.TurnOrder)
		g.Turn++
	}
	return g.CurrentPlayer(), report, nil
}

// processRound runs the four batch phases over a stable snapshot of the order
// the round began with.
func (g *GameState) processRound() *RoundReport {
	report := &RoundReport{Turn: g.Turn}
	order := slices.Clone(g.TurnOrder)

	for _, pid := range order {
		g.resolveBombardments(pid, report)
	}
	for _, pid := range order {
		g.completeActions(pid, report)
	}
	for _, pid := range order {
		g.producePlanets(pid, report)
	}
	g.checkWinCondition(report)
	return report
}

func (g *GameState) resolveBombardments(pid models.PlayerID, report *RoundReport) {
	player, err := g.Player(pid)
	if err != nil {
		report.Add("%v", err)
		return
	}
	for _, action := range slices.Clone(player.PendingActions) {
		if action.Kind != models.ActionBombardPlanet {
			continue
		}
		fleet, ok := player.Fleets[action.FleetID]
		if !ok || fleet.IsEmpty() {
			player.RemovePendingAction(action)
			report.Add("%s: bombardment of %s aborted, fleet %s was lost",
				player.Name, action.PlanetID, action.FleetID)
			continue
		}
		planet, err := g.Planet(action.PlanetID)
		if err != nil {
			player.RemovePendingAction(action)
			report.Add("%v", err)
			continue
		}
		power := g.fleetBombardment(player, fleet)
		remaining := planet.TakeShieldDamage(power)
		report.Add("%s: fleet %s bombards %s for %d damage (shields: %d HP)",
			player.Name, fleet.ID, planet.Name, power, remaining)
		if remaining == 0 {
			player.RemovePendingAction(action)
			report.Add("Shields on %s destroyed, the planet is open to colonization", planet.Name)
		}
	}
}

func (g *GameState) completeActions(pid models.PlayerID, report *RoundReport) {
	player, err := g.Player(pid)
	if err != nil {
		report.Add("%v", err)
		return
	}
	for _, action := range slices.Clone(player.PendingActions) {
		switch action.Kind {
		case models.ActionBombardPlanet:
			// resolved in the bombardment phase, never by cooldown
		case models.ActionBuildStructure, models.ActionUpgradeStructure:
			g.tickConstruction(player, action, report)
		case models.ActionBuildShip:
			if action.Tick() {
				player.RemovePendingAction(action)
				g.completeShip(player, action, report)
			}
		case models.ActionMoveFleet:
			if action.Tick() {
				player.RemovePendingAction(action)
				g.resolveArrival(player, action, report)
			}
		}
	}
}

func (g *GameState) tickConstruction(player *models.Player, action *models.PendingAction, report *RoundReport) {
	action.Tick()
	planet, err := g.Planet(action.PlanetID)
	if err != nil {
		player.RemovePendingAction(action)
		report.Add("%v", err)
		return
	}
	done, err := planet.TickConstruction(action.StructureID)
	if err != nil {
		player.RemovePendingAction(action)
		report.Add("%s: construction of %s on %s failed: %v",
			player.Name, action.StructureID, planet.Name, err)
		return
	}
	if !done {
		return
	}
	player.RemovePendingAction(action)
	level := planet.Structures[action.StructureID].Level
	if action.Kind == models.ActionBuildStructure {
		report.Add("%s: %s on %s completed (level %d)",
			player.Name, action.StructureID, planet.Name, level)
	} else {
		report.Add("%s: %s on %s upgraded to level %d",
			player.Name, action.StructureID, planet.Name, level)
	}
}

func (g *GameState) completeShip(player *models.Player, action *models.PendingAction, report *RoundReport) {
	def, ok := g.Ships.Get(action.ShipType)
	if !ok {
		report.Add("%s: ship construction at %s failed: %v", player.Name, action.PlanetID,
			&models.DefinitionNotFoundError{Kind: "ship", ID: string(action.ShipType)})
		return
	}
	ship := player.AddShip(action.ShipType, action.PlanetID)
	report.Add("%s: %s %s completed at %s", player.Name, def.Name, ship.ID, action.PlanetID)
}

func (g *GameState) producePlanets(pid models.PlayerID, report *RoundReport) {
	player, err := g.Player(pid)
	if err != nil {
		report.Add("%v", err)
		return
	}
	for _, planetID := range player.Planets {
		planet, err := g.Planet(planetID)
		if err != nil {
			report.Add("%v", err)
			continue
		}
		planet.EndRoundProduction()
	}
}

// checkWinCondition declares a winner once a single player owns every planet
func (g *GameState) checkWinCondition(report *RoundReport) {
	for _, pid := range g.TurnOrder {
		player, ok := g.Players[pid]
		if !ok {
			continue
		}
		if len(player.Planets) == len(g.Planets) && len(g.Planets) > 0 {
			g.Winner = pid
			report.Add("%s owns every planet in the galaxy", player.Name)
			return
		}
	}
}
