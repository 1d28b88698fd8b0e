package commands

import (
	"fmt"

	"github.com/Cemonix/ColonyProtocol/internal/game"
	"github.com/Cemonix/ColonyProtocol/internal/models"
	"github.com/Cemonix/ColonyProtocol/internal/starmap"
)

// Execute runs a parsed command against the game state and returns the lines
// to display. Mutating commands become effects applied through the engine;
// read-only commands render views of the state.
func Execute(cmd Command, g *game.GameState, galaxy *starmap.Map) ([]string, error) {
	switch c := cmd.(type) {
	case BuildCommand:
		planet, err := resolvePlanet(g, c.Planet)
		if err != nil {
			return nil, err
		}
		return g.Apply(game.BuildStructureEffect{
			PlanetID:    planet.ID,
			StructureID: models.StructureID(c.Structure),
		})
	case UpgradeCommand:
		planet, err := resolvePlanet(g, c.Planet)
		if err != nil {
			return nil, err
		}
		return g.Apply(game.UpgradeStructureEffect{
			PlanetID:    planet.ID,
			StructureID: models.StructureID(c.Structure),
		})
	case BuildShipCommand:
		planet, err := resolvePlanet(g, c.Planet)
		if err != nil {
			return nil, err
		}
		return g.Apply(game.BuildShipEffect{
			PlanetID: planet.ID,
			ShipType: models.ShipTypeID(c.ShipType),
		})
	case CancelCommand:
		planet, err := resolvePlanet(g, c.Planet)
		if err != nil {
			return nil, err
		}
		return g.Apply(game.CancelActionEffect{PlanetID: planet.ID})
	case StatusCommand:
		return renderStatus(c, g)
	case MapCommand:
		return renderMap(g, galaxy)
	case ShipsCommand:
		return renderShips(g)
	case FleetsCommand:
		return renderFleets(g)
	case FleetCreateCommand:
		return g.Apply(game.CreateFleetEffect{Name: c.Name, ShipIDs: shipIDs(c.ShipIDs)})
	case FleetAddCommand:
		return g.Apply(game.AddToFleetEffect{FleetID: models.FleetID(c.FleetID), ShipIDs: shipIDs(c.ShipIDs)})
	case FleetRemoveCommand:
		return g.Apply(game.RemoveFromFleetEffect{FleetID: models.FleetID(c.FleetID), ShipIDs: shipIDs(c.ShipIDs)})
	case FleetDisbandCommand:
		return g.Apply(game.DisbandFleetEffect{FleetID: models.FleetID(c.FleetID)})
	case FleetMoveCommand:
		planet, err := resolvePlanet(g, c.Destination)
		if err != nil {
			return nil, err
		}
		return g.Apply(game.MoveFleetEffect{FleetID: models.FleetID(c.FleetID), Destination: planet.ID})
	case FleetBombardCommand:
		return g.Apply(game.BombardEffect{FleetID: models.FleetID(c.FleetID)})
	case FleetCancelBombardCommand:
		return g.Apply(game.CancelBombardEffect{FleetID: models.FleetID(c.FleetID)})
	case FleetColonizeCommand:
		return g.Apply(game.ColonizeEffect{FleetID: models.FleetID(c.FleetID)})
	case HelpCommand:
		return helpLines(), nil
	case EndTurnCommand:
		return g.Apply(game.EndTurnEffect{})
	}
	return nil, fmt.Errorf("unknown command %T", cmd)
}

func resolvePlanet(g *game.GameState, name string) (*models.Planet, error) {
	planet, ok := g.FindPlanetByName(name)
	if !ok {
		return nil, &UnknownPlanetError{Name: name}
	}
	return planet, nil
}

func shipIDs(ids []string) []models.ShipID {
	out := make([]models.ShipID, len(ids))
	for i, id := range ids {
		out[i] = models.ShipID(id)
	}
	return out
}
