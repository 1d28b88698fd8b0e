package game

import (
	"fmt"
	"sort"

	"github.com/Cemonix/ColonyProtocol/internal/models"
)

// GameState is the single aggregate owning all mutable entities of a session.
// Every state transition is synchronous: either a player effect applied through
// Apply or the end-of-round batch in EndTurn. Nothing else mutates it.
type GameState struct {
	Players map[models.PlayerID]*models.Player
	Planets map[models.PlanetID]*models.Planet

	Structures *models.StructureTable
	Ships      *models.ShipTable

	Turn      int
	TurnOrder []models.PlayerID // [0] is the acting player
	Winner    models.PlayerID

	remainingThisRound int
}

// NewGameState assembles a session from its players, planets and definition tables.
// Turn order follows the given player slice.
func NewGameState(players []*models.Player, planets []*models.Planet,
	structures *models.StructureTable, ships *models.ShipTable) *GameState {

	g := &GameState{
		Players:    make(map[models.PlayerID]*models.Player, len(players)),
		Planets:    make(map[models.PlanetID]*models.Planet, len(planets)),
		Structures: structures,
		Ships:      ships,
		Turn:       1,
	}
	for _, p := range players {
		g.Players[p.ID] = p
		g.TurnOrder = append(g.TurnOrder, p.ID)
	}
	for _, p := range planets {
		g.Planets[p.ID] = p
	}
	g.remainingThisRound = len(players)
	return g
}

// CurrentPlayer returns the id of the acting player
func (g *GameState) CurrentPlayer() models.PlayerID {
	return g.TurnOrder[0]
}

// Over reports whether a winner has been declared
func (g *GameState) Over() bool {
	return g.Winner != ""
}

// Player resolves a player id, failing loudly on a corrupted reference
func (g *GameState) Player(id models.PlayerID) (*models.Player, error) {
	p, ok := g.Players[id]
	if !ok {
		return nil, invariant("player %s not found", id)
	}
	return p, nil
}

// Planet resolves a planet id, failing loudly on a corrupted reference
func (g *GameState) Planet(id models.PlanetID) (*models.Planet, error) {
	p, ok := g.Planets[id]
	if !ok {
		return nil, invariant("planet %s not found", id)
	}
	return p, nil
}

// PlayerName returns a display name for a player id, or "neutral" for none
func (g *GameState) PlayerName(id models.PlayerID) string {
	if id == "" {
		return "neutral"
	}
	if p, ok := g.Players[id]; ok {
		return p.Name
	}
	return string(id)
}

// SortedPlanets returns every planet sorted by id, for deterministic rendering
func (g *GameState) SortedPlanets() []*models.Planet {
	planets := make([]*models.Planet, 0, len(g.Planets))
	for _, p := range g.Planets {
		planets = append(planets, p)
	}
	sort.Slice(planets, func(i, j int) bool { return planets[i].ID < planets[j].ID })
	return planets
}

// FindPlanetByName resolves a planet display name or id, case-insensitively
func (g *GameState) FindPlanetByName(name string) (*models.Planet, bool) {
	id := models.PlanetIDForName(name)
	if p, ok := g.Planets[id]; ok {
		return p, true
	}
	if p, ok := g.Planets[models.PlanetID(name)]; ok {
		return p, true
	}
	return nil, false
}

func invariant(format string, args ...any) error {
	return fmt.Errorf("invariant violated: "+format, args...)
}
