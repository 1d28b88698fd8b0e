package game

import (
	"testing"

	"github.com/Cemonix/ColonyProtocol/internal/models"
)

func testTables(t *testing.T) (*models.StructureTable, *models.ShipTable) {
	t.Helper()
	structures, err := models.NewStructureTable([]*models.StructureDefinition{
		{
			ID:          models.CapitalStructure,
			Name:        "Planetary Capital",
			MaxLevel:    2,
			Costs:       []models.Resources{models.NewResources(100, 50, 0), models.NewResources(200, 100, 0)},
			UpgradeTime: []int{2, 3},
			Hitpoints:   []int{1000, 2000},
			Production:  []models.Resources{models.NewResources(10, 5, 5), models.NewResources(20, 10, 10)},
			StorageCapacity: []models.Resources{
				models.NewResources(1000, 500, 200), models.NewResources(2000, 1000, 400),
			},
		},
		{
			ID:          "metal_mine",
			Name:        "Metal Mine",
			MaxLevel:    2,
			Costs:       []models.Resources{models.NewResources(60, 15, 0), models.NewResources(120, 30, 0)},
			UpgradeTime: []int{1, 2},
			Hitpoints:   []int{400, 600},
			Production:  []models.Resources{models.NewResources(30, 0, 0), models.NewResources(60, 0, 0)},
		},
		{
			ID:          models.ShipyardStructure,
			Name:        "Orbital Shipyard",
			MaxLevel:    2,
			Costs:       []models.Resources{models.NewResources(80, 20, 0), models.NewResources(160, 40, 0)},
			UpgradeTime: []int{1, 2},
			Hitpoints:   []int{600, 900},
		},
		{
			ID:               models.ShieldStructure,
			Name:             "Defense Shield",
			MaxLevel:         1,
			Costs:            []models.Resources{models.NewResources(50, 0, 0)},
			UpgradeTime:      []int{1},
			Hitpoints:        []int{40},
			ShieldRegenTurns: 3,
		},
	})
	if err != nil {
		t.Fatalf("NewStructureTable: %v", err)
	}
	ships, err := models.NewShipTable([]*models.ShipDefinition{
		{ID: "striker", Name: "Striker", Attack: 10, Shield: 5,
			Cost: models.NewResources(10, 5, 0), BuildTime: 2, RequiredShipyardLevel: 1},
		{ID: "guardian", Name: "Guardian", Attack: 5, Shield: 15,
			Cost: models.NewResources(20, 10, 0), BuildTime: 2, RequiredShipyardLevel: 1},
		{ID: "hunter", Name: "Hunter", Attack: 10, Shield: 5,
			Cost: models.NewResources(15, 10, 0), BuildTime: 2,
			Counters: []models.ShipTypeID{"guardian"}, RequiredShipyardLevel: 1},
		{ID: "hammer", Name: "Hammer", Attack: 0, Shield: 5, Bombardment: 25,
			Cost: models.NewResources(40, 20, 0), BuildTime: 3, RequiredShipyardLevel: 2},
		{ID: "settler", Name: "Settler", Attack: 0, Shield: 10,
			Cost: models.NewResources(50, 25, 10), BuildTime: 2,
			RequiredShipyardLevel: 1, ColonyShip: true},
	})
	if err != nil {
		t.Fatalf("NewShipTable: %v", err)
	}
	return structures, ships
}

// testGame builds a two-player session: voss holds alpha, reyne holds beta,
// gamma is neutral. Edges: alpha-beta (1 turn), beta-gamma (1 turn).
func testGame(t *testing.T) *GameState {
	t.Helper()
	structures, ships := testTables(t)

	voss := models.NewPlayer("voss", "Admiral Voss")
	reyne := models.NewPlayer("reyne", "Commander Reyne")

	alpha := models.NewPlanet("alpha", "Alpha")
	beta := models.NewPlanet("beta", "Beta")
	gamma := models.NewPlanet("gamma", "Gamma")
	alpha.AddConnection("beta", 1)
	beta.AddConnection("alpha", 1)
	beta.AddConnection("gamma", 1)
	gamma.AddConnection("beta", 1)

	for _, home := range []struct {
		planet *models.Planet
		player *models.Player
	}{{alpha, voss}, {beta, reyne}} {
		if err := home.planet.Colonize(structures); err != nil {
			t.Fatalf("Colonize %s: %v", home.planet.ID, err)
		}
		home.planet.Owner = home.player.ID
		home.player.AddPlanet(home.planet.ID)
	}

	return NewGameState([]*models.Player{voss, reyne},
		[]*models.Planet{alpha, beta, gamma}, structures, ships)
}

// closeRound passes the turn until the round batch runs
func closeRound(t *testing.T, g *GameState) *RoundReport {
	t.Helper()
	for {
		_, report, err := g.EndTurn()
		if err != nil {
			t.Fatalf("EndTurn: %v", err)
		}
		if report != nil {
			return report
		}
	}
}

// giveFleet creates ships of the given types at a location and groups them
func giveFleet(player *models.Player, location models.PlanetID, types ...models.ShipTypeID) *models.Fleet {
	fleet := player.NewFleet("task force", location)
	for _, st := range types {
		ship := player.AddShip(st, location)
		ship.Fleet = fleet.ID
		fleet.AddShip(ship.ID)
	}
	return fleet
}

// buildOperational installs an operational structure directly, bypassing cost
func buildOperational(t *testing.T, g *GameState, planet *models.Planet, id models.StructureID, level int) {
	t.Helper()
	def, ok := g.Structures.Get(id)
	if !ok {
		t.Fatalf("no definition for %s", id)
	}
	s, err := models.NewOperationalStructure(def, level)
	if err != nil {
		t.Fatalf("NewOperationalStructure: %v", err)
	}
	planet.Structures[id] = s
	planet.RecalculateAggregates()
}

func mustPlanet(t *testing.T, g *GameState, id models.PlanetID) *models.Planet {
	t.Helper()
	p, err := g.Planet(id)
	if err != nil {
		t.Fatalf("Planet(%s): %v", id, err)
	}
	return p
}

func mustPlayer(t *testing.T, g *GameState, id models.PlayerID) *models.Player {
	t.Helper()
	p, err := g.Player(id)
	if err != nil {
		t.Fatalf("Player(%s): %v", id, err)
	}
	return p
}
