package commands

import (
	"errors"
	"strings"
	"testing"

	"github.com/Cemonix/ColonyProtocol/internal/config"
	"github.com/Cemonix/ColonyProtocol/internal/game"
	"github.com/Cemonix/ColonyProtocol/internal/models"
	"github.com/Cemonix/ColonyProtocol/internal/starmap"
)

// testSession builds a two-player game on the default tables: voss holds
// Nova Prime, reyne holds Void Reach.
func testSession(t *testing.T) (*game.GameState, *starmap.Map) {
	t.Helper()
	cfg, err := config.Defaults()
	if err != nil {
		t.Fatalf("Defaults: %v", err)
	}

	voss := models.NewPlayer("voss", "Admiral Voss")
	reyne := models.NewPlayer("reyne", "Commander Reyne")

	nova := models.NewPlanet("nova_prime", "Nova Prime")
	void := models.NewPlanet("void_reach", "Void Reach")
	nova.AddConnection("void_reach", 2)
	void.AddConnection("nova_prime", 2)

	for _, home := range []struct {
		planet *models.Planet
		player *models.Player
	}{{nova, voss}, {void, reyne}} {
		if err := home.planet.Colonize(cfg.Structures); err != nil {
			t.Fatalf("Colonize: %v", err)
		}
		home.planet.Owner = home.player.ID
		home.player.AddPlanet(home.planet.ID)
	}

	g := game.NewGameState([]*models.Player{voss, reyne},
		[]*models.Planet{nova, void}, cfg.Structures, cfg.Ships)
	galaxy := &starmap.Map{
		Planets: map[models.PlanetID]*models.Planet{nova.ID: nova, void.ID: void},
		Positions: map[models.PlanetID]starmap.Position{
			nova.ID: {X: 10, Y: 10},
			void.ID: {X: 40, Y: 20},
		},
	}
	return g, galaxy
}

func execute(t *testing.T, g *game.GameState, galaxy *starmap.Map, line string) []string {
	t.Helper()
	cmd, err := Parse(line)
	if err != nil {
		t.Fatalf("Parse(%q): %v", line, err)
	}
	lines, err := Execute(cmd, g, galaxy)
	if err != nil {
		t.Fatalf("Execute(%q): %v", line, err)
	}
	return lines
}

func TestExecuteBuildByPlanetName(t *testing.T) {
	g, galaxy := testSession(t)

	// Display names resolve case-insensitively with spaces
	lines := execute(t, g, galaxy, "build Nova_Prime metal_mine")
	if len(lines) == 0 || !strings.Contains(lines[0], "metal_mine") {
		t.Fatalf("lines = %v", lines)
	}
}

func TestExecuteUnknownPlanet(t *testing.T) {
	g, galaxy := testSession(t)
	cmd, err := Parse("build atlantis metal_mine")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	var unknown *UnknownPlanetError
	if _, err := Execute(cmd, g, galaxy); !errors.As(err, &unknown) {
		t.Fatalf("err = %v, want UnknownPlanetError", err)
	}
}

func TestExecuteStatusViews(t *testing.T) {
	g, galaxy := testSession(t)

	t.Run("turn", func(t *testing.T) {
		lines := execute(t, g, galaxy, "status")
		if len(lines) == 0 || !strings.Contains(lines[0], "Turn 1") {
			t.Errorf("lines = %v", lines)
		}
		if !strings.Contains(lines[0], "Admiral Voss") {
			t.Errorf("acting player missing: %v", lines)
		}
	})
	t.Run("planets", func(t *testing.T) {
		joined := strings.Join(execute(t, g, galaxy, "status planets"), "\n")
		for _, want := range []string{"nova_prime", "void_reach", "Admiral Voss"} {
			if !strings.Contains(joined, want) {
				t.Errorf("planet table missing %q:\n%s", want, joined)
			}
		}
	})
	t.Run("planet detail", func(t *testing.T) {
		joined := strings.Join(execute(t, g, galaxy, "status planet nova_prime"), "\n")
		for _, want := range []string{"planetary_capital", "void_reach"} {
			if !strings.Contains(joined, want) {
				t.Errorf("detail missing %q:\n%s", want, joined)
			}
		}
	})
	t.Run("map", func(t *testing.T) {
		joined := strings.Join(execute(t, g, galaxy, "map"), "\n")
		if !strings.Contains(joined, "◉") {
			t.Errorf("map missing planet icons:\n%s", joined)
		}
	})
	t.Run("help", func(t *testing.T) {
		if lines := execute(t, g, galaxy, "help"); len(lines) == 0 {
			t.Error("help output empty")
		}
	})
}

func TestExecuteFleetLifecycle(t *testing.T) {
	g, galaxy := testSession(t)
	voss := g.Players["voss"]
	voss.AddShip("interceptor", "nova_prime")
	voss.AddShip("interceptor", "nova_prime")

	execute(t, g, galaxy, "fleet create strike interceptor_1 interceptor_2")
	if len(voss.Fleets) != 1 {
		t.Fatalf("fleets = %v", voss.Fleets)
	}

	joined := strings.Join(execute(t, g, galaxy, "fleets"), "\n")
	if !strings.Contains(joined, "fleet_1") || !strings.Contains(joined, "strike") {
		t.Errorf("fleet table:\n%s", joined)
	}

	execute(t, g, galaxy, "fleet move fleet_1 void_reach")
	joined = strings.Join(execute(t, g, galaxy, "fleets"), "\n")
	if !strings.Contains(joined, "moving") {
		t.Errorf("fleet activity missing:\n%s", joined)
	}
}

func TestExecuteEndTurn(t *testing.T) {
	g, galaxy := testSession(t)
	lines := execute(t, g, galaxy, "end")
	if len(lines) == 0 || !strings.Contains(lines[len(lines)-1], "Commander Reyne") {
		t.Errorf("lines = %v", lines)
	}
	if g.CurrentPlayer() != "reyne" {
		t.Errorf("current = %s, want reyne", g.CurrentPlayer())
	}
}
