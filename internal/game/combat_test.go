package game

import (
	"strings"
	"testing"

	"github.com/Cemonix/ColonyProtocol/internal/models"
)

func TestResolveCombatStrengths(t *testing.T) {
	g := testGame(t)
	voss := mustPlayer(t, g, "voss")
	reyne := mustPlayer(t, g, "reyne")

	tests := []struct {
		name      string
		attackers []models.ShipTypeID
		defenders []models.ShipTypeID
		wantWin   bool
		wantAtk   float64
		wantDef   float64
	}{
		{"single attacker loses to tank", []models.ShipTypeID{"striker"}, []models.ShipTypeID{"guardian"}, false, 10, 15},
		{"counter bonus makes it a tie, defender holds", []models.ShipTypeID{"hunter"}, []models.ShipTypeID{"guardian"}, false, 15, 15},
		{"two strikers overwhelm", []models.ShipTypeID{"striker", "striker"}, []models.ShipTypeID{"guardian"}, true, 20, 15},
		{"empty defense falls", []models.ShipTypeID{"striker"}, nil, true, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var attackers, defenders []*models.Ship
			for _, st := range tt.attackers {
				attackers = append(attackers, voss.AddShip(st, "alpha"))
			}
			for _, st := range tt.defenders {
				defenders = append(defenders, reyne.AddShip(st, "beta"))
			}
			win, atk, def := g.ResolveCombat(attackers, defenders)
			if win != tt.wantWin || atk != tt.wantAtk || def != tt.wantDef {
				t.Errorf("ResolveCombat = %v, %.1f, %.1f; want %v, %.1f, %.1f",
					win, atk, def, tt.wantWin, tt.wantAtk, tt.wantDef)
			}
		})
	}
}

func TestArrivalDefenderHoldsDestroysFleet(t *testing.T) {
	g := testGame(t)
	voss := mustPlayer(t, g, "voss")
	reyne := mustPlayer(t, g, "reyne")
	fleet := giveFleet(voss, "alpha", "striker")
	defender := reyne.AddShip("guardian", "beta")

	if _, err := g.Apply(MoveFleetEffect{FleetID: fleet.ID, Destination: "beta"}); err != nil {
		t.Fatalf("move: %v", err)
	}
	report := closeRound(t, g)

	if _, ok := voss.Fleets[fleet.ID]; ok {
		t.Error("losing fleet should be destroyed")
	}
	if len(voss.Ships) != 0 {
		t.Errorf("attacker ships survived: %d", len(voss.Ships))
	}
	if _, ok := reyne.Ships[defender.ID]; !ok {
		t.Error("defender should survive")
	}
	if !reportContains(report, "holds") {
		t.Errorf("report missing defender hold line: %v", report.Lines)
	}
}

func TestArrivalAttackerWinsRelocatesWithoutConquest(t *testing.T) {
	g := testGame(t)
	voss := mustPlayer(t, g, "voss")
	reyne := mustPlayer(t, g, "reyne")
	fleet := giveFleet(voss, "alpha", "striker", "striker")
	reyne.AddShip("guardian", "beta")

	if _, err := g.Apply(MoveFleetEffect{FleetID: fleet.ID, Destination: "beta"}); err != nil {
		t.Fatalf("move: %v", err)
	}
	report := closeRound(t, g)

	if fleet.Location != "beta" {
		t.Errorf("fleet location = %s, want beta", fleet.Location)
	}
	for _, ship := range voss.AllShips() {
		if ship.Location != "beta" {
			t.Errorf("ship %s at %s, want beta", ship.ID, ship.Location)
		}
	}
	if len(reyne.Ships) != 0 {
		t.Errorf("defenders survived: %d", len(reyne.Ships))
	}
	if mustPlanet(t, g, "beta").Owner != "reyne" {
		t.Error("combat must not transfer planet ownership")
	}
	if !reportContains(report, "wins") {
		t.Errorf("report missing battle line: %v", report.Lines)
	}
}

func TestArrivalUnopposedAndNeutral(t *testing.T) {
	g := testGame(t)
	voss := mustPlayer(t, g, "voss")

	t.Run("enemy planet without defenders", func(t *testing.T) {
		fleet := giveFleet(voss, "alpha", "striker")
		if _, err := g.Apply(MoveFleetEffect{FleetID: fleet.ID, Destination: "beta"}); err != nil {
			t.Fatalf("move: %v", err)
		}
		report := closeRound(t, g)
		if fleet.Location != "beta" {
			t.Errorf("fleet location = %s, want beta", fleet.Location)
		}
		if !reportContains(report, "unopposed") {
			t.Errorf("report = %v", report.Lines)
		}
	})
	t.Run("neutral planet", func(t *testing.T) {
		fleet := giveFleet(voss, "beta", "striker")
		if _, err := g.Apply(MoveFleetEffect{FleetID: fleet.ID, Destination: "gamma"}); err != nil {
			t.Fatalf("move: %v", err)
		}
		closeRound(t, g)
		if fleet.Location != "gamma" {
			t.Errorf("fleet location = %s, want gamma", fleet.Location)
		}
		if !mustPlanet(t, g, "gamma").IsNeutral() {
			t.Error("arrival must not claim a neutral planet")
		}
	})
}

func TestBombardmentDepletesShieldsOverRounds(t *testing.T) {
	g := testGame(t)
	voss := mustPlayer(t, g, "voss")
	beta := mustPlanet(t, g, "beta")
	buildOperational(t, g, beta, models.ShieldStructure, 1)
	beta.ShieldHP = 40

	fleet := giveFleet(voss, "beta", "hammer")
	if _, err := g.Apply(BombardEffect{FleetID: fleet.ID}); err != nil {
		t.Fatalf("bombard: %v", err)
	}

	closeRound(t, g)
	if beta.ShieldHP != 15 {
		t.Fatalf("shields after round 1 = %d, want 15", beta.ShieldHP)
	}
	if voss.FleetAction(fleet.ID) == nil {
		t.Fatal("bombardment must persist while shields hold")
	}

	report := closeRound(t, g)
	if beta.ShieldHP != 0 {
		t.Fatalf("shields after round 2 = %d, want 0", beta.ShieldHP)
	}
	if voss.FleetAction(fleet.ID) != nil {
		t.Error("bombardment should end when shields reach zero")
	}
	if !reportContains(report, "open to colonization") {
		t.Errorf("report = %v", report.Lines)
	}
}

func TestBombardmentAbortsWhenFleetLost(t *testing.T) {
	g := testGame(t)
	voss := mustPlayer(t, g, "voss")
	beta := mustPlanet(t, g, "beta")
	buildOperational(t, g, beta, models.ShieldStructure, 1)
	beta.ShieldHP = 40

	fleet := giveFleet(voss, "beta", "hammer")
	if _, err := g.Apply(BombardEffect{FleetID: fleet.ID}); err != nil {
		t.Fatalf("bombard: %v", err)
	}
	for _, ship := range voss.AllShips() {
		voss.RemoveShip(ship.ID)
	}

	report := closeRound(t, g)
	if beta.ShieldHP != 40 {
		t.Errorf("shields = %d, want untouched 40", beta.ShieldHP)
	}
	if len(voss.PendingActions) != 0 {
		t.Error("orphaned bombardment should be removed")
	}
	if !reportContains(report, "aborted") {
		t.Errorf("report = %v", report.Lines)
	}
}

func TestShieldRegeneratesAfterBombardmentStops(t *testing.T) {
	g := testGame(t)
	voss := mustPlayer(t, g, "voss")
	beta := mustPlanet(t, g, "beta")
	buildOperational(t, g, beta, models.ShieldStructure, 1)
	beta.ShieldHP = 40

	fleet := giveFleet(voss, "beta", "hammer")
	if _, err := g.Apply(BombardEffect{FleetID: fleet.ID}); err != nil {
		t.Fatalf("bombard: %v", err)
	}
	closeRound(t, g)
	if _, err := g.Apply(CancelBombardEffect{FleetID: fleet.ID}); err != nil {
		t.Fatalf("cancel-bombard: %v", err)
	}

	// The damage round already advanced the timer once; two more quiet
	// rounds reach the threshold of three.
	closeRound(t, g)
	if beta.ShieldHP != 15 {
		t.Fatalf("shields regenerated early: %d", beta.ShieldHP)
	}
	closeRound(t, g)
	if beta.ShieldHP != 40 {
		t.Fatalf("shields = %d, want restored to 40", beta.ShieldHP)
	}
}

func TestColonizeTransfersOwnership(t *testing.T) {
	g := testGame(t)
	voss := mustPlayer(t, g, "voss")
	reyne := mustPlayer(t, g, "reyne")
	beta := mustPlanet(t, g, "beta")

	fleet := giveFleet(voss, "beta", "hammer", "settler")
	lines, err := g.Apply(ColonizeEffect{FleetID: fleet.ID})
	if err != nil {
		t.Fatalf("colonize: %v", err)
	}
	if beta.Owner != "voss" {
		t.Errorf("owner = %s, want voss", beta.Owner)
	}
	if reyne.OwnsPlanet("beta") {
		t.Error("previous owner should lose the planet")
	}
	if !voss.OwnsPlanet("beta") {
		t.Error("colonizer should gain the planet")
	}
	if beta.StructureLevel(models.CapitalStructure) != 1 {
		t.Errorf("capital level = %d, want 1", beta.StructureLevel(models.CapitalStructure))
	}
	if beta.Available != beta.StorageCapacity {
		t.Errorf("resources = %v, want filled to %v", beta.Available, beta.StorageCapacity)
	}
	if len(lines) == 0 || !strings.Contains(lines[0], "colonized") {
		t.Errorf("lines = %v", lines)
	}
}

func reportContains(r *RoundReport, substr string) bool {
	for _, line := range r.Lines {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}
