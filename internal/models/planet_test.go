package models

import (
	"errors"
	"testing"
)

func testPlanetTable(t *testing.T) *StructureTable {
	t.Helper()
	table, err := NewStructureTable([]*StructureDefinition{
		{
			ID:          CapitalStructure,
			Name:        "Planetary Capital",
			MaxLevel:    2,
			Costs:       []Resources{NewResources(100, 50, 0), NewResources(200, 100, 0)},
			UpgradeTime: []int{2, 3},
			Hitpoints:   []int{1000, 2000},
			Production:  []Resources{NewResources(10, 5, 5), NewResources(20, 10, 10)},
			StorageCapacity: []Resources{
				NewResources(1000, 500, 200), NewResources(2000, 1000, 400),
			},
		},
		{
			ID:                "metal_mine",
			Name:              "Metal Mine",
			MaxLevel:          2,
			Costs:             []Resources{NewResources(60, 15, 0), NewResources(120, 30, 0)},
			UpgradeTime:       []int{1, 2},
			EnergyConsumption: []int{5, 10},
			Hitpoints:         []int{400, 600},
			Production:        []Resources{NewResources(30, 0, 0), NewResources(60, 0, 0)},
			Prerequisites: []StructurePrerequisite{
				{StructureID: CapitalStructure, RequiredLevels: []int{1, 2}},
			},
		},
		{
			ID:               ShieldStructure,
			Name:             "Defense Shield",
			MaxLevel:         1,
			Costs:            []Resources{NewResources(50, 0, 0)},
			UpgradeTime:      []int{1},
			Hitpoints:        []int{40},
			ShieldRegenTurns: 3,
		},
	})
	if err != nil {
		t.Fatalf("NewStructureTable: %v", err)
	}
	return table
}

// colonizedPlanet returns a planet with a level-1 capital and full resources
func colonizedPlanet(t *testing.T, table *StructureTable) *Planet {
	t.Helper()
	p := NewPlanet("alpha", "Alpha")
	if err := p.Colonize(table); err != nil {
		t.Fatalf("Colonize: %v", err)
	}
	return p
}

func TestColonizeInstallsCapitalAndFillsStorage(t *testing.T) {
	table := testPlanetTable(t)
	p := colonizedPlanet(t, table)

	if p.StructureLevel(CapitalStructure) != 1 {
		t.Fatalf("capital level = %d, want 1", p.StructureLevel(CapitalStructure))
	}
	if p.Available != NewResources(1000, 500, 200) {
		t.Fatalf("available = %v, want full storage", p.Available)
	}
	if p.ProductionRate != NewResources(10, 5, 5) {
		t.Fatalf("production = %v", p.ProductionRate)
	}
}

func TestValidateBuildErrors(t *testing.T) {
	table := testPlanetTable(t)
	p := colonizedPlanet(t, table)

	t.Run("unknown definition", func(t *testing.T) {
		var notFound *DefinitionNotFoundError
		if _, err := p.ValidateBuild("fusion_plant", table); !errors.As(err, &notFound) {
			t.Fatalf("err = %v, want DefinitionNotFoundError", err)
		}
	})
	t.Run("already exists", func(t *testing.T) {
		var exists *StructureExistsError
		if _, err := p.ValidateBuild(CapitalStructure, table); !errors.As(err, &exists) {
			t.Fatalf("err = %v, want StructureExistsError", err)
		}
	})
	t.Run("not enough resources", func(t *testing.T) {
		p := colonizedPlanet(t, table)
		p.Available = NewResources(10, 0, 0)
		var short *NotEnoughResourcesError
		if _, err := p.ValidateBuild("metal_mine", table); !errors.As(err, &short) {
			t.Fatalf("err = %v, want NotEnoughResourcesError", err)
		}
		if missing := short.Available.Missing(short.Cost); missing != NewResources(50, 15, 0) {
			t.Errorf("missing = %v, want {50 15 0}", missing)
		}
	})
	t.Run("prerequisite unmet", func(t *testing.T) {
		bare := NewPlanet("beta", "Beta")
		bare.Available = NewResources(1000, 1000, 1000)
		var prereq *PrerequisiteError
		if _, err := bare.ValidateBuild("metal_mine", table); !errors.As(err, &prereq) {
			t.Fatalf("err = %v, want PrerequisiteError", err)
		}
		if prereq.RequiredID != CapitalStructure || prereq.RequiredLevel != 1 {
			t.Errorf("prereq = %+v", prereq)
		}
	})
}

func TestBeginBuildChargesCost(t *testing.T) {
	table := testPlanetTable(t)
	p := colonizedPlanet(t, table)

	info, err := p.BeginBuild("metal_mine", table)
	if err != nil {
		t.Fatalf("BeginBuild: %v", err)
	}
	if info.Cost != NewResources(60, 15, 0) || info.Turns != 1 {
		t.Fatalf("info = %+v", info)
	}
	if p.Available != NewResources(940, 485, 200) {
		t.Fatalf("available = %v", p.Available)
	}
	if p.Structures["metal_mine"].State != StructureUpgrading {
		t.Fatal("mine should be upgrading")
	}
}

func TestTickConstructionCompletesAndRecalculates(t *testing.T) {
	table := testPlanetTable(t)
	p := colonizedPlanet(t, table)
	if _, err := p.BeginBuild("metal_mine", table); err != nil {
		t.Fatalf("BeginBuild: %v", err)
	}
	done, err := p.TickConstruction("metal_mine")
	if err != nil || !done {
		t.Fatalf("TickConstruction = %v, %v", done, err)
	}
	if p.ProductionRate != NewResources(40, 5, 5) {
		t.Fatalf("production = %v, want capital+mine", p.ProductionRate)
	}
}

func TestShieldFillsWhenGeneratorCompletes(t *testing.T) {
	table := testPlanetTable(t)
	p := colonizedPlanet(t, table)
	if _, err := p.BeginBuild(ShieldStructure, table); err != nil {
		t.Fatalf("BeginBuild: %v", err)
	}
	if p.ShieldHP != 0 {
		t.Fatalf("shield before completion = %d", p.ShieldHP)
	}
	if done, err := p.TickConstruction(ShieldStructure); err != nil || !done {
		t.Fatalf("TickConstruction = %v, %v", done, err)
	}
	if p.ShieldHP != 40 {
		t.Fatalf("shield = %d, want 40", p.ShieldHP)
	}
}

func TestEndRoundProductionClampsToStorage(t *testing.T) {
	table := testPlanetTable(t)
	p := colonizedPlanet(t, table)
	p.Available = NewResources(995, 499, 200)
	p.EndRoundProduction()
	if p.Available != NewResources(1000, 500, 200) {
		t.Fatalf("available = %v, want clamped to storage", p.Available)
	}
}

func TestEndRoundProductionEnergyDraw(t *testing.T) {
	table := testPlanetTable(t)
	p := colonizedPlanet(t, table)
	if _, err := p.BeginBuild("metal_mine", table); err != nil {
		t.Fatalf("BeginBuild: %v", err)
	}
	if _, err := p.TickConstruction("metal_mine"); err != nil {
		t.Fatalf("TickConstruction: %v", err)
	}
	p.Available = NewResources(0, 0, 100)
	p.EndRoundProduction()
	// 100 - 5 draw + 5 production, mine and capital outputs added
	if p.Available.Energy != 100 {
		t.Errorf("energy = %d, want 100", p.Available.Energy)
	}
	if p.Available.Minerals != 40 {
		t.Errorf("minerals = %d, want 40", p.Available.Minerals)
	}
}

func TestShieldRegeneration(t *testing.T) {
	table := testPlanetTable(t)
	p := colonizedPlanet(t, table)
	if _, err := p.BeginBuild(ShieldStructure, table); err != nil {
		t.Fatalf("BeginBuild: %v", err)
	}
	if _, err := p.TickConstruction(ShieldStructure); err != nil {
		t.Fatalf("TickConstruction: %v", err)
	}

	if got := p.TakeShieldDamage(25); got != 15 {
		t.Fatalf("shield after damage = %d, want 15", got)
	}
	if p.ShieldRegenTimer != 0 {
		t.Fatal("damage must reset the regen timer")
	}

	// Three undisturbed rounds restore the shield to max
	p.EndRoundProduction()
	p.EndRoundProduction()
	if p.ShieldHP != 15 {
		t.Fatalf("shield regenerated early: %d", p.ShieldHP)
	}
	p.EndRoundProduction()
	if p.ShieldHP != 40 || p.ShieldRegenTimer != 0 {
		t.Fatalf("shield = %d timer = %d, want full and reset", p.ShieldHP, p.ShieldRegenTimer)
	}
}

func TestTakeShieldDamageFloorsAtZero(t *testing.T) {
	p := NewPlanet("alpha", "Alpha")
	p.ShieldHP = 10
	if got := p.TakeShieldDamage(25); got != 0 {
		t.Fatalf("shield = %d, want 0", got)
	}
}

func TestCancelConstructionRefundCappedAtFreeStorage(t *testing.T) {
	table := testPlanetTable(t)
	p := colonizedPlanet(t, table)

	if _, err := p.BeginBuild("metal_mine", table); err != nil {
		t.Fatalf("BeginBuild: %v", err)
	}
	reserved := NewResources(100, 50, 0)
	p.Available = NewResources(970, 50, 0) // 30 minerals of free storage

	refunded, wasted, err := p.CancelConstruction("metal_mine", reserved)
	if err != nil {
		t.Fatalf("CancelConstruction: %v", err)
	}
	if refunded != NewResources(30, 50, 0) {
		t.Errorf("refunded = %v, want {30 50 0}", refunded)
	}
	if wasted != NewResources(70, 0, 0) {
		t.Errorf("wasted = %v, want {70 0 0}", wasted)
	}
	if p.Available != NewResources(1000, 100, 0) {
		t.Errorf("available = %v, want {1000 100 0}", p.Available)
	}
	if p.Structures["metal_mine"].State != StructureUnbuilt {
		t.Error("mine should revert to unbuilt")
	}
}
