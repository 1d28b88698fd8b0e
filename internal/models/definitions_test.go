package models

import (
	"strings"
	"testing"
)

func validStructureDefs() []*StructureDefinition {
	return []*StructureDefinition{
		{
			ID:          "energy_plant",
			MaxLevel:    2,
			Costs:       []Resources{NewResources(100, 0, 0), NewResources(200, 0, 0)},
			UpgradeTime: []int{1, 2},
		},
		{
			ID:          "fusion_reactor",
			MaxLevel:    2,
			Costs:       []Resources{NewResources(1000, 500, 100), NewResources(2000, 1000, 200)},
			UpgradeTime: []int{5, 10},
			Prerequisites: []StructurePrerequisite{
				{StructureID: "energy_plant", RequiredLevels: []int{1, 2}},
			},
		},
	}
}

func TestNewStructureTableValid(t *testing.T) {
	table, err := NewStructureTable(validStructureDefs())
	if err != nil {
		t.Fatalf("NewStructureTable: %v", err)
	}
	if _, ok := table.Get("fusion_reactor"); !ok {
		t.Fatal("fusion_reactor missing from table")
	}
	if ids := table.IDs(); len(ids) != 2 || ids[0] != "energy_plant" {
		t.Fatalf("IDs = %v", ids)
	}
}

func TestNewStructureTableRejectsBadDefs(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(defs []*StructureDefinition)
		wantMsg string
	}{
		{
			"costs length mismatch",
			func(defs []*StructureDefinition) { defs[0].Costs = defs[0].Costs[:1] },
			"cost entries",
		},
		{
			"upgrade_time length mismatch",
			func(defs []*StructureDefinition) { defs[0].UpgradeTime = []int{1, 2, 3} },
			"upgrade_time entries",
		},
		{
			"hitpoints length mismatch",
			func(defs []*StructureDefinition) { defs[0].Hitpoints = []int{100} },
			"hitpoints entries",
		},
		{
			"unknown prerequisite",
			func(defs []*StructureDefinition) { defs[1].Prerequisites[0].StructureID = "nonexistent" },
			"unknown prerequisite",
		},
		{
			"required_levels length mismatch",
			func(defs []*StructureDefinition) {
				defs[1].Prerequisites[0].RequiredLevels = []int{5, 10, 15}
			},
			"required_levels",
		},
		{
			"duplicate id",
			func(defs []*StructureDefinition) { defs[1].ID = defs[0].ID },
			"duplicate",
		},
		{
			"zero max level",
			func(defs []*StructureDefinition) { defs[0].MaxLevel = 0 },
			"max_level",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defs := validStructureDefs()
			tt.mutate(defs)
			_, err := NewStructureTable(defs)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestNewShipTableRejectsUnknownCounter(t *testing.T) {
	_, err := NewShipTable([]*ShipDefinition{
		{ID: "interceptor", BuildTime: 2, Counters: []ShipTypeID{"dreadnought"}},
	})
	if err == nil || !strings.Contains(err.Error(), "unknown counter") {
		t.Fatalf("err = %v, want unknown counter", err)
	}
}

func TestStructureDefinitionLevelBounds(t *testing.T) {
	def := validStructureDefs()[0]
	if _, err := def.CostAt(0); err == nil {
		t.Error("CostAt(0) should fail")
	}
	if _, err := def.CostAt(3); err == nil {
		t.Error("CostAt above max should fail")
	}
	cost, err := def.CostAt(2)
	if err != nil || cost != NewResources(200, 0, 0) {
		t.Errorf("CostAt(2) = %v, %v", cost, err)
	}
	if hp := def.HitpointsAt(1); hp != 0 {
		t.Errorf("HitpointsAt with empty table = %d, want 0", hp)
	}
}

func TestShipDefinitionCounts(t *testing.T) {
	def := &ShipDefinition{ID: "interceptor", Counters: []ShipTypeID{"ravager"}}
	if !def.Counts("ravager") {
		t.Error("interceptor should counter ravager")
	}
	if def.Counts("interceptor") {
		t.Error("interceptor should not counter itself")
	}
}
