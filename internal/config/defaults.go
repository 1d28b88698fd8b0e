package config

import "github.com/Cemonix/ColonyProtocol/internal/models"

// DefaultStructureDefinitions returns the built-in structure table so the game
// runs without external data files.
func DefaultStructureDefinitions() []*models.StructureDefinition {
	r := models.NewResources
	return []*models.StructureDefinition{
		{
			ID:                models.CapitalStructure,
			Name:              "Planetary Capital",
			Description:       "Seat of colonial government, installed at colonization",
			MaxLevel:          3,
			Costs:             []models.Resources{r(200, 100, 0), r(400, 200, 0), r(800, 400, 0)},
			UpgradeTime:       []int{3, 4, 6},
			EnergyConsumption: []int{0, 0, 0},
			Hitpoints:         []int{1000, 2000, 4000},
			Production:        []models.Resources{r(20, 10, 5), r(40, 20, 10), r(80, 40, 20)},
			StorageCapacity: []models.Resources{
				r(500, 250, 100), r(1000, 500, 200), r(2000, 1000, 400),
			},
		},
		{
			ID:          "metal_mine",
			Name:        "Metal Mine",
			Description: "Extracts minerals from the planetary crust",
			MaxLevel:    5,
			Costs: []models.Resources{
				r(60, 15, 0), r(120, 30, 0), r(240, 60, 0), r(480, 120, 0), r(960, 240, 0),
			},
			UpgradeTime:       []int{1, 2, 3, 4, 6},
			EnergyConsumption: []int{5, 10, 15, 20, 30},
			Hitpoints:         []int{400, 600, 900, 1350, 2000},
			Production: []models.Resources{
				r(30, 0, 0), r(60, 0, 0), r(120, 0, 0), r(240, 0, 0), r(480, 0, 0),
			},
			Prerequisites: []models.StructurePrerequisite{
				{StructureID: models.CapitalStructure, RequiredLevels: []int{1, 1, 2, 2, 3}},
			},
		},
		{
			ID:          "gas_extractor",
			Name:        "Gas Extractor",
			Description: "Harvests gas from atmospheric vents",
			MaxLevel:    5,
			Costs: []models.Resources{
				r(80, 0, 0), r(160, 0, 0), r(320, 0, 0), r(640, 0, 0), r(1280, 0, 0),
			},
			UpgradeTime:       []int{1, 2, 3, 4, 6},
			EnergyConsumption: []int{8, 16, 24, 32, 48},
			Hitpoints:         []int{400, 600, 900, 1350, 2000},
			Production: []models.Resources{
				r(0, 20, 0), r(0, 40, 0), r(0, 80, 0), r(0, 160, 0), r(0, 320, 0),
			},
			Prerequisites: []models.StructurePrerequisite{
				{StructureID: models.CapitalStructure, RequiredLevels: []int{1, 1, 2, 2, 3}},
			},
		},
		{
			ID:          "solar_array",
			Name:        "Solar Array",
			Description: "Collects stellar energy for the colony grid",
			MaxLevel:    4,
			Costs: []models.Resources{
				r(50, 20, 0), r(100, 40, 0), r(200, 80, 0), r(400, 160, 0),
			},
			UpgradeTime:       []int{1, 2, 3, 4},
			EnergyConsumption: []int{0, 0, 0, 0},
			Hitpoints:         []int{300, 450, 700, 1000},
			Production: []models.Resources{
				r(0, 0, 25), r(0, 0, 50), r(0, 0, 100), r(0, 0, 200),
			},
			Prerequisites: []models.StructurePrerequisite{
				{StructureID: models.CapitalStructure, RequiredLevels: []int{1, 1, 2, 3}},
			},
		},
		{
			ID:          "storage_depot",
			Name:        "Storage Depot",
			Description: "Expands the colony's resource silos",
			MaxLevel:    4,
			Costs: []models.Resources{
				r(100, 30, 0), r(200, 60, 0), r(400, 120, 0), r(800, 240, 0),
			},
			UpgradeTime:       []int{2, 3, 4, 5},
			EnergyConsumption: []int{5, 10, 15, 20},
			Hitpoints:         []int{600, 900, 1350, 2000},
			StorageCapacity: []models.Resources{
				r(800, 400, 200), r(1600, 800, 400), r(3200, 1600, 800), r(6400, 3200, 1600),
			},
			Prerequisites: []models.StructurePrerequisite{
				{StructureID: models.CapitalStructure, RequiredLevels: []int{1, 1, 2, 2}},
			},
		},
		{
			ID:          models.ShipyardStructure,
			Name:        "Orbital Shipyard",
			Description: "Assembles ships in low orbit",
			MaxLevel:    3,
			Costs: []models.Resources{
				r(300, 150, 50), r(600, 300, 100), r(1200, 600, 200),
			},
			UpgradeTime:       []int{3, 5, 8},
			EnergyConsumption: []int{20, 40, 60},
			Hitpoints:         []int{800, 1600, 3200},
			Prerequisites: []models.StructurePrerequisite{
				{StructureID: models.CapitalStructure, RequiredLevels: []int{2, 2, 3}},
			},
		},
		{
			ID:          models.ShieldStructure,
			Name:        "Defense Shield",
			Description: "Projects a planetary shield that must fall before invasion",
			MaxLevel:    3,
			Costs: []models.Resources{
				r(250, 100, 50), r(500, 200, 100), r(1000, 400, 200),
			},
			UpgradeTime:       []int{3, 5, 8},
			EnergyConsumption: []int{30, 60, 90},
			Hitpoints:         []int{500, 1000, 2000},
			ShieldRegenTurns:  3,
			Prerequisites: []models.StructurePrerequisite{
				{StructureID: models.CapitalStructure, RequiredLevels: []int{2, 3, 3}},
			},
		},
	}
}

// DefaultShipDefinitions returns the built-in ship table
func DefaultShipDefinitions() []*models.ShipDefinition {
	return []*models.ShipDefinition{
		{
			ID:                    "interceptor",
			Name:                  "Interceptor",
			Description:           "Fast attack craft, excels against heavy hulls",
			Attack:                10,
			Shield:                5,
			Bombardment:           0,
			Cost:                  models.NewResources(100, 50, 0),
			BuildTime:             2,
			Counters:              []models.ShipTypeID{"ravager"},
			RequiredShipyardLevel: 1,
		},
		{
			ID:                    "ravager",
			Name:                  "Ravager",
			Description:           "Siege platform built to crack planetary shields",
			Attack:                5,
			Shield:                15,
			Bombardment:           25,
			Cost:                  models.NewResources(200, 100, 0),
			BuildTime:             3,
			RequiredShipyardLevel: 2,
		},
		{
			ID:                    "ark",
			Name:                  "Ark",
			Description:           "Colony ship carrying settlers and a prefab capital",
			Attack:                0,
			Shield:                10,
			Bombardment:           0,
			Cost:                  models.NewResources(300, 150, 50),
			BuildTime:             4,
			RequiredShipyardLevel: 1,
			ColonyShip:            true,
		},
	}
}

// DefaultNameParts returns the built-in planet name fragments
func DefaultNameParts() NameParts {
	return NameParts{
		Prefixes: []string{
			"Crimson", "Azure", "Void", "Ember", "Frozen", "Golden",
			"Obsidian", "Silent", "Radiant", "Hollow", "Distant", "Verdant",
		},
		Suffixes: []string{
			"Theta", "Kepler", "Prime", "Orion", "Vega", "Nexus",
			"Helios", "Cygnus", "Atlas", "Lyra", "Erebus", "Talos",
		},
	}
}

// DefaultCommanderNames returns the built-in commander name pool
func DefaultCommanderNames() []string {
	return []string{
		"Admiral Voss", "Commander Reyne", "Marshal Okonkwo", "Captain Ishida",
		"Overseer Draken", "Warden Sylva", "Praetor Kallis", "Archon Merel",
		"Strategos Pavel", "Castellan Iri", "Legate Thorne", "Envoy Zahra",
	}
}
