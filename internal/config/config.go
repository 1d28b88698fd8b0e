// Package config loads and validates the static definition tables the engine
// consumes: ship types, structure level tables and name lists. Tables come from
// YAML files in a data directory, with built-in defaults when no directory is
// given.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Cemonix/ColonyProtocol/internal/models"
)

// Config bundles everything the game needs from disk
type Config struct {
	Structures     *models.StructureTable
	Ships          *models.ShipTable
	NameParts      NameParts
	CommanderNames []string
}

// Load reads the definition tables from the given data directory. An empty
// directory path selects the built-in defaults.
func Load(dir string) (*Config, error) {
	if dir == "" {
		return Defaults()
	}
	structures, err := LoadStructures(filepath.Join(dir, "structures.yaml"))
	if err != nil {
		return nil, err
	}
	ships, err := LoadShips(filepath.Join(dir, "ships.yaml"))
	if err != nil {
		return nil, err
	}
	names, commanders, err := LoadNames(filepath.Join(dir, "names.yaml"))
	if err != nil {
		return nil, err
	}
	return &Config{
		Structures:     structures,
		Ships:          ships,
		NameParts:      names,
		CommanderNames: commanders,
	}, nil
}

// Defaults builds a Config from the built-in tables
func Defaults() (*Config, error) {
	structures, err := models.NewStructureTable(DefaultStructureDefinitions())
	if err != nil {
		return nil, fmt.Errorf("built-in structure table: %w", err)
	}
	ships, err := models.NewShipTable(DefaultShipDefinitions())
	if err != nil {
		return nil, fmt.Errorf("built-in ship table: %w", err)
	}
	return &Config{
		Structures:     structures,
		Ships:          ships,
		NameParts:      DefaultNameParts(),
		CommanderNames: DefaultCommanderNames(),
	}, nil
}

type structuresFile struct {
	Structures []*models.StructureDefinition `yaml:"structures"`
}

// LoadStructures reads and validates a structure table from a YAML file
func LoadStructures(path string) (*models.StructureTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading structure definitions: %w", err)
	}
	var file structuresFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	table, err := models.NewStructureTable(file.Structures)
	if err != nil {
		return nil, fmt.Errorf("validating %s: %w", path, err)
	}
	return table, nil
}

type shipsFile struct {
	Ships []*models.ShipDefinition `yaml:"ships"`
}

// LoadShips reads and validates a ship table from a YAML file
func LoadShips(path string) (*models.ShipTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading ship definitions: %w", err)
	}
	var file shipsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	table, err := models.NewShipTable(file.Ships)
	if err != nil {
		return nil, fmt.Errorf("validating %s: %w", path, err)
	}
	return table, nil
}

type namesFile struct {
	PlanetPrefixes []string `yaml:"planet_prefixes"`
	PlanetSuffixes []string `yaml:"planet_suffixes"`
	Commanders     []string `yaml:"commanders"`
}

// LoadNames reads the planet name parts and commander pool from a YAML file
func LoadNames(path string) (NameParts, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return NameParts{}, nil, fmt.Errorf("reading name lists: %w", err)
	}
	var file namesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return NameParts{}, nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	parts := NameParts{Prefixes: file.PlanetPrefixes, Suffixes: file.PlanetSuffixes}
	if len(parts.Prefixes) == 0 || len(parts.Suffixes) == 0 {
		return NameParts{}, nil, fmt.Errorf("%s: planet_prefixes and planet_suffixes must not be empty", path)
	}
	return parts, file.Commanders, nil
}
