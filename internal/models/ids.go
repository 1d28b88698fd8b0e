package models

import "strings"

// PlanetID uniquely identifies a planet in the galaxy map
type PlanetID string

// PlayerID uniquely identifies a player
type PlayerID string

// StructureID identifies a structure kind (shared by definition and instance)
type StructureID string

// ShipTypeID identifies an immutable ship definition
type ShipTypeID string

// ShipID identifies a ship instance, unique per player ("{type}_{n}")
type ShipID string

// FleetID identifies a fleet, unique per player ("fleet_{n}")
type FleetID string

// Well-known structure kinds the engine treats specially.
const (
	CapitalStructure  StructureID = "planetary_capital"
	ShieldStructure   StructureID = "defense_shield"
	ShipyardStructure StructureID = "orbital_shipyard"
)

// NameToID converts a display name into a stable lowercase identifier
func NameToID(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}

// PlanetIDForName derives the canonical planet id from its display name
func PlanetIDForName(name string) PlanetID {
	return PlanetID(NameToID(name))
}
