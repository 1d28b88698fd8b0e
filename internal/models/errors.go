package models

import "fmt"

// NotEnoughResourcesError reports an affordability failure with the exact shortfall
type NotEnoughResourcesError struct {
	Subject   string
	Cost      Resources
	Available Resources
}

func (e *NotEnoughResourcesError) Error() string {
	return fmt.Sprintf("not enough resources for %s: need %s, have %s (missing %s)",
		e.Subject, e.Cost, e.Available, e.Available.Missing(e.Cost))
}

// AlreadyUpgradingError reports a build or upgrade on a structure that is mid-upgrade
type AlreadyUpgradingError struct {
	StructureID StructureID
}

func (e *AlreadyUpgradingError) Error() string {
	return fmt.Sprintf("structure %s is already upgrading", e.StructureID)
}

// MaxLevelError reports an upgrade attempt past the definition's maximum level
type MaxLevelError struct {
	StructureID StructureID
	MaxLevel    int
}

func (e *MaxLevelError) Error() string {
	return fmt.Sprintf("structure %s is already at max level %d", e.StructureID, e.MaxLevel)
}

// StructureExistsError reports a build on a planet that already has that structure
type StructureExistsError struct {
	PlanetID    PlanetID
	StructureID StructureID
}

func (e *StructureExistsError) Error() string {
	if e.PlanetID == "" {
		return fmt.Sprintf("structure %s already exists", e.StructureID)
	}
	return fmt.Sprintf("structure %s already exists on planet %s", e.StructureID, e.PlanetID)
}

// StructureNotFoundError reports an operation on a structure the planet does not have
type StructureNotFoundError struct {
	PlanetID    PlanetID
	StructureID StructureID
}

func (e *StructureNotFoundError) Error() string {
	if e.PlanetID == "" {
		return fmt.Sprintf("structure %s not built", e.StructureID)
	}
	return fmt.Sprintf("structure %s not found on planet %s", e.StructureID, e.PlanetID)
}

// StructureDestroyedError reports an operation on a destroyed structure
type StructureDestroyedError struct {
	PlanetID    PlanetID
	StructureID StructureID
}

func (e *StructureDestroyedError) Error() string {
	if e.PlanetID == "" {
		return fmt.Sprintf("structure %s is destroyed", e.StructureID)
	}
	return fmt.Sprintf("structure %s on planet %s is destroyed", e.StructureID, e.PlanetID)
}

// DefinitionNotFoundError reports a reference to a kind missing from the definition tables
type DefinitionNotFoundError struct {
	Kind string // "structure" or "ship"
	ID   string
}

func (e *DefinitionNotFoundError) Error() string {
	return fmt.Sprintf("%s definition %q not found", e.Kind, e.ID)
}

// InvalidLevelError reports a level outside a definition's 1..MaxLevel range
type InvalidLevelError struct {
	StructureID StructureID
	Level       int
	MaxLevel    int
}

func (e *InvalidLevelError) Error() string {
	return fmt.Sprintf("invalid level %d for structure %s (max %d)", e.Level, e.StructureID, e.MaxLevel)
}

// PrerequisiteError reports an unmet structure prerequisite
type PrerequisiteError struct {
	StructureID   StructureID
	RequiredID    StructureID
	RequiredLevel int
	ActualLevel   int
}

func (e *PrerequisiteError) Error() string {
	return fmt.Sprintf("structure %s requires %s level %d (have level %d)",
		e.StructureID, e.RequiredID, e.RequiredLevel, e.ActualLevel)
}

// NotUpgradingError reports a cancel on a structure with no upgrade in flight
type NotUpgradingError struct {
	StructureID StructureID
}

func (e *NotUpgradingError) Error() string {
	return fmt.Sprintf("structure %s is not upgrading", e.StructureID)
}

// PendingActionExistsError reports a second action queued against the same planet
type PendingActionExistsError struct {
	PlanetID PlanetID
}

func (e *PendingActionExistsError) Error() string {
	return fmt.Sprintf("planet %s already has a pending action", e.PlanetID)
}

// NoPendingActionError reports a cancel on a planet with nothing queued
type NoPendingActionError struct {
	PlanetID PlanetID
}

func (e *NoPendingActionError) Error() string {
	return fmt.Sprintf("no pending action on planet %s", e.PlanetID)
}

// ShipyardLevelError reports a ship order the planet's shipyard cannot fill
type ShipyardLevelError struct {
	ShipType      ShipTypeID
	RequiredLevel int
	ActualLevel   int
}

func (e *ShipyardLevelError) Error() string {
	return fmt.Sprintf("ship %s requires %s level %d (have level %d)",
		e.ShipType, ShipyardStructure, e.RequiredLevel, e.ActualLevel)
}
