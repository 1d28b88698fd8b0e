package game

import (
	"fmt"

	"github.com/Cemonix/ColonyProtocol/internal/models"
)

// GameOverError reports an effect applied after a winner was declared
type GameOverError struct {
	Winner models.PlayerID
}

func (e *GameOverError) Error() string {
	return fmt.Sprintf("the game is over, %s has won", e.Winner)
}

// PlanetNotFoundError reports a reference to a planet that does not exist
type PlanetNotFoundError struct {
	PlanetID models.PlanetID
}

func (e *PlanetNotFoundError) Error() string {
	return fmt.Sprintf("planet %s not found", e.PlanetID)
}

// NotYourPlanetError reports an action on a planet the acting player does not own
type NotYourPlanetError struct {
	PlanetID models.PlanetID
}

func (e *NotYourPlanetError) Error() string {
	return fmt.Sprintf("you do not own planet %s", e.PlanetID)
}

// FleetNotFoundError reports a reference to a fleet the player does not have
type FleetNotFoundError struct {
	FleetID models.FleetID
}

func (e *FleetNotFoundError) Error() string {
	return fmt.Sprintf("fleet %s not found", e.FleetID)
}

// ShipNotFoundError reports a reference to a ship the player does not have
type ShipNotFoundError struct {
	ShipID models.ShipID
}

func (e *ShipNotFoundError) Error() string {
	return fmt.Sprintf("ship %s not found", e.ShipID)
}

// ShipInFleetError reports a ship assignment that conflicts with its fleet
type ShipInFleetError struct {
	ShipID  models.ShipID
	FleetID models.FleetID
}

func (e *ShipInFleetError) Error() string {
	return fmt.Sprintf("ship %s is already assigned to fleet %s", e.ShipID, e.FleetID)
}

// ShipNotInFleetError reports a removal of a ship that is not in the fleet
type ShipNotInFleetError struct {
	ShipID  models.ShipID
	FleetID models.FleetID
}

func (e *ShipNotInFleetError) Error() string {
	return fmt.Sprintf("ship %s is not in fleet %s", e.ShipID, e.FleetID)
}

// ShipElsewhereError reports a ship at a different location than the fleet
type ShipElsewhereError struct {
	ShipID   models.ShipID
	Location models.PlanetID
	Expected models.PlanetID
}

func (e *ShipElsewhereError) Error() string {
	return fmt.Sprintf("ship %s is at %s, not %s", e.ShipID, e.Location, e.Expected)
}

// EmptyFleetError reports an order given to a fleet with no ships
type EmptyFleetError struct {
	FleetID models.FleetID
}

func (e *EmptyFleetError) Error() string {
	return fmt.Sprintf("fleet %s has no ships", e.FleetID)
}

// FleetBusyError reports an order conflicting with the fleet's current activity
type FleetBusyError struct {
	FleetID  models.FleetID
	Activity string // "moving" or "bombarding"
}

func (e *FleetBusyError) Error() string {
	return fmt.Sprintf("fleet %s is already %s", e.FleetID, e.Activity)
}

// NotBombardingError reports a cancel-bombard on a fleet with no bombardment
type NotBombardingError struct {
	FleetID models.FleetID
}

func (e *NotBombardingError) Error() string {
	return fmt.Sprintf("fleet %s is not bombarding", e.FleetID)
}

// SamePlanetError reports a move to the fleet's current location
type SamePlanetError struct {
	PlanetID models.PlanetID
}

func (e *SamePlanetError) Error() string {
	return fmt.Sprintf("fleet is already at %s", e.PlanetID)
}

// NoConnectionError reports a move between unconnected planets
type NoConnectionError struct {
	From models.PlanetID
	To   models.PlanetID
}

func (e *NoConnectionError) Error() string {
	return fmt.Sprintf("no connection from %s to %s", e.From, e.To)
}

// OwnPlanetBombardError reports a bombardment of the player's own planet
type OwnPlanetBombardError struct {
	PlanetID models.PlanetID
}

func (e *OwnPlanetBombardError) Error() string {
	return fmt.Sprintf("cannot bombard your own planet %s", e.PlanetID)
}

// NeutralPlanetBombardError reports a bombardment of an unowned planet
type NeutralPlanetBombardError struct {
	PlanetID models.PlanetID
}

func (e *NeutralPlanetBombardError) Error() string {
	return fmt.Sprintf("cannot bombard neutral planet %s, colonize it instead", e.PlanetID)
}

// NoBombardmentPowerError reports a bombardment by a fleet with zero power
type NoBombardmentPowerError struct {
	FleetID models.FleetID
}

func (e *NoBombardmentPowerError) Error() string {
	return fmt.Sprintf("fleet %s has no bombardment capability", e.FleetID)
}

// NoColonyShipError reports a colonization by a fleet without a colony ship
type NoColonyShipError struct {
	FleetID models.FleetID
}

func (e *NoColonyShipError) Error() string {
	return fmt.Sprintf("fleet %s has no colony ship", e.FleetID)
}

// AlreadyOwnedError reports a colonization of a planet the player already owns
type AlreadyOwnedError struct {
	PlanetID models.PlanetID
}

func (e *AlreadyOwnedError) Error() string {
	return fmt.Sprintf("you already own planet %s", e.PlanetID)
}

// ShieldsUpError reports a colonization attempt against live shields
type ShieldsUpError struct {
	PlanetID models.PlanetID
	ShieldHP int
}

func (e *ShieldsUpError) Error() string {
	return fmt.Sprintf("shields on %s must be destroyed first (current: %d HP)", e.PlanetID, e.ShieldHP)
}
