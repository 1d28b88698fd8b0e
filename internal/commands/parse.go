// Package commands turns player input lines into validated effects applied to
// the game state, and renders the read-only status views.
package commands

import "strings"

// Command is a parsed input line. The set is closed: adding a variant must
// update the Execute switch.
type Command interface {
	isCommand()
}

// BuildCommand starts construction of a structure on a planet
type BuildCommand struct {
	Planet    string
	Structure string
}

// UpgradeCommand upgrades an existing structure on a planet
type UpgradeCommand struct {
	Planet    string
	Structure string
}

// BuildShipCommand orders a ship at a planet's shipyard
type BuildShipCommand struct {
	Planet   string
	ShipType string
}

// CancelCommand cancels the pending action on a planet
type CancelCommand struct {
	Planet string
}

// StatusTarget selects what the status command reports on
type StatusTarget int

const (
	StatusTurn StatusTarget = iota
	StatusPlanets
	StatusPlanet
	StatusPlayer
)

// StatusCommand shows the turn, the planet list, one planet, or the player
type StatusCommand struct {
	Target StatusTarget
	Planet string // set when Target == StatusPlanet
}

// MapCommand renders the galaxy map
type MapCommand struct{}

// ShipsCommand lists the player's ships
type ShipsCommand struct{}

// FleetsCommand lists the player's fleets
type FleetsCommand struct{}

// FleetCreateCommand groups ships into a new named fleet
type FleetCreateCommand struct {
	Name    string
	ShipIDs []string
}

// FleetAddCommand adds ships to a fleet
type FleetAddCommand struct {
	FleetID string
	ShipIDs []string
}

// FleetRemoveCommand removes ships from a fleet
type FleetRemoveCommand struct {
	FleetID string
	ShipIDs []string
}

// FleetDisbandCommand dissolves a fleet
type FleetDisbandCommand struct {
	FleetID string
}

// FleetMoveCommand sends a fleet along a connection
type FleetMoveCommand struct {
	FleetID     string
	Destination string
}

// FleetBombardCommand starts bombarding the planet the fleet orbits
type FleetBombardCommand struct {
	FleetID string
}

// FleetCancelBombardCommand stops a fleet's bombardment
type FleetCancelBombardCommand struct {
	FleetID string
}

// FleetColonizeCommand claims the planet the fleet orbits
type FleetColonizeCommand struct {
	FleetID string
}

// HelpCommand prints the command reference
type HelpCommand struct{}

// EndTurnCommand passes the turn
type EndTurnCommand struct{}

func (BuildCommand) isCommand()              {}
func (UpgradeCommand) isCommand()            {}
func (BuildShipCommand) isCommand()          {}
func (CancelCommand) isCommand()             {}
func (StatusCommand) isCommand()             {}
func (MapCommand) isCommand()                {}
func (ShipsCommand) isCommand()              {}
func (FleetsCommand) isCommand()             {}
func (FleetCreateCommand) isCommand()        {}
func (FleetAddCommand) isCommand()           {}
func (FleetRemoveCommand) isCommand()        {}
func (FleetDisbandCommand) isCommand()       {}
func (FleetMoveCommand) isCommand()          {}
func (FleetBombardCommand) isCommand()       {}
func (FleetCancelBombardCommand) isCommand() {}
func (FleetColonizeCommand) isCommand()      {}
func (HelpCommand) isCommand()               {}
func (EndTurnCommand) isCommand()            {}

// Parse turns one input line into a Command
func Parse(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, ErrEmptyCommand
	}
	name, args := strings.ToLower(fields[0]), fields[1:]

	switch name {
	case "build":
		if len(args) < 2 {
			return nil, &MissingArgumentsError{Command: "build", Expected: "build <planet> <structure>"}
		}
		return BuildCommand{Planet: args[0], Structure: args[1]}, nil
	case "upgrade":
		if len(args) < 2 {
			return nil, &MissingArgumentsError{Command: "upgrade", Expected: "upgrade <planet> <structure>"}
		}
		return UpgradeCommand{Planet: args[0], Structure: args[1]}, nil
	case "build_ship":
		if len(args) < 2 {
			return nil, &MissingArgumentsError{Command: "build_ship", Expected: "build_ship <planet> <ship_type>"}
		}
		return BuildShipCommand{Planet: args[0], ShipType: args[1]}, nil
	case "cancel":
		if len(args) < 1 {
			return nil, &MissingArgumentsError{Command: "cancel", Expected: "cancel <planet>"}
		}
		return CancelCommand{Planet: args[0]}, nil
	case "status":
		return parseStatus(args)
	case "map":
		return MapCommand{}, nil
	case "ships":
		return ShipsCommand{}, nil
	case "fleets":
		return FleetsCommand{}, nil
	case "fleet":
		return parseFleet(args)
	case "help":
		return HelpCommand{}, nil
	case "end_turn", "end":
		return EndTurnCommand{}, nil
	}
	return nil, &UnknownCommandError{Name: name}
}

func parseStatus(args []string) (Command, error) {
	if len(args) == 0 {
		return StatusCommand{Target: StatusTurn}, nil
	}
	switch strings.ToLower(args[0]) {
	case "turn":
		return StatusCommand{Target: StatusTurn}, nil
	case "planets":
		return StatusCommand{Target: StatusPlanets}, nil
	case "planet":
		if len(args) < 2 {
			return nil, &MissingArgumentsError{Command: "status planet", Expected: "status planet <planet>"}
		}
		return StatusCommand{Target: StatusPlanet, Planet: args[1]}, nil
	case "player":
		return StatusCommand{Target: StatusPlayer}, nil
	}
	return nil, &InvalidArgumentError{
		Command:  "status",
		Argument: args[0],
		Reason:   "valid targets are: turn, planets, planet <id>, player",
	}
}

func parseFleet(args []string) (Command, error) {
	if len(args) == 0 {
		return nil, &MissingArgumentsError{
			Command:  "fleet",
			Expected: "fleet <create|add|remove|disband|move|bombard|cancel-bombard|colonize> ...",
		}
	}
	action, rest := strings.ToLower(args[0]), args[1:]
	switch action {
	case "create":
		if len(rest) < 2 {
			return nil, &MissingArgumentsError{Command: "fleet create", Expected: "fleet create <name> <ship_id> [ship_id...]"}
		}
		return FleetCreateCommand{Name: rest[0], ShipIDs: rest[1:]}, nil
	case "add":
		if len(rest) < 2 {
			return nil, &MissingArgumentsError{Command: "fleet add", Expected: "fleet add <fleet_id> <ship_id> [ship_id...]"}
		}
		return FleetAddCommand{FleetID: rest[0], ShipIDs: rest[1:]}, nil
	case "remove":
		if len(rest) < 2 {
			return nil, &MissingArgumentsError{Command: "fleet remove", Expected: "fleet remove <fleet_id> <ship_id> [ship_id...]"}
		}
		return FleetRemoveCommand{FleetID: rest[0], ShipIDs: rest[1:]}, nil
	case "disband":
		if len(rest) < 1 {
			return nil, &MissingArgumentsError{Command: "fleet disband", Expected: "fleet disband <fleet_id>"}
		}
		return FleetDisbandCommand{FleetID: rest[0]}, nil
	case "move":
		if len(rest) < 2 {
			return nil, &MissingArgumentsError{Command: "fleet move", Expected: "fleet move <fleet_id> <planet>"}
		}
		return FleetMoveCommand{FleetID: rest[0], Destination: rest[1]}, nil
	case "bombard":
		if len(rest) < 1 {
			return nil, &MissingArgumentsError{Command: "fleet bombard", Expected: "fleet bombard <fleet_id>"}
		}
		return FleetBombardCommand{FleetID: rest[0]}, nil
	case "cancel-bombard":
		if len(rest) < 1 {
			return nil, &MissingArgumentsError{Command: "fleet cancel-bombard", Expected: "fleet cancel-bombard <fleet_id>"}
		}
		return FleetCancelBombardCommand{FleetID: rest[0]}, nil
	case "colonize":
		if len(rest) < 1 {
			return nil, &MissingArgumentsError{Command: "fleet colonize", Expected: "fleet colonize <fleet_id>"}
		}
		return FleetColonizeCommand{FleetID: rest[0]}, nil
	}
	return nil, &InvalidArgumentError{
		Command:  "fleet",
		Argument: action,
		Reason:   "valid actions are: create, add, remove, disband, move, bombard, cancel-bombard, colonize",
	}
}
