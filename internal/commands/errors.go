package commands

import (
	"errors"
	"fmt"
)

// ErrEmptyCommand is returned for blank input lines
var ErrEmptyCommand = errors.New("no command given")

// UnknownCommandError reports an unrecognized command word
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command %q, type 'help' for a list", e.Name)
}

// MissingArgumentsError reports a command invoked with too few arguments
type MissingArgumentsError struct {
	Command  string
	Expected string
}

func (e *MissingArgumentsError) Error() string {
	return fmt.Sprintf("%s: missing arguments, usage: %s", e.Command, e.Expected)
}

// InvalidArgumentError reports an argument the command cannot use
type InvalidArgumentError struct {
	Command  string
	Argument string
	Reason   string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("%s: invalid argument %q: %s", e.Command, e.Argument, e.Reason)
}

// UnknownPlanetError reports a planet reference that matches nothing on the map
type UnknownPlanetError struct {
	Name string
}

func (e *UnknownPlanetError) Error() string {
	return fmt.Sprintf("no planet named %q", e.Name)
}
