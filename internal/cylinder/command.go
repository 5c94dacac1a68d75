package cylinder

import (
	"fmt"
	"strings"
)

// Command is one of the two actions an operator can issue.
type Command int

const (
	Retract Command = iota
	Extend
)

// ParseCommand maps a command name to a Command.
func ParseCommand(name string) (Command, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "extend":
		return Extend, nil
	case "retract":
		return Retract, nil
	}
	return Retract, fmt.Errorf("unknown command %q (want extend or retract)", name)
}

// Apply issues the command against s.
func (c Command) Apply(s *State) {
	switch c {
	case Extend:
		s.CommandExtend()
	default:
		s.CommandRetract()
	}
}

// Opposite returns the other command.
func (c Command) Opposite() Command {
	switch c {
	case Extend:
		return Retract
	default:
		return Extend
	}
}

// String returns the name of the command.
func (c Command) String() string {
	switch c {
	case Extend:
		return "extend"
	default:
		return "retract"
	}
}

// Label returns the button caption for the command.
func (c Command) Label() string {
	switch c {
	case Extend:
		return "Extend ➜"
	default:
		return "Retract ⬅"
	}
}
