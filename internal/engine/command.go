package engine

import (
	"errors"
	"fmt"
)

var ErrUnknownCommand = errors.New("unknown command")

// Command is one user action on the card view.
type Command int

const (
	CommandNext Command = iota
	CommandPrev
	CommandReverse
	CommandToggleTitle
	CommandToggleHints
	CommandTogglePronunciation
	CommandToggleDescription
	CommandToggleExample
	CommandToggleZen
)

// Commands lists every command in the order front ends lay out their controls:
// navigation first, then the row toggles, zen last.
var Commands = []Command{
	CommandPrev,
	CommandReverse,
	CommandNext,
	CommandTogglePronunciation,
	CommandToggleDescription,
	CommandToggleExample,
	CommandToggleTitle,
	CommandToggleHints,
	CommandToggleZen,
}

var commandNames = map[Command]string{
	CommandNext:                "next",
	CommandPrev:                "prev",
	CommandReverse:             "reverse",
	CommandToggleTitle:         "toggle_title",
	CommandToggleHints:         "toggle_hints",
	CommandTogglePronunciation: "toggle_pronunciation",
	CommandToggleDescription:   "toggle_description",
	CommandToggleExample:       "toggle_example",
	CommandToggleZen:           "toggle_zen",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return fmt.Sprintf("command(%d)", int(c))
}

// ParseCommand resolves a command by its name
func ParseCommand(name string) (Command, error) {
	for cmd, n := range commandNames {
		if n == name {
			return cmd, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
}

// field maps toggle commands to the row they flip
func (c Command) field() (Field, bool) {
	switch c {
	case CommandToggleTitle:
		return FieldTitle, true
	case CommandToggleHints:
		return FieldHints, true
	case CommandTogglePronunciation:
		return FieldPronunciation, true
	case CommandToggleDescription:
		return FieldDescription, true
	case CommandToggleExample:
		return FieldExample, true
	}
	return 0, false
}
