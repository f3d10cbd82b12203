// File: terminal/keys.go
package terminal

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Command is a host-level action bound to a key, as opposed to paddle movement.
type Command int

const (
	CommandNone Command = iota
	CommandStart
	CommandPause
	CommandMode
	CommandAI
	CommandQuit
)

func (c Command) String() string {
	switch c {
	case CommandStart:
		return "start"
	case CommandPause:
		return "pause"
	case CommandMode:
		return "mode"
	case CommandAI:
		return "ai"
	case CommandQuit:
		return "quit"
	default:
		return "none"
	}
}

// KeyName maps a terminal key to the lowercase name paddle bindings use.
// Keys without a printable name report false.
func KeyName(key tcell.Key, r rune) (string, bool) {
	if key != tcell.KeyRune || !unicode.IsPrint(r) || r == ' ' {
		return "", false
	}
	return string(unicode.ToLower(r)), true
}

// CommandFor maps a terminal key to a host command.
func CommandFor(key tcell.Key, r rune) Command {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return CommandQuit
	case tcell.KeyEnter:
		return CommandStart
	case tcell.KeyRune:
		switch unicode.ToLower(r) {
		case ' ':
			return CommandStart
		case 'p':
			return CommandPause
		case 'm':
			return CommandMode
		case 'a':
			return CommandAI
		case 'q':
			return CommandQuit
		}
	}
	return CommandNone
}
