// File: terminal/keys_test.go
package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestKeyName(t *testing.T) {
	testCases := []struct {
		name     string
		key      tcell.Key
		r        rune
		expected string
		ok       bool
	}{
		{"Lowercase rune", tcell.KeyRune, 'w', "w", true},
		{"Uppercase rune is lowered", tcell.KeyRune, 'S', "s", true},
		{"Numpad digit", tcell.KeyRune, '8', "8", true},
		{"Space is not a paddle key", tcell.KeyRune, ' ', "", false},
		{"Control rune", tcell.KeyRune, '\x01', "", false},
		{"Non-rune key", tcell.KeyUp, 0, "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			name, ok := KeyName(tc.key, tc.r)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.expected, name)
		})
	}
}

func TestCommandFor(t *testing.T) {
	testCases := []struct {
		name     string
		key      tcell.Key
		r        rune
		expected Command
	}{
		{"Space starts", tcell.KeyRune, ' ', CommandStart},
		{"Enter starts", tcell.KeyEnter, 0, CommandStart},
		{"P pauses", tcell.KeyRune, 'P', CommandPause},
		{"M switches mode", tcell.KeyRune, 'm', CommandMode},
		{"A cycles AI", tcell.KeyRune, 'a', CommandAI},
		{"Escape quits", tcell.KeyEscape, 0, CommandQuit},
		{"Ctrl-C quits", tcell.KeyCtrlC, 0, CommandQuit},
		{"Q quits", tcell.KeyRune, 'q', CommandQuit},
		{"Paddle key is no command", tcell.KeyRune, 'w', CommandNone},
		{"Arrow is no command", tcell.KeyDown, 0, CommandNone},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, CommandFor(tc.key, tc.r))
		})
	}
}

// Paddle bindings must never be shadowed by a host command.
func TestCommandFor_DoesNotShadowPaddleKeys(t *testing.T) {
	for _, r := range "wsolik82" {
		assert.Equal(t, CommandNone, CommandFor(tcell.KeyRune, r), string(r))
	}
}
