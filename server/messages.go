// File: server/messages.go
package server

import (
	"github.com/lguibr/pongsim/game"
	"golang.org/x/net/websocket"
)

// Envelope types on the spectator stream.
const (
	EnvelopeState = "state"
	EnvelopeEvent = "event"
)

// Envelope is one JSON frame sent to spectators.
type Envelope struct {
	Type    string         `json:"type"`
	Event   string         `json:"event,omitempty"`
	Payload interface{}    `json:"payload,omitempty"`
	State   *game.Snapshot `json:"state,omitempty"`
}

// AddClient registers a spectator connection. Initial, when set, is sent to the
// client before any broadcast.
type AddClient struct {
	ID      string
	Conn    *websocket.Conn
	Initial *Envelope
}

// RemoveClient unregisters and closes a spectator connection.
type RemoveClient struct {
	ID string
}

// Broadcast sends Envelope to every registered spectator.
type Broadcast struct {
	Envelope Envelope
}

// ClientCount asks the broadcaster for the number of connected spectators.
type ClientCount struct {
	Reply chan int
}
