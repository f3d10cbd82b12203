// File: server/broadcaster_actor.go
package server

import (
	"runtime/debug"
	"time"

	"github.com/lguibr/pongsim/bollywood"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/websocket"
)

const writeTimeout = 2 * time.Second

// BroadcasterActor owns every spectator connection and is the only writer to them.
type BroadcasterActor struct {
	clients map[string]*websocket.Conn
	selfPID *bollywood.PID
}

// NewBroadcasterProducer creates a producer for BroadcasterActor.
func NewBroadcasterProducer() bollywood.Producer {
	return func() bollywood.Actor {
		return &BroadcasterActor{clients: make(map[string]*websocket.Conn)}
	}
}

func (a *BroadcasterActor) Receive(ctx bollywood.Context) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Str("actor", a.selfPID.String()).
				Interface("panic", r).
				Str("stack", string(debug.Stack())).
				Msg("broadcaster panicked")
		}
	}()

	if a.selfPID == nil {
		a.selfPID = ctx.Self()
	}

	switch msg := ctx.Message().(type) {
	case bollywood.Started:

	case AddClient:
		if msg.Conn == nil || msg.ID == "" {
			return
		}
		a.clients[msg.ID] = msg.Conn
		log.Debug().Str("client", msg.ID).Int("clients", len(a.clients)).Msg("spectator connected")
		if msg.Initial != nil && !a.send(msg.ID, msg.Conn, *msg.Initial) {
			a.drop(msg.ID)
		}

	case RemoveClient:
		a.drop(msg.ID)

	case Broadcast:
		a.broadcast(msg.Envelope)

	case ClientCount:
		if msg.Reply != nil {
			msg.Reply <- len(a.clients)
		}

	case bollywood.Stopping:
		for id := range a.clients {
			a.drop(id)
		}

	case bollywood.Stopped:

	default:
		log.Warn().Str("actor", a.selfPID.String()).Msgf("broadcaster received unknown message type %T", msg)
	}
}

func (a *BroadcasterActor) broadcast(envelope Envelope) {
	var failed []string
	for id, conn := range a.clients {
		if !a.send(id, conn, envelope) {
			failed = append(failed, id)
		}
	}
	for _, id := range failed {
		a.drop(id)
	}
}

// send writes one envelope with a deadline so a stalled client cannot block the actor.
func (a *BroadcasterActor) send(id string, conn *websocket.Conn, envelope Envelope) bool {
	_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err := websocket.JSON.Send(conn, envelope); err != nil {
		log.Debug().Err(err).Str("client", id).Msg("dropping spectator after failed write")
		return false
	}
	return true
}

func (a *BroadcasterActor) drop(id string) {
	conn, ok := a.clients[id]
	if !ok {
		return
	}
	delete(a.clients, id)
	_ = conn.Close()
	log.Debug().Str("client", id).Int("clients", len(a.clients)).Msg("spectator disconnected")
}
