// File: bollywood/process.go
package bollywood

import (
	"runtime/debug"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"
)

const defaultMailboxSize = 1024

// process is the running instance of an actor: its mailbox and run loop.
type process struct {
	engine   *Engine
	pid      *PID
	actor    Actor
	props    *Props
	mailbox  chan *messageEnvelope
	stopCh   chan struct{}
	stopOnce sync.Once
	stopped  atomic.Bool
}

func newProcess(engine *Engine, pid *PID, props *Props) *process {
	return &process{
		engine:  engine,
		pid:     pid,
		props:   props,
		mailbox: make(chan *messageEnvelope, defaultMailboxSize),
		stopCh:  make(chan struct{}),
	}
}

// sendMessage enqueues without blocking; a full mailbox drops the message.
func (p *process) sendMessage(message interface{}, sender *PID) {
	if p.stopped.Load() && !isSystemMessage(message) {
		return
	}
	select {
	case p.mailbox <- &messageEnvelope{Sender: sender, Message: message}:
	default:
		log.Warn().Str("actor", p.pid.ID).Str("message", typeName(message)).Msg("mailbox full, dropping message")
	}
}

func (p *process) stop() {
	p.stopOnce.Do(func() { close(p.stopCh) })
}

func (p *process) run() {
	defer p.engine.remove(p.pid)

	p.actor = p.props.Produce()
	if p.actor == nil {
		log.Error().Str("actor", p.pid.ID).Msg("producer returned nil actor")
		p.stopped.Store(true)
		return
	}

	defer func() {
		p.stopped.Store(true)
		p.invokeReceive(Stopped{}, nil)
	}()

	for {
		// Drain pending messages before honoring a stop so Started is always seen first.
		select {
		case envelope := <-p.mailbox:
			p.handle(envelope)
			continue
		default:
		}

		select {
		case <-p.stopCh:
			p.invokeReceive(Stopping{}, nil)
			return
		case envelope := <-p.mailbox:
			p.handle(envelope)
		}
	}
}

func (p *process) handle(envelope *messageEnvelope) {
	switch envelope.Message.(type) {
	case Stopping, Stopped:
		// Lifecycle messages are produced by the run loop only.
		return
	}
	p.invokeReceive(envelope.Message, envelope.Sender)
}

// invokeReceive calls the actor's Receive method, recovering from panics within it.
func (p *process) invokeReceive(msg interface{}, sender *PID) {
	ctx := &context{
		engine:  p.engine,
		self:    p.pid,
		sender:  sender,
		message: msg,
	}

	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Str("actor", p.pid.ID).
				Str("message", typeName(msg)).
				Interface("panic", r).
				Str("stack", string(debug.Stack())).
				Msg("actor panicked during Receive")
		}
	}()
	p.actor.Receive(ctx)
}
