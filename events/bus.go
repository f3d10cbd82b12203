// File: events/bus.go
package events

import (
	"runtime/debug"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"
)

// Name identifies an event, e.g. "SCORE_CHANGED".
type Name string

// Handler receives the arguments passed to Emit.
type Handler func(args ...interface{})

// HandlerID is returned by On and identifies a registration for Off.
type HandlerID uint64

type registration struct {
	id      HandlerID
	handler Handler
}

// Bus is a synchronous publish/subscribe registry.
// Handlers for a name run in registration order on the emitting goroutine.
type Bus struct {
	mu       sync.RWMutex
	handlers map[Name][]registration
	nextID   atomic.Uint64
}

// New creates an empty bus.
func New() *Bus {
	return &Bus{
		handlers: make(map[Name][]registration),
	}
}

// On registers handler for name. The same function may be registered more than once;
// each registration gets its own ID.
func (b *Bus) On(name Name, handler Handler) HandlerID {
	id := HandlerID(b.nextID.Add(1))
	if handler == nil {
		return id
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[name] = append(b.handlers[name], registration{id: id, handler: handler})
	return id
}

// Off removes the registration with the given ID. Unknown IDs are ignored.
func (b *Bus) Off(name Name, id HandlerID) {
	b.mu.Lock()
	defer b.mu.Unlock()

	current := b.handlers[name]
	for i, reg := range current {
		if reg.id != id {
			continue
		}
		// Copy instead of shifting in place: Emit may be iterating over the old slice.
		remaining := make([]registration, 0, len(current)-1)
		remaining = append(remaining, current[:i]...)
		remaining = append(remaining, current[i+1:]...)
		if len(remaining) == 0 {
			delete(b.handlers, name)
		} else {
			b.handlers[name] = remaining
		}
		return
	}
}

// Emit invokes every handler currently registered for name with args.
// Handlers registered or removed while Emit runs take effect on the next Emit.
// A panicking handler is logged and skipped; the remaining handlers still run.
func (b *Bus) Emit(name Name, args ...interface{}) {
	b.mu.RLock()
	snapshot := b.handlers[name]
	b.mu.RUnlock()

	for _, reg := range snapshot {
		b.invoke(name, reg, args)
	}
}

// Count returns how many handlers are registered for name.
func (b *Bus) Count(name Name) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[name])
}

func (b *Bus) invoke(name Name, reg registration, args []interface{}) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Str("event", string(name)).
				Uint64("handler", uint64(reg.id)).
				Interface("panic", r).
				Str("stack", string(debug.Stack())).
				Msg("event handler panicked")
		}
	}()
	reg.handler(args...)
}
