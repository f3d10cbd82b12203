// File: bollywood/props.go
package bollywood

// Actor processes one message at a time. Receive is never called concurrently
// for the same actor.
type Actor interface {
	Receive(ctx Context)
}

// Producer creates a fresh actor instance.
type Producer func() Actor

// Props describes how to create an actor.
type Props struct {
	producer Producer
}

func NewProps(producer Producer) *Props {
	return &Props{producer: producer}
}

// Produce returns a new actor, or nil when Props carries no producer.
func (p *Props) Produce() Actor {
	if p == nil || p.producer == nil {
		return nil
	}
	return p.producer()
}
