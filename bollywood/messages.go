// File: bollywood/messages.go
package bollywood

import "fmt"

// Started is the first message every actor receives.
type Started struct{}

// Stopping is delivered once when the actor is asked to stop.
type Stopping struct{}

// Stopped is the last message an actor receives.
type Stopped struct{}

type messageEnvelope struct {
	Sender  *PID
	Message interface{}
}

func isSystemMessage(message interface{}) bool {
	switch message.(type) {
	case Started, Stopping, Stopped:
		return true
	}
	return false
}

func typeName(message interface{}) string {
	return fmt.Sprintf("%T", message)
}
