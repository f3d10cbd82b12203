// File: bollywood/pid.go
package bollywood

// PID identifies a spawned actor within its engine.
type PID struct {
	ID string
}

func (p *PID) String() string {
	if p == nil {
		return "<nil>"
	}
	return p.ID
}
