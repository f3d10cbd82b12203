// File: game/collision_tracker.go
package game

// CollisionKey identifies a ball/paddle contact.
type CollisionKey struct {
	BallID   int
	PaddleID int
}

// CollisionTracker remembers which contacts are ongoing so a contact spanning several
// ticks gets one response. Owned by the physics engine; not safe for concurrent use.
type CollisionTracker struct {
	active map[CollisionKey]struct{}
}

func NewCollisionTracker() *CollisionTracker {
	return &CollisionTracker{active: make(map[CollisionKey]struct{})}
}

// BeginCollision registers a contact and returns true only if it was not already active.
func (ct *CollisionTracker) BeginCollision(key CollisionKey) bool {
	if _, exists := ct.active[key]; exists {
		return false
	}
	ct.active[key] = struct{}{}
	return true
}

// EndCollision forgets a contact. Unknown keys are ignored.
func (ct *CollisionTracker) EndCollision(key CollisionKey) {
	delete(ct.active, key)
}

func (ct *CollisionTracker) IsColliding(key CollisionKey) bool {
	_, exists := ct.active[key]
	return exists
}

// ActiveCount returns the number of ongoing contacts.
func (ct *CollisionTracker) ActiveCount() int {
	return len(ct.active)
}

func (ct *CollisionTracker) ClearAll() {
	ct.active = make(map[CollisionKey]struct{})
}
