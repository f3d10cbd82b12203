// File: game/controller.go
package game

import (
	"strings"

	"github.com/lguibr/pongsim/utils"
)

// BallView is a read-only copy of the ball handed to controllers.
type BallView struct {
	X, Y       float64
	DirX, DirY float64
	Speed      float64
	InPlay     bool // False while the ball waits at center for a serve
}

// PaddleView is a read-only copy of the controlled paddle.
type PaddleView struct {
	Index    int
	X, Y     float64
	Height   float64
	Facing   int
	MinBound float64
	MaxBound float64
}

// TickView is everything a controller may look at to propose a delta.
type TickView struct {
	Tick   uint64
	Dt     float64 // Seconds per tick
	Ball   BallView
	Paddle PaddleView
}

// Controller proposes a paddle movement for one tick. It never mutates game state;
// the physics engine applies and clamps the delta.
type Controller interface {
	Delta(view TickView) float64
}

// KeyBindings maps one key to upward and one to downward movement.
type KeyBindings struct {
	Up   string `json:"up"`
	Down string `json:"down"`
}

// HumanController turns held keys into movement at a fixed speed.
type HumanController struct {
	bindings []KeyBindings
	speed    float64
	pressed  map[string]bool
}

func NewHumanController(speed float64, bindings ...KeyBindings) *HumanController {
	normalized := make([]KeyBindings, 0, len(bindings))
	for _, b := range bindings {
		normalized = append(normalized, KeyBindings{Up: normalizeKey(b.Up), Down: normalizeKey(b.Down)})
	}
	return &HumanController{
		bindings: normalized,
		speed:    speed,
		pressed:  make(map[string]bool),
	}
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// Handles reports whether key is bound to this controller.
func (c *HumanController) Handles(key string) bool {
	key = normalizeKey(key)
	if key == "" {
		return false
	}
	for _, b := range c.bindings {
		if key == b.Up || key == b.Down {
			return true
		}
	}
	return false
}

// KeyDown marks a bound key as held. Unbound keys are ignored and return false.
func (c *HumanController) KeyDown(key string) bool {
	if !c.Handles(key) {
		return false
	}
	c.pressed[normalizeKey(key)] = true
	return true
}

// KeyUp releases a bound key. Unbound keys are ignored and return false.
func (c *HumanController) KeyUp(key string) bool {
	if !c.Handles(key) {
		return false
	}
	delete(c.pressed, normalizeKey(key))
	return true
}

// Release drops every held key.
func (c *HumanController) Release() {
	c.pressed = make(map[string]bool)
}

func (c *HumanController) Delta(view TickView) float64 {
	direction := 0.0
	for _, b := range c.bindings {
		if c.pressed[b.Up] {
			direction++
		}
		if c.pressed[b.Down] {
			direction--
		}
	}
	// Opposite keys cancel out; two players pushing the same way do not stack.
	return clampDelta(view.Paddle, utils.Sign(direction)*c.speed*view.Dt)
}

// clampDelta limits delta so the paddle stays within its bounds.
func clampDelta(paddle PaddleView, delta float64) float64 {
	if !utils.IsFinite(delta) {
		return 0
	}
	return utils.Clamp(delta, paddle.MinBound-paddle.Y, paddle.MaxBound-paddle.Y)
}
