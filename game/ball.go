// File: game/ball.go
package game

import (
	"math"

	"github.com/lguibr/pongsim/utils"
)

// Ball moves along a unit direction at a scalar speed.
// Speed stays within [MinSpeed, MaxSpeed]; only paddle hits change it.
type Ball struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	DirX     float64 `json:"dirX"`
	DirY     float64 `json:"dirY"`
	Speed    float64 `json:"speed"`
	Radius   float64 `json:"radius"`
	MinSpeed float64 `json:"-"`
	MaxSpeed float64 `json:"-"`
}

func NewBall(radius float64, tuning utils.ModeTuning) *Ball {
	return &Ball{
		Radius:   radius,
		Speed:    tuning.InitialSpeed,
		MinSpeed: tuning.InitialSpeed,
		MaxSpeed: tuning.MaxSpeed,
	}
}

// Vx and Vy return the velocity components in units per second.
func (b *Ball) Vx() float64 { return b.DirX * b.Speed }
func (b *Ball) Vy() float64 { return b.DirY * b.Speed }

// Move integrates the position over dt seconds.
func (b *Ball) Move(dt float64) {
	b.X += b.Vx() * dt
	b.Y += b.Vy() * dt
}

// Center puts the ball at rest in the middle of the field.
func (b *Ball) Center() {
	b.X, b.Y = 0, 0
	b.DirX, b.DirY = 0, 0
	b.Speed = b.MinSpeed
}

// Launch sets the direction from an angle off the horizontal, towards side (-1 left, 1 right),
// at the initial speed.
func (b *Ball) Launch(side, angle float64) {
	if side == 0 {
		side = 1
	}
	b.DirX = utils.Sign(side) * math.Cos(angle)
	b.DirY = math.Sin(angle)
	b.Speed = b.MinSpeed
}

// SetDirection normalizes (x, y) and stores it. The zero vector leaves the direction unchanged.
func (b *Ball) SetDirection(x, y float64) {
	nx, ny := utils.Normalize(x, y)
	if nx == 0 && ny == 0 {
		return
	}
	b.DirX, b.DirY = nx, ny
}

// Accelerate adds increment to the speed, clamped to [MinSpeed, MaxSpeed].
func (b *Ball) Accelerate(increment float64) {
	b.Speed = utils.Clamp(b.Speed+increment, b.MinSpeed, b.MaxSpeed)
}

// ReflectX points the horizontal direction towards sign (1 right, -1 left).
func (b *Ball) ReflectX(sign float64) {
	b.DirX = sign * math.Abs(b.DirX)
}

// ReflectY points the vertical direction towards sign (1 up, -1 down).
func (b *Ball) ReflectY(sign float64) {
	b.DirY = sign * math.Abs(b.DirY)
}

func (b *Ball) IsMoving() bool {
	return b.DirX != 0 || b.DirY != 0
}
