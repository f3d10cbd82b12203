// File: game/paddle.go
package game

import "github.com/lguibr/pongsim/utils"

// Paddle is an axis-aligned rectangle centered on (X, Y) that moves only along Y.
type Paddle struct {
	Index  int     `json:"index"`
	Owner  int     `json:"owner"` // Player index, or SharedPaddle
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	// Facing is the side the paddle returns the ball to: 1 right, -1 left, 0 both faces.
	Facing   int     `json:"facing"`
	MinBound float64 `json:"-"`
	MaxBound float64 `json:"-"`
}

// SharedPaddle is the owner of a paddle no single player defends with, like the center paddle.
const SharedPaddle = -1

// NewPaddle builds a paddle from its layout spec, centered vertically, with bounds
// that keep it inside the walls.
func NewPaddle(index int, spec PaddleSpec, fieldHalfHeight float64) *Paddle {
	limit := fieldHalfHeight - spec.Height/2
	return &Paddle{
		Index:    index,
		Owner:    spec.Owner,
		X:        spec.X,
		Width:    spec.Width,
		Height:   spec.Height,
		Facing:   spec.Facing,
		MinBound: -limit,
		MaxBound: limit,
	}
}

// Move applies delta and clamps the result to [MinBound, MaxBound].
// A non-finite delta is treated as no movement.
func (p *Paddle) Move(delta float64) {
	if !utils.IsFinite(delta) {
		return
	}
	p.Y = utils.Clamp(p.Y+delta, p.MinBound, p.MaxBound)
}

func (p *Paddle) Top() float64    { return p.Y + p.Height/2 }
func (p *Paddle) Bottom() float64 { return p.Y - p.Height/2 }
func (p *Paddle) Left() float64   { return p.X - p.Width/2 }
func (p *Paddle) Right() float64  { return p.X + p.Width/2 }

// Home recenters the paddle.
func (p *Paddle) Home() {
	p.Y = utils.Clamp(0, p.MinBound, p.MaxBound)
}
