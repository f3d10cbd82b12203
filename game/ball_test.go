// File: game/ball_test.go
package game

import (
	"math"
	"testing"

	"github.com/lguibr/pongsim/utils"
	"github.com/stretchr/testify/assert"
)

func newTestBall() *Ball {
	return NewBall(8, utils.ModeTuning{InitialSpeed: 300, SpeedIncrement: 50, MaxSpeed: 400, PaddleSpeed: 400})
}

func TestBall_Launch(t *testing.T) {
	testCases := []struct {
		name  string
		side  float64
		angle float64
		dirX  float64
		dirY  float64
	}{
		{"Right flat", 1, 0, 1, 0},
		{"Left flat", -1, 0, -1, 0},
		{"Zero side goes right", 0, 0, 1, 0},
		{"Right upward", 1, math.Pi / 6, math.Cos(math.Pi / 6), 0.5},
		{"Left downward", -1, -math.Pi / 6, -math.Cos(math.Pi / 6), -0.5},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ball := newTestBall()
			ball.Speed = 380
			ball.Launch(tc.side, tc.angle)

			assert.InDelta(t, tc.dirX, ball.DirX, 1e-9)
			assert.InDelta(t, tc.dirY, ball.DirY, 1e-9)
			assert.Equal(t, 300.0, ball.Speed, "launch resets to the initial speed")
			assert.InDelta(t, 1, utils.Length(ball.DirX, ball.DirY), 1e-9)
		})
	}
}

func TestBall_Move(t *testing.T) {
	ball := newTestBall()
	ball.Launch(1, 0)
	ball.Move(0.5)
	assert.InDelta(t, 150, ball.X, 1e-9)
	assert.InDelta(t, 0, ball.Y, 1e-9)
}

func TestBall_AccelerateIsClamped(t *testing.T) {
	ball := newTestBall()
	ball.Launch(1, 0)

	ball.Accelerate(50)
	assert.Equal(t, 350.0, ball.Speed)
	ball.Accelerate(50)
	assert.Equal(t, 400.0, ball.Speed)
	ball.Accelerate(50)
	assert.Equal(t, 400.0, ball.Speed, "speed never exceeds MaxSpeed")

	ball.Accelerate(-1000)
	assert.Equal(t, 300.0, ball.Speed, "speed never drops below MinSpeed")
}

func TestBall_ReflectKeepsSpeed(t *testing.T) {
	ball := newTestBall()
	ball.Launch(1, math.Pi/4)
	speed := ball.Speed

	ball.ReflectY(-1)
	assert.Less(t, ball.DirY, 0.0)
	ball.ReflectX(-1)
	assert.Less(t, ball.DirX, 0.0)
	assert.Equal(t, speed, ball.Speed)
	assert.InDelta(t, 1, utils.Length(ball.DirX, ball.DirY), 1e-9)
}

func TestBall_CenterAndSetDirection(t *testing.T) {
	ball := newTestBall()
	ball.Launch(1, 0)
	ball.Move(1)
	ball.Accelerate(50)

	ball.Center()
	assert.Equal(t, 0.0, ball.X)
	assert.Equal(t, 0.0, ball.Y)
	assert.False(t, ball.IsMoving())
	assert.Equal(t, 300.0, ball.Speed)

	ball.SetDirection(0, 0)
	assert.False(t, ball.IsMoving(), "zero vector is ignored")

	ball.SetDirection(3, 4)
	assert.InDelta(t, 0.6, ball.DirX, 1e-9)
	assert.InDelta(t, 0.8, ball.DirY, 1e-9)
}
