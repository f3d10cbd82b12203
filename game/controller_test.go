// File: game/controller_test.go
package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func viewAt(y float64) TickView {
	return TickView{
		Dt: 0.016,
		Paddle: PaddleView{
			Index: 0, X: -485, Y: y, Height: 80, Facing: 1,
			MinBound: -260, MaxBound: 260,
		},
	}
}

func TestHumanController_Delta(t *testing.T) {
	testCases := []struct {
		name     string
		down     []string
		y        float64
		expected float64
	}{
		{"No keys", nil, 0, 0},
		{"Up", []string{"w"}, 0, 400 * 0.016},
		{"Down", []string{"s"}, 0, -400 * 0.016},
		{"Upper case key", []string{"W"}, 0, 400 * 0.016},
		{"Opposite keys cancel", []string{"w", "s"}, 0, 0},
		{"Unbound key", []string{"o"}, 0, 0},
		{"Clamped near top", []string{"w"}, 258, 2},
		{"At bottom bound", []string{"s"}, -260, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewHumanController(400, Player0Keys)
			for _, key := range tc.down {
				c.KeyDown(key)
			}
			assert.InDelta(t, tc.expected, c.Delta(viewAt(tc.y)), 1e-9)
		})
	}
}

func TestHumanController_KeyRouting(t *testing.T) {
	c := NewHumanController(400, Player0Keys)

	assert.True(t, c.Handles("w"))
	assert.True(t, c.Handles(" S "))
	assert.False(t, c.Handles(""))
	assert.False(t, c.KeyDown("l"))
	assert.False(t, c.KeyUp("l"))

	assert.True(t, c.KeyDown("w"))
	assert.True(t, c.KeyUp("w"))
	assert.Equal(t, 0.0, c.Delta(viewAt(0)))

	c.KeyDown("s")
	c.Release()
	assert.Equal(t, 0.0, c.Delta(viewAt(0)))
}

func TestHumanController_SharedBindingsDoNotStack(t *testing.T) {
	c := NewHumanController(400, CenterKeys, NumpadKeys)
	c.KeyDown("i")
	c.KeyDown("8")
	assert.InDelta(t, 400*0.016, c.Delta(viewAt(0)), 1e-9)

	c.KeyUp("i")
	c.KeyDown("k")
	assert.Equal(t, 0.0, c.Delta(viewAt(0)), "two players pushing opposite ways cancel out")
}
