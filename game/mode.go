// File: game/mode.go
package game

import "github.com/lguibr/pongsim/utils"

// PaddleSpec describes one paddle of a mode's layout.
type PaddleSpec struct {
	Owner    int
	X        float64
	Width    float64
	Height   float64
	Facing   int
	Bindings []KeyBindings
}

// Mode maps a game type to its paddle topology and physics tuning.
type Mode interface {
	Type() GameType
	Tuning() utils.ModeTuning
	// Layout returns the paddles in a fixed order; the index in the slice is the paddle index.
	Layout() []PaddleSpec
	// AISlot is the layout index whose controller EnableAI replaces.
	AISlot() int
}

var (
	Player0Keys = KeyBindings{Up: "w", Down: "s"}
	Player1Keys = KeyBindings{Up: "o", Down: "l"}
	CenterKeys  = KeyBindings{Up: "i", Down: "k"}
	NumpadKeys  = KeyBindings{Up: "8", Down: "2"}
)

// NewMode returns the strategy for t. Unknown types get the default mode.
func NewMode(t GameType, cfg utils.Config) Mode {
	switch t {
	case GameTypeMultiplayer:
		return multiplayerMode{cfg: cfg}
	case GameTypeDefault:
		return defaultMode{cfg: cfg}
	default:
		return defaultMode{cfg: cfg}
	}
}

func goalPaddles(cfg utils.Config) []PaddleSpec {
	x := cfg.OutOfBoundsX - cfg.PaddleInset
	return []PaddleSpec{
		{Owner: 0, X: -x, Width: cfg.PaddleWidth, Height: cfg.PaddleHeight, Facing: 1, Bindings: []KeyBindings{Player0Keys}},
		{Owner: 1, X: x, Width: cfg.PaddleWidth, Height: cfg.PaddleHeight, Facing: -1, Bindings: []KeyBindings{Player1Keys}},
	}
}

// defaultMode: one paddle in front of each goal.
type defaultMode struct {
	cfg utils.Config
}

func (m defaultMode) Type() GameType           { return GameTypeDefault }
func (m defaultMode) Tuning() utils.ModeTuning { return m.cfg.Modes.Default }
func (m defaultMode) Layout() []PaddleSpec     { return goalPaddles(m.cfg) }
func (m defaultMode) AISlot() int              { return 1 }

// multiplayerMode: the goal paddles plus a shared center paddle that returns the
// ball from both faces. Two players can drive it with separate key sets.
type multiplayerMode struct {
	cfg utils.Config
}

func (m multiplayerMode) Type() GameType           { return GameTypeMultiplayer }
func (m multiplayerMode) Tuning() utils.ModeTuning { return m.cfg.Modes.Multiplayer }
func (m multiplayerMode) AISlot() int              { return 1 }

func (m multiplayerMode) Layout() []PaddleSpec {
	center := PaddleSpec{
		Owner:    SharedPaddle,
		X:        0,
		Width:    m.cfg.PaddleWidth,
		Height:   m.cfg.CenterPaddleHeight,
		Facing:   0,
		Bindings: []KeyBindings{CenterKeys, NumpadKeys},
	}
	return append(goalPaddles(m.cfg), center)
}
