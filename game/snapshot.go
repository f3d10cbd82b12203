// File: game/snapshot.go
package game

// BallState is the ball as seen by renderers.
type BallState struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	DirX   float64 `json:"dirX"`
	DirY   float64 `json:"dirY"`
	Speed  float64 `json:"speed"`
	Radius float64 `json:"radius"`
}

// PaddleState is one paddle as seen by renderers.
type PaddleState struct {
	Index  int     `json:"index"`
	Owner  int     `json:"owner"` // SharedPaddle for the multiplayer center paddle
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// FieldState describes the playfield, centered at the origin.
type FieldState struct {
	HalfWidth  float64 `json:"halfWidth"` // Goal lines sit at x = ±HalfWidth
	HalfHeight float64 `json:"halfHeight"`
}

// Snapshot is a value copy of everything a renderer needs to draw one frame.
type Snapshot struct {
	ID         string        `json:"id"`
	Tick       uint64        `json:"tick"`
	State      GameState     `json:"state"`
	Type       GameType      `json:"type"`
	MaxScore   int           `json:"maxScore"`
	Scores     ScoreChange   `json:"scores"`
	Names      [2]string     `json:"names"`
	Winner     int           `json:"winner"`
	AI         bool          `json:"ai"`
	Difficulty string        `json:"difficulty,omitempty"`
	Serving    bool          `json:"serving"`
	Stopped    bool          `json:"stopped"`
	Ball       BallState     `json:"ball"`
	Paddles    []PaddleState `json:"paddles"`
	Field      FieldState    `json:"field"`
}

// Snapshot copies the current game state. The result shares no memory with the game.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		ID:       g.id,
		Tick:     g.tick,
		State:    g.data.State(),
		Type:     g.data.GameType(),
		MaxScore: g.data.MaxScore(),
		Scores:   g.data.Scores(),
		Names:    [2]string{g.data.PlayerName(0), g.data.PlayerName(1)},
		Winner:   g.data.Winner(),
		AI:       g.aiEnabled,
		Serving:  g.physics.Serving(),
		Stopped:  g.stopped,
		Ball: BallState{
			X: g.ball.X, Y: g.ball.Y,
			DirX: g.ball.DirX, DirY: g.ball.DirY,
			Speed:  g.ball.Speed,
			Radius: g.ball.Radius,
		},
		Paddles: make([]PaddleState, len(g.paddles)),
		Field: FieldState{
			HalfWidth:  g.cfg.OutOfBoundsX,
			HalfHeight: g.cfg.FieldHalfHeight,
		},
	}
	if g.aiEnabled {
		snap.Difficulty = g.aiDifficulty.String()
	}
	for i, p := range g.paddles {
		snap.Paddles[i] = PaddleState{
			Index: p.Index, Owner: p.Owner,
			X: p.X, Y: p.Y,
			Width: p.Width, Height: p.Height,
		}
	}
	return snap
}
