// File: game/game.go
package game

import (
	"math/rand"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"github.com/lguibr/pongsim/utils"
	"github.com/rs/zerolog/log"
)

// Game owns the score model, the physics engine, the paddles and their controllers,
// and drives them one tick per frame. All methods must be called from the goroutine
// running the frames (see FrameLoop.Post).
type Game struct {
	id     string
	cfg    utils.Config
	config GameConfig
	rng    *rand.Rand

	data    *GameData
	mode    Mode
	physics *Physics
	ball    *Ball
	paddles []*Paddle

	controllers []Controller
	humans      []*HumanController // Parallel to paddles; nil where an AI drives the paddle

	aiEnabled    bool
	aiDifficulty AIDifficulty

	tick      uint64
	stopped   bool
	running   bool
	scheduler FrameScheduler
	renderers []func(Snapshot)
}

// NewGame builds an idle game. Invalid GameConfig values fall back to their defaults.
func NewGame(cfg utils.Config, config GameConfig) *Game {
	config = config.normalized(cfg.DefaultMaxScore)
	g := &Game{
		id:     uuid.NewString(),
		cfg:    cfg,
		config: config,
		rng:    utils.NewRand(cfg.Seed),
		data:   NewGameData(config),
	}
	g.configure(config.GameType)

	log.Info().
		Str("game", g.id).
		Str("mode", g.mode.Type().String()).
		Int("maxScore", config.MaxScore).
		Str("player0", config.Player0Name).
		Str("player1", config.Player1Name).
		Msg("game created")
	return g
}

// configure builds the paddle topology and physics of mode t.
func (g *Game) configure(t GameType) {
	g.mode = NewMode(t, g.cfg)
	tuning := g.mode.Tuning()

	g.physics = NewPhysics(g.cfg, tuning, g.rng)
	g.ball = NewBall(g.cfg.BallRadius, tuning)

	specs := g.mode.Layout()
	g.paddles = make([]*Paddle, len(specs))
	g.controllers = make([]Controller, len(specs))
	g.humans = make([]*HumanController, len(specs))
	for i, spec := range specs {
		g.paddles[i] = NewPaddle(i, spec, g.cfg.FieldHalfHeight)
		human := NewHumanController(tuning.PaddleSpeed, spec.Bindings...)
		g.humans[i] = human
		g.controllers[i] = human
	}
	if g.aiEnabled {
		g.installAI()
	}
	g.physics.Reset(g.ball, g.paddles)
}

func (g *Game) installAI() {
	slot := g.mode.AISlot()
	if slot < 0 || slot >= len(g.controllers) {
		return
	}
	tuning := AITuningFor(g.cfg, g.aiDifficulty)
	g.controllers[slot] = NewAIController(g.aiDifficulty, tuning, g.mode.Tuning().PaddleSpeed, g.rng)
	g.humans[slot] = nil
}

func (g *Game) ID() string             { return g.id }
func (g *Game) State() GameState       { return g.data.State() }
func (g *Game) GameType() GameType     { return g.data.GameType() }
func (g *Game) Scores() ScoreChange    { return g.data.Scores() }
func (g *Game) Winner() int            { return g.data.Winner() }
func (g *Game) Ticks() uint64          { return g.tick }
func (g *Game) Config() GameConfig     { return g.config }
func (g *Game) IsManuallyStopped() bool { return g.stopped }

// Events returns the subscription surface of the game's bus.
func (g *Game) Events() Events { return g.data }

// AI reports whether an AI drives the AI slot and at which difficulty.
func (g *Game) AI() (bool, AIDifficulty) { return g.aiEnabled, g.aiDifficulty }

// SetGameMode switches the paddle topology. Only allowed before play starts
// (IDLE or GAME_OVER); calls while PLAYING or PAUSED are ignored.
func (g *Game) SetGameMode(t GameType) {
	state := g.data.State()
	if state == StatePlaying || state == StatePaused {
		log.Debug().Str("game", g.id).Str("state", state.String()).Msg("ignoring mode change during play")
		return
	}
	g.configure(t)
	g.data.SetGameType(g.mode.Type())
}

// EnableAI replaces the controller of the mode's AI slot with an AI of difficulty.
func (g *Game) EnableAI(difficulty AIDifficulty) {
	if difficulty != DifficultyEasy && difficulty != DifficultyMedium && difficulty != DifficultyHard {
		difficulty = DifficultyMedium
	}
	g.aiEnabled = true
	g.aiDifficulty = difficulty
	g.installAI()
	log.Info().Str("game", g.id).Str("difficulty", difficulty.String()).Msg("AI enabled")
}

// DisableAI hands the AI slot back to its keyboard controller.
func (g *Game) DisableAI() {
	if !g.aiEnabled {
		return
	}
	g.aiEnabled = false
	slot := g.mode.AISlot()
	specs := g.mode.Layout()
	if slot < 0 || slot >= len(specs) {
		return
	}
	human := NewHumanController(g.mode.Tuning().PaddleSpeed, specs[slot].Bindings...)
	g.humans[slot] = human
	g.controllers[slot] = human
}

func (g *Game) StartGame()  { g.data.StartGame() }
func (g *Game) PauseGame()  { g.data.PauseGame() }
func (g *Game) ResumeGame() { g.data.ResumeGame() }

// TogglePause pauses a running game or resumes a paused one.
func (g *Game) TogglePause() {
	switch g.data.State() {
	case StatePlaying:
		g.data.PauseGame()
	case StatePaused:
		g.data.ResumeGame()
	}
}

// ResetGame clears the score model and puts ball and paddles back to center.
func (g *Game) ResetGame() {
	g.data.ResetGame()
	g.physics.Reset(g.ball, g.paddles)
	for _, human := range g.humans {
		if human != nil {
			human.Release()
		}
	}
}

// StopGame halts the frame loop for good. Repeated calls are no-ops.
func (g *Game) StopGame() {
	if g.stopped {
		return
	}
	g.stopped = true
	log.Info().Str("game", g.id).Uint64("tick", g.tick).Msg("game stopped manually")
	g.data.emit(EventGameStopped)
}

// KeyDown routes a key press to every keyboard controller bound to it.
func (g *Game) KeyDown(key string) bool {
	handled := false
	for _, human := range g.humans {
		if human != nil && human.KeyDown(key) {
			handled = true
		}
	}
	return handled
}

// KeyUp routes a key release to every keyboard controller bound to it.
func (g *Game) KeyUp(key string) bool {
	handled := false
	for _, human := range g.humans {
		if human != nil && human.KeyUp(key) {
			handled = true
		}
	}
	return handled
}

// Tick runs one simulation step if the game is PLAYING and not stopped.
// Controllers are evaluated first, then physics, then event emission.
func (g *Game) Tick() bool {
	if g.stopped || g.data.State() != StatePlaying {
		return false
	}

	dt := g.cfg.Step()
	ballView := BallView{
		X: g.ball.X, Y: g.ball.Y,
		DirX: g.ball.DirX, DirY: g.ball.DirY,
		Speed:  g.ball.Speed,
		InPlay: !g.physics.Serving(),
	}
	deltas := make([]float64, len(g.paddles))
	for i, controller := range g.controllers {
		if controller == nil {
			continue
		}
		paddle := g.paddles[i]
		deltas[i] = g.safeDelta(controller, TickView{
			Tick: g.tick,
			Dt:   dt,
			Ball: ballView,
			Paddle: PaddleView{
				Index: i, X: paddle.X, Y: paddle.Y,
				Height: paddle.Height, Facing: paddle.Facing,
				MinBound: paddle.MinBound, MaxBound: paddle.MaxBound,
			},
		})
	}

	result := g.physics.Step(g.ball, g.paddles, deltas, g.data)

	if result.PaddleHit >= 0 {
		g.data.emit(EventPaddleHit, result.PaddleHit, g.ball.Speed)
	}
	if result.Served {
		g.data.emit(EventBallServed, g.ball.DirX, g.ball.DirY)
	}
	g.tick++
	return true
}

// safeDelta degrades a failing controller to no movement.
func (g *Game) safeDelta(controller Controller, view TickView) (delta float64) {
	defer func() {
		if r := recover(); r != nil {
			log.Warn().
				Str("game", g.id).
				Int("paddle", view.Paddle.Index).
				Interface("panic", r).
				Str("stack", string(debug.Stack())).
				Msg("controller failed, paddle holds still")
			delta = 0
		}
	}()
	delta = controller.Delta(view)
	if !utils.IsFinite(delta) {
		return 0
	}
	return delta
}

// OnFrame registers a render step, called with a snapshot after every frame's tick.
func (g *Game) OnFrame(render func(Snapshot)) {
	if render != nil {
		g.renderers = append(g.renderers, render)
	}
}

// Run arms the first frame on scheduler. Every frame ticks, renders and re-arms
// itself until the game is stopped manually.
func (g *Game) Run(scheduler FrameScheduler) {
	if g.running || g.stopped || scheduler == nil {
		return
	}
	g.running = true
	g.scheduler = scheduler
	scheduler.RequestFrame(g.frame)
}

func (g *Game) frame(now time.Time) {
	if g.stopped {
		g.running = false
		return
	}
	g.Tick()
	if len(g.renderers) > 0 {
		snapshot := g.Snapshot()
		for _, render := range g.renderers {
			g.safeRender(render, snapshot)
		}
	}
	if g.stopped {
		g.running = false
		return
	}
	g.scheduler.RequestFrame(g.frame)
}

func (g *Game) safeRender(render func(Snapshot), snapshot Snapshot) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Str("game", g.id).Interface("panic", r).Msg("render step failed")
		}
	}()
	render(snapshot)
}
