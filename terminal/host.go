// File: terminal/host.go
package terminal

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lguibr/pongsim/game"
	"github.com/lguibr/pongsim/render"
	"github.com/lguibr/pongsim/utils"
	"github.com/rs/zerolog/log"
)

const helpLine = "space start  p pause  m mode  a ai  esc quit"

// Poster runs a task on the game loop goroutine.
type Poster interface {
	Post(task func())
}

// Sounds plays the host's sound effects.
type Sounds interface {
	PlayHit(speedRatio float64)
	PlayServe()
	PlayScore()
	PlayWin()
}

// Host connects a terminal screen to one game. Every method except Listen must run on
// the game loop goroutine.
type Host struct {
	game   *game.Game
	cfg    utils.Config
	loop   Poster
	screen tcell.Screen
	holds  *HoldTracker
	now    func() time.Time
}

func NewHost(g *game.Game, cfg utils.Config, loop Poster, screen tcell.Screen, holdTimeout time.Duration) *Host {
	return &Host{
		game:   g,
		cfg:    cfg,
		loop:   loop,
		screen: screen,
		holds:  NewHoldTracker(holdTimeout),
		now:    time.Now,
	}
}

// Listen forwards terminal events onto the loop until the screen is finalized or ctx ends.
func (h *Host) Listen(ctx context.Context) {
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil || ctx.Err() != nil {
				return
			}
			h.loop.Post(func() { h.HandleEvent(ev) })
		}
	}()
}

func (h *Host) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		h.HandleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		h.screen.Sync()
	}
}

// HandleKey runs a host command, or presses a paddle key and keeps it held until
// its auto-repeat stops.
func (h *Host) HandleKey(key tcell.Key, r rune) {
	if cmd := CommandFor(key, r); cmd != CommandNone {
		h.run(cmd)
		return
	}
	name, ok := KeyName(key, r)
	if !ok {
		return
	}
	if h.game.KeyDown(name) {
		h.holds.Press(name, h.now())
	}
}

func (h *Host) run(cmd Command) {
	log.Debug().Str("command", cmd.String()).Str("state", h.game.State().String()).Msg("host command")
	switch cmd {
	case CommandStart:
		switch h.game.State() {
		case game.StateIdle:
			h.game.StartGame()
		case game.StatePaused:
			h.game.ResumeGame()
		case game.StateGameOver:
			h.releaseAll()
			h.game.ResetGame()
			h.game.StartGame()
		}
	case CommandPause:
		h.game.TogglePause()
	case CommandMode:
		next := game.GameTypeMultiplayer
		if h.game.GameType() == game.GameTypeMultiplayer {
			next = game.GameTypeDefault
		}
		h.game.SetGameMode(next)
	case CommandAI:
		h.cycleAI()
	case CommandQuit:
		h.releaseAll()
		h.game.StopGame()
	}
}

// cycleAI steps through off, easy, medium, hard and back to off.
func (h *Host) cycleAI() {
	enabled, difficulty := h.game.AI()
	switch {
	case !enabled:
		h.game.EnableAI(game.DifficultyEasy)
	case difficulty == game.DifficultyEasy:
		h.game.EnableAI(game.DifficultyMedium)
	case difficulty == game.DifficultyMedium:
		h.game.EnableAI(game.DifficultyHard)
	default:
		h.game.DisableAI()
	}
}

func (h *Host) releaseAll() {
	for _, key := range h.holds.ReleaseAll() {
		h.game.KeyUp(key)
	}
}

// Render releases keys whose auto-repeat stopped and draws snap. Register it with
// Game.OnFrame.
func (h *Host) Render(snap game.Snapshot) {
	for _, key := range h.holds.Expired(h.now()) {
		h.game.KeyUp(key)
	}

	cols, rows := h.screen.Size()
	lines := render.ASCII(snap, cols, rows-1)
	lines = append(lines, helpLine)
	Draw(h.screen, lines)
	h.screen.Show()
}

// AttachSounds plays effects on paddle hits, serves, scores and wins.
func (h *Host) AttachSounds(sounds Sounds) []game.Subscription {
	ev := h.game.Events()
	return []game.Subscription{
		ev.OnPaddleHit(func(hit game.PaddleHit) {
			sounds.PlayHit(h.speedRatio(hit.Speed))
		}),
		ev.OnBallServed(func(game.BallServed) { sounds.PlayServe() }),
		ev.OnScoreChanged(func(c game.ScoreChange) {
			if c.Player0+c.Player1 > 0 {
				sounds.PlayScore()
			}
		}),
		ev.OnPlayerWon(func(game.PlayerWon) { sounds.PlayWin() }),
	}
}

func (h *Host) speedRatio(speed float64) float64 {
	tuning := h.cfg.Modes.Default
	if h.game.GameType() == game.GameTypeMultiplayer {
		tuning = h.cfg.Modes.Multiplayer
	}
	if tuning.MaxSpeed <= 0 {
		return 0
	}
	return speed / tuning.MaxSpeed
}
