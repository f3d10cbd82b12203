// File: game/game_data.go
package game

import (
	"github.com/lguibr/pongsim/events"
	"github.com/lguibr/pongsim/utils"
	"github.com/rs/zerolog/log"
)

// GameData is the authoritative score and lifecycle model of one game.
// Invariant: winner != NoWinner exactly when state == StateGameOver.
type GameData struct {
	bus *events.Bus

	scores   [utils.PlayerCount]int
	names    [utils.PlayerCount]string
	state    GameState
	gameType GameType
	maxScore int
	winner   int
}

// NewGameData creates an idle game with zero scores.
// cfg is expected to be normalized; a non-positive MaxScore falls back to utils.DefaultMaxScore.
func NewGameData(cfg GameConfig) *GameData {
	cfg = cfg.normalized(utils.DefaultMaxScore)
	return &GameData{
		bus:      events.New(),
		names:    [utils.PlayerCount]string{cfg.Player0Name, cfg.Player1Name},
		state:    StateIdle,
		gameType: cfg.GameType,
		maxScore: cfg.MaxScore,
		winner:   NoWinner,
	}
}

func (d *GameData) State() GameState   { return d.state }
func (d *GameData) GameType() GameType { return d.gameType }
func (d *GameData) MaxScore() int      { return d.maxScore }
func (d *GameData) Winner() int        { return d.winner }

// Score returns player n's score, or 0 for an unknown player.
func (d *GameData) Score(n int) int {
	if n < 0 || n >= utils.PlayerCount {
		return 0
	}
	return d.scores[n]
}

// Scores returns both scores.
func (d *GameData) Scores() ScoreChange {
	return ScoreChange{Player0: d.scores[0], Player1: d.scores[1]}
}

// PlayerName returns player n's display name, or "" for an unknown player.
func (d *GameData) PlayerName(n int) string {
	if n < 0 || n >= utils.PlayerCount {
		return ""
	}
	return d.names[n]
}

// ResetGame clears scores and winner and returns to StateIdle.
func (d *GameData) ResetGame() {
	d.scores = [utils.PlayerCount]int{}
	d.winner = NoWinner
	d.setState(StateIdle)
	d.bus.Emit(EventGameReset)
}

// ScorePlayer adds one point to player n and evaluates the win condition.
// It is a no-op once the game is over or for an unknown player.
func (d *GameData) ScorePlayer(n int) {
	if n < 0 || n >= utils.PlayerCount {
		log.Debug().Int("player", n).Msg("ignoring score for unknown player")
		return
	}
	if d.state == StateGameOver {
		return
	}

	d.scores[n]++
	d.bus.Emit(EventScoreChanged, d.Scores())
	d.checkWinner()
}

func (d *GameData) ScorePlayer0() { d.ScorePlayer(0) }
func (d *GameData) ScorePlayer1() { d.ScorePlayer(1) }

// checkWinner ends the game when a player reaches the max score.
// Evaluated after every single increment, so at most one player can reach it.
func (d *GameData) checkWinner() {
	for n, score := range d.scores {
		if score < d.maxScore {
			continue
		}
		d.winner = n
		d.setState(StateGameOver)
		d.bus.Emit(EventPlayerWon, n, d.names[n])
		return
	}
}

// StartGame moves IDLE to PLAYING.
func (d *GameData) StartGame() {
	if d.state == StateIdle {
		d.setState(StatePlaying)
	}
}

// PauseGame moves PLAYING to PAUSED.
func (d *GameData) PauseGame() {
	if d.state == StatePlaying {
		d.setState(StatePaused)
	}
}

// ResumeGame moves PAUSED to PLAYING.
func (d *GameData) ResumeGame() {
	if d.state == StatePaused {
		d.setState(StatePlaying)
	}
}

// SetGameType records the active mode, emitting GAME_TYPE_CHANGED when it differs.
func (d *GameData) SetGameType(t GameType) {
	if t == d.gameType {
		return
	}
	old := d.gameType
	d.gameType = t
	d.bus.Emit(EventGameTypeChanged, t, old)
}

func (d *GameData) setState(state GameState) {
	if state == d.state {
		return
	}
	d.state = state
	d.bus.Emit(EventGameStateChanged, state)
}

func (d *GameData) emit(name events.Name, args ...interface{}) {
	d.bus.Emit(name, args...)
}

// --- Typed subscriptions ---

func (d *GameData) subscribe(name events.Name, h events.Handler) Subscription {
	return Subscription{Event: name, ID: d.bus.On(name, h)}
}

// Off removes a subscription. Unknown subscriptions are ignored.
func (d *GameData) Off(sub Subscription) {
	d.bus.Off(sub.Event, sub.ID)
}

func (d *GameData) OnScoreChanged(fn func(ScoreChange)) Subscription {
	return d.subscribe(EventScoreChanged, func(args ...interface{}) {
		if len(args) == 0 {
			return
		}
		if change, ok := args[0].(ScoreChange); ok {
			fn(change)
		}
	})
}

func (d *GameData) OnGameStateChanged(fn func(GameState)) Subscription {
	return d.subscribe(EventGameStateChanged, func(args ...interface{}) {
		if len(args) == 0 {
			return
		}
		if state, ok := args[0].(GameState); ok {
			fn(state)
		}
	})
}

func (d *GameData) OnGameReset(fn func()) Subscription {
	return d.subscribe(EventGameReset, func(args ...interface{}) { fn() })
}

func (d *GameData) OnPlayerWon(fn func(PlayerWon)) Subscription {
	return d.subscribe(EventPlayerWon, func(args ...interface{}) {
		index, ok := argInt(args, 0)
		if !ok || len(args) < 2 {
			return
		}
		name, _ := args[1].(string)
		fn(PlayerWon{Index: index, Name: name})
	})
}

func (d *GameData) OnGameTypeChanged(fn func(GameTypeChange)) Subscription {
	return d.subscribe(EventGameTypeChanged, func(args ...interface{}) {
		if len(args) < 2 {
			return
		}
		newType, okNew := args[0].(GameType)
		oldType, okOld := args[1].(GameType)
		if okNew && okOld {
			fn(GameTypeChange{New: newType, Old: oldType})
		}
	})
}

func (d *GameData) OnPaddleHit(fn func(PaddleHit)) Subscription {
	return d.subscribe(EventPaddleHit, func(args ...interface{}) {
		paddle, okPaddle := argInt(args, 0)
		speed, okSpeed := argFloat(args, 1)
		if okPaddle && okSpeed {
			fn(PaddleHit{Paddle: paddle, Speed: speed})
		}
	})
}

func (d *GameData) OnBallServed(fn func(BallServed)) Subscription {
	return d.subscribe(EventBallServed, func(args ...interface{}) {
		dirX, okX := argFloat(args, 0)
		dirY, okY := argFloat(args, 1)
		if okX && okY {
			fn(BallServed{DirX: dirX, DirY: dirY})
		}
	})
}

func (d *GameData) OnGameStopped(fn func()) Subscription {
	return d.subscribe(EventGameStopped, func(args ...interface{}) { fn() })
}
