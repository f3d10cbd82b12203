// File: game/messages.go
package game

import "github.com/lguibr/pongsim/events"

// Output events emitted on the game's bus.
const (
	EventScoreChanged     events.Name = "SCORE_CHANGED"      // ScoreChange
	EventGameStateChanged events.Name = "GAME_STATE_CHANGED" // GameState
	EventGameReset        events.Name = "GAME_RESET"         // no arguments
	EventPlayerWon        events.Name = "PLAYER_WON"         // winner index int, winner name string
	EventGameTypeChanged  events.Name = "GAME_TYPE_CHANGED"  // new GameType, old GameType
	EventPaddleHit        events.Name = "PADDLE_HIT"         // paddle index int, ball speed float64
	EventBallServed       events.Name = "BALL_SERVED"        // dirX float64, dirY float64
	EventGameStopped      events.Name = "GAME_STOPPED"       // no arguments
)

// ScoreChange is the payload of SCORE_CHANGED.
type ScoreChange struct {
	Player0 int `json:"player0"`
	Player1 int `json:"player1"`
}

// PlayerWon is the decoded payload of PLAYER_WON.
type PlayerWon struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
}

// GameTypeChange is the decoded payload of GAME_TYPE_CHANGED.
type GameTypeChange struct {
	New GameType `json:"new"`
	Old GameType `json:"old"`
}

// PaddleHit is the decoded payload of PADDLE_HIT.
type PaddleHit struct {
	Paddle int     `json:"paddle"`
	Speed  float64 `json:"speed"`
}

// BallServed is the decoded payload of BALL_SERVED.
type BallServed struct {
	DirX float64 `json:"dirX"`
	DirY float64 `json:"dirY"`
}

// Subscription identifies a typed registration so it can be removed with Off.
type Subscription struct {
	Event events.Name
	ID    events.HandlerID
}

// Events is the read-only subscription surface of a game.
type Events interface {
	OnScoreChanged(fn func(ScoreChange)) Subscription
	OnGameStateChanged(fn func(GameState)) Subscription
	OnGameReset(fn func()) Subscription
	OnPlayerWon(fn func(PlayerWon)) Subscription
	OnGameTypeChanged(fn func(GameTypeChange)) Subscription
	OnPaddleHit(fn func(PaddleHit)) Subscription
	OnBallServed(fn func(BallServed)) Subscription
	OnGameStopped(fn func()) Subscription
	Off(sub Subscription)
}

func argInt(args []interface{}, i int) (int, bool) {
	if i >= len(args) {
		return 0, false
	}
	v, ok := args[i].(int)
	return v, ok
}

func argFloat(args []interface{}, i int) (float64, bool) {
	if i >= len(args) {
		return 0, false
	}
	v, ok := args[i].(float64)
	return v, ok
}
