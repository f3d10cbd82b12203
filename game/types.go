// File: game/types.go
package game

import (
	"fmt"
	"strings"
)

// GameState is the lifecycle state of a game.
type GameState int

const (
	StateIdle GameState = iota
	StatePlaying
	StatePaused
	StateGameOver
)

var gameStateNames = [...]string{"IDLE", "PLAYING", "PAUSED", "GAME_OVER"}

func (s GameState) String() string {
	if s < 0 || int(s) >= len(gameStateNames) {
		return fmt.Sprintf("GameState(%d)", int(s))
	}
	return gameStateNames[s]
}

func (s GameState) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// GameType selects the paddle topology and physics profile.
type GameType int

const (
	GameTypeDefault GameType = iota
	GameTypeMultiplayer
)

func (t GameType) String() string {
	switch t {
	case GameTypeDefault:
		return "DEFAULT"
	case GameTypeMultiplayer:
		return "MULTIPLAYER"
	}
	return fmt.Sprintf("GameType(%d)", int(t))
}

func (t GameType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// ParseGameType maps a persisted mode name to a GameType.
// Unknown or empty values fall back to GameTypeDefault.
func ParseGameType(value string) GameType {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "multiplayer", "multi":
		return GameTypeMultiplayer
	default:
		return GameTypeDefault
	}
}

// AIDifficulty parameterizes the AI controller.
type AIDifficulty int

const (
	DifficultyEasy AIDifficulty = iota
	DifficultyMedium
	DifficultyHard
)

func (d AIDifficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "EASY"
	case DifficultyMedium:
		return "MEDIUM"
	case DifficultyHard:
		return "HARD"
	}
	return fmt.Sprintf("AIDifficulty(%d)", int(d))
}

func (d AIDifficulty) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// ParseDifficulty maps a persisted difficulty name to an AIDifficulty.
// Unknown or empty values fall back to DifficultyMedium.
func ParseDifficulty(value string) AIDifficulty {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "easy":
		return DifficultyEasy
	case "hard":
		return DifficultyHard
	default:
		return DifficultyMedium
	}
}

// NoWinner is the winner value while the game is undecided.
const NoWinner = -1

// GameConfig is supplied once per session by the surrounding application.
type GameConfig struct {
	MaxScore    int      `json:"maxScore"`
	GameType    GameType `json:"gameType"`
	Player0Name string   `json:"player0Name"`
	Player1Name string   `json:"player1Name"`
}

// normalized replaces invalid values with their documented defaults.
func (c GameConfig) normalized(defaultMaxScore int) GameConfig {
	if c.MaxScore <= 0 {
		c.MaxScore = defaultMaxScore
	}
	if c.GameType != GameTypeDefault && c.GameType != GameTypeMultiplayer {
		c.GameType = GameTypeDefault
	}
	if strings.TrimSpace(c.Player0Name) == "" {
		c.Player0Name = "Player 1"
	}
	if strings.TrimSpace(c.Player1Name) == "" {
		c.Player1Name = "Player 2"
	}
	return c
}
