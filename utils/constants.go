package utils

import "time"

const (
	Period = 16 * time.Millisecond // ~60 frames per second

	PlayerCount = 2

	OutOfBoundsX    = 515.0 // Goal line distance from the center
	FieldHalfHeight = 300.0 // Top and bottom walls
	PaddleInset     = 30.0  // Goal paddle distance in front of its goal line

	BallRadius         = 8.0
	PaddleWidth        = 10.0
	PaddleHeight       = 80.0
	CenterPaddleHeight = 60.0

	DefaultMaxScore = 5
)
