// File: game/collision.go
package game

func (ball *Ball) CollidesTopWall(halfHeight float64) bool {
	return ball.Y+ball.Radius >= halfHeight
}

func (ball *Ball) CollidesBottomWall(halfHeight float64) bool {
	return ball.Y-ball.Radius <= -halfHeight
}

// CrossedRightGoal reports whether the ball center reached player 1's goal line.
func (ball *Ball) CrossedRightGoal(outOfBoundsX float64) bool {
	return ball.X >= outOfBoundsX
}

// CrossedLeftGoal reports whether the ball center reached player 0's goal line.
func (ball *Ball) CrossedLeftGoal(outOfBoundsX float64) bool {
	return ball.X <= -outOfBoundsX
}

// InterceptsPaddle is an axis-aligned bounding-box test between the ball's
// box (center ± radius) and the paddle rectangle. Touching edges count as overlap.
func (ball *Ball) InterceptsPaddle(paddle *Paddle) bool {
	if paddle == nil {
		return false
	}
	return ball.X+ball.Radius >= paddle.Left() &&
		ball.X-ball.Radius <= paddle.Right() &&
		ball.Y+ball.Radius >= paddle.Bottom() &&
		ball.Y-ball.Radius <= paddle.Top()
}

// approaches reports whether the ball travels towards the face of paddle that returns it.
// Paddles facing both ways accept the ball from either side.
func (ball *Ball) approaches(paddle *Paddle) bool {
	switch {
	case paddle.Facing > 0:
		return ball.DirX < 0
	case paddle.Facing < 0:
		return ball.DirX > 0
	default:
		return ball.DirX != 0
	}
}

// returnSide is the horizontal sign the ball must leave paddle with.
func (ball *Ball) returnSide(paddle *Paddle) float64 {
	if paddle.Facing != 0 {
		return float64(paddle.Facing)
	}
	if ball.DirX > 0 {
		return -1
	}
	return 1
}
