// File: game/physics.go
package game

import (
	"math"
	"math/rand"
	"time"

	"github.com/lguibr/pongsim/utils"
)

// Scorer receives out-of-bounds scoring events.
type Scorer interface {
	ScorePlayer(n int)
}

// StepResult reports what happened during one physics step.
type StepResult struct {
	Scored    bool
	Scorer    int // Player credited with the point, NoWinner when nothing was scored
	PaddleHit int // Paddle index that returned the ball, -1 when none
	WallHit   bool
	Served    bool // The ball left the center this step
}

// Physics advances the ball and paddles by fixed steps and resolves collisions.
type Physics struct {
	cfg     utils.Config
	tuning  utils.ModeTuning
	rng     *rand.Rand
	tracker *CollisionTracker

	serving   bool
	serveIn   time.Duration
	serveSide float64 // -1 left, 1 right, 0 random
}

func NewPhysics(cfg utils.Config, tuning utils.ModeTuning, rng *rand.Rand) *Physics {
	if rng == nil {
		rng = utils.NewRand(cfg.Seed)
	}
	return &Physics{
		cfg:     cfg,
		tuning:  tuning,
		rng:     rng,
		tracker: NewCollisionTracker(),
	}
}

func (p *Physics) Tuning() utils.ModeTuning { return p.tuning }

// Serving reports whether the ball is resting at center waiting to be served.
func (p *Physics) Serving() bool { return p.serving }

// ServeIn returns the time left before the next serve.
func (p *Physics) ServeIn() time.Duration {
	if !p.serving {
		return 0
	}
	return p.serveIn
}

// Reset centers the ball and every paddle and schedules a serve towards a random side.
func (p *Physics) Reset(ball *Ball, paddles []*Paddle) {
	ball.MinSpeed = p.tuning.InitialSpeed
	ball.MaxSpeed = p.tuning.MaxSpeed
	for _, paddle := range paddles {
		paddle.Home()
	}
	p.tracker.ClearAll()
	p.scheduleServe(ball, 0)
}

func (p *Physics) scheduleServe(ball *Ball, side float64) {
	ball.Center()
	p.serving = true
	p.serveIn = p.cfg.BallResetDelay
	p.serveSide = side
}

// Step runs one tick: apply paddle deltas, integrate the ball, bounce off walls and
// paddles, then check the goal lines. deltas[i] belongs to paddles[i].
func (p *Physics) Step(ball *Ball, paddles []*Paddle, deltas []float64, scorer Scorer) StepResult {
	result := StepResult{Scorer: NoWinner, PaddleHit: -1}

	for i, paddle := range paddles {
		if i < len(deltas) {
			paddle.Move(deltas[i])
		}
	}

	if p.serving {
		p.serveIn -= p.cfg.TickPeriod
		if p.serveIn > 0 {
			return result
		}
		p.serve(ball, paddles)
		result.Served = true
		return result
	}

	ball.Move(p.cfg.Step())
	result.WallHit = p.collideWalls(ball)
	result.PaddleHit = p.collidePaddles(ball, paddles)

	switch {
	case ball.CrossedRightGoal(p.cfg.OutOfBoundsX):
		result.Scored, result.Scorer = true, 0
		p.scheduleServe(ball, -1)
	case ball.CrossedLeftGoal(p.cfg.OutOfBoundsX):
		result.Scored, result.Scorer = true, 1
		p.scheduleServe(ball, 1)
	}

	if result.Scored {
		p.tracker.ClearAll()
		if scorer != nil {
			scorer.ScorePlayer(result.Scorer)
		}
	}
	return result
}

func (p *Physics) serve(ball *Ball, paddles []*Paddle) {
	side := p.serveSide
	if side == 0 {
		side = utils.RandomSign(p.rng)
	}
	maxAngle := utils.DegreesToRadians(p.cfg.MaxServeAngle)
	ball.Launch(side, utils.RandomRange(p.rng, -maxAngle, maxAngle))
	p.serving = false
	p.serveIn = 0

	// A ball served through a paddle (the multiplayer center paddle) must not bounce
	// until it has left it.
	p.tracker.ClearAll()
	for i, paddle := range paddles {
		if ball.InterceptsPaddle(paddle) {
			p.tracker.BeginCollision(CollisionKey{PaddleID: i})
		}
	}
}

func (p *Physics) collideWalls(ball *Ball) bool {
	halfHeight := p.cfg.FieldHalfHeight
	if ball.CollidesTopWall(halfHeight) {
		ball.ReflectY(-1)
		ball.Y = halfHeight - ball.Radius
		return true
	}
	if ball.CollidesBottomWall(halfHeight) {
		ball.ReflectY(1)
		ball.Y = -halfHeight + ball.Radius
		return true
	}
	return false
}

// collidePaddles returns the index of the paddle that returned the ball, or -1.
func (p *Physics) collidePaddles(ball *Ball, paddles []*Paddle) int {
	hit := -1
	for i, paddle := range paddles {
		key := CollisionKey{PaddleID: i}
		if !ball.InterceptsPaddle(paddle) {
			p.tracker.EndCollision(key)
			continue
		}
		if hit >= 0 || p.tracker.IsColliding(key) || !ball.approaches(paddle) {
			continue
		}
		p.tracker.BeginCollision(key)
		p.bounce(ball, paddle)
		hit = i
	}
	return hit
}

// bounce reflects the paddle-normal component, deflects the tangential component by
// hit offset plus jitter, and ramps the speed up.
func (p *Physics) bounce(ball *Ball, paddle *Paddle) {
	side := ball.returnSide(paddle)

	offset := 0.0
	if paddle.Height > 0 {
		offset = utils.Clamp((ball.Y-paddle.Y)/(paddle.Height/2), -1, 1)
	}
	deflection := math.Sin(math.Pi / p.cfg.PaddleHitAngleFactor)
	jitter := utils.RandomRange(p.rng, -p.cfg.PaddleHitJitter, p.cfg.PaddleHitJitter)

	dirX, dirY := utils.Normalize(side*math.Abs(ball.DirX), ball.DirY+offset*deflection+jitter)

	minRatio := p.cfg.MinHorizontalRatio
	if math.Abs(dirX) < minRatio {
		vertical := utils.Sign(dirY)
		if vertical == 0 {
			vertical = 1
		}
		dirX = side * minRatio
		dirY = vertical * math.Sqrt(1-minRatio*minRatio)
	}

	ball.DirX, ball.DirY = dirX, dirY
	ball.Accelerate(p.tuning.SpeedIncrement)
}
