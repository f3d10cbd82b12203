// File: game/physics_test.go
package game

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/lguibr/pongsim/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingScorer struct {
	scored []int
}

func (s *recordingScorer) ScorePlayer(n int) { s.scored = append(s.scored, n) }

type physicsFixture struct {
	cfg     utils.Config
	physics *Physics
	ball    *Ball
	paddles []*Paddle
	scorer  *recordingScorer
}

func newPhysicsFixture(t GameType) *physicsFixture {
	cfg := utils.DefaultConfig()
	mode := NewMode(t, cfg)
	f := &physicsFixture{
		cfg:     cfg,
		physics: NewPhysics(cfg, mode.Tuning(), rand.New(rand.NewSource(7))),
		ball:    NewBall(cfg.BallRadius, mode.Tuning()),
		scorer:  &recordingScorer{},
	}
	for i, spec := range mode.Layout() {
		f.paddles = append(f.paddles, NewPaddle(i, spec, cfg.FieldHalfHeight))
	}
	f.physics.Reset(f.ball, f.paddles)
	return f
}

// place puts the ball in play at (x, y) heading along (dirX, dirY).
func (f *physicsFixture) place(x, y, dirX, dirY float64) {
	f.physics.serving = false
	f.physics.serveIn = 0
	f.physics.tracker.ClearAll()
	f.ball.X, f.ball.Y = x, y
	f.ball.SetDirection(dirX, dirY)
}

func (f *physicsFixture) step(deltas ...float64) StepResult {
	return f.physics.Step(f.ball, f.paddles, deltas, f.scorer)
}

// stepsUntilServed counts steps until the ball leaves the center, giving up after limit.
func (f *physicsFixture) stepsUntilServed(limit int) int {
	for i := 1; i <= limit; i++ {
		if f.step().Served {
			return i
		}
	}
	return -1
}

func TestPhysics_ResetSchedulesServe(t *testing.T) {
	f := newPhysicsFixture(GameTypeDefault)

	assert.True(t, f.physics.Serving())
	assert.Equal(t, f.cfg.BallResetDelay, f.physics.ServeIn())
	assert.False(t, f.ball.IsMoving())

	ticks := f.stepsUntilServed(1000)
	expected := int(math.Ceil(float64(f.cfg.BallResetDelay) / float64(f.cfg.TickPeriod)))
	assert.Equal(t, expected, ticks)
	assert.False(t, f.physics.Serving())
	assert.Equal(t, time.Duration(0), f.physics.ServeIn())

	// Serve angle stays within MaxServeAngle of the horizontal
	maxAngle := utils.DegreesToRadians(f.cfg.MaxServeAngle)
	assert.LessOrEqual(t, math.Abs(f.ball.DirY), math.Sin(maxAngle)+1e-9)
	assert.Equal(t, f.physics.Tuning().InitialSpeed, f.ball.Speed)
}

func TestPhysics_BallAtGoalLineScoresForOpponent(t *testing.T) {
	f := newPhysicsFixture(GameTypeDefault)
	f.place(515, 0, 1, 0)

	result := f.step()

	require.True(t, result.Scored)
	assert.Equal(t, 0, result.Scorer, "crossing player 1's goal credits player 0")
	assert.Equal(t, []int{0}, f.scorer.scored)

	// Ball waits at center, then is served towards the side that conceded
	assert.True(t, f.physics.Serving())
	assert.Equal(t, 0.0, f.ball.X)
	assert.Equal(t, 0.0, f.ball.Y)
	assert.Equal(t, f.cfg.BallResetDelay, f.physics.ServeIn())

	ticks := f.stepsUntilServed(1000)
	assert.Greater(t, ticks, 0)
	assert.LessOrEqual(t, f.cfg.TickPeriod*time.Duration(ticks), f.cfg.BallResetDelay+f.cfg.TickPeriod)
	assert.Less(t, f.ball.DirX, 0.0)
}

func TestPhysics_LeftGoalScoresForPlayerOne(t *testing.T) {
	f := newPhysicsFixture(GameTypeDefault)
	f.place(-510, 20, -1, 0)

	result := f.step()

	require.True(t, result.Scored)
	assert.Equal(t, 1, result.Scorer)
	assert.Equal(t, []int{1}, f.scorer.scored)

	require.Greater(t, f.stepsUntilServed(1000), 0)
	assert.Greater(t, f.ball.DirX, 0.0)
}

func TestPhysics_WallBounceKeepsSpeed(t *testing.T) {
	f := newPhysicsFixture(GameTypeDefault)
	f.place(0, 290, 1, 1)
	speed := f.ball.Speed

	result := f.step()

	assert.True(t, result.WallHit)
	assert.Less(t, f.ball.DirY, 0.0)
	assert.Equal(t, f.cfg.FieldHalfHeight-f.ball.Radius, f.ball.Y)
	assert.Equal(t, speed, f.ball.Speed)

	f.place(0, -290, -1, -1)
	result = f.step()
	assert.True(t, result.WallHit)
	assert.Greater(t, f.ball.DirY, 0.0)
	assert.Equal(t, -f.cfg.FieldHalfHeight+f.ball.Radius, f.ball.Y)
}

func TestPhysics_PaddleHitReturnsBallAndSpeedsUp(t *testing.T) {
	f := newPhysicsFixture(GameTypeDefault)
	f.place(470, 0, 1, 0)
	speed := f.ball.Speed

	result := f.step()

	assert.Equal(t, 1, result.PaddleHit)
	assert.False(t, result.Scored)
	assert.Less(t, f.ball.DirX, 0.0)
	assert.Equal(t, speed+f.physics.Tuning().SpeedIncrement, f.ball.Speed)
	assert.InDelta(t, 1, utils.Length(f.ball.DirX, f.ball.DirY), 1e-9)

	// The ball leaves the paddle without a second response
	assert.Equal(t, -1, f.step().PaddleHit)
}

func TestPhysics_SteepHitKeepsMinimumHorizontalRatio(t *testing.T) {
	f := newPhysicsFixture(GameTypeDefault)
	f.place(475.5, 38, 0.1, 0.995)

	result := f.step()

	require.Equal(t, 1, result.PaddleHit)
	assert.Less(t, f.ball.DirX, 0.0)
	assert.GreaterOrEqual(t, math.Abs(f.ball.DirX), f.cfg.MinHorizontalRatio-1e-9)
	assert.InDelta(t, 1, utils.Length(f.ball.DirX, f.ball.DirY), 1e-9)
}

func TestPhysics_OneResponsePerContact(t *testing.T) {
	f := newPhysicsFixture(GameTypeMultiplayer)
	require.Len(t, f.paddles, 3)
	f.place(0, 0, 1, 0)

	hits := 0
	for i := 0; i < 6; i++ {
		if f.step().PaddleHit == 2 {
			hits++
		}
	}
	assert.Equal(t, 1, hits, "a ball overlapping the center paddle bounces once")
	assert.Less(t, f.ball.DirX, 0.0)
}

func TestPhysics_ServeThroughCenterPaddleDoesNotBounce(t *testing.T) {
	f := newPhysicsFixture(GameTypeMultiplayer)
	require.Greater(t, f.stepsUntilServed(1000), 0)
	dirX := f.ball.DirX

	for i := 0; i < 10; i++ {
		assert.Equal(t, -1, f.step().PaddleHit)
	}
	assert.Equal(t, dirX, f.ball.DirX)
}

func TestPhysics_PaddleDeltasAreClamped(t *testing.T) {
	f := newPhysicsFixture(GameTypeDefault)

	f.step(1e9, -1e9)
	assert.Equal(t, f.paddles[0].MaxBound, f.paddles[0].Y)
	assert.Equal(t, f.paddles[1].MinBound, f.paddles[1].Y)

	f.step(math.NaN(), math.Inf(1))
	assert.Equal(t, f.paddles[0].MaxBound, f.paddles[0].Y)
	assert.Equal(t, f.paddles[1].MinBound, f.paddles[1].Y)
}

func TestPhysics_LongRallyInvariants(t *testing.T) {
	for _, gameType := range []GameType{GameTypeDefault, GameTypeMultiplayer} {
		t.Run(gameType.String(), func(t *testing.T) {
			f := newPhysicsFixture(gameType)
			tuning := f.physics.Tuning()
			limit := f.cfg.FieldHalfHeight - f.ball.Radius

			for i := 0; i < 20000; i++ {
				// Paddles chase the ball perfectly, so most serves turn into long rallies
				deltas := make([]float64, len(f.paddles))
				for j, paddle := range f.paddles {
					deltas[j] = f.ball.Y - paddle.Y
				}
				result := f.step(deltas...)

				require.GreaterOrEqual(t, f.ball.Speed, tuning.InitialSpeed)
				require.LessOrEqual(t, f.ball.Speed, tuning.MaxSpeed)
				require.LessOrEqual(t, math.Abs(f.ball.Y), limit+1e-9)
				if f.ball.IsMoving() {
					require.InDelta(t, 1, utils.Length(f.ball.DirX, f.ball.DirY), 1e-9)
				}
				if result.PaddleHit >= 0 {
					require.GreaterOrEqual(t, math.Abs(f.ball.DirX), f.cfg.MinHorizontalRatio-1e-9)
				}
				for _, paddle := range f.paddles {
					require.GreaterOrEqual(t, paddle.Y, paddle.MinBound)
					require.LessOrEqual(t, paddle.Y, paddle.MaxBound)
				}
			}
		})
	}
}

func TestPhysics_NilScorerIsTolerated(t *testing.T) {
	f := newPhysicsFixture(GameTypeDefault)
	f.place(515, 0, 1, 0)
	assert.NotPanics(t, func() {
		result := f.physics.Step(f.ball, f.paddles, nil, nil)
		assert.True(t, result.Scored)
	})
}
