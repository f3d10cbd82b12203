// File: game/ai_controller.go
package game

import (
	"math"
	"math/rand"

	"github.com/lguibr/pongsim/utils"
)

// AITuningFor returns the tuning of difficulty. Unknown difficulties get MEDIUM.
func AITuningFor(cfg utils.Config, difficulty AIDifficulty) utils.AITuning {
	switch difficulty {
	case DifficultyEasy:
		return cfg.AI.Easy
	case DifficultyHard:
		return cfg.AI.Hard
	case DifficultyMedium:
		return cfg.AI.Medium
	default:
		return cfg.AI.Medium
	}
}

// AIController follows the ball with a deadband, a capped tracking speed and a
// reaction interval: the target is only re-evaluated every ReactionTicks ticks.
type AIController struct {
	difficulty  AIDifficulty
	tuning      utils.AITuning
	paddleSpeed float64
	rng         *rand.Rand

	target    float64
	hasTarget bool
	untilEval int
}

func NewAIController(difficulty AIDifficulty, tuning utils.AITuning, paddleSpeed float64, rng *rand.Rand) *AIController {
	if tuning.ReactionTicks < 1 {
		tuning.ReactionTicks = 1
	}
	if rng == nil {
		rng = utils.NewRand(0)
	}
	return &AIController{
		difficulty:  difficulty,
		tuning:      tuning,
		paddleSpeed: paddleSpeed,
		rng:         rng,
	}
}

func (c *AIController) Difficulty() AIDifficulty { return c.difficulty }

// Target returns the position the controller is currently steering towards.
func (c *AIController) Target() (float64, bool) { return c.target, c.hasTarget }

func (c *AIController) Delta(view TickView) float64 {
	if c.untilEval <= 0 {
		c.evaluate(view)
		c.untilEval = c.tuning.ReactionTicks
	}
	c.untilEval--

	if !c.hasTarget {
		return 0
	}
	diff := c.target - view.Paddle.Y
	if math.Abs(diff) <= c.tuning.Deadband {
		return 0
	}
	step := c.paddleSpeed * c.tuning.SpeedFactor * view.Dt
	return clampDelta(view.Paddle, utils.Sign(diff)*math.Min(math.Abs(diff), step))
}

// evaluate picks the ball when it is heading for this paddle, otherwise the home position.
func (c *AIController) evaluate(view TickView) {
	target := 0.0
	if c.incoming(view) {
		target = view.Ball.Y
		if c.tuning.AimError > 0 {
			target += utils.RandomRange(c.rng, -c.tuning.AimError, c.tuning.AimError)
		}
	}
	if !utils.IsFinite(target) {
		c.hasTarget = false
		return
	}
	c.target = utils.Clamp(target, view.Paddle.MinBound, view.Paddle.MaxBound)
	c.hasTarget = true
}

func (c *AIController) incoming(view TickView) bool {
	if !view.Ball.InPlay {
		return false
	}
	switch {
	case view.Paddle.Facing > 0:
		return view.Ball.DirX < 0
	case view.Paddle.Facing < 0:
		return view.Ball.DirX > 0
	default:
		return true
	}
}
