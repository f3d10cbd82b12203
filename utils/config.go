// File: utils/config.go
package utils

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ModeTuning holds the physics profile of one game mode.
type ModeTuning struct {
	InitialSpeed   float64 `json:"initialSpeed" yaml:"initial_speed"`     // Ball speed at serve, units per second
	SpeedIncrement float64 `json:"speedIncrement" yaml:"speed_increment"` // Added on every paddle hit
	MaxSpeed       float64 `json:"maxSpeed" yaml:"max_speed"`             // Upper bound of the ball speed
	PaddleSpeed    float64 `json:"paddleSpeed" yaml:"paddle_speed"`       // Human paddle speed, units per second
}

// AITuning parameterizes one AI difficulty level.
type AITuning struct {
	Deadband      float64 `json:"deadband" yaml:"deadband"`            // No correction while |target - paddle| is within this
	SpeedFactor   float64 `json:"speedFactor" yaml:"speed_factor"`     // Fraction of the mode's paddle speed
	ReactionTicks int     `json:"reactionTicks" yaml:"reaction_ticks"` // Ticks between target re-evaluations
	AimError      float64 `json:"aimError" yaml:"aim_error"`           // Max random offset added to the target
}

type ModesConfig struct {
	Default     ModeTuning `json:"default" yaml:"default"`
	Multiplayer ModeTuning `json:"multiplayer" yaml:"multiplayer"`
}

type AIConfig struct {
	Easy   AITuning `json:"easy" yaml:"easy"`
	Medium AITuning `json:"medium" yaml:"medium"`
	Hard   AITuning `json:"hard" yaml:"hard"`
}

// Config holds all configurable game parameters.
type Config struct {
	// Timing
	TickPeriod     time.Duration `json:"tickPeriod" yaml:"tick_period"`           // Fixed simulation step, one per frame
	BallResetDelay time.Duration `json:"ballResetDelay" yaml:"ball_reset_delay"` // Ball rests at center this long after a score

	// Score & Player
	DefaultMaxScore int `json:"defaultMaxScore" yaml:"default_max_score"` // Used when a game is configured without a valid max score

	// Field
	OutOfBoundsX    float64 `json:"outOfBoundsX" yaml:"out_of_bounds_x"`     // Goal lines at x = ±OutOfBoundsX
	FieldHalfHeight float64 `json:"fieldHalfHeight" yaml:"field_half_height"` // Walls at y = ±FieldHalfHeight
	PaddleInset     float64 `json:"paddleInset" yaml:"paddle_inset"`          // Goal paddle distance in front of its goal line

	// Ball
	BallRadius           float64 `json:"ballRadius" yaml:"ball_radius"`
	MaxServeAngle        float64 `json:"maxServeAngle" yaml:"max_serve_angle"`                 // Degrees off the horizontal at serve
	PaddleHitAngleFactor float64 `json:"paddleHitAngleFactor" yaml:"paddle_hit_angle_factor"` // Max hit-offset deflection is Pi / this value
	PaddleHitJitter      float64 `json:"paddleHitJitter" yaml:"paddle_hit_jitter"`             // Max random tangential perturbation per hit
	MinHorizontalRatio   float64 `json:"minHorizontalRatio" yaml:"min_horizontal_ratio"`       // Min |dirX| after a paddle hit

	// Paddles
	PaddleWidth        float64 `json:"paddleWidth" yaml:"paddle_width"`
	PaddleHeight       float64 `json:"paddleHeight" yaml:"paddle_height"`
	CenterPaddleHeight float64 `json:"centerPaddleHeight" yaml:"center_paddle_height"`

	Modes ModesConfig `json:"modes" yaml:"modes"`
	AI    AIConfig    `json:"ai" yaml:"ai"`

	// Seed for the simulation RNG; 0 picks a random seed.
	Seed int64 `json:"seed" yaml:"seed"`
}

// DefaultConfig returns a Config struct with default values.
func DefaultConfig() Config {
	return Config{
		// Timing
		TickPeriod:     Period,
		BallResetDelay: 1 * time.Second,

		// Score & Player
		DefaultMaxScore: DefaultMaxScore,

		// Field
		OutOfBoundsX:    OutOfBoundsX,
		FieldHalfHeight: FieldHalfHeight,
		PaddleInset:     PaddleInset,

		// Ball
		BallRadius:           BallRadius,
		MaxServeAngle:        30,
		PaddleHitAngleFactor: 2.8, // Max ~64 degrees deflection (Pi / 2.8)
		PaddleHitJitter:      0.1,
		MinHorizontalRatio:   0.35,

		// Paddles
		PaddleWidth:        PaddleWidth,
		PaddleHeight:       PaddleHeight,
		CenterPaddleHeight: CenterPaddleHeight,

		Modes: ModesConfig{
			Default: ModeTuning{
				InitialSpeed:   360,
				SpeedIncrement: 30,
				MaxSpeed:       900,
				PaddleSpeed:    420,
			},
			// Slower ball and smaller ramp: three paddles share one ball.
			Multiplayer: ModeTuning{
				InitialSpeed:   280,
				SpeedIncrement: 20,
				MaxSpeed:       700,
				PaddleSpeed:    380,
			},
		},

		AI: AIConfig{
			Easy:   AITuning{Deadband: 30, SpeedFactor: 0.5, ReactionTicks: 20, AimError: 25},
			Medium: AITuning{Deadband: 15, SpeedFactor: 0.75, ReactionTicks: 8, AimError: 10},
			Hard:   AITuning{Deadband: 4, SpeedFactor: 1, ReactionTicks: 1, AimError: 0},
		},
	}
}

// Step returns the fixed simulation step in seconds.
func (c Config) Step() float64 {
	return c.TickPeriod.Seconds()
}

// Validate reports every inconsistent value of the config.
func (c Config) Validate() error {
	var errs []error
	positive := func(name string, value float64) {
		if !(value > 0) {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, value))
		}
	}

	if c.TickPeriod <= 0 {
		errs = append(errs, fmt.Errorf("tick_period must be positive, got %s", c.TickPeriod))
	}
	if c.BallResetDelay < 0 {
		errs = append(errs, fmt.Errorf("ball_reset_delay must not be negative, got %s", c.BallResetDelay))
	}
	if c.DefaultMaxScore <= 0 {
		errs = append(errs, fmt.Errorf("default_max_score must be positive, got %d", c.DefaultMaxScore))
	}

	positive("out_of_bounds_x", c.OutOfBoundsX)
	positive("field_half_height", c.FieldHalfHeight)
	positive("ball_radius", c.BallRadius)
	positive("paddle_width", c.PaddleWidth)
	positive("paddle_height", c.PaddleHeight)
	positive("center_paddle_height", c.CenterPaddleHeight)
	positive("paddle_hit_angle_factor", c.PaddleHitAngleFactor)

	if c.PaddleInset < 0 || c.PaddleInset >= c.OutOfBoundsX {
		errs = append(errs, fmt.Errorf("paddle_inset must be in [0, out_of_bounds_x), got %v", c.PaddleInset))
	}
	if c.PaddleHeight >= 2*c.FieldHalfHeight || c.CenterPaddleHeight >= 2*c.FieldHalfHeight {
		errs = append(errs, errors.New("paddles must be shorter than the field"))
	}
	if c.MinHorizontalRatio <= 0 || c.MinHorizontalRatio >= 1 {
		errs = append(errs, fmt.Errorf("min_horizontal_ratio must be in (0, 1), got %v", c.MinHorizontalRatio))
	}
	if c.MaxServeAngle < 0 || c.MaxServeAngle >= 90 {
		errs = append(errs, fmt.Errorf("max_serve_angle must be in [0, 90), got %v", c.MaxServeAngle))
	}

	for name, mode := range map[string]ModeTuning{"default": c.Modes.Default, "multiplayer": c.Modes.Multiplayer} {
		positive("modes."+name+".initial_speed", mode.InitialSpeed)
		positive("modes."+name+".paddle_speed", mode.PaddleSpeed)
		if mode.SpeedIncrement < 0 {
			errs = append(errs, fmt.Errorf("modes.%s.speed_increment must not be negative", name))
		}
		if mode.MaxSpeed < mode.InitialSpeed {
			errs = append(errs, fmt.Errorf("modes.%s.max_speed must be >= initial_speed", name))
		}
	}

	for name, ai := range map[string]AITuning{"easy": c.AI.Easy, "medium": c.AI.Medium, "hard": c.AI.Hard} {
		positive("ai."+name+".speed_factor", ai.SpeedFactor)
		if ai.ReactionTicks < 1 {
			errs = append(errs, fmt.Errorf("ai.%s.reaction_ticks must be at least 1", name))
		}
		if ai.Deadband < 0 || ai.AimError < 0 {
			errs = append(errs, fmt.Errorf("ai.%s deadband and aim_error must not be negative", name))
		}
	}

	return errors.Join(errs...)
}

// LoadConfig reads a YAML file over DefaultConfig and validates the result.
// Keys missing from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}
