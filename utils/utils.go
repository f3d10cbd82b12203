package utils

import (
	"math"
	"math/rand"
)

// Clamp limits value to [min, max]. When min > max the bounds are swapped.
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Sign returns -1, 0 or 1.
func Sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// IsFinite reports whether x is neither NaN nor infinite.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func Length(x, y float64) float64 {
	return math.Sqrt(x*x + y*y)
}

// Normalize returns the unit vector of (x, y). The zero vector is returned unchanged.
func Normalize(x, y float64) (float64, float64) {
	length := Length(x, y)
	if length == 0 {
		return 0, 0
	}
	return x / length, y / length
}

func Distance(x1, y1, x2, y2 float64) float64 {
	return Length(x2-x1, y2-y1)
}

// RandomRange returns a uniformly distributed value in [min, max).
func RandomRange(rng *rand.Rand, min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + rng.Float64()*(max-min)
}

// RandomSign returns -1 or 1 with equal probability.
func RandomSign(rng *rand.Rand) float64 {
	if rng.Intn(2) == 0 {
		return -1
	}
	return 1
}

func DegreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// NewRand returns a generator seeded with seed, or a time-independent random seed when seed is 0.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = rand.Int63()
	}
	return rand.New(rand.NewSource(seed))
}
