package core

import (
	"fmt"
	"math/rand/v2"
)

// RandomSpec bounds the sampling performed by RandomCircle
type RandomSpec struct {
	ArenaWidth  float64
	ArenaHeight float64
	SizeMin     float64 // Minimum circle width (height tracks width)
	SizeMax     float64
	SpeedMin    float64 // Per-axis velocity bound, pixels per second
	SpeedMax    float64
	Palette     []RGB
}

// RandomCircle samples width uniformly in the size range (height = width),
// each velocity component independently in the speed range, and one palette
// color, then constructs a circle with randomized placement. Deterministic
// given a seeded rng: draw order is width, velX, velY, color, position.
func RandomCircle(spec RandomSpec, rng *rand.Rand) (*Circle, error) {
	if len(spec.Palette) == 0 {
		return nil, fmt.Errorf("random circle: empty palette")
	}
	if spec.SizeMin > spec.SizeMax || spec.SizeMin <= 0 {
		return nil, fmt.Errorf("random circle: size range %g-%g: %w", spec.SizeMin, spec.SizeMax, ErrInvalidBounds)
	}
	if spec.SpeedMin > spec.SpeedMax {
		return nil, fmt.Errorf("random circle: speed range %g-%g inverted", spec.SpeedMin, spec.SpeedMax)
	}

	width := spec.SizeMin + rng.Float64()*(spec.SizeMax-spec.SizeMin)
	velX := spec.SpeedMin + rng.Float64()*(spec.SpeedMax-spec.SpeedMin)
	velY := spec.SpeedMin + rng.Float64()*(spec.SpeedMax-spec.SpeedMin)
	color := spec.Palette[rng.IntN(len(spec.Palette))]

	return NewCircle(velX, velY, width, width, color, spec.ArenaWidth, spec.ArenaHeight, rng)
}
