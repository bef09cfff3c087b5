package core

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Entity is the base movable record: an axis-aligned bounding box with a
// velocity vector and a display color. Position is the top-left corner of
// the box in arena pixels; velocity is pixels per second, sign encodes
// direction along each axis.
type Entity struct {
	x, y          float64
	width, height float64
	velX, velY    float64
	color         RGB
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// NewEntity constructs an entity with each position axis drawn independently
// and uniformly from [0, arena-size]. Fails with ErrInvalidBounds when the
// size leaves no valid placement.
func NewEntity(velX, velY, width, height float64, color RGB, arenaW, arenaH float64, rng *rand.Rand) (*Entity, error) {
	e, err := newEntity(velX, velY, width, height, color)
	if err != nil {
		return nil, err
	}
	if width > arenaW || height > arenaH {
		return nil, fmt.Errorf("size %gx%g in arena %gx%g: %w", width, height, arenaW, arenaH, ErrInvalidBounds)
	}
	e.x = rng.Float64() * (arenaW - width)
	e.y = rng.Float64() * (arenaH - height)
	return e, nil
}

// NewEntityAt constructs an entity at an explicit position. A zero
// coordinate is a real position, never re-randomized.
func NewEntityAt(velX, velY, width, height float64, color RGB, x, y float64) (*Entity, error) {
	e, err := newEntity(velX, velY, width, height, color)
	if err != nil {
		return nil, err
	}
	e.x, e.y = x, y
	return e, nil
}

func newEntity(velX, velY, width, height float64, color RGB) (*Entity, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("size %gx%g: %w", width, height, ErrInvalidBounds)
	}
	if !finite(velX) || !finite(velY) {
		return nil, fmt.Errorf("velocity (%g, %g): %w", velX, velY, ErrNonFiniteVelocity)
	}
	return &Entity{width: width, height: height, velX: velX, velY: velY, color: color}, nil
}

// Position returns a copy of the current top-left corner
func (e *Entity) Position() (x, y float64) {
	return e.x, e.y
}

// SetPosition overrides the position directly. Construction and tests only;
// the per-frame path moves entities through Advance.
func (e *Entity) SetPosition(x, y float64) {
	e.x, e.y = x, y
}

// Velocity returns a copy of the current velocity vector
func (e *Entity) Velocity() (vx, vy float64) {
	return e.velX, e.velY
}

// SetVelocity replaces the full vector. Rejects non-finite components and
// leaves the entity unchanged on rejection.
func (e *Entity) SetVelocity(vx, vy float64) error {
	if !finite(vx) || !finite(vy) {
		return fmt.Errorf("velocity (%g, %g): %w", vx, vy, ErrNonFiniteVelocity)
	}
	e.velX, e.velY = vx, vy
	return nil
}

// Size returns the bounding box dimensions
func (e *Entity) Size() (width, height float64) {
	return e.width, e.height
}

// Color returns the display color, immutable after construction
func (e *Entity) Color() RGB {
	return e.color
}

// Advance integrates position: p = p + v*dt
func (e *Entity) Advance(dt float64) {
	e.x += e.velX * dt
	e.y += e.velY * dt
}
