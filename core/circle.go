package core

import (
	"fmt"
	"math/rand/v2"
)

// Circle is the circular entity variant. Radius is derived from width at
// construction and never independently mutated; center is derived from
// position and resynced on every move.
type Circle struct {
	base   Entity
	radius float64
	cx, cy float64
}

// NewCircle constructs a circle with randomized placement inside the arena.
// Width and height must be equal.
func NewCircle(velX, velY, width, height float64, color RGB, arenaW, arenaH float64, rng *rand.Rand) (*Circle, error) {
	if width != height {
		return nil, fmt.Errorf("size %gx%g: %w", width, height, ErrShapeConstraint)
	}
	e, err := NewEntity(velX, velY, width, height, color, arenaW, arenaH, rng)
	if err != nil {
		return nil, err
	}
	c := &Circle{base: *e, radius: width / 2}
	c.syncCenter()
	return c, nil
}

// NewCircleAt constructs a circle at an explicit position. Width and height
// must be equal.
func NewCircleAt(velX, velY, width, height float64, color RGB, x, y float64) (*Circle, error) {
	if width != height {
		return nil, fmt.Errorf("size %gx%g: %w", width, height, ErrShapeConstraint)
	}
	e, err := NewEntityAt(velX, velY, width, height, color, x, y)
	if err != nil {
		return nil, err
	}
	c := &Circle{base: *e, radius: width / 2}
	c.syncCenter()
	return c, nil
}

func (c *Circle) syncCenter() {
	c.cx = c.base.x + c.radius
	c.cy = c.base.y + c.radius
}

// Position returns a copy of the bounding box top-left corner
func (c *Circle) Position() (x, y float64) {
	return c.base.Position()
}

// SetPosition overrides the position and resyncs the center
func (c *Circle) SetPosition(x, y float64) {
	c.base.SetPosition(x, y)
	c.syncCenter()
}

// Velocity returns a copy of the current velocity vector
func (c *Circle) Velocity() (vx, vy float64) {
	return c.base.Velocity()
}

// SetVelocity replaces the full vector, rejecting non-finite components
func (c *Circle) SetVelocity(vx, vy float64) error {
	return c.base.SetVelocity(vx, vy)
}

// Size returns the bounding box dimensions (width == height)
func (c *Circle) Size() (width, height float64) {
	return c.base.Size()
}

// Color returns the display color
func (c *Circle) Color() RGB {
	return c.base.Color()
}

// Radius returns half the width
func (c *Circle) Radius() float64 {
	return c.radius
}

// Center returns the circle midpoint, (x+radius, y+radius)
func (c *Circle) Center() (cx, cy float64) {
	return c.cx, c.cy
}

// Advance integrates position by velocity*dt and resyncs the center
func (c *Circle) Advance(dt float64) {
	c.base.Advance(dt)
	c.syncCenter()
}

// Draw hands the bounding box and color to the sink
func (c *Circle) Draw(s Sink) {
	x, y := c.base.Position()
	w, h := c.base.Size()
	s.DrawCircle(x, y, w, h, c.base.Color())
}
