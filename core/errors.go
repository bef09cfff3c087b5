package core

import "errors"

// Construction and mutation failures. Callers branch on these with
// errors.Is; constructors wrap them with context.
var (
	// ErrShapeConstraint reports a circle constructed with unequal width and height
	ErrShapeConstraint = errors.New("circle width and height must be equal")

	// ErrInvalidBounds reports a size that makes arena placement impossible
	ErrInvalidBounds = errors.New("entity size does not fit arena bounds")

	// ErrNonFiniteVelocity reports a NaN or infinite velocity component
	ErrNonFiniteVelocity = errors.New("velocity components must be finite")
)
