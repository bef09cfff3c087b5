package physics

// Body is the minimal kinematic surface the resolver needs
type Body interface {
	Position() (x, y float64)
	Size() (width, height float64)
	Velocity() (vx, vy float64)
	SetVelocity(vx, vy float64) error
}

// ReflectEdges flips velocity components that point out of the arena. Both
// axes are evaluated independently, so a corner hit negates both components
// in one call. Position is never clamped: a body carried more than one
// frame's displacement past a boundary re-triggers on the next check and can
// jitter at the edge — a known characteristic of this model, kept as-is.
//
// Runs before Advance within a tick, so the reversed velocity is what gets
// applied that frame. The ordering is load-bearing; checking after the move
// shifts every bounce by one frame.
func ReflectEdges(b Body, arenaW, arenaH float64) (hitX, hitY bool) {
	x, y := b.Position()
	w, h := b.Size()
	vx, vy := b.Velocity()

	if y <= 0 || y+h >= arenaH {
		vy = -vy
		hitY = true
	}
	if x <= 0 || x+w >= arenaW {
		vx = -vx
		hitX = true
	}
	if hitX || hitY {
		// Negation preserves finiteness, so this cannot fail
		_ = b.SetVelocity(vx, vy)
	}
	return hitX, hitY
}
