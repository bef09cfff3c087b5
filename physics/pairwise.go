package physics

import "github.com/lixenwraith/bounce/core"

// Pairwise is the entity-to-entity interaction strategy, invoked once per
// entity per tick with the full set. The contract is callable and
// side-effect-free unless a future strategy says otherwise; resolution rules
// are deliberately unspecified here.
type Pairwise func(subject *core.Circle, all []*core.Circle)

// NoopPairwise is the default strategy: the extension point without the physics
func NoopPairwise(subject *core.Circle, all []*core.Circle) {}
