package core

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"
)

func testRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func TestAccessorsReturnCopies(t *testing.T) {
	e, err := NewEntityAt(100, -50, 20, 20, RGBRed, 5, 10)
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}

	vx, vy := e.Velocity()
	vx, vy = vx*0, vy*0 // Mutating the returned values must not touch the entity
	_ = vx
	_ = vy
	if gx, gy := e.Velocity(); gx != 100 || gy != -50 {
		t.Errorf("velocity changed through returned copy: got (%g, %g)", gx, gy)
	}

	x, y := e.Position()
	x, y = x+999, y+999
	_ = x
	_ = y
	if gx, gy := e.Position(); gx != 5 || gy != 10 {
		t.Errorf("position changed through returned copy: got (%g, %g)", gx, gy)
	}
}

func TestSetVelocityRejectsNonFinite(t *testing.T) {
	e, err := NewEntityAt(10, 10, 20, 20, RGBBlue, 0, 0)
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}

	cases := []struct {
		name   string
		vx, vy float64
	}{
		{"nan x", math.NaN(), 1},
		{"nan y", 1, math.NaN()},
		{"pos inf", math.Inf(1), 1},
		{"neg inf", 1, math.Inf(-1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := e.SetVelocity(tc.vx, tc.vy); !errors.Is(err, ErrNonFiniteVelocity) {
				t.Fatalf("expected ErrNonFiniteVelocity, got %v", err)
			}
			if vx, vy := e.Velocity(); vx != 10 || vy != 10 {
				t.Errorf("velocity mutated on rejected set: (%g, %g)", vx, vy)
			}
		})
	}

	if err := e.SetVelocity(-3, 7); err != nil {
		t.Fatalf("finite set failed: %v", err)
	}
	if vx, vy := e.Velocity(); vx != -3 || vy != 7 {
		t.Errorf("velocity not replaced: (%g, %g)", vx, vy)
	}
}

func TestConstructionRejectsNonFiniteVelocity(t *testing.T) {
	if _, err := NewEntityAt(math.NaN(), 0, 20, 20, RGBRed, 0, 0); !errors.Is(err, ErrNonFiniteVelocity) {
		t.Errorf("expected ErrNonFiniteVelocity, got %v", err)
	}
}

func TestConstructionRejectsNonPositiveSize(t *testing.T) {
	if _, err := NewEntityAt(0, 0, 0, 20, RGBRed, 0, 0); !errors.Is(err, ErrInvalidBounds) {
		t.Errorf("zero width: expected ErrInvalidBounds, got %v", err)
	}
	if _, err := NewEntityAt(0, 0, 20, -1, RGBRed, 0, 0); !errors.Is(err, ErrInvalidBounds) {
		t.Errorf("negative height: expected ErrInvalidBounds, got %v", err)
	}
}

func TestExplicitZeroPositionPreserved(t *testing.T) {
	e, err := NewEntityAt(10, 10, 20, 20, RGBGreen, 0, 0)
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}
	if x, y := e.Position(); x != 0 || y != 0 {
		t.Errorf("explicit origin re-randomized: (%g, %g)", x, y)
	}
}

func TestRandomPlacementWithinArena(t *testing.T) {
	rng := testRNG(7)
	const arenaW, arenaH = 800.0, 600.0
	const w, h = 50.0, 40.0

	for i := 0; i < 200; i++ {
		e, err := NewEntity(0, 0, w, h, RGBRed, arenaW, arenaH, rng)
		if err != nil {
			t.Fatalf("construction %d failed: %v", i, err)
		}
		x, y := e.Position()
		if x < 0 || x > arenaW-w {
			t.Fatalf("x %g outside [0, %g]", x, arenaW-w)
		}
		if y < 0 || y > arenaH-h {
			t.Fatalf("y %g outside [0, %g]", y, arenaH-h)
		}
	}
}

func TestRandomPlacementRejectsOversize(t *testing.T) {
	rng := testRNG(1)
	if _, err := NewEntity(0, 0, 900, 900, RGBRed, 800, 800, rng); !errors.Is(err, ErrInvalidBounds) {
		t.Errorf("expected ErrInvalidBounds, got %v", err)
	}
	// Size exactly equal to the arena leaves the single placement (0, 0)
	e, err := NewEntity(0, 0, 800, 800, RGBRed, 800, 800, rng)
	if err != nil {
		t.Fatalf("exact-fit construction failed: %v", err)
	}
	if x, y := e.Position(); x != 0 || y != 0 {
		t.Errorf("exact fit placed at (%g, %g), want origin", x, y)
	}
}

func TestAdvanceIntegration(t *testing.T) {
	e, err := NewEntityAt(100, 100, 20, 20, RGBRed, 0, 0)
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}
	e.Advance(1.0 / 60.0)

	x, y := e.Position()
	const want = 100.0 / 60.0
	if math.Abs(x-want) > 1e-9 || math.Abs(y-want) > 1e-9 {
		t.Errorf("advance: got (%g, %g), want (%g, %g)", x, y, want, want)
	}
}

func TestSetPositionOverride(t *testing.T) {
	e, err := NewEntityAt(0, 0, 20, 20, RGBRed, 1, 2)
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}
	e.SetPosition(33, 44)
	if x, y := e.Position(); x != 33 || y != 44 {
		t.Errorf("set position: got (%g, %g)", x, y)
	}
}
