package duck

import (
	"math"
	"testing"

	"github.com/automoto/duckworld/config"
	"github.com/go-gl/mathgl/mgl64"
)

// floorCollision is solid everywhere at or below floorY.
type floorCollision struct {
	floorY float64
}

func (f floorCollision) CheckPoint(_, y float64) bool {
	return y >= f.floorY
}

func testConfig() config.DuckConfig {
	cfg := config.Duck
	cfg.Debug = false
	return cfg
}

func newTestWorld(col Collision) *WorldCore {
	return NewWorldCore(col, testConfig())
}

func mustCore(t *testing.T, w *WorldCore, radius float64, pos mgl64.Vec2) *CustomCore {
	t.Helper()
	c, err := w.AddCustomCore(radius)
	if err != nil {
		t.Fatalf("AddCustomCore(%v): %v", radius, err)
	}
	c.Pos = pos
	return c
}

func mustGroup(t *testing.T, w *WorldCore, gravity, air, ground float64) *PhysicsLawsGroup {
	t.Helper()
	g, err := w.AddPhysicLawsGroup()
	if err != nil {
		t.Fatalf("AddPhysicLawsGroup: %v", err)
	}
	g.Gravity = gravity
	g.AirFriction = air
	g.GroundFriction = ground
	return g
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("%s: expected panic", name)
		}
	}()
	fn()
}
