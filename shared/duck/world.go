package duck

import (
	"log"

	"github.com/automoto/duckworld/config"
	"github.com/automoto/duckworld/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

// WorldCore owns the groups, cores and joints of one simulation. It is not
// safe for concurrent use; the server drives it from its tick goroutine.
type WorldCore struct {
	cfg       config.DuckConfig
	collision Collision

	groups       []*PhysicsLawsGroup
	groupIndex   map[GroupUID]int
	nextGroupUID GroupUID

	cores       []*CustomCore
	coreIndex   map[CoreUID]int
	nextCoreUID CoreUID

	joints       []Joint
	nextJointUID uint64

	// Core index per UID for cores emitted by the latest Snap. Cleared on
	// Tick and whenever storage compacts.
	snapped map[CoreUID]int

	probes map[int][]mgl64.Vec2
}

// NewWorldCore creates an empty world. A nil collision is an empty map.
func NewWorldCore(collision Collision, cfg config.DuckConfig) *WorldCore {
	return &WorldCore{
		cfg:        cfg,
		collision:  collision,
		groupIndex: make(map[GroupUID]int),
		coreIndex:  make(map[CoreUID]int),
		snapped:    make(map[CoreUID]int),
		probes:     make(map[int][]mgl64.Vec2),
	}
}

// Collision returns the tile collision the world was created with.
func (w *WorldCore) Collision() Collision { return w.collision }

// CheckPoint reports whether a point is solid. Without a collision surface
// nothing is solid.
func (w *WorldCore) CheckPoint(x, y float64) bool {
	if w.collision == nil {
		return false
	}
	return w.collision.CheckPoint(x, y)
}

// Tick advances the simulation by one unit timestep:
//  1. joint forces are added to the velocities of both ends
//  2. every core gets gravity, then friction, then moves by its new
//     velocity with tile collision
//  3. joint distance limits are enforced on the resulting positions
func (w *WorldCore) Tick() {
	clear(w.snapped)

	for i := range w.joints {
		w.applyJointForce(&w.joints[i])
	}

	for _, c := range w.cores {
		w.integrate(c)
	}

	for i := range w.joints {
		w.applyJointLimit(&w.joints[i])
	}
}

func (w *WorldCore) integrate(c *CustomCore) {
	laws := w.resolveLaws(c.PlgUID)

	if !gamemath.Finite(c.Pos) {
		c.Pos = mgl64.Vec2{}
		c.Vel = mgl64.Vec2{}
	}
	if !gamemath.Finite(c.Vel) {
		c.Vel = mgl64.Vec2{}
	}
	prevPos := c.Pos

	grounded := w.grounded(c)

	c.Vel[1] += laws.Gravity
	if grounded {
		c.Vel = c.Vel.Mul(laws.GroundFriction)
	} else {
		c.Vel = c.Vel.Mul(laws.AirFriction)
	}

	w.move(c)

	if !gamemath.Finite(c.Pos) || !gamemath.Finite(c.Vel) {
		c.Vel = mgl64.Vec2{}
		c.Pos = prevPos
	}
}

// defect reports a configuration defect. In debug mode it panics.
func (w *WorldCore) defect(err error) error {
	if w.cfg.Debug {
		panic(err)
	}
	w.logf("%v", err)
	return err
}

func (w *WorldCore) logf(format string, args ...any) {
	log.Printf("[duck] "+format, args...)
}
