package duck

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// maxMoveSteps bounds the sub-steps of a single move. Each sub-step covers
// at most one unit of distance up to this bound.
const maxMoveSteps = 256

// grounded checks two points just below the core's bottom edge.
func (w *WorldCore) grounded(c *CustomCore) bool {
	if w.collision == nil {
		return false
	}
	y := c.Pos[1] + c.Radius + w.cfg.GroundProbeOffset
	return w.collision.CheckPoint(c.Pos[0]-c.Radius/2, y) ||
		w.collision.CheckPoint(c.Pos[0]+c.Radius/2, y)
}

// move integrates position by velocity in sub-steps. A blocked axis has its
// position step cancelled and its velocity component zeroed.
func (w *WorldCore) move(c *CustomCore) {
	if w.collision == nil {
		c.Pos = c.Pos.Add(c.Vel)
		return
	}

	if w.testCircle(c.Pos, c.Radius) {
		w.depenetrate(c)
	}

	distance := c.Vel.Len()
	if math.IsNaN(distance) || math.IsInf(distance, 0) || distance == 0 {
		return
	}
	steps := int(distance)
	if steps > maxMoveSteps {
		steps = maxMoveSteps
	}
	fraction := 1 / float64(steps+1)

	pos := c.Pos
	for i := 0; i <= steps; i++ {
		next := pos.Add(c.Vel.Mul(fraction))
		if w.testCircle(next, c.Radius) {
			hit := false
			if w.testCircle(mgl64.Vec2{pos[0], next[1]}, c.Radius) {
				next[1] = pos[1]
				c.Vel[1] = 0
				hit = true
			}
			if w.testCircle(mgl64.Vec2{next[0], pos[1]}, c.Radius) {
				next[0] = pos[0]
				c.Vel[0] = 0
				hit = true
			}
			// Only the diagonal is blocked.
			if !hit {
				next = pos
				c.Vel = mgl64.Vec2{}
			}
		}
		pos = next
	}
	c.Pos = pos
}

// depenetrate pushes a core that starts inside solid tiles out along the
// axis needing the smallest displacement and zeroes velocity on that axis.
// Ties resolve in the order +x, -x, +y, -y.
func (w *WorldCore) depenetrate(c *CustomCore) {
	limit := int(math.Ceil(2 * c.Radius))
	dirs := [4]mgl64.Vec2{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	for d := 1; d <= limit; d++ {
		for _, dir := range dirs {
			candidate := c.Pos.Add(dir.Mul(float64(d)))
			if w.testCircle(candidate, c.Radius) {
				continue
			}
			c.Pos = candidate
			if dir[0] != 0 {
				c.Vel[0] = 0
			} else {
				c.Vel[1] = 0
			}
			return
		}
	}
}

// testCircle reports whether any perimeter probe of the circle is solid.
func (w *WorldCore) testCircle(pos mgl64.Vec2, radius float64) bool {
	for _, u := range w.unitProbes(radius) {
		if w.collision.CheckPoint(pos[0]+u[0]*radius, pos[1]+u[1]*radius) {
			return true
		}
	}
	return false
}

// unitProbes returns unit-circle directions spaced so that probes on a
// circle of the given radius are at most CollisionProbeSpacing apart.
func (w *WorldCore) unitProbes(radius float64) []mgl64.Vec2 {
	spacing := w.cfg.CollisionProbeSpacing
	if spacing <= 0 {
		spacing = 16
	}
	n := int(math.Ceil(2 * math.Pi * radius / spacing))
	if n < 8 {
		n = 8
	}
	unit, ok := w.probes[n]
	if !ok {
		unit = make([]mgl64.Vec2, n)
		for k := range unit {
			a := 2 * math.Pi * float64(k) / float64(n)
			unit[k] = mgl64.Vec2{math.Cos(a), math.Sin(a)}
		}
		w.probes[n] = unit
	}
	return unit
}
