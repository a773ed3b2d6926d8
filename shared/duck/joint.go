package duck

import (
	"fmt"
	"slices"

	"github.com/automoto/duckworld/shared/gamemath"
)

// Joint links two cores. While the cores are farther apart than the sum of
// their radii, each tick core 1 is pulled toward core 2 by Force1 and core 2
// toward core 1 by Force2, as velocity impulses. Closer than that the joint
// is at rest and friction alone settles the pair. MaxDist > 0 additionally
// caps the separation after integration.
type Joint struct {
	CoreUID1 CoreUID
	CoreUID2 CoreUID
	Force1   float64
	Force2   float64
	MaxDist  float64

	uid uint64 // Assigned by AddJoint, never reused
}

// AddJoint appends a joint between two existing cores and returns its
// current index.
func (w *WorldCore) AddJoint(j Joint) (int, error) {
	if j.CoreUID1 == j.CoreUID2 {
		return -1, w.defect(fmt.Errorf("%w: core %d", ErrSelfJoint, j.CoreUID1))
	}
	if _, ok := w.ResolveCore(j.CoreUID1); !ok {
		return -1, w.defect(fmt.Errorf("%w: joint end %d", ErrUnknownCore, j.CoreUID1))
	}
	if _, ok := w.ResolveCore(j.CoreUID2); !ok {
		return -1, w.defect(fmt.Errorf("%w: joint end %d", ErrUnknownCore, j.CoreUID2))
	}
	if len(w.joints) >= w.cfg.MaxJoints {
		err := fmt.Errorf("%w (%d)", ErrJointLimit, w.cfg.MaxJoints)
		w.logf("%v", err)
		return -1, err
	}
	w.nextJointUID++
	j.uid = w.nextJointUID
	w.joints = append(w.joints, j)
	return len(w.joints) - 1, nil
}

// Joints returns the joint list in index order. The slice must not be
// modified.
func (w *WorldCore) Joints() []Joint { return w.joints }

// JointCount returns the number of joints, inert ones included.
func (w *WorldCore) JointCount() int { return len(w.joints) }

// PruneJoints drops joints with a removed end and returns how many were
// dropped. Joint indices shift; the order of the survivors is kept.
func (w *WorldCore) PruneJoints() int {
	before := len(w.joints)
	w.joints = slices.DeleteFunc(w.joints, func(j Joint) bool {
		_, _, ok := w.resolveJoint(&j)
		return !ok
	})
	return before - len(w.joints)
}

// resolveJoint returns both ends, or ok=false if either is gone.
func (w *WorldCore) resolveJoint(j *Joint) (c1, c2 *CustomCore, ok bool) {
	c1, ok1 := w.ResolveCore(j.CoreUID1)
	c2, ok2 := w.ResolveCore(j.CoreUID2)
	if !ok1 || !ok2 || c1 == c2 {
		return nil, nil, false
	}
	return c1, c2, true
}

func (w *WorldCore) applyJointForce(j *Joint) {
	c1, c2, ok := w.resolveJoint(j)
	if !ok {
		return
	}
	dir, dist := gamemath.NormalizeOrZero(c2.Pos.Sub(c1.Pos))
	if dist == 0 || dist <= restLength(c1, c2) {
		return
	}
	c1.Vel = c1.Vel.Add(dir.Mul(j.Force1))
	c2.Vel = c2.Vel.Sub(dir.Mul(j.Force2))
}

// restLength is the separation at which the cores touch.
func restLength(c1, c2 *CustomCore) float64 {
	return c1.Radius + c2.Radius
}

// applyJointLimit pulls the ends back to MaxDist around their midpoint and
// removes the relative velocity that is still separating them.
func (w *WorldCore) applyJointLimit(j *Joint) {
	if j.MaxDist <= 0 {
		return
	}
	c1, c2, ok := w.resolveJoint(j)
	if !ok {
		return
	}
	dir, dist := gamemath.NormalizeOrZero(c2.Pos.Sub(c1.Pos))
	if dist <= j.MaxDist {
		return
	}

	mid := c1.Pos.Add(c2.Pos).Mul(0.5)
	half := dir.Mul(j.MaxDist / 2)
	c1.Pos = mid.Sub(half)
	c2.Pos = mid.Add(half)

	v1n := c1.Vel.Dot(dir)
	v2n := c2.Vel.Dot(dir)
	if v2n-v1n > 0 {
		avg := (v1n + v2n) / 2
		c1.Vel = c1.Vel.Add(dir.Mul(avg - v1n))
		c2.Vel = c2.Vel.Add(dir.Mul(avg - v2n))
	}
}
