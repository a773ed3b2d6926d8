package gamemodes

import (
	"math"

	cfg "github.com/automoto/duckworld/config"
	"github.com/automoto/duckworld/shared/duck"
	"github.com/automoto/duckworld/shared/gamemath"
	"github.com/automoto/duckworld/shared/netcomponents"
	"github.com/automoto/duckworld/shared/snapshot"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Bee is a two-core flyer. Every flight segment it rolls new lift and push
// targets; the applied velocity slides linearly from the new target back
// toward the previous one over the segment.
type Bee struct {
	ID      int
	CoreUID [2]duck.CoreUID
	Health  int

	flightTotal int
	flightCount int

	lastVelY   mgl64.Vec2
	targetVelY mgl64.Vec2
	lastVelX   float64
	targetVelX float64

	liftTween [2]*gween.Tween
	pushTween *gween.Tween
}

// spawnBee creates the bee's cores and joint in w.
func spawnBee(w *duck.WorldCore, b *Bee, id int, pos mgl64.Vec2, plg duck.GroupUID) error {
	c1, err := w.AddCustomCore(cfg.Bee.CoreRadius)
	if err != nil {
		return err
	}
	c2, err := w.AddCustomCore(cfg.Bee.CoreRadius)
	if err != nil {
		w.RemoveCustomCore(c1.UID)
		return err
	}
	for _, c := range []*duck.CustomCore{c1, c2} {
		if err := c.SetPhysicLawGroup(plg); err != nil {
			w.RemoveCustomCore(c1.UID)
			w.RemoveCustomCore(c2.UID)
			return err
		}
	}
	c1.Pos = pos
	c2.Pos = pos.Add(mgl64.Vec2{cfg.Bee.CoreSpacing, 0})

	if _, err := w.AddJoint(duck.Joint{
		CoreUID1: c1.UID,
		CoreUID2: c2.UID,
		MaxDist:  cfg.Bee.JointMaxDist,
	}); err != nil {
		w.RemoveCustomCore(c1.UID)
		w.RemoveCustomCore(c2.UID)
		return err
	}

	*b = Bee{
		ID:         id,
		CoreUID:    [2]duck.CoreUID{c1.UID, c2.UID},
		Health:     cfg.Bee.Health,
		lastVelY:   mgl64.Vec2{cfg.Bee.MaxVelY, cfg.Bee.MaxVelY},
		lastVelX:   cfg.Bee.MaxVelX,
		targetVelX: cfg.Bee.MaxVelX,
	}
	b.targetVelY = b.lastVelY
	return nil
}

// cores resolves both cores. ok is false once either is gone.
func (b *Bee) cores(w *duck.WorldCore) (c1, c2 *duck.CustomCore, ok bool) {
	c1, ok1 := w.ResolveCore(b.CoreUID[0])
	c2, ok2 := w.ResolveCore(b.CoreUID[1])
	return c1, c2, ok1 && ok2
}

func (b *Bee) newSegment(rng *xorshift32) {
	b.flightTotal = cfg.Bee.MinFlightTicks + rng.Intn(cfg.Bee.FlightTickRange)
	b.flightCount = b.flightTotal

	b.lastVelY = b.targetVelY
	b.targetVelY = mgl64.Vec2{
		rng.Float(cfg.Bee.MinVelY, cfg.Bee.MaxVelY),
		rng.Float(cfg.Bee.MinVelY, cfg.Bee.MaxVelY),
	}
	b.lastVelX = b.targetVelX
	b.targetVelX = rng.Float(cfg.Bee.MinVelX, cfg.Bee.MaxVelX)

	total := float32(b.flightTotal)
	for i := range b.liftTween {
		b.liftTween[i] = gween.New(float32(b.targetVelY[i]), float32(b.lastVelY[i]), total, ease.Linear)
	}
	b.pushTween = gween.New(float32(b.targetVelX), float32(b.lastVelX), total, ease.Linear)
}

// turnAround flips the push target without restarting the segment.
func (b *Bee) turnAround() {
	b.targetVelX = -b.targetVelX
	elapsed := float32(b.flightTotal - b.flightCount)
	b.pushTween = gween.New(float32(b.targetVelX), float32(b.lastVelX), float32(b.flightTotal), ease.Linear)
	b.pushTween.Update(elapsed)
}

// Tick steers the bee. It returns false when the bee has lost a core and
// must be released.
func (b *Bee) Tick(w *duck.WorldCore, rng *xorshift32) bool {
	c1, c2, ok := b.cores(w)
	if !ok {
		return false
	}

	var step float32 = 1
	b.flightCount--
	if b.flightCount <= 0 || b.pushTween == nil {
		b.newSegment(rng)
		step = 0
	}

	lift1, _ := b.liftTween[0].Update(step)
	lift2, _ := b.liftTween[1].Update(step)
	push, _ := b.pushTween.Update(step)

	c1.Vel[1] -= float64(lift1)
	c2.Vel[1] -= float64(lift2)

	dir, _ := gamemath.NormalizeOrZero(c1.Pos.Sub(c2.Pos))
	velX := gamemath.Sign(dir[0]) * float64(push)
	c1.Vel[0] += velX
	c2.Vel[0] += velX

	ahead := c1.Pos.Add(mgl64.Vec2{(c1.Radius + cfg.Bee.TurnProbeMargin) * gamemath.Sign(c1.Vel[0]), 0})
	if w.CheckPoint(ahead[0], ahead[1]) {
		b.turnAround()
	}

	// Lift up the rear core when the bee hangs vertically.
	if math.Abs(dir[0]) < cfg.Bee.UprightDirX {
		c2.Vel[0] -= velX * cfg.Bee.UprightPush
	}
	return true
}

// Hit consumes projectiles touching either core and reports whether the
// bee ran out of health. owner is the shooter of the last hit.
func (b *Bee) Hit(w *duck.WorldCore, projectiles []Projectile) (dead bool, owner int) {
	c1, c2, ok := b.cores(w)
	if !ok {
		return false, 0
	}
	for _, p := range projectiles {
		if p.Destroyed() {
			continue
		}
		pos, r := p.Position(), p.ProximityRadius()
		if !gamemath.CirclesOverlap(pos, r, c1.Pos, c1.Radius) && !gamemath.CirclesOverlap(pos, r, c2.Pos, c2.Radius) {
			continue
		}
		p.MarkForDestroy()
		b.Health--
		owner = p.Owner()
		if b.Health <= 0 {
			return true, owner
		}
	}
	return false, owner
}

// Destroy removes the bee's cores and its joint from w.
func (b *Bee) Destroy(w *duck.WorldCore) {
	for _, uid := range b.CoreUID {
		w.RemoveCustomCore(uid)
	}
	w.PruneJoints()
}

// Snap writes the bee record using the core indices emitted in this cycle.
// The bee is skipped when culled or when either core was not emitted. The
// record is keyed by the first core's UID, since pool slots are reused.
func (b *Bee) Snap(w *duck.WorldCore, sb *snapshot.Builder, obs duck.Observer) {
	c1, ok := w.ResolveCore(b.CoreUID[0])
	if !ok {
		return
	}
	if obs != nil && obs.NetworkClipped(c1.Pos.Add(mgl64.Vec2{cfg.Bee.SnapOffsetX, 0})) {
		return
	}
	i1, ok1 := w.SnappedCoreIndex(b.CoreUID[0])
	i2, ok2 := w.SnappedCoreIndex(b.CoreUID[1])
	if !ok1 || !ok2 {
		return
	}
	rec := snapshot.NewItemKeyed[netcomponents.NetObjBee](sb, b.ID, uint64(b.CoreUID[0]))
	if rec == nil {
		return
	}
	rec.Core1Index = int32(i1)
	rec.Core2Index = int32(i2)
	rec.Health = int32(b.Health)
}
