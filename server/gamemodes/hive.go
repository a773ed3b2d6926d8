package gamemodes

import (
	cfg "github.com/automoto/duckworld/config"
	"github.com/automoto/duckworld/shared/duck"
	"github.com/automoto/duckworld/shared/gamemath"
	"github.com/automoto/duckworld/shared/messages"
	"github.com/automoto/duckworld/shared/netcomponents"
	"github.com/automoto/duckworld/shared/snapshot"
	"github.com/go-gl/mathgl/mgl64"
)

// Hive is a pinned core that eats projectiles and releases a bee every
// few hits.
type Hive struct {
	ID      int
	CoreUID duck.CoreUID
	Hits    int
}

func newHive(w *duck.WorldCore, id int, pos mgl64.Vec2, plg duck.GroupUID) (*Hive, error) {
	c, err := w.AddCustomCore(cfg.Hive.CoreRadius)
	if err != nil {
		return nil, err
	}
	if err := c.SetPhysicLawGroup(plg); err != nil {
		w.RemoveCustomCore(c.UID)
		return nil, err
	}
	c.Pos = pos
	return &Hive{ID: id, CoreUID: c.UID, Hits: cfg.Hive.HitsPerSpawn}, nil
}

// Tick pins the hive and consumes touching projectiles. spawn is called
// with the bee spawn position each time the hit counter runs out.
func (h *Hive) Tick(w *duck.WorldCore, projectiles []Projectile, events func(any), spawn func(mgl64.Vec2)) {
	c, ok := w.ResolveCore(h.CoreUID)
	if !ok {
		return
	}
	c.Vel = mgl64.Vec2{}

	for _, p := range projectiles {
		if p.Destroyed() {
			continue
		}
		pos := p.Position()
		if !gamemath.CirclesOverlap(pos, p.ProximityRadius(), c.Pos, c.Radius) {
			continue
		}
		p.MarkForDestroy()
		h.Hits--

		events(messages.HiveHitEvent{
			HiveID:   h.ID,
			OwnerID:  p.Owner(),
			X:        pos[0],
			Y:        pos[1],
			HitsLeft: h.Hits,
		})

		if h.Hits <= 0 {
			h.Hits = cfg.Hive.HitsPerSpawn
			spawn(c.Pos.Add(mgl64.Vec2{0, c.Radius + cfg.Hive.SpawnOffsetY}))
		}
	}
}

// Snap writes the hive record. Hives have no culling test of their own:
// whatever keeps the hive's core out of this cycle (observer culling, the
// core cap, a full buffer) also hides the hive, because its record would
// otherwise reference a core index the receiver never got.
func (h *Hive) Snap(w *duck.WorldCore, sb *snapshot.Builder) {
	idx, ok := w.SnappedCoreIndex(h.CoreUID)
	if !ok {
		return
	}
	rec := snapshot.NewItemKeyed[netcomponents.NetObjHive](sb, h.ID, uint64(h.CoreUID))
	if rec == nil {
		return
	}
	rec.CoreIndex = int32(idx)
}
