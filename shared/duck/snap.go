package duck

import (
	"github.com/automoto/duckworld/shared/netcomponents"
	"github.com/automoto/duckworld/shared/netconfig"
	"github.com/automoto/duckworld/shared/snapshot"
)

// Snap writes the world's records for one observer into sb, in index order:
// groups, then cores, then joints. Cross references carry the indices
// resolved in this call. Cores culled by obs, or beyond the per-type cap,
// are left out together with every joint touching them. A nil obs sees
// everything. Items are keyed by the entity's UID so consumers can follow an
// entity across cycles while its index moves.
func (w *WorldCore) Snap(sb *snapshot.Builder, obs Observer) {
	clear(w.snapped)

	groupSnapped := make(map[GroupUID]int, len(w.groups))
	for i, g := range w.groups {
		if i >= w.cfg.MaxSnapGroups {
			break
		}
		rec := snapshot.NewItemKeyed[netcomponents.NetObjDuckPhysicsLawsGroup](sb, i, uint64(g.UID))
		if rec == nil {
			break
		}
		rec.Gravity = netconfig.ToFixed(g.Gravity)
		rec.AirFriction = netconfig.ToFixed(g.AirFriction)
		rec.GroundFriction = netconfig.ToFixed(g.GroundFriction)
		groupSnapped[g.UID] = i
	}

	emitted := 0
	for i, c := range w.cores {
		if emitted >= w.cfg.MaxSnapCores {
			break
		}
		if obs != nil && obs.NetworkClipped(c.Pos) {
			continue
		}
		rec := snapshot.NewItemKeyed[netcomponents.NetObjDuckCustomCore](sb, i, uint64(c.UID))
		if rec == nil {
			break
		}
		rec.PosX = netconfig.ToFixed(c.Pos[0])
		rec.PosY = netconfig.ToFixed(c.Pos[1])
		rec.VelX = netconfig.ToFixed(c.Vel[0])
		rec.VelY = netconfig.ToFixed(c.Vel[1])
		rec.Radius = netconfig.ToFixed(c.Radius)
		rec.PlgIndex = -1
		if gi, ok := groupSnapped[c.PlgUID]; ok {
			rec.PlgIndex = int32(gi)
		}
		w.snapped[c.UID] = i
		emitted++
	}

	emitted = 0
	for i := range w.joints {
		if emitted >= w.cfg.MaxSnapJoints {
			break
		}
		j := &w.joints[i]
		i1, ok1 := w.snapped[j.CoreUID1]
		i2, ok2 := w.snapped[j.CoreUID2]
		if !ok1 || !ok2 {
			continue
		}
		rec := snapshot.NewItemKeyed[netcomponents.NetObjDuckPhysJoint](sb, i, j.uid)
		if rec == nil {
			break
		}
		rec.Core1Index = int32(i1)
		rec.Core2Index = int32(i2)
		rec.Force1 = netconfig.ToFixed(j.Force1)
		rec.Force2 = netconfig.ToFixed(j.Force2)
		rec.MaxDist = netconfig.ToFixed(j.MaxDist)
		emitted++
	}
}

// SnappedCoreIndex returns the index a core was emitted under by the latest
// Snap. ok is false if the core was not emitted, or if a Tick or removal
// happened since. Game logic writing records that reference cores must use
// this during the same snapshot cycle.
func (w *WorldCore) SnappedCoreIndex(uid CoreUID) (int, bool) {
	i, ok := w.snapped[uid]
	return i, ok
}
