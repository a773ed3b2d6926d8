package duck

import (
	"fmt"
	"math"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
)

// CustomCore is a circular body simulated by the world. Pos, Vel and PlgUID
// may be written directly by game logic between ticks.
type CustomCore struct {
	UID    CoreUID
	Pos    mgl64.Vec2
	Vel    mgl64.Vec2
	Radius float64
	PlgUID GroupUID

	world *WorldCore
}

// SetPhysicLawGroup points the core at an existing group.
func (c *CustomCore) SetPhysicLawGroup(uid GroupUID) error {
	if c.world == nil {
		return fmt.Errorf("%w: core %d was removed", ErrUnknownCore, c.UID)
	}
	if _, ok := c.world.FindGroup(uid); !ok {
		return c.world.defect(fmt.Errorf("%w: core %d -> group %d", ErrUnknownGroup, c.UID, uid))
	}
	c.PlgUID = uid
	return nil
}

// AddCustomCore creates a core at the origin with zero velocity and no
// group.
func (w *WorldCore) AddCustomCore(radius float64) (*CustomCore, error) {
	if !(radius > 0) || math.IsInf(radius, 0) {
		return nil, w.defect(fmt.Errorf("%w: %v", ErrInvalidRadius, radius))
	}
	if len(w.cores) >= w.cfg.MaxCustomCores {
		err := fmt.Errorf("%w (%d)", ErrCoreLimit, w.cfg.MaxCustomCores)
		w.logf("%v", err)
		return nil, err
	}

	w.nextCoreUID++
	c := &CustomCore{
		UID:    w.nextCoreUID,
		Radius: radius,
		world:  w,
	}
	w.coreIndex[c.UID] = len(w.cores)
	w.cores = append(w.cores, c)
	return c, nil
}

// FindCustomCoreFromUID resolves a core and its current storage index. It
// returns nil and -1 when the core does not exist. The index must not be
// kept past the current tick.
func (w *WorldCore) FindCustomCoreFromUID(uid CoreUID) (*CustomCore, int) {
	i, ok := w.coreIndex[uid]
	if !ok {
		return nil, -1
	}
	return w.cores[i], i
}

// ResolveCore is the resolve-or-skip form of FindCustomCoreFromUID.
func (w *WorldCore) ResolveCore(uid CoreUID) (*CustomCore, bool) {
	i, ok := w.coreIndex[uid]
	if !ok {
		return nil, false
	}
	return w.cores[i], true
}

// RemoveCustomCore deletes a core. Surviving cores keep their UIDs and
// relative order; indices after the removed one shift down. Joints that
// reference the core become inert.
func (w *WorldCore) RemoveCustomCore(uid CoreUID) bool {
	i, ok := w.coreIndex[uid]
	if !ok {
		return false
	}
	w.cores[i].world = nil
	w.cores = slices.Delete(w.cores, i, i+1)
	delete(w.coreIndex, uid)
	for j := i; j < len(w.cores); j++ {
		w.coreIndex[w.cores[j].UID] = j
	}
	// Indices handed out by the last Snap no longer match storage.
	clear(w.snapped)
	return true
}

// Cores returns the live cores in index order. The slice must not be
// modified and is invalidated by AddCustomCore and RemoveCustomCore.
func (w *WorldCore) Cores() []*CustomCore { return w.cores }

// CoreCount returns the number of live cores.
func (w *WorldCore) CoreCount() int { return len(w.cores) }
