package duck

import (
	"fmt"
	"slices"
)

// PhysicsLawsGroup is a bundle of physics constants shared by cores.
// Friction coefficients scale velocity once per tick and are expected in
// [0, 1]; the range is not enforced.
type PhysicsLawsGroup struct {
	UID            GroupUID
	Gravity        float64
	AirFriction    float64
	GroundFriction float64
}

// AddPhysicLawsGroup creates a group with the configured defaults.
func (w *WorldCore) AddPhysicLawsGroup() (*PhysicsLawsGroup, error) {
	if len(w.groups) >= w.cfg.MaxPhysicsLawsGroups {
		err := fmt.Errorf("%w (%d)", ErrGroupLimit, w.cfg.MaxPhysicsLawsGroups)
		w.logf("%v", err)
		return nil, err
	}

	w.nextGroupUID++
	g := &PhysicsLawsGroup{
		UID:            w.nextGroupUID,
		Gravity:        w.cfg.DefaultGravity,
		AirFriction:    w.cfg.DefaultAirFriction,
		GroundFriction: w.cfg.DefaultGroundFriction,
	}
	w.groupIndex[g.UID] = len(w.groups)
	w.groups = append(w.groups, g)
	return g, nil
}

// FindGroup resolves a group UID.
func (w *WorldCore) FindGroup(uid GroupUID) (*PhysicsLawsGroup, bool) {
	i, ok := w.groupIndex[uid]
	if !ok {
		return nil, false
	}
	return w.groups[i], true
}

// RemovePhysicsLawsGroup deletes a group. Cores still referencing it fall
// back to the zero-effect laws.
func (w *WorldCore) RemovePhysicsLawsGroup(uid GroupUID) bool {
	i, ok := w.groupIndex[uid]
	if !ok {
		return false
	}
	w.groups = slices.Delete(w.groups, i, i+1)
	delete(w.groupIndex, uid)
	for j := i; j < len(w.groups); j++ {
		w.groupIndex[w.groups[j].UID] = j
	}
	return true
}

// GroupCount returns the number of live groups.
func (w *WorldCore) GroupCount() int { return len(w.groups) }

// zeroLaws applies to cores whose group is missing.
var zeroLaws = PhysicsLawsGroup{
	Gravity:        0,
	AirFriction:    1,
	GroundFriction: 1,
}

// resolveLaws returns the laws for a core, falling back to zeroLaws.
func (w *WorldCore) resolveLaws(uid GroupUID) PhysicsLawsGroup {
	if g, ok := w.FindGroup(uid); ok {
		return *g
	}
	return zeroLaws
}
