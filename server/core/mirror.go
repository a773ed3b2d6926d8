package core

import (
	"fmt"

	"github.com/automoto/duckworld/shared/netcomponents"
	"github.com/automoto/duckworld/shared/netconfig"
	"github.com/automoto/duckworld/shared/snapshot"
	"github.com/automoto/duckworld/tags"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/yohamta/donburi"
)

type mirrorKey struct {
	typ netconfig.ObjType
	key uint64
}

// Mirror keeps one donburi entity per snapshot record so esync can
// replicate the snapshot. Entities are keyed by record type and item Key,
// never by record id: a core's id is its storage index, and reusing an
// entity for a different core would make clients interpolate between two
// bodies. Records missing from a cycle have their entity removed.
type Mirror struct {
	world       donburi.World
	networkSync bool

	entities map[mirrorKey]donburi.Entity
	seen     map[mirrorKey]struct{}
}

// NewMirror creates a mirror writing into world. With networkSync set,
// new entities are registered with srvsync.
func NewMirror(world donburi.World, networkSync bool) *Mirror {
	return &Mirror{
		world:       world,
		networkSync: networkSync,
		entities:    make(map[mirrorKey]donburi.Entity),
		seen:        make(map[mirrorKey]struct{}),
	}
}

// Apply brings the mirrored entities in line with the records in sb.
func (m *Mirror) Apply(sb *snapshot.Builder) error {
	clear(m.seen)

	var firstErr error
	for _, it := range sb.Items() {
		k := mirrorKey{typ: it.Type, key: it.Key}
		var err error
		switch rec := it.Data.(type) {
		case *netcomponents.NetObjDuckPhysicsLawsGroup:
			err = mirrorRecord(m, k, netcomponents.NetPhysicsLawsGroup, rec, false)
		case *netcomponents.NetObjDuckCustomCore:
			err = mirrorRecord(m, k, netcomponents.NetCustomCore, rec, true)
		case *netcomponents.NetObjDuckPhysJoint:
			err = mirrorRecord(m, k, netcomponents.NetPhysJoint, rec, false)
		case *netcomponents.NetObjBee:
			err = mirrorRecord(m, k, netcomponents.NetBee, rec, false)
		case *netcomponents.NetObjHive:
			err = mirrorRecord(m, k, netcomponents.NetHive, rec, false)
		case *netcomponents.NetObjProjectile:
			err = mirrorRecord(m, k, netcomponents.NetProjectile, rec, true)
		default:
			err = fmt.Errorf("mirror: unsupported record %T", it.Data)
		}
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		m.seen[k] = struct{}{}
	}

	for k, e := range m.entities {
		if _, ok := m.seen[k]; ok {
			continue
		}
		if m.world.Valid(e) {
			m.world.Remove(e)
		}
		delete(m.entities, k)
	}
	return firstErr
}

func mirrorRecord[T any](m *Mirror, k mirrorKey, ct *donburi.ComponentType[T], rec *T, interp bool) error {
	e, ok := m.entities[k]
	if !ok || !m.world.Valid(e) {
		components := []donburi.IComponentType{tags.DuckRecord, ct}
		if k.typ == netconfig.ObjProjectile {
			components = append(components, tags.Projectile)
		}
		e = m.world.Create(components...)
		ct.Set(m.world.Entry(e), rec)

		if m.networkSync {
			var err error
			if interp {
				err = srvsync.NetworkSync(m.world, &e, srvsync.WithInterp(ct))
			} else {
				err = srvsync.NetworkSync(m.world, &e, ct)
			}
			if err != nil {
				m.world.Remove(e)
				return fmt.Errorf("mirror: sync %s %d: %w", k.typ, k.key, err)
			}
		}
		m.entities[k] = e
		return nil
	}
	ct.Set(m.world.Entry(e), rec)
	return nil
}

// Len returns the number of mirrored entities.
func (m *Mirror) Len() int { return len(m.entities) }

// Entity returns the entity mirroring the record of type typ with the
// given item key.
func (m *Mirror) Entity(typ netconfig.ObjType, key uint64) (donburi.Entity, bool) {
	e, ok := m.entities[mirrorKey{typ: typ, key: key}]
	return e, ok
}
