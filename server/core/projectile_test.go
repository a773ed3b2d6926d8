package core

import (
	"math"
	"testing"

	cfg "github.com/automoto/duckworld/config"
	"github.com/automoto/duckworld/shared/netcomponents"
	"github.com/automoto/duckworld/shared/netconfig"
	"github.com/automoto/duckworld/shared/snapshot"
	"github.com/go-gl/mathgl/mgl64"
)

func TestProjectileFliesUnderGravity(t *testing.T) {
	s := NewProjectileSet(openLevel(), 4)
	slot, ok := s.Fire(1, mgl64.Vec2{100, 100}, mgl64.Vec2{1, 0})
	if !ok {
		t.Fatal("fire failed")
	}

	s.Step()

	p := s.pool.Get(slot)
	wantVel := mgl64.Vec2{cfg.Projectile.Speed, cfg.Projectile.Gravity}
	if p.Vel != wantVel {
		t.Fatalf("Vel = %v, want %v", p.Vel, wantVel)
	}
	if p.Pos != (mgl64.Vec2{100, 100}).Add(wantVel) {
		t.Fatalf("Pos = %v", p.Pos)
	}
	if p.Object.X != p.Pos[0]-cfg.Projectile.Radius {
		t.Fatalf("resolv object not synced: %v", p.Object.X)
	}
}

func TestProjectileStopsOnTile(t *testing.T) {
	s := NewProjectileSet(openLevel(), 4)
	s.Fire(1, mgl64.Vec2{300, 1850}, mgl64.Vec2{0, 1})

	for i := 0; i < 5 && s.Len() > 0; i++ {
		s.Step()
		s.Sweep()
	}
	if s.Len() != 0 {
		t.Fatal("projectile passed through the floor")
	}
}

func TestProjectileExpires(t *testing.T) {
	s := NewProjectileSet(openLevel(), 4)
	// Straight up from near the floor stays in the room for the whole lifetime.
	s.Fire(1, mgl64.Vec2{1000, 1880}, mgl64.Vec2{0, -1})

	for i := 0; i < cfg.Projectile.Lifetime-1; i++ {
		s.Step()
	}
	if len(s.Projectiles()) != 1 {
		t.Fatal("projectile expired early")
	}
	s.Step()
	if len(s.Projectiles()) != 0 {
		t.Fatal("projectile outlived its lifetime")
	}
	if s.Sweep() != 1 || s.Len() != 0 {
		t.Fatal("expired projectile not swept")
	}
}

func TestProjectileLeavingMapIsDestroyed(t *testing.T) {
	s := NewProjectileSet(openLevel(), 4)
	s.Fire(1, mgl64.Vec2{1990, 100}, mgl64.Vec2{1, 0})
	s.Step()
	if len(s.Projectiles()) != 0 {
		t.Fatal("projectile outside the map still live")
	}
}

func TestProjectileCapacityAndBounds(t *testing.T) {
	s := NewProjectileSet(openLevel(), 2)
	if _, ok := s.Fire(1, mgl64.Vec2{-5, 100}, mgl64.Vec2{1, 0}); ok {
		t.Fatal("fired from outside the map")
	}
	if _, ok := s.Fire(1, mgl64.Vec2{math.NaN(), 100}, mgl64.Vec2{1, 0}); ok {
		t.Fatal("fired from a NaN position")
	}
	for i := 0; i < 2; i++ {
		if _, ok := s.Fire(1, mgl64.Vec2{100, 100}, mgl64.Vec2{1, 0}); !ok {
			t.Fatalf("fire %d failed", i)
		}
	}
	if _, ok := s.Fire(1, mgl64.Vec2{100, 100}, mgl64.Vec2{1, 0}); ok {
		t.Fatal("fired beyond capacity")
	}
}

func TestProjectileMarkedIsHiddenAndSwept(t *testing.T) {
	s := NewProjectileSet(openLevel(), 4)
	s.Fire(1, mgl64.Vec2{100, 100}, mgl64.Vec2{1, 0})
	s.Fire(2, mgl64.Vec2{200, 100}, mgl64.Vec2{1, 0})

	live := s.Projectiles()
	if len(live) != 2 {
		t.Fatalf("live = %d, want 2", len(live))
	}
	live[0].MarkForDestroy()

	if got := s.Projectiles(); len(got) != 1 || got[0].Owner() != 2 {
		t.Fatalf("marked projectile still listed")
	}
	if s.Sweep() != 1 {
		t.Fatal("marked projectile not swept")
	}
}

func TestProjectileSnap(t *testing.T) {
	s := NewProjectileSet(openLevel(), 4)
	s.Fire(9, mgl64.Vec2{100, 100}, mgl64.Vec2{1, 0})
	s.Fire(9, mgl64.Vec2{1900, 100}, mgl64.Vec2{1, 0})

	sb := snapshot.NewBuilder(16)
	s.Snap(sb, &Observer{View: mgl64.Vec2{0, 0}})

	if sb.Count(netconfig.ObjProjectile) != 1 {
		t.Fatalf("records = %d, want 1 visible", sb.Count(netconfig.ObjProjectile))
	}
	rec, ok := sb.Find(netconfig.ObjProjectile, 0)
	if !ok {
		t.Fatal("slot 0 not emitted")
	}
	p := rec.(*netcomponents.NetObjProjectile)
	if p.Owner != 9 || netconfig.FromFixed(p.PosX) != 100 {
		t.Fatalf("record = %+v", *p)
	}
}

func TestProjectileReusedSlotGetsNewKey(t *testing.T) {
	s := NewProjectileSet(openLevel(), 1)
	sb := snapshot.NewBuilder(4)

	first, _ := s.Fire(1, mgl64.Vec2{100, 100}, mgl64.Vec2{1, 0})
	s.Snap(sb, nil)
	firstKey := sb.Items()[0].Key

	s.pool.Get(first).MarkForDestroy()
	s.Sweep()
	second, ok := s.Fire(2, mgl64.Vec2{500, 100}, mgl64.Vec2{1, 0})
	if !ok || second != first {
		t.Fatalf("expected slot %d to be reused, got %d (ok=%v)", first, second, ok)
	}

	sb.Reset()
	s.Snap(sb, nil)
	if it := sb.Items()[0]; it.ID != second || it.Key == firstKey {
		t.Fatalf("reused slot record id=%d key=%d, want id %d and a key other than %d", it.ID, it.Key, second, firstKey)
	}
}
