package duck

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestAddPhysicLawsGroupDefaults(t *testing.T) {
	w := newTestWorld(nil)
	g, err := w.AddPhysicLawsGroup()
	if err != nil {
		t.Fatal(err)
	}
	if g.Gravity == 0 {
		t.Error("default gravity should be non-zero")
	}
	if g.AirFriction != 1 || g.GroundFriction != 1 {
		t.Errorf("default frictions = %v/%v, want 1/1", g.AirFriction, g.GroundFriction)
	}
	found, ok := w.FindGroup(g.UID)
	if !ok || found != g {
		t.Fatal("FindGroup did not return the created group")
	}
}

func TestGroupUIDsSurviveCoreCreation(t *testing.T) {
	w := newTestWorld(nil)
	g1 := mustGroup(t, w, 1, 1, 1)
	for i := 0; i < 10; i++ {
		mustCore(t, w, 5, mgl64.Vec2{})
	}
	g2 := mustGroup(t, w, 2, 1, 1)
	if g1.UID == g2.UID {
		t.Fatal("group UIDs must be unique")
	}
	if got, ok := w.FindGroup(g1.UID); !ok || got.Gravity != 1 {
		t.Fatal("first group lost after core creation")
	}
}

func TestGroupLimit(t *testing.T) {
	cfg := testConfig()
	cfg.MaxPhysicsLawsGroups = 2
	w := NewWorldCore(nil, cfg)
	for i := 0; i < 2; i++ {
		if _, err := w.AddPhysicLawsGroup(); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := w.AddPhysicLawsGroup(); !errors.Is(err, ErrGroupLimit) {
		t.Fatalf("err = %v, want ErrGroupLimit", err)
	}
}

func TestRemovedGroupFallsBackToZeroEffect(t *testing.T) {
	w := newTestWorld(nil)
	g := mustGroup(t, w, 3, 0.5, 0.5)
	other := mustGroup(t, w, 1, 1, 1)
	c := mustCore(t, w, 10, mgl64.Vec2{50, 50})
	if err := c.SetPhysicLawGroup(g.UID); err != nil {
		t.Fatal(err)
	}
	c.Vel = mgl64.Vec2{4, 0}

	if !w.RemovePhysicsLawsGroup(g.UID) {
		t.Fatal("remove failed")
	}
	if w.RemovePhysicsLawsGroup(g.UID) {
		t.Fatal("second remove should report false")
	}
	if _, ok := w.FindGroup(other.UID); !ok {
		t.Fatal("surviving group lost its mapping")
	}

	w.Tick()
	if c.Vel != (mgl64.Vec2{4, 0}) {
		t.Errorf("Vel = %v, want unchanged (4,0)", c.Vel)
	}
	if c.Pos != (mgl64.Vec2{54, 50}) {
		t.Errorf("Pos = %v, want (54,50)", c.Pos)
	}
}
