package gamemodes

import (
	"math"
	"testing"
)

func TestExamplePhys1Scene(t *testing.T) {
	m, err := NewExamplePhys1(testOptions())
	if err != nil {
		t.Fatal(err)
	}
	w := m.World()
	if w.GroupCount() != 1 || w.CoreCount() != 3 || w.JointCount() != 1 {
		t.Fatalf("scene = %d groups %d cores %d joints", w.GroupCount(), w.CoreCount(), w.JointCount())
	}

	cores := w.Cores()
	if cores[0].Radius != 40 || cores[0].Pos[0] != 500 || cores[1].Pos[0] != 300 || cores[2].Pos[0] != 400 {
		t.Fatalf("unexpected core layout")
	}
}

func TestExamplePhys1JointPullsPair(t *testing.T) {
	m, err := NewExamplePhys1(testOptions())
	if err != nil {
		t.Fatal(err)
	}
	m.Tick()

	// Core 1 at x=500 is pulled left toward core 2 at x=300, core 2 right.
	cores := m.World().Cores()
	if math.Abs(cores[0].Vel[0]+2) > 1e-9 {
		t.Errorf("core1 Vel.x = %v, want -2", cores[0].Vel[0])
	}
	if math.Abs(cores[1].Vel[0]-0.1) > 1e-9 {
		t.Errorf("core2 Vel.x = %v, want 0.1", cores[1].Vel[0])
	}
	if cores[2].Vel[0] != 0 {
		t.Errorf("unjointed core moved sideways: %v", cores[2].Vel)
	}
}

func TestExamplePhys1ResetRebuilds(t *testing.T) {
	m, err := NewExamplePhys1(testOptions())
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		m.Tick()
	}
	if err := m.Reset(); err != nil {
		t.Fatal(err)
	}
	w := m.World()
	if w.CoreCount() != 3 || w.JointCount() != 1 {
		t.Fatalf("reset left %d cores %d joints", w.CoreCount(), w.JointCount())
	}
	if w.Cores()[0].Pos[0] != 500 {
		t.Fatalf("reset did not restore positions: %v", w.Cores()[0].Pos)
	}
}
