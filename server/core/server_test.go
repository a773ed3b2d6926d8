package core

import (
	"bytes"
	"testing"

	cfg "github.com/automoto/duckworld/config"
	"github.com/automoto/duckworld/server/gamemodes"
	"github.com/automoto/duckworld/shared/netconfig"
	"github.com/go-gl/mathgl/mgl64"
)

func newTestServer(t *testing.T, mode string) *Server {
	t.Helper()
	s, err := NewServer(Options{Mode: mode, Level: openLevel(), Seed: 7, TickRate: 50})
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestNewServerValidates(t *testing.T) {
	if _, err := NewServer(Options{Mode: gamemodes.ExamplePhys3Name}); err == nil {
		t.Fatal("expected error without level")
	}
	if _, err := NewServer(Options{Mode: "nope", Level: openLevel()}); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

func TestServerStepMirrorsSnapshot(t *testing.T) {
	s := newTestServer(t, gamemodes.ExamplePhys1Name)
	s.Step()

	sb := s.Snapshot()
	// One group, three cores, one joint.
	if sb.Len() != 5 {
		t.Fatalf("snapshot records = %d, want 5", sb.Len())
	}
	if countRecords(s.World()) != sb.Len() {
		t.Fatalf("mirror has %d entities, snapshot %d records", countRecords(s.World()), sb.Len())
	}
	if s.Tick() != 1 {
		t.Fatalf("Tick = %d, want 1", s.Tick())
	}
}

func TestServerProjectilesFeedHives(t *testing.T) {
	s := newTestServer(t, gamemodes.ExamplePhys3Name)
	m := s.Mode().(*gamemodes.ExamplePhys3)

	for i := 0; i < cfg.Hive.HitsPerSpawn; i++ {
		s.Fire(1, mgl64.Vec2{500, 500}, mgl64.Vec2{1, 0})
		s.Step()
	}

	if m.BeeCount() != 1 {
		t.Fatalf("bees = %d, want 1", m.BeeCount())
	}
	if s.Projectiles().Len() != 0 {
		t.Fatalf("consumed projectiles left behind: %d", s.Projectiles().Len())
	}
	if s.Snapshot().Count(netconfig.ObjBee) != 1 {
		t.Fatal("bee not in replication snapshot")
	}
	if len(s.events) != 0 {
		t.Fatal("events not flushed after step")
	}
}

func TestServerSnapForNilMatchesReplication(t *testing.T) {
	s := newTestServer(t, gamemodes.ExamplePhys3Name)
	s.Fire(1, mgl64.Vec2{100, 100}, mgl64.Vec2{1, 0})
	s.Step()

	want, err := s.Snapshot().Bytes()
	if err != nil {
		t.Fatal(err)
	}
	want = bytes.Clone(want)

	got, err := s.SnapFor(nil)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Fatal("unculled observer snapshot differs from the replication snapshot")
	}
}

func TestServerSnapForCulls(t *testing.T) {
	s := newTestServer(t, gamemodes.ExamplePhys3Name)
	s.Step()

	all, err := s.SnapFor(nil)
	if err != nil {
		t.Fatal(err)
	}
	allLen := len(all)

	far, err := s.SnapFor(&Observer{View: mgl64.Vec2{-5000, -5000}})
	if err != nil {
		t.Fatal(err)
	}
	if len(far) >= allLen {
		t.Fatalf("far observer got %d bytes, full view %d", len(far), allLen)
	}
}
