package gamemodes

import (
	"testing"

	"github.com/automoto/duckworld/config"
	"github.com/automoto/duckworld/shared/netconfig"
	"github.com/automoto/duckworld/shared/snapshot"
	"github.com/go-gl/mathgl/mgl64"
)

type fakeProjectile struct {
	pos       mgl64.Vec2
	radius    float64
	owner     int
	destroyed bool
}

func (p *fakeProjectile) Position() mgl64.Vec2     { return p.pos }
func (p *fakeProjectile) ProximityRadius() float64 { return p.radius }
func (p *fakeProjectile) Owner() int               { return p.owner }
func (p *fakeProjectile) MarkForDestroy()          { p.destroyed = true }
func (p *fakeProjectile) Destroyed() bool          { return p.destroyed }

// fakeSource hands out its queued projectiles once, on the next tick.
type fakeSource struct {
	queued []*fakeProjectile
}

func (s *fakeSource) Projectiles() []Projectile {
	out := make([]Projectile, 0, len(s.queued))
	for _, p := range s.queued {
		out = append(out, p)
	}
	s.queued = nil
	return out
}

type recordingSink struct {
	events []any
}

func (s *recordingSink) Emit(event any) { s.events = append(s.events, event) }

type clipAll struct{}

func (clipAll) NetworkClipped(mgl64.Vec2) bool { return true }

func testOptions() Options {
	d := config.Duck
	d.Debug = true
	return Options{Duck: d, Seed: 1}
}

func snapItems(t *testing.T, c Controller, typ netconfig.ObjType) []snapshot.Item {
	t.Helper()
	sb := snapshot.NewBuilder(1024)
	c.Snap(sb, nil)
	var out []snapshot.Item
	for _, it := range sb.Items() {
		if it.Type == typ {
			out = append(out, it)
		}
	}
	return out
}
