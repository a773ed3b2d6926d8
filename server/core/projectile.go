package core

import (
	cfg "github.com/automoto/duckworld/config"
	"github.com/automoto/duckworld/server/gamemodes"
	"github.com/automoto/duckworld/shared/duck"
	"github.com/automoto/duckworld/shared/gamemath"
	"github.com/automoto/duckworld/shared/netcomponents"
	"github.com/automoto/duckworld/shared/netconfig"
	"github.com/automoto/duckworld/shared/pool"
	"github.com/automoto/duckworld/shared/snapshot"
	"github.com/automoto/duckworld/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

// Projectile is a server-side shot. It flies under gravity until it hits a
// tile, expires, or is consumed by a game mode entity.
type Projectile struct {
	Object  *resolv.Object
	Pos     mgl64.Vec2
	Vel     mgl64.Vec2
	Age     int
	owner   int
	serial  uint64 // Unique per fired projectile; slots are reused
	destroy bool   // Flagged for deferred removal
}

func (p *Projectile) Position() mgl64.Vec2     { return p.Pos }
func (p *Projectile) ProximityRadius() float64 { return cfg.Projectile.Radius }
func (p *Projectile) Owner() int               { return p.owner }
func (p *Projectile) MarkForDestroy()          { p.destroy = true }
func (p *Projectile) Destroyed() bool          { return p.destroy }

func (p *Projectile) syncObject() {
	r := cfg.Projectile.Radius
	p.Object.X = p.Pos[0] - r
	p.Object.Y = p.Pos[1] - r
	p.Object.Update()
}

// ProjectileSet owns the live projectiles of a level.
type ProjectileSet struct {
	level   *ServerLevel
	pool    *pool.Pool[Projectile]
	scratch []gamemodes.Projectile
	fired   uint64
}

func NewProjectileSet(level *ServerLevel, capacity int) *ProjectileSet {
	return &ProjectileSet{
		level:   level,
		pool:    pool.New[Projectile](capacity),
		scratch: make([]gamemodes.Projectile, 0, capacity),
	}
}

// Fire spawns a projectile at pos heading along dir. It returns the
// projectile's slot, or ok=false when too many are live.
func (s *ProjectileSet) Fire(owner int, pos, dir mgl64.Vec2) (int, bool) {
	if !gamemath.Finite(pos) || !s.level.InBounds(pos[0], pos[1]) {
		return -1, false
	}
	slot, p, ok := s.pool.Alloc()
	if !ok {
		return -1, false
	}

	r := cfg.Projectile.Radius
	obj := resolv.NewObject(pos[0]-r, pos[1]-r, 2*r, 2*r, tags.ResolvProjectile)
	obj.SetShape(resolv.NewRectangle(0, 0, 2*r, 2*r))
	s.level.Space.Add(obj)

	*p = Projectile{
		Object: obj,
		Pos:    pos,
		Vel:    gamemath.CalculateLaunchVelocity(dir, 1, cfg.Projectile.Speed),
		owner:  owner,
		serial: s.fired + 1,
	}
	s.fired++
	return slot, true
}

// Projectiles lists the live projectiles. The slice is reused by the next
// call.
func (s *ProjectileSet) Projectiles() []gamemodes.Projectile {
	s.scratch = s.scratch[:0]
	s.pool.Each(func(_ int, p *Projectile) {
		if !p.destroy {
			s.scratch = append(s.scratch, p)
		}
	})
	return s.scratch
}

// Step moves every projectile by one tick and flags the ones that hit a
// tile, leave the map, or expire.
func (s *ProjectileSet) Step() {
	s.pool.Each(func(_ int, p *Projectile) {
		if p.destroy {
			return
		}
		p.Age++
		if p.Age >= cfg.Projectile.Lifetime {
			p.destroy = true
			return
		}

		p.Vel[1] += cfg.Projectile.Gravity
		p.Pos = p.Pos.Add(p.Vel)
		if !s.level.InBounds(p.Pos[0], p.Pos[1]) {
			p.destroy = true
			return
		}
		p.syncObject()

		if s.touchesSolid(p) {
			p.destroy = true
		}
	})
}

func (s *ProjectileSet) touchesSolid(p *Projectile) bool {
	check := p.Object.Check(0, 0, tags.ResolvSolid)
	if check == nil {
		return false
	}
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if overlaps(p.Object, solid) {
			return true
		}
	}
	return false
}

func overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

// Sweep removes flagged projectiles and returns how many were removed.
func (s *ProjectileSet) Sweep() int {
	removed := 0
	s.pool.Each(func(slot int, p *Projectile) {
		if !p.destroy {
			return
		}
		s.level.Space.Remove(p.Object)
		s.pool.Free(slot)
		removed++
	})
	return removed
}

// Snap writes one record per live projectile visible to obs.
func (s *ProjectileSet) Snap(sb *snapshot.Builder, obs duck.Observer) {
	s.pool.Each(func(slot int, p *Projectile) {
		if p.destroy {
			return
		}
		if obs != nil && obs.NetworkClipped(p.Pos) {
			return
		}
		rec := snapshot.NewItemKeyed[netcomponents.NetObjProjectile](sb, slot, p.serial)
		if rec == nil {
			return
		}
		rec.PosX = netconfig.ToFixed(p.Pos[0])
		rec.PosY = netconfig.ToFixed(p.Pos[1])
		rec.VelX = netconfig.ToFixed(p.Vel[0])
		rec.VelY = netconfig.ToFixed(p.Vel[1])
		rec.Owner = int32(p.owner)
	})
}

// Len returns the number of allocated projectiles, flagged ones included.
func (s *ProjectileSet) Len() int { return s.pool.Len() }
