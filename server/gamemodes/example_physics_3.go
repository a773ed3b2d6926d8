package gamemodes

import (
	"fmt"
	"log"

	cfg "github.com/automoto/duckworld/config"
	"github.com/automoto/duckworld/shared/duck"
	"github.com/automoto/duckworld/shared/messages"
	"github.com/automoto/duckworld/shared/pool"
	"github.com/automoto/duckworld/shared/snapshot"
	"github.com/go-gl/mathgl/mgl64"
)

const ExamplePhys3Name = "exphys3"

// ExamplePhys3 is the bee scene: hives that spawn bees when shot.
type ExamplePhys3 struct {
	opts  Options
	world *duck.WorldCore
	rng   *xorshift32

	beePlg  duck.GroupUID
	hivePlg duck.GroupUID

	bees  *pool.Pool[Bee]
	hives []*Hive
}

func NewExamplePhys3(opts Options) (*ExamplePhys3, error) {
	m := &ExamplePhys3{
		opts:  opts,
		world: duck.NewWorldCore(opts.Collision, opts.Duck),
		rng:   newXorshift32(opts.Seed),
		bees:  pool.New[Bee](cfg.Bee.MaxBees),
	}

	beePlg, err := m.world.AddPhysicLawsGroup()
	if err != nil {
		return nil, fmt.Errorf("bee group: %w", err)
	}
	beePlg.AirFriction = cfg.Bee.AirFriction
	beePlg.GroundFriction = cfg.Bee.GroundFriction
	m.beePlg = beePlg.UID

	hivePlg, err := m.world.AddPhysicLawsGroup()
	if err != nil {
		return nil, fmt.Errorf("hive group: %w", err)
	}
	hivePlg.Gravity = 0
	hivePlg.AirFriction = 0
	hivePlg.GroundFriction = 0
	m.hivePlg = hivePlg.UID

	spawns := opts.HiveSpawns
	if len(spawns) == 0 {
		for _, p := range cfg.Hive.DefaultSpawns {
			spawns = append(spawns, mgl64.Vec2{p[0], p[1]})
		}
	}
	if len(spawns) > cfg.Hive.MaxHives {
		spawns = spawns[:cfg.Hive.MaxHives]
	}
	for i, pos := range spawns {
		h, err := newHive(m.world, i, pos, m.hivePlg)
		if err != nil {
			return nil, fmt.Errorf("hive %d: %w", i, err)
		}
		m.hives = append(m.hives, h)
	}

	return m, nil
}

func (m *ExamplePhys3) Name() string           { return ExamplePhys3Name }
func (m *ExamplePhys3) World() *duck.WorldCore { return m.world }

// BeeCount returns the number of live bees.
func (m *ExamplePhys3) BeeCount() int { return m.bees.Len() }

// Hives returns the hives in id order.
func (m *ExamplePhys3) Hives() []*Hive { return m.hives }

// Bee returns the bee in slot id, or nil.
func (m *ExamplePhys3) Bee(id int) *Bee { return m.bees.Get(id) }

// SpawnBeeAt releases a bee at pos. It returns the bee's slot, or -1 when
// the bee pool is full or the world is out of room.
func (m *ExamplePhys3) SpawnBeeAt(pos mgl64.Vec2) int {
	slot, b, ok := m.bees.Alloc()
	if !ok {
		log.Printf("[gamemode] bee pool full (%d), spawn at %v dropped", m.bees.Cap(), pos)
		return -1
	}
	if err := spawnBee(m.world, b, slot, pos, m.beePlg); err != nil {
		log.Printf("[gamemode] bee spawn failed: %v", err)
		m.bees.Free(slot)
		return -1
	}
	m.opts.emit(messages.BeeSpawnEvent{BeeID: slot, X: pos[0], Y: pos[1]})
	return slot
}

func (m *ExamplePhys3) Tick() {
	m.world.Tick()

	projectiles := m.opts.projectiles()

	m.bees.Each(func(slot int, b *Bee) {
		if !b.Tick(m.world, m.rng) {
			m.bees.Free(slot)
			return
		}
		dead, owner := b.Hit(m.world, projectiles)
		if !dead {
			return
		}
		if c, ok := m.world.ResolveCore(b.CoreUID[0]); ok {
			m.opts.emit(messages.BeeKilledEvent{BeeID: slot, OwnerID: owner, X: c.Pos[0], Y: c.Pos[1]})
		}
		b.Destroy(m.world)
		m.bees.Free(slot)
	})

	for _, h := range m.hives {
		h.Tick(m.world, projectiles, m.opts.emit, func(pos mgl64.Vec2) {
			m.SpawnBeeAt(pos)
		})
	}
}

func (m *ExamplePhys3) Snap(sb *snapshot.Builder, obs duck.Observer) {
	m.world.Snap(sb, obs)

	m.bees.Each(func(_ int, b *Bee) {
		b.Snap(m.world, sb, obs)
	})
	for _, h := range m.hives {
		h.Snap(m.world, sb)
	}
}
