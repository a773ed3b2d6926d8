package gamemodes

import (
	"fmt"

	"github.com/automoto/duckworld/shared/duck"
	"github.com/automoto/duckworld/shared/snapshot"
	"github.com/go-gl/mathgl/mgl64"
)

const ExamplePhys1Name = "exphys1"

// ExamplePhys1 is a static test scene: three cores under one group, the
// first two linked by an asymmetric joint.
type ExamplePhys1 struct {
	opts  Options
	world *duck.WorldCore
}

func NewExamplePhys1(opts Options) (*ExamplePhys1, error) {
	m := &ExamplePhys1{opts: opts}
	if err := m.Reset(); err != nil {
		return nil, err
	}
	return m, nil
}

// Reset rebuilds the scene in a fresh world.
func (m *ExamplePhys1) Reset() error {
	m.world = duck.NewWorldCore(m.opts.Collision, m.opts.Duck)

	plg, err := m.world.AddPhysicLawsGroup()
	if err != nil {
		return fmt.Errorf("exphys1 group: %w", err)
	}
	plg.AirFriction = 1.0
	plg.GroundFriction = 1.0

	scene := []struct {
		radius float64
		pos    mgl64.Vec2
	}{
		{40, mgl64.Vec2{500, 280}},
		{30, mgl64.Vec2{300, 280}},
		{30, mgl64.Vec2{400, 280}},
	}
	cores := make([]*duck.CustomCore, 0, len(scene))
	for _, s := range scene {
		c, err := m.world.AddCustomCore(s.radius)
		if err != nil {
			return fmt.Errorf("exphys1 core: %w", err)
		}
		if err := c.SetPhysicLawGroup(plg.UID); err != nil {
			return fmt.Errorf("exphys1 core group: %w", err)
		}
		c.Pos = s.pos
		cores = append(cores, c)
	}

	if _, err := m.world.AddJoint(duck.Joint{
		CoreUID1: cores[0].UID,
		CoreUID2: cores[1].UID,
		Force1:   2,
		Force2:   0.1,
	}); err != nil {
		return fmt.Errorf("exphys1 joint: %w", err)
	}
	return nil
}

func (m *ExamplePhys1) Name() string           { return ExamplePhys1Name }
func (m *ExamplePhys1) World() *duck.WorldCore { return m.world }

func (m *ExamplePhys1) Tick() {
	m.world.Tick()
}

func (m *ExamplePhys1) Snap(sb *snapshot.Builder, obs duck.Observer) {
	m.world.Snap(sb, obs)
}
