// Package gamemodes holds the entity behaviours built on top of the duck
// world core. A mode owns its WorldCore and drives it once per server tick.
package gamemodes

import (
	"fmt"
	"sort"

	"github.com/automoto/duckworld/config"
	"github.com/automoto/duckworld/shared/duck"
	"github.com/automoto/duckworld/shared/snapshot"
	"github.com/go-gl/mathgl/mgl64"
)

// Controller is a running game mode.
type Controller interface {
	Name() string
	World() *duck.WorldCore

	// Tick advances the world core, then the mode's entities in
	// registration order.
	Tick()

	// Snap writes the world core records followed by the mode's own
	// records for one observer.
	Snap(sb *snapshot.Builder, obs duck.Observer)
}

// Projectile is a server entity that modes may consume.
type Projectile interface {
	Position() mgl64.Vec2
	ProximityRadius() float64
	Owner() int
	MarkForDestroy()
	Destroyed() bool
}

// ProjectileSource lists the live projectiles for the current tick.
type ProjectileSource interface {
	Projectiles() []Projectile
}

// EventSink receives gameplay events raised during a tick.
type EventSink interface {
	Emit(event any)
}

// Options carries what a mode needs from the server.
type Options struct {
	Duck       config.DuckConfig
	Collision  duck.Collision
	HiveSpawns []mgl64.Vec2
	Seed       uint32

	// Both may be nil.
	Projectiles ProjectileSource
	Events      EventSink
}

type factory func(Options) (Controller, error)

var modes = map[string]factory{
	ExamplePhys1Name: func(o Options) (Controller, error) {
		m, err := NewExamplePhys1(o)
		if err != nil {
			return nil, err
		}
		return m, nil
	},
	ExamplePhys3Name: func(o Options) (Controller, error) {
		m, err := NewExamplePhys3(o)
		if err != nil {
			return nil, err
		}
		return m, nil
	},
}

// New creates the mode registered under name.
func New(name string, opts Options) (Controller, error) {
	f, ok := modes[name]
	if !ok {
		return nil, fmt.Errorf("unknown game mode %q (have %v)", name, Names())
	}
	return f(opts)
}

// Names lists the registered modes in sorted order.
func Names() []string {
	names := make([]string, 0, len(modes))
	for name := range modes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (o Options) emit(event any) {
	if o.Events != nil {
		o.Events.Emit(event)
	}
}

func (o Options) projectiles() []Projectile {
	if o.Projectiles == nil {
		return nil
	}
	return o.Projectiles.Projectiles()
}
