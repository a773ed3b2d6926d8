// Package duck implements the custom core world: circular bodies grouped
// under shared physics laws, linked by joints, integrated once per server
// tick and emitted into index-addressed snapshot records.
//
// The engine runs on a fixed unit timestep. Gravity, joint forces and
// position integration are applied once per Tick with no dt scaling; a
// variable timestep would change the balance between them.
//
// Entities are referenced by stable UIDs. Storage indices are transient:
// they shift when a core is removed and are only meaningful inside the
// snapshot cycle that emitted them.
package duck

import (
	"errors"

	"github.com/go-gl/mathgl/mgl64"
)

// GroupUID identifies a physics laws group for the life of a WorldCore.
type GroupUID int32

// CoreUID identifies a custom core for the life of a WorldCore. UIDs are
// never reused.
type CoreUID int32

// NoGroup is the zero GroupUID. Cores referencing it get no gravity and no
// damping.
const NoGroup GroupUID = 0

var (
	// Configuration defects. These panic when the world runs in debug mode.
	ErrInvalidRadius = errors.New("duck: custom core radius must be positive")
	ErrUnknownGroup  = errors.New("duck: unknown physics laws group")
	ErrUnknownCore   = errors.New("duck: unknown custom core")
	ErrSelfJoint     = errors.New("duck: joint connects a core to itself")

	// Capacity overflow.
	ErrGroupLimit = errors.New("duck: physics laws group limit reached")
	ErrCoreLimit  = errors.New("duck: custom core limit reached")
	ErrJointLimit = errors.New("duck: joint limit reached")
)

// Collision answers point queries against the tile map.
type Collision interface {
	CheckPoint(x, y float64) bool
}

// Observer decides whether a world position is outside a snapshot
// receiver's view.
type Observer interface {
	NetworkClipped(pos mgl64.Vec2) bool
}
