package core

import (
	"math"

	cfg "github.com/automoto/duckworld/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/leap-fish/necs/router"
)

// Observer is one connected client's view of the world.
type Observer struct {
	ID      int
	Client  *router.NetworkClient
	View    mgl64.Vec2
	HasView bool
}

// NetworkClipped reports whether pos is outside the observer's view box or
// view radius.
func (o *Observer) NetworkClipped(pos mgl64.Vec2) bool {
	d := o.View.Sub(pos)
	if math.Abs(d[0]) > cfg.View.ClipDX || math.Abs(d[1]) > cfg.View.ClipDY {
		return true
	}
	return d.Len() > cfg.View.ClipDist
}
