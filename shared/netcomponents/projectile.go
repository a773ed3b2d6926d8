package netcomponents

import (
	"github.com/automoto/duckworld/shared/netconfig"
	"github.com/yohamta/donburi"
)

// NetObjProjectile is keyed by the projectile's pool slot.
type NetObjProjectile struct {
	PosX, PosY int32
	VelX, VelY int32
	Owner      int32 // Observer id of the shooter
}

func (NetObjProjectile) NetType() netconfig.ObjType { return netconfig.ObjProjectile }

var NetProjectile = donburi.NewComponentType[NetObjProjectile]()

// LerpNetProjectile interpolates projectile position between two snapshots.
func LerpNetProjectile(from, to NetObjProjectile, t float64) *NetObjProjectile {
	return &NetObjProjectile{
		PosX:  lerpFixed(from.PosX, to.PosX, t),
		PosY:  lerpFixed(from.PosY, to.PosY, t),
		VelX:  to.VelX,
		VelY:  to.VelY,
		Owner: to.Owner,
	}
}
