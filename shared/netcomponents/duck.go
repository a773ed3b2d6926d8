package netcomponents

import (
	"github.com/automoto/duckworld/shared/netconfig"
	"github.com/yohamta/donburi"
)

// Float fields are fixed point (see netconfig.ToFixed). Cross references are
// snapshot-cycle indices, valid only within the snapshot that carries them.

// NetObjDuckPhysicsLawsGroup is keyed by the group's index this cycle.
type NetObjDuckPhysicsLawsGroup struct {
	Gravity        int32
	AirFriction    int32
	GroundFriction int32
}

func (NetObjDuckPhysicsLawsGroup) NetType() netconfig.ObjType {
	return netconfig.ObjDuckPhysicsLawsGroup
}

// NetObjDuckCustomCore is keyed by the core's index this cycle.
type NetObjDuckCustomCore struct {
	PosX, PosY int32
	VelX, VelY int32
	Radius     int32
	PlgIndex   int32 // -1 when the core's group no longer exists
}

func (NetObjDuckCustomCore) NetType() netconfig.ObjType {
	return netconfig.ObjDuckCustomCore
}

// NetObjDuckPhysJoint is keyed by the joint's index this cycle.
type NetObjDuckPhysJoint struct {
	Core1Index int32
	Core2Index int32
	Force1     int32
	Force2     int32
	MaxDist    int32
}

func (NetObjDuckPhysJoint) NetType() netconfig.ObjType {
	return netconfig.ObjDuckPhysJoint
}

var (
	NetPhysicsLawsGroup = donburi.NewComponentType[NetObjDuckPhysicsLawsGroup]()
	NetCustomCore       = donburi.NewComponentType[NetObjDuckCustomCore]()
	NetPhysJoint        = donburi.NewComponentType[NetObjDuckPhysJoint]()
)

// LerpNetCustomCore interpolates core position between two snapshots.
func LerpNetCustomCore(from, to NetObjDuckCustomCore, t float64) *NetObjDuckCustomCore {
	return &NetObjDuckCustomCore{
		PosX:     lerpFixed(from.PosX, to.PosX, t),
		PosY:     lerpFixed(from.PosY, to.PosY, t),
		VelX:     to.VelX,
		VelY:     to.VelY,
		Radius:   to.Radius,
		PlgIndex: to.PlgIndex,
	}
}

func lerpFixed(from, to int32, t float64) int32 {
	return netconfig.ToFixed(netconfig.FromFixed(from) + (netconfig.FromFixed(to)-netconfig.FromFixed(from))*t)
}
