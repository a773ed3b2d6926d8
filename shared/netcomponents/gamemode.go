package netcomponents

import (
	"github.com/automoto/duckworld/shared/netconfig"
	"github.com/yohamta/donburi"
)

// NetObjBee is keyed by the bee's pool slot.
type NetObjBee struct {
	Core1Index int32
	Core2Index int32
	Health     int32
}

func (NetObjBee) NetType() netconfig.ObjType { return netconfig.ObjBee }

// NetObjHive is keyed by the hive's slot.
type NetObjHive struct {
	CoreIndex int32
}

func (NetObjHive) NetType() netconfig.ObjType { return netconfig.ObjHive }

var (
	NetBee  = donburi.NewComponentType[NetObjBee]()
	NetHive = donburi.NewComponentType[NetObjHive]()
)
