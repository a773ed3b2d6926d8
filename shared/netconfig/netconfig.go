// Package netconfig defines lightweight types shared between client and server
// for network serialization. It must not import anything outside the
// standard library.
package netconfig

import "math"

// ObjType identifies the layout of a snapshot record.
type ObjType int32

const (
	ObjNone ObjType = iota

	// World core records
	ObjDuckPhysicsLawsGroup
	ObjDuckCustomCore
	ObjDuckPhysJoint

	// Game mode records (example_physics_3)
	ObjBee
	ObjHive

	// Server entities
	ObjProjectile

	ObjTypeCount // Must be last - used for array sizing
)

var objTypeNames = map[ObjType]string{
	ObjDuckPhysicsLawsGroup: "duck_plg",
	ObjDuckCustomCore:       "duck_custom_core",
	ObjDuckPhysJoint:        "duck_phys_joint",
	ObjBee:                  "bee",
	ObjHive:                 "hive",
	ObjProjectile:           "projectile",
}

func (t ObjType) String() string {
	if name, ok := objTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// FixedScale is the fixed-point scale used for float fields in records.
const FixedScale = 256

// ToFixed encodes f as a fixed-point int32. Non-finite values encode as 0 and
// out of range values saturate.
func ToFixed(f float64) int32 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	v := math.Round(f * FixedScale)
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	if v < math.MinInt32 {
		return math.MinInt32
	}
	return int32(v)
}

// FromFixed decodes a fixed-point int32.
func FromFixed(v int32) float64 {
	return float64(v) / FixedScale
}
