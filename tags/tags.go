package tags

import "github.com/yohamta/donburi"

var (
	// DuckRecord marks a replication entity mirroring one snapshot record.
	DuckRecord = donburi.NewTag().SetName("DuckRecord")
	Projectile = donburi.NewTag().SetName("Projectile")
)

// Resolv tags for physics collision
const (
	ResolvSolid      = "solid"
	ResolvProbe      = "probe"
	ResolvProjectile = "projectile"
)
