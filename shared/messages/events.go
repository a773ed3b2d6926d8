package messages

// HiveHitEvent is raised when a projectile is consumed by a hive.
type HiveHitEvent struct {
	HiveID   int
	OwnerID  int // Observer that fired the projectile
	X, Y     float64
	HitsLeft int
}

// BeeSpawnEvent is raised when a hive releases a bee.
type BeeSpawnEvent struct {
	BeeID int
	X, Y  float64
}

// BeeKilledEvent is raised when projectiles bring a bee's health to zero.
type BeeKilledEvent struct {
	BeeID   int
	OwnerID int
	X, Y    float64
}
