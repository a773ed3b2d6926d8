package config

// BeeConfig contains tuning for the flying bee entity.
type BeeConfig struct {
	MaxBees int

	CoreRadius   float64
	CoreSpacing  float64 // Horizontal offset of the second core at spawn
	JointMaxDist float64
	Health       int

	// Flight velocity bounds, re-rolled every flight segment
	MaxVelX float64
	MinVelX float64
	MaxVelY float64
	MinVelY float64

	// Flight segment duration is MinFlightTicks + rand % FlightTickRange
	MinFlightTicks  int
	FlightTickRange int

	AirFriction    float64
	GroundFriction float64

	TurnProbeMargin float64 // Extra distance ahead of core1 checked for walls
	UprightDirX     float64 // Below this |dir.x| the bee pushes its rear core back
	UprightPush     float64

	SnapOffsetX float64 // Culling point offset from core1
}

// HiveConfig contains tuning for the stationary hive entity.
type HiveConfig struct {
	MaxHives     int
	CoreRadius   float64
	HitsPerSpawn int
	SpawnOffsetY float64 // Bee spawn distance below the hive edge

	// Default spawn points when the level has none
	DefaultSpawns [][2]float64
}

// ProjectileConfig contains server-side projectile tuning.
type ProjectileConfig struct {
	Speed    float64
	Gravity  float64
	Radius   float64
	Lifetime int // ticks
	MaxLive  int
}

var Bee BeeConfig
var Hive HiveConfig
var Projectile ProjectileConfig

func init() {
	Bee = BeeConfig{
		MaxBees: 64,

		CoreRadius:   26.25,
		CoreSpacing:  36,
		JointMaxDist: 60,
		Health:       10,

		MaxVelX: 1.2,
		MinVelX: 0,
		MaxVelY: 1.2,
		MinVelY: -0.2,

		MinFlightTicks:  20,
		FlightTickRange: 60,

		AirFriction:    0.95,
		GroundFriction: 1.0,

		TurnProbeMargin: 5,
		UprightDirX:     0.5,
		UprightPush:     1.5,

		SnapOffsetX: 70,
	}

	Hive = HiveConfig{
		MaxHives:     2,
		CoreRadius:   50,
		HitsPerSpawn: 3,
		SpawnOffsetY: 100,
		DefaultSpawns: [][2]float64{
			{1312, 638},
			{1344, 1790},
		},
	}

	Projectile = ProjectileConfig{
		Speed:    20,
		Gravity:  0.25,
		Radius:   6,
		Lifetime: 100,
		MaxLive:  128,
	}
}
