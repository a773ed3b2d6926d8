package config

// DuckConfig holds world core limits and physics defaults.
type DuckConfig struct {
	// Physics defaults for newly created laws groups. Friction 1.0 means no
	// extra damping.
	DefaultGravity        float64
	DefaultAirFriction    float64
	DefaultGroundFriction float64

	// Live entity caps. Creation beyond a cap fails.
	MaxPhysicsLawsGroups int
	MaxCustomCores       int
	MaxJoints            int

	// Per-type record caps for a single snapshot cycle. Excess entities are
	// dropped from that cycle.
	MaxSnapGroups int
	MaxSnapCores  int
	MaxSnapJoints int

	// Collision probing
	GroundProbeOffset     float64 // Distance below a core's bottom checked for ground
	CollisionProbeSpacing float64 // Max gap between perimeter probe points

	// Debug turns configuration defects into panics instead of logged errors.
	Debug bool
}

// ServerConfig holds dedicated server defaults. Flags override these.
type ServerConfig struct {
	Port     uint
	TickRate int
	Name     string
	Mode     string
	Seed     uint32

	// Level is the TMX stem name. AssetsDir, when set, is searched for
	// levels/<Level>.tmx instead of the embedded assets.
	Level     string
	AssetsDir string

	// Max snapshot items per cycle across all record types
	MaxSnapItems int
}

// ViewConfig holds observer culling bounds.
type ViewConfig struct {
	ClipDX   float64
	ClipDY   float64
	ClipDist float64
}

var Duck DuckConfig
var Server ServerConfig
var View ViewConfig

func init() {
	Duck = DuckConfig{
		DefaultGravity:        0.5,
		DefaultAirFriction:    1.0,
		DefaultGroundFriction: 1.0,

		MaxPhysicsLawsGroups: 64,
		MaxCustomCores:       1024,
		MaxJoints:            1024,

		MaxSnapGroups: 64,
		MaxSnapCores:  256,
		MaxSnapJoints: 256,

		GroundProbeOffset:     5,
		CollisionProbeSpacing: 16,
	}

	Server = ServerConfig{
		Port:     8303,
		TickRate: 50, // the engine assumes one unit timestep per tick
		Name:     "Duck Physics Server",
		Mode:     "exphys3",
		Seed:     0x2545F491,

		Level: "duck_ex_phys_3",

		MaxSnapItems: 1024,
	}

	View = ViewConfig{
		ClipDX:   1000,
		ClipDY:   800,
		ClipDist: 1100,
	}
}
