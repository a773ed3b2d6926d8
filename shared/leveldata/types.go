// Package leveldata provides TMX level parsing for the server and tools.
// It has no dependencies on donburi or resolv, pure data only.
package leveldata

// Layer and object group names read from TMX files.
const (
	CollisionLayer = "collision"
	HiveSpawnGroup = "HiveSpawn"
)

// LevelData holds the collision-relevant data parsed from a TMX level file.
type LevelData struct {
	SolidRects []SolidRect
	HiveSpawns []SpawnPoint
	MapWidth   int
	MapHeight  int
	TileWidth  int
	TileHeight int
}

// SolidRect is a horizontal run of solid tiles.
type SolidRect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies inside the rect. The right and bottom
// edges are exclusive so adjacent rects never both claim a point.
func (r SolidRect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// SpawnPoint is a spawn location taken from an object group.
type SpawnPoint struct {
	X, Y  float64
	Index int
}
