package core

import "github.com/automoto/duckworld/shared/leveldata"

// openLevel is a 2000x2000 room with a floor and one hive spawn.
func openLevel() *ServerLevel {
	return NewServerLevel(&leveldata.LevelData{
		MapWidth:  2000,
		MapHeight: 2000,
		SolidRects: []leveldata.SolidRect{
			{X: 0, Y: 1900, W: 2000, H: 100},
		},
		HiveSpawns: []leveldata.SpawnPoint{{X: 500, Y: 500}},
	})
}
