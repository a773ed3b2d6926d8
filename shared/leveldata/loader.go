package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// LoadLevelData parses a TMX file and returns its solid tiles and hive spawn
// points. It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadLevelData(fsys fs.FS, tmxPath string) (*LevelData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &LevelData{
		MapWidth:   levelMap.Width * levelMap.TileWidth,
		MapHeight:  levelMap.Height * levelMap.TileHeight,
		TileWidth:  levelMap.TileWidth,
		TileHeight: levelMap.TileHeight,
	}

	layer := findLayer(levelMap, CollisionLayer)
	if layer == nil {
		return nil, fmt.Errorf("TMX %s: no %q tile layer", tmxPath, CollisionLayer)
	}

	// Consecutive solid tiles on a row become one rect.
	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for y := 0; y < levelMap.Height; y++ {
		runStart := -1
		for x := 0; x <= levelMap.Width; x++ {
			solid := x < levelMap.Width && !layer.Tiles[y*levelMap.Width+x].IsNil()
			if solid && runStart < 0 {
				runStart = x
			}
			if !solid && runStart >= 0 {
				data.SolidRects = append(data.SolidRects, SolidRect{
					X: float64(runStart) * tileW,
					Y: float64(y) * tileH,
					W: float64(x-runStart) * tileW,
					H: tileH,
				})
				runStart = -1
			}
		}
	}

	for _, og := range levelMap.ObjectGroups {
		if og.Name != HiveSpawnGroup {
			continue
		}
		for _, o := range og.Objects {
			data.HiveSpawns = append(data.HiveSpawns, SpawnPoint{
				X:     o.X,
				Y:     o.Y,
				Index: o.Properties.GetInt("spawnIndex"),
			})
		}
	}

	sort.SliceStable(data.HiveSpawns, func(i, j int) bool {
		return data.HiveSpawns[i].Index < data.HiveSpawns[j].Index
	})

	return data, nil
}

func findLayer(m *tiled.Map, name string) *tiled.Layer {
	for _, layer := range m.Layers {
		if layer.Name == name {
			return layer
		}
	}
	return nil
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads each,
// and returns a map keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*LevelData, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*LevelData, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		data, err := LoadLevelData(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		stem := strings.TrimSuffix(filepath.Base(path), ".tmx")
		levels[stem] = data
		names = append(names, stem)
	}

	sort.Strings(names)
	return levels, names, nil
}
