// Package assets embeds the bundled level files.
package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"

	"github.com/automoto/duckworld/shared/leveldata"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// LevelsDir is the directory holding .tmx files, relative to an assets root.
const LevelsDir = "levels"

// FS returns the assets root: dir on disk when set, the embedded copy
// otherwise.
func FS(dir string) fs.FS {
	if dir != "" {
		return os.DirFS(dir)
	}
	return assetFS
}

// LoadLevel parses levels/<name>.tmx from the assets root selected by dir.
func LoadLevel(dir, name string) (*leveldata.LevelData, error) {
	data, err := leveldata.LoadLevelData(FS(dir), path.Join(LevelsDir, name+".tmx"))
	if err != nil {
		return nil, fmt.Errorf("level %q: %w", name, err)
	}
	return data, nil
}
