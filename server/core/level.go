package core

import (
	"fmt"
	"log"

	"github.com/automoto/duckworld/assets"
	"github.com/automoto/duckworld/shared/leveldata"
	"github.com/automoto/duckworld/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

// ServerLevel holds the server's collision space and spawn data for a level.
// It answers the duck world's point queries.
type ServerLevel struct {
	Space      *resolv.Space
	HiveSpawns []mgl64.Vec2
	MapWidth   int
	MapHeight  int

	// probe is a 1x1 object moved to every queried point.
	probe *resolv.Object
}

// NewServerLevel builds a resolv.Space from parsed level data.
func NewServerLevel(data *leveldata.LevelData) *ServerLevel {
	space := resolv.NewSpace(data.MapWidth, data.MapHeight, 16, 16)

	for _, r := range data.SolidRects {
		obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvSolid)
		obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
		space.Add(obj)
	}

	probe := resolv.NewObject(0, 0, 1, 1, tags.ResolvProbe)
	space.Add(probe)

	spawns := make([]mgl64.Vec2, 0, len(data.HiveSpawns))
	for _, s := range data.HiveSpawns {
		spawns = append(spawns, mgl64.Vec2{s.X, s.Y})
	}

	log.Printf("[level] loaded: %d solid rects, %d hive spawns, %dx%d map",
		len(data.SolidRects), len(spawns), data.MapWidth, data.MapHeight)

	return &ServerLevel{
		Space:      space,
		HiveSpawns: spawns,
		MapWidth:   data.MapWidth,
		MapHeight:  data.MapHeight,
		probe:      probe,
	}
}

// CheckPoint reports whether (x, y) is inside a solid tile. Points outside
// the map are solid.
func (l *ServerLevel) CheckPoint(x, y float64) bool {
	if !l.InBounds(x, y) {
		return true
	}

	l.probe.X = x
	l.probe.Y = y
	l.probe.Update()

	check := l.probe.Check(0, 0, tags.ResolvSolid)
	if check == nil {
		return false
	}
	for _, obj := range check.ObjectsByTags(tags.ResolvSolid) {
		if objectRect(obj).Contains(x, y) {
			return true
		}
	}
	return false
}

// InBounds reports whether (x, y) lies inside the map.
func (l *ServerLevel) InBounds(x, y float64) bool {
	return x >= 0 && y >= 0 && x < float64(l.MapWidth) && y < float64(l.MapHeight)
}

func objectRect(obj *resolv.Object) leveldata.SolidRect {
	return leveldata.SolidRect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
}

// LoadServerLevel loads levels/<name>.tmx from assetsDir, or from the
// embedded assets when assetsDir is empty.
func LoadServerLevel(assetsDir, name string) (*ServerLevel, error) {
	data, err := assets.LoadLevel(assetsDir, name)
	if err != nil {
		return nil, fmt.Errorf("load server level: %w", err)
	}
	return NewServerLevel(data), nil
}
