// Command ducksim runs a game mode headless and prints a digest of every
// snapshot, for comparing runs across builds and machines.
package main

import (
	"crypto/sha256"
	"flag"
	"fmt"
	"log"
	"os"

	cfg "github.com/automoto/duckworld/config"
	"github.com/automoto/duckworld/server/core"
	"github.com/go-gl/mathgl/mgl64"
)

func main() {
	ticks := flag.Int("ticks", 500, "Number of steps to run")
	level := flag.String("level", cfg.Server.Level, "Level name (levels/<name>.tmx)")
	assetsDir := flag.String("assets", cfg.Server.AssetsDir, "Assets directory (empty = embedded)")
	mode := flag.String("mode", cfg.Server.Mode, "Game mode")
	seed := flag.Uint("seed", uint(cfg.Server.Seed), "Random seed for game mode entities")
	fireEvery := flag.Int("fire-every", 0, "Fire a projectile at each hive spawn every N steps (0 = never)")
	flag.Parse()

	lvl, err := core.LoadServerLevel(*assetsDir, *level)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	server, err := core.NewServer(core.Options{
		Mode:     *mode,
		Level:    lvl,
		Seed:     uint32(*seed),
		TickRate: cfg.Server.TickRate,
	})
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	out := os.Stdout
	for i := 0; i < *ticks; i++ {
		if *fireEvery > 0 && i%*fireEvery == 0 {
			for _, h := range lvl.HiveSpawns {
				server.Fire(0, h, mgl64.Vec2{1, 0})
			}
		}
		server.Step()

		data, err := server.Snapshot().Bytes()
		if err != nil {
			log.Fatalf("tick %d: encode snapshot: %v", i, err)
		}
		fmt.Fprintf(out, "%d %d %x\n", server.Tick(), server.Snapshot().Len(), sha256.Sum256(data))
	}
}
