// Command duckworld is a headless watcher for a duck server. It connects,
// announces a view position, optionally fires projectiles at a fixed
// interval, and logs what the server sends back.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/automoto/duckworld/config"
	"github.com/automoto/duckworld/network"
	"github.com/automoto/duckworld/shared/netconfig"
	"github.com/automoto/duckworld/shared/protocol"
)

func main() {
	addr := flag.String("addr", fmt.Sprintf("localhost:%d", config.Server.Port), "Server address (host:port)")
	viewX := flag.Float64("view-x", 1312, "View X position")
	viewY := flag.Float64("view-y", 700, "View Y position")
	fireEvery := flag.Duration("fire-every", 0, "Fire a projectile at this interval (0 disables)")
	dirX := flag.Float64("dir-x", 0, "Projectile direction X")
	dirY := flag.Float64("dir-y", -1, "Projectile direction Y")
	flag.Parse()

	if err := protocol.RegisterComponents(); err != nil {
		log.Fatalf("Failed to register network components: %v", err)
	}

	client := network.NewClient()
	client.Connect(*addr, *viewX, *viewY)
	defer client.Disconnect()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	report := time.NewTicker(time.Second)
	defer report.Stop()

	var fire <-chan time.Time
	if *fireEvery > 0 {
		t := time.NewTicker(*fireEvery)
		defer t.Stop()
		fire = t.C
	}

	for {
		select {
		case <-sigCh:
			log.Println("[client] shutting down")
			return
		case <-fire:
			if client.State() != network.StateConnected {
				continue
			}
			if err := client.Fire(*viewX, *viewY, *dirX, *dirY); err != nil {
				log.Printf("[client] fire: %v", err)
			}
		case <-report.C:
			if client.State() == network.StateError {
				log.Fatalf("[client] %v", client.LastError())
			}
			logEvents(client)
			if snap := client.LatestSnapshot(); snap != nil {
				log.Printf("[client] tick %d: %d items (cores %d, joints %d, bees %d, hives %d, projectiles %d) world syncs %d",
					snap.Tick, len(snap.Items),
					snap.Count(netconfig.ObjDuckCustomCore),
					snap.Count(netconfig.ObjDuckPhysJoint),
					snap.Count(netconfig.ObjBee),
					snap.Count(netconfig.ObjHive),
					snap.Count(netconfig.ObjProjectile),
					client.WorldSyncs())
			}
		}
	}
}

func logEvents(client *network.Client) {
	for _, e := range client.DrainHiveHits() {
		log.Printf("[client] hive %d hit by %d at (%.0f, %.0f), %d hits to next bee", e.HiveID, e.OwnerID, e.X, e.Y, e.HitsLeft)
	}
	for _, e := range client.DrainBeeSpawns() {
		log.Printf("[client] bee %d spawned at (%.0f, %.0f)", e.BeeID, e.X, e.Y)
	}
	for _, e := range client.DrainBeeKills() {
		log.Printf("[client] bee %d killed by %d at (%.0f, %.0f)", e.BeeID, e.OwnerID, e.X, e.Y)
	}
}
