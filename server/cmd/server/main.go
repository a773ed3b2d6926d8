package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	cfg "github.com/automoto/duckworld/config"
	"github.com/automoto/duckworld/server/core"
	"github.com/automoto/duckworld/shared/protocol"
)

func main() {
	port := flag.Uint("port", cfg.Server.Port, "Server port")
	tickRate := flag.Int("tickrate", cfg.Server.TickRate, "Server tick rate (simulation steps per second)")
	name := flag.String("name", cfg.Server.Name, "Server display name")
	level := flag.String("level", cfg.Server.Level, "Level name (levels/<name>.tmx)")
	assetsDir := flag.String("assets", cfg.Server.AssetsDir, "Assets directory (empty = embedded)")
	mode := flag.String("mode", cfg.Server.Mode, "Game mode")
	seed := flag.Uint("seed", uint(cfg.Server.Seed), "Random seed for game mode entities")
	debug := flag.Bool("debug", cfg.Duck.Debug, "Panic on world configuration defects")
	flag.Parse()

	cfg.Duck.Debug = *debug

	if err := protocol.RegisterComponents(); err != nil {
		log.Fatalf("Failed to register components: %v", err)
	}

	lvl, err := core.LoadServerLevel(*assetsDir, *level)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	server, err := core.NewServer(core.Options{
		Mode:      *mode,
		Level:     lvl,
		Seed:      uint32(*seed),
		TickRate:  *tickRate,
		Networked: true,
	})
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down server...")
		server.Stop()
		os.Exit(0)
	}()

	log.Printf("Starting duck server %q on port %d (mode: %s, level: %s, tick rate: %d/s)",
		*name, *port, *mode, *level, *tickRate)
	if err := server.Start(*port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
