package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/knightfall/config"
	"github.com/automoto/knightfall/server/core"
	"github.com/automoto/knightfall/session"
	"github.com/automoto/knightfall/shared/leveldata"
	"github.com/automoto/knightfall/shared/protocol"
)

func main() {
	port := flag.Uint("port", 7373, "Server port")
	tickRate := flag.Int("tickrate", 30, "Server tick rate (updates per second)")
	name := flag.String("name", "Knightfall Server", "Server display name")
	version := flag.String("version", "", "Required viewer version (empty = accept any)")
	configPath := flag.String("config", "", "YAML tuning overrides")
	levelsDir := flag.String("levels", "", "Directory of .tmx level maps replacing the built-in levels")
	level := flag.Int("level", 0, "Level index to start on")
	survival := flag.Bool("survival", false, "Start in survival mode")
	health := flag.Float64("health", 100, "Player health")
	seed := flag.Int64("seed", 1, "Random seed")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.LoadFile(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *levelsDir != "" {
		if err := leveldata.Apply(cfg, os.DirFS(*levelsDir), "."); err != nil {
			log.Fatalf("Failed to load levels: %v", err)
		}
	}

	if err := protocol.RegisterComponents(); err != nil {
		log.Fatalf("Failed to register components: %v", err)
	}

	records, err := session.OpenRecords("knightfall_server")
	if err != nil {
		log.Printf("[server] best runs will not be saved: %v", err)
	}

	server, err := core.NewServer(core.Options{
		TickRate:     *tickRate,
		Name:         *name,
		Version:      *version,
		Config:       cfg,
		Seed:         *seed,
		PlayerHealth: *health,
		StartLevel:   *level,
		Survival:     *survival,
		Records:      records,
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

	log.Printf("Starting Knightfall server %q on port %d (tick rate: %d/s, version: %s)",
		*name, *port, *tickRate, *version)
	if err := server.Start(*port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
