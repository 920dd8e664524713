package core

import (
	"log"
	"sync"
	"time"

	"github.com/leap-fish/necs/esync/srvsync"
)

// GameLoop steps the server at a fixed rate and pushes the mirror to
// spectators after every step. Once the run is finished the simulation
// stops advancing but the final state keeps syncing.
type GameLoop struct {
	server   *Server
	interval time.Duration
	dt       float64

	stopOnce sync.Once
	stop     chan struct{}
	done     bool
	ticks    uint64
}

func NewGameLoop(server *Server, tickRate int) *GameLoop {
	return &GameLoop{
		server:   server,
		interval: time.Second / time.Duration(tickRate),
		dt:       1 / float64(tickRate),
		stop:     make(chan struct{}),
	}
}

func (g *GameLoop) Run() {
	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()

	log.Printf("[server] loop running every %v", g.interval)

	for {
		select {
		case <-g.stop:
			log.Printf("[server] loop stopped after %d ticks", g.ticks)
			return
		case <-ticker.C:
			g.tick()
		}
	}
}

// Stop ends Run. Calling it more than once is safe.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stop) })
}

func (g *GameLoop) tick() {
	if !g.done {
		start := time.Now()
		if err := g.server.Step(g.dt); err != nil {
			log.Printf("[server] step %d: %v", g.ticks, err)
		}
		g.ticks++
		if took := time.Since(start); took > g.interval {
			log.Printf("[server] tick %d overran: %v > %v", g.ticks, took, g.interval)
		}
		if g.server.Finished() {
			g.done = true
			log.Printf("[server] run finished at tick %d", g.ticks)
		}
	}

	if err := srvsync.DoSync(); err != nil {
		log.Printf("[server] sync error: %v", err)
	}
}
