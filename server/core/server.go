package core

import (
	"fmt"
	"log"
	"sync"

	"github.com/automoto/knightfall/config"
	"github.com/automoto/knightfall/game"
	"github.com/automoto/knightfall/session"
	"github.com/automoto/knightfall/shared/messages"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/yohamta/donburi"
)

// Options configures a headless server
type Options struct {
	TickRate     int
	Name         string
	Version      string // required viewer version, empty accepts any
	Config       *config.Config
	Seed         int64
	PlayerHealth float64
	StartLevel   int
	Survival     bool
	Records      *session.Records

	// Tracker overrides the necs sync. Nil uses srvsync on the mirror world.
	Tracker Tracker
}

// Server runs one encounter at a fixed tick rate and mirrors it to viewers.
// The engine, ledger and mirror are only touched from the loop goroutine.
type Server struct {
	opts      Options
	engine    *game.Engine
	ledger    *session.Ledger
	campaign  *session.Campaign
	pilot     *Autopilot
	mirror    *Mirror
	world     donburi.World
	loop      *GameLoop
	transport *transports.WsServerTransport

	// Connected viewers and their names
	spectators map[*router.NetworkClient]string
	mu         sync.RWMutex
}

// NewServer creates a server and starts its first level or survival run.
func NewServer(opts Options) (*Server, error) {
	if opts.TickRate <= 0 {
		opts.TickRate = 30
	}
	if opts.PlayerHealth <= 0 {
		opts.PlayerHealth = 100
	}

	world := donburi.NewWorld()
	tracker := opts.Tracker
	if tracker == nil {
		// Set up the world for esync
		srvsync.UseEsync(world)
		tracker = esyncTracker{}
	}

	ledger := session.NewLedger(session.DefaultRewards(), opts.PlayerHealth)
	pilot := NewAutopilot()
	engine, err := game.New(game.Options{
		Config:   opts.Config,
		Hooks:    ledger,
		Controls: pilot,
		Aim:      pilot,
		Seed:     opts.Seed,
	})
	if err != nil {
		return nil, fmt.Errorf("new server: %w", err)
	}
	pilot.Bind(engine)

	s := &Server{
		opts:       opts,
		engine:     engine,
		ledger:     ledger,
		campaign:   session.NewCampaign(engine, ledger, opts.Records),
		pilot:      pilot,
		mirror:     NewMirror(world, tracker),
		world:      world,
		spectators: make(map[*router.NetworkClient]string),
	}
	s.loop = NewGameLoop(s, opts.TickRate)

	if err := s.campaign.Start(opts.StartLevel, opts.Survival); err != nil {
		return nil, fmt.Errorf("new server: %w", err)
	}
	return s, nil
}

// Start begins the server on the given port
func (s *Server) Start(port uint) error {
	s.setupRouterCallbacks()

	// Start game loop
	go s.loop.Run()

	// Create and start WebSocket transport
	s.transport = transports.NewWsServerTransport(port, "", nil)
	return s.transport.Start()
}

// Stop halts the loop and submits the run to the records store.
func (s *Server) Stop() {
	s.loop.Stop()
	s.campaign.Submit()
}

func (s *Server) setupRouterCallbacks() {
	router.OnConnect(func(client *router.NetworkClient) {
		log.Printf("[server] viewer connected: %s", client.Id())
	})

	router.OnDisconnect(func(client *router.NetworkClient, err error) {
		s.onDisconnect(client, err)
	})

	router.On(func(client *router.NetworkClient, req messages.JoinRequest) {
		s.onJoin(client, req)
	})

	router.OnError(func(client *router.NetworkClient, err error) {
		log.Printf("[server] client error: %v", err)
	})
}

func (s *Server) onJoin(client *router.NetworkClient, req messages.JoinRequest) {
	if s.opts.Version != "" && req.Version != s.opts.Version {
		log.Printf("[server] viewer %s on version %q ignored, want %q", client.Id(), req.Version, s.opts.Version)
		return
	}
	s.mu.Lock()
	s.spectators[client] = req.SpectatorName
	s.mu.Unlock()
	log.Printf("[server] %s is watching", req.SpectatorName)
}

func (s *Server) onDisconnect(client *router.NetworkClient, err error) {
	if err != nil {
		log.Printf("[server] viewer %s disconnected with error: %v", client.Id(), err)
	} else {
		log.Printf("[server] viewer %s disconnected", client.Id())
	}

	s.mu.Lock()
	delete(s.spectators, client)
	s.mu.Unlock()
}

// Step advances the encounter by dt and refreshes the mirror.
func (s *Server) Step(dt float64) error {
	s.pilot.Update()
	s.engine.Tick(dt, false)
	s.campaign.Update()
	return s.mirror.Update(s.engine, s.ledger)
}

// Finished reports whether the run has ended.
func (s *Server) Finished() bool { return s.campaign.Finished() }

func (s *Server) Engine() *game.Engine    { return s.engine }
func (s *Server) Ledger() *session.Ledger { return s.ledger }
func (s *Server) Mirror() *Mirror         { return s.mirror }
func (s *Server) World() donburi.World    { return s.world }

// SpectatorCount returns the number of joined viewers
func (s *Server) SpectatorCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.spectators)
}
