package core

import (
	"fmt"
	"log"
	"sync"

	cfg "github.com/automoto/duckworld/config"
	"github.com/automoto/duckworld/server/gamemodes"
	"github.com/automoto/duckworld/shared/messages"
	"github.com/automoto/duckworld/shared/snapshot"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/yohamta/donburi"
)

// Options configures a Server.
type Options struct {
	Mode     string
	Level    *ServerLevel
	Seed     uint32
	TickRate int

	// Networked registers the replication world with esync and the router
	// callbacks. Headless runs leave it off.
	Networked bool
}

// Server owns the simulation and the client connections. All simulation
// state is touched only from Step; router callbacks queue commands.
type Server struct {
	world     donburi.World
	loop      *GameLoop
	transport *transports.WsServerTransport
	networked bool

	level       *ServerLevel
	mode        gamemodes.Controller
	projectiles *ProjectileSet
	mirror      *Mirror

	snap    *snapshot.Builder
	obsSnap *snapshot.Builder
	tick    uint64

	events      []any
	lastDropped int

	mu             sync.Mutex
	observers      map[*router.NetworkClient]*Observer
	nextObserverID int
	commands       []func()
}

// NewServer creates a server running the named game mode on level.
func NewServer(opts Options) (*Server, error) {
	if opts.Level == nil {
		return nil, fmt.Errorf("new server: no level")
	}

	world := donburi.NewWorld()
	s := &Server{
		world:       world,
		networked:   opts.Networked,
		level:       opts.Level,
		projectiles: NewProjectileSet(opts.Level, cfg.Projectile.MaxLive),
		mirror:      NewMirror(world, opts.Networked),
		snap:        snapshot.NewBuilder(cfg.Server.MaxSnapItems),
		obsSnap:     snapshot.NewBuilder(cfg.Server.MaxSnapItems),
		observers:   make(map[*router.NetworkClient]*Observer),
	}

	mode, err := gamemodes.New(opts.Mode, gamemodes.Options{
		Duck:        cfg.Duck,
		Collision:   opts.Level,
		HiveSpawns:  opts.Level.HiveSpawns,
		Seed:        opts.Seed,
		Projectiles: s.projectiles,
		Events:      s,
	})
	if err != nil {
		return nil, fmt.Errorf("new server: %w", err)
	}
	s.mode = mode
	s.loop = NewGameLoop(s, opts.TickRate)

	if opts.Networked {
		// Set up the world for esync
		srvsync.UseEsync(world)
		s.setupRouterCallbacks()
	}

	log.Printf("[server] mode %s ready", mode.Name())
	return s, nil
}

// Start begins the server on the given port
func (s *Server) Start(port uint) error {
	go s.loop.Run()

	s.transport = transports.NewWsServerTransport(port, "", nil)
	return s.transport.Start()
}

// Stop gracefully shuts down the server
func (s *Server) Stop() {
	s.loop.Stop()
}

// Sync publishes the mirrored replication world to connected clients.
func (s *Server) Sync() error {
	if !s.networked {
		return nil
	}
	return srvsync.DoSync()
}

func (s *Server) setupRouterCallbacks() {
	router.OnConnect(func(client *router.NetworkClient) {
		s.onConnect(client)
	})

	router.OnDisconnect(func(client *router.NetworkClient, err error) {
		s.onDisconnect(client, err)
	})

	router.On(func(client *router.NetworkClient, msg messages.ViewUpdate) {
		s.onViewUpdate(client, msg)
	})

	router.On(func(client *router.NetworkClient, msg messages.FireProjectile) {
		s.onFireProjectile(client, msg)
	})

	router.OnError(func(client *router.NetworkClient, err error) {
		log.Printf("[server] client error: %v", err)
	})
}

func (s *Server) onConnect(client *router.NetworkClient) {
	s.mu.Lock()
	s.nextObserverID++
	obs := &Observer{ID: s.nextObserverID, Client: client}
	s.observers[client] = obs
	s.mu.Unlock()

	log.Printf("[server] client %s connected as observer %d", client.Id(), obs.ID)
}

func (s *Server) onDisconnect(client *router.NetworkClient, err error) {
	if err != nil {
		log.Printf("[server] client %s disconnected with error: %v", client.Id(), err)
	} else {
		log.Printf("[server] client %s disconnected", client.Id())
	}

	s.mu.Lock()
	delete(s.observers, client)
	s.mu.Unlock()
}

func (s *Server) onViewUpdate(client *router.NetworkClient, msg messages.ViewUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if obs, ok := s.observers[client]; ok {
		obs.View = mgl64.Vec2{msg.X, msg.Y}
		obs.HasView = true
	}
}

func (s *Server) onFireProjectile(client *router.NetworkClient, msg messages.FireProjectile) {
	s.mu.Lock()
	obs, ok := s.observers[client]
	s.mu.Unlock()
	if !ok {
		return
	}
	s.Fire(obs.ID, mgl64.Vec2{msg.X, msg.Y}, mgl64.Vec2{msg.DirX, msg.DirY})
}

// Fire queues a projectile spawn for the next Step.
func (s *Server) Fire(owner int, pos, dir mgl64.Vec2) {
	s.queue(func() {
		if _, ok := s.projectiles.Fire(owner, pos, dir); !ok {
			log.Printf("[server] projectile from observer %d dropped", owner)
		}
	})
}

func (s *Server) queue(cmd func()) {
	s.mu.Lock()
	s.commands = append(s.commands, cmd)
	s.mu.Unlock()
}

// ProcessCommands runs the queued commands in arrival order.
func (s *Server) ProcessCommands() {
	s.mu.Lock()
	cmds := s.commands
	s.commands = nil
	s.mu.Unlock()

	for _, cmd := range cmds {
		cmd()
	}
}

// Step runs one server tick: queued commands, the game mode, projectiles,
// then the replication snapshot.
func (s *Server) Step() {
	s.ProcessCommands()

	s.mode.Tick()
	s.projectiles.Step()
	s.projectiles.Sweep()

	s.snap.Reset()
	s.mode.Snap(s.snap, nil)
	s.projectiles.Snap(s.snap, nil)
	s.reportDropped(s.snap.Dropped())

	if err := s.mirror.Apply(s.snap); err != nil {
		log.Printf("[server] mirror: %v", err)
	}

	s.flushEvents()
	s.sendObserverSnapshots()
	s.tick++
}

func (s *Server) reportDropped(n int) {
	if n > 0 && s.lastDropped == 0 {
		log.Printf("[server] snapshot full: %d records dropped (max %d)", n, cfg.Server.MaxSnapItems)
	}
	s.lastDropped = n
}

// Emit records a gameplay event raised during the current tick.
func (s *Server) Emit(event any) {
	s.events = append(s.events, event)
}

func (s *Server) flushEvents() {
	if len(s.events) == 0 {
		return
	}
	clients := s.clients()
	for _, e := range s.events {
		log.Printf("[server] event %T %+v", e, e)
		for _, c := range clients {
			if err := c.SendMessage(e); err != nil {
				log.Printf("[server] send %T to %s: %v", e, c.Id(), err)
			}
		}
	}
	clear(s.events)
	s.events = s.events[:0]
}

func (s *Server) sendObserverSnapshots() {
	s.mu.Lock()
	var viewers []Observer
	for _, obs := range s.observers {
		if obs.HasView && obs.Client != nil {
			viewers = append(viewers, *obs)
		}
	}
	s.mu.Unlock()

	for i := range viewers {
		obs := &viewers[i]
		data, err := s.SnapFor(obs)
		if err != nil {
			log.Printf("[server] snapshot for observer %d: %v", obs.ID, err)
			continue
		}
		if err := obs.Client.SendMessage(messages.Snapshot{Tick: s.tick, Data: data}); err != nil {
			log.Printf("[server] snapshot to observer %d: %v", obs.ID, err)
		}
	}
}

// SnapFor encodes the current state as seen by obs. A nil obs sees
// everything. The returned bytes are only valid until the next call.
func (s *Server) SnapFor(obs *Observer) ([]byte, error) {
	s.obsSnap.Reset()
	if obs == nil {
		s.mode.Snap(s.obsSnap, nil)
		s.projectiles.Snap(s.obsSnap, nil)
	} else {
		s.mode.Snap(s.obsSnap, obs)
		s.projectiles.Snap(s.obsSnap, obs)
	}
	return s.obsSnap.Bytes()
}

func (s *Server) clients() []*router.NetworkClient {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*router.NetworkClient, 0, len(s.observers))
	for c := range s.observers {
		out = append(out, c)
	}
	return out
}

// World returns the replication world.
func (s *Server) World() donburi.World {
	return s.world
}

// Mode returns the running game mode.
func (s *Server) Mode() gamemodes.Controller {
	return s.mode
}

// Projectiles returns the live projectile set.
func (s *Server) Projectiles() *ProjectileSet {
	return s.projectiles
}

// Snapshot returns the replication snapshot built by the last Step.
func (s *Server) Snapshot() *snapshot.Builder {
	return s.snap
}

// Tick returns the number of completed steps.
func (s *Server) Tick() uint64 {
	return s.tick
}

// PlayerCount returns the number of connected observers
func (s *Server) PlayerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.observers)
}
