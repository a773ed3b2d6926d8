// Package network is a headless client for a duck server: it sends view
// updates and projectile fire requests and collects the server's per-client
// snapshots and gameplay events.
package network

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/automoto/duckworld/shared/messages"
	"github.com/automoto/duckworld/shared/netcomponents"
	"github.com/automoto/duckworld/shared/netconfig"
	"github.com/automoto/duckworld/shared/snapshot"
	"github.com/coder/websocket"
	"github.com/leap-fish/necs/esync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
)

type ClientState int

const (
	StateDisconnected ClientState = iota
	StateConnecting
	StateConnected
	StateError
)

func (s ClientState) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateError:
		return "error"
	}
	return fmt.Sprintf("ClientState(%d)", int(s))
}

// Snapshot is a decoded messages.Snapshot.
type Snapshot struct {
	Tick  uint64
	Items []snapshot.Item
}

// Count returns how many items of typ the snapshot carries.
func (s *Snapshot) Count(typ netconfig.ObjType) int {
	n := 0
	for _, it := range s.Items {
		if it.Type == typ {
			n++
		}
	}
	return n
}

// Client manages a WebSocket connection to the game server.
// All shared fields are protected by mu (router callbacks run on necs goroutines).
type Client struct {
	mu sync.RWMutex

	state       ClientState
	lastError   error
	conn        *websocket.Conn
	worldSyncs  int
	decodeFails int

	snapshotCh chan Snapshot // size-1 buffered; latest wins

	hiveHitCh chan messages.HiveHitEvent
	spawnCh   chan messages.BeeSpawnEvent
	killCh    chan messages.BeeKilledEvent
}

func NewClient() *Client {
	return &Client{
		state:      StateDisconnected,
		snapshotCh: make(chan Snapshot, 1),
		hiveHitCh:  make(chan messages.HiveHitEvent, 16),
		spawnCh:    make(chan messages.BeeSpawnEvent, 16),
		killCh:     make(chan messages.BeeKilledEvent, 16),
	}
}

// Connect dials the server in a background goroutine. Once connected the
// client announces its view at (viewX, viewY) so the server starts sending
// it snapshots.
func (c *Client) Connect(address string, viewX, viewY float64) {
	c.mu.Lock()
	c.state = StateConnecting
	c.lastError = nil
	c.mu.Unlock()

	router.OnConnect(func(_ *router.NetworkClient) {
		log.Println("[client] connected to server")
		c.mu.Lock()
		c.state = StateConnected
		c.mu.Unlock()

		if err := c.SendView(viewX, viewY); err != nil {
			c.setError(fmt.Errorf("failed to send view: %w", err))
		}
	})

	router.On(func(_ *router.NetworkClient, msg messages.Snapshot) {
		snap, err := decodeSnapshot(msg)
		if err != nil {
			c.mu.Lock()
			c.decodeFails++
			c.mu.Unlock()
			log.Printf("[client] bad snapshot at tick %d: %v", msg.Tick, err)
			return
		}
		select { // drain stale, push latest
		case <-c.snapshotCh:
		default:
		}
		c.snapshotCh <- snap
	})

	// The mirrored ECS state arrives through necs as well. Counting it is
	// enough to tell that replication is flowing.
	router.On(func(_ *router.NetworkClient, _ esync.WorldSnapshot) {
		c.mu.Lock()
		c.worldSyncs++
		c.mu.Unlock()
	})

	router.On(func(_ *router.NetworkClient, evt messages.HiveHitEvent) {
		pushEvent(c.hiveHitCh, evt)
	})

	router.On(func(_ *router.NetworkClient, evt messages.BeeSpawnEvent) {
		pushEvent(c.spawnCh, evt)
	})

	router.On(func(_ *router.NetworkClient, evt messages.BeeKilledEvent) {
		pushEvent(c.killCh, evt)
	})

	router.OnDisconnect(func(_ *router.NetworkClient, err error) {
		log.Printf("[client] disconnected: %v", err)
		c.mu.Lock()
		if c.state != StateError {
			c.state = StateDisconnected
		}
		c.conn = nil
		c.mu.Unlock()
	})

	router.OnError(func(_ *router.NetworkClient, err error) {
		log.Printf("[client] error: %v", err)
	})

	go func() {
		transport := transports.NewWsClientTransport("ws://" + address)
		err := transport.Start(func(conn *websocket.Conn) {
			c.mu.Lock()
			c.conn = conn
			c.mu.Unlock()
		})
		if err != nil {
			c.setError(fmt.Errorf("connection failed: %w", err))
		}
	}()
}

func (c *Client) Disconnect() {
	c.mu.Lock()
	conn := c.conn
	c.state = StateDisconnected
	c.conn = nil
	c.mu.Unlock()

	if conn != nil {
		_ = conn.CloseNow()
	}

	router.ResetRouter()
}

func (c *Client) State() ClientState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *Client) LastError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastError
}

// WorldSyncs returns how many necs world snapshots have arrived.
func (c *Client) WorldSyncs() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.worldSyncs
}

// DecodeFailures returns how many snapshots could not be decoded.
func (c *Client) DecodeFailures() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.decodeFails
}

// LatestSnapshot returns the most recent decoded snapshot, or nil. Non-blocking.
func (c *Client) LatestSnapshot() *Snapshot {
	select {
	case snap := <-c.snapshotCh:
		return &snap
	default:
		return nil
	}
}

// SendView moves this client's view; the server culls snapshots around it.
func (c *Client) SendView(x, y float64) error {
	return c.SendMessage(messages.ViewUpdate{X: x, Y: y})
}

// Fire asks the server to launch a projectile from (x, y) towards (dirX, dirY).
func (c *Client) Fire(x, y, dirX, dirY float64) error {
	return c.SendMessage(messages.FireProjectile{X: x, Y: y, DirX: dirX, DirY: dirY})
}

func (c *Client) SendMessage(msg any) error {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()

	if conn == nil {
		return fmt.Errorf("not connected")
	}

	payload, err := router.Serialize(msg)
	if err != nil {
		return fmt.Errorf("serialize: %w", err)
	}

	return conn.Write(context.Background(), websocket.MessageBinary, payload)
}

func (c *Client) setError(err error) {
	c.mu.Lock()
	c.state = StateError
	c.lastError = err
	c.mu.Unlock()
}

// DrainHiveHits returns all pending hive hit events, non-blocking.
func (c *Client) DrainHiveHits() []messages.HiveHitEvent {
	return drainChan(c.hiveHitCh)
}

// DrainBeeSpawns returns all pending bee spawn events, non-blocking.
func (c *Client) DrainBeeSpawns() []messages.BeeSpawnEvent {
	return drainChan(c.spawnCh)
}

// DrainBeeKills returns all pending bee kill events, non-blocking.
func (c *Client) DrainBeeKills() []messages.BeeKilledEvent {
	return drainChan(c.killCh)
}

func decodeSnapshot(msg messages.Snapshot) (Snapshot, error) {
	items, err := snapshot.Decode(msg.Data, newRecord)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{Tick: msg.Tick, Items: items}, nil
}

func newRecord(typ netconfig.ObjType) snapshot.Record {
	switch typ {
	case netconfig.ObjDuckPhysicsLawsGroup:
		return &netcomponents.NetObjDuckPhysicsLawsGroup{}
	case netconfig.ObjDuckCustomCore:
		return &netcomponents.NetObjDuckCustomCore{}
	case netconfig.ObjDuckPhysJoint:
		return &netcomponents.NetObjDuckPhysJoint{}
	case netconfig.ObjBee:
		return &netcomponents.NetObjBee{}
	case netconfig.ObjHive:
		return &netcomponents.NetObjHive{}
	case netconfig.ObjProjectile:
		return &netcomponents.NetObjProjectile{}
	}
	return nil
}

// pushEvent drops the event when nobody is draining.
func pushEvent[T any](ch chan T, evt T) {
	select {
	case ch <- evt:
	default:
	}
}

func drainChan[T any](ch chan T) []T {
	var out []T
	for {
		select {
		case v := <-ch:
			out = append(out, v)
		default:
			return out
		}
	}
}
