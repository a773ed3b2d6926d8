package core

import (
	"log"
	"sync"
	"time"
)

// Stepper advances a simulation by one fixed tick and publishes the result.
type Stepper interface {
	Step()
	Sync() error
}

// GameLoop drives a Stepper at a fixed tick rate. Every tick is exactly one
// Step; a late tick is not made up with extra steps.
type GameLoop struct {
	stepper  Stepper
	tickRate int
	period   time.Duration

	stopOnce sync.Once
	stopChan chan struct{}
	done     chan struct{}

	mu       sync.Mutex
	ticks    uint64
	overruns uint64
	late     bool
}

func NewGameLoop(stepper Stepper, tickRate int) *GameLoop {
	if tickRate <= 0 {
		tickRate = 1
	}
	return &GameLoop{
		stepper:  stepper,
		tickRate: tickRate,
		period:   time.Second / time.Duration(tickRate),
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Run blocks until Stop is called.
func (g *GameLoop) Run() {
	defer close(g.done)
	ticker := time.NewTicker(g.period)
	defer ticker.Stop()

	log.Printf("[server] game loop started at %d ticks/second", g.tickRate)

	for {
		select {
		case <-g.stopChan:
			log.Printf("[server] game loop stopped after %d ticks (%d overruns)", g.Ticks(), g.Overruns())
			return
		case <-ticker.C:
			g.tick()
		}
	}
}

// Stop ends Run and waits for the tick in progress. Safe to call more than
// once, but only after Run has been started.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
	<-g.done
}

// Ticks returns how many ticks have run.
func (g *GameLoop) Ticks() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.ticks
}

// Overruns returns how many ticks took longer than the tick period.
func (g *GameLoop) Overruns() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.overruns
}

func (g *GameLoop) tick() {
	start := time.Now()
	g.stepper.Step()
	if err := g.stepper.Sync(); err != nil {
		log.Printf("[server] sync error: %v", err)
	}
	elapsed := time.Since(start)

	g.mu.Lock()
	defer g.mu.Unlock()
	g.ticks++
	over := elapsed > g.period
	if over {
		g.overruns++
	}
	// Report the start of a run of slow ticks, not every one.
	if over && !g.late {
		log.Printf("[server] tick %d took %v (budget %v)", g.ticks, elapsed, g.period)
	}
	g.late = over
}
