package core

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

type countingStepper struct {
	steps atomic.Int64
	syncs atomic.Int64
	err   error
	delay time.Duration
}

func (c *countingStepper) Step() {
	time.Sleep(c.delay)
	c.steps.Add(1)
}

func (c *countingStepper) Sync() error {
	c.syncs.Add(1)
	return c.err
}

func TestGameLoopStepsThenSyncs(t *testing.T) {
	st := &countingStepper{err: errors.New("no clients")}
	g := NewGameLoop(st, 200)
	go g.Run()

	deadline := time.Now().Add(2 * time.Second)
	for st.steps.Load() < 3 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	g.Stop()
	g.Stop()

	steps, syncs := st.steps.Load(), st.syncs.Load()
	if steps < 3 {
		t.Fatalf("steps = %d, want at least 3", steps)
	}
	if steps != syncs {
		t.Fatalf("steps=%d syncs=%d, want one sync per step", steps, syncs)
	}
	if got := g.Ticks(); got != uint64(steps) {
		t.Fatalf("Ticks = %d, want %d", got, steps)
	}
}

func TestGameLoopCountsOverruns(t *testing.T) {
	g := NewGameLoop(&countingStepper{delay: 15 * time.Millisecond}, 100)
	g.tick()
	g.tick()
	if g.Overruns() != 2 || g.Ticks() != 2 {
		t.Fatalf("overruns=%d ticks=%d, want 2/2", g.Overruns(), g.Ticks())
	}
}

func TestNewGameLoopClampsTickRate(t *testing.T) {
	g := NewGameLoop(&countingStepper{}, 0)
	if g.period != time.Second {
		t.Fatalf("period = %v, want 1s", g.period)
	}
}
