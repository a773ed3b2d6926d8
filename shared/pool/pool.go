// Package pool provides a fixed-capacity slot arena for game-mode entities.
package pool

import "math/bits"

// Pool holds up to a fixed number of T values addressed by slot index.
// Allocation and release are O(1); freed slots are reused LIFO.
type Pool[T any] struct {
	slots []T
	alive []uint64
	free  []int
	live  int
}

// New creates a pool with room for capacity values.
func New[T any](capacity int) *Pool[T] {
	p := &Pool[T]{
		slots: make([]T, capacity),
		alive: make([]uint64, (capacity+63)/64),
		free:  make([]int, 0, capacity),
	}
	// Lowest slots are handed out first.
	for i := capacity - 1; i >= 0; i-- {
		p.free = append(p.free, i)
	}
	return p
}

// Alloc reserves a zeroed slot. ok is false when the pool is full.
func (p *Pool[T]) Alloc() (slot int, v *T, ok bool) {
	if len(p.free) == 0 {
		return -1, nil, false
	}
	slot = p.free[len(p.free)-1]
	p.free = p.free[:len(p.free)-1]

	var zero T
	p.slots[slot] = zero
	p.alive[slot/64] |= 1 << (slot % 64)
	p.live++
	return slot, &p.slots[slot], true
}

// Free releases a slot. Freeing a dead or out-of-range slot is a no-op.
func (p *Pool[T]) Free(slot int) {
	if !p.Alive(slot) {
		return
	}
	p.alive[slot/64] &^= 1 << (slot % 64)
	var zero T
	p.slots[slot] = zero
	p.free = append(p.free, slot)
	p.live--
}

// Alive reports whether slot is allocated.
func (p *Pool[T]) Alive(slot int) bool {
	if slot < 0 || slot >= len(p.slots) {
		return false
	}
	return p.alive[slot/64]&(1<<(slot%64)) != 0
}

// Get returns the value in slot, or nil if the slot is not allocated.
func (p *Pool[T]) Get(slot int) *T {
	if !p.Alive(slot) {
		return nil
	}
	return &p.slots[slot]
}

// Each calls fn for every live slot in ascending slot order. fn may free the
// current slot.
func (p *Pool[T]) Each(fn func(slot int, v *T)) {
	for w, word := range p.alive {
		for word != 0 {
			b := bits.TrailingZeros64(word)
			word &^= 1 << b
			slot := w*64 + b
			fn(slot, &p.slots[slot])
		}
	}
}

// Len returns the number of live slots.
func (p *Pool[T]) Len() int { return p.live }

// Cap returns the pool capacity.
func (p *Pool[T]) Cap() int { return len(p.slots) }
