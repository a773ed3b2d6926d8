// Package snapshot implements the per-cycle snapshot buffer that game logic
// writes fixed-layout network records into.
package snapshot

import (
	"bytes"
	"encoding/binary"

	"github.com/automoto/duckworld/shared/netconfig"
)

// Record is a fixed-layout network object. Implementations must only contain
// fixed-size fields so binary.Size reports a constant.
type Record interface {
	NetType() netconfig.ObjType
}

// Item is one record written into a snapshot.
type Item struct {
	Type netconfig.ObjType
	ID   int
	Data Record

	// Key identifies the entity behind the record across cycles, where ID
	// may be a storage index that shifts. It is not encoded by Bytes.
	Key uint64
}

type itemKey struct {
	typ netconfig.ObjType
	id  int
}

// Builder collects the records of one snapshot cycle for one observer.
type Builder struct {
	maxItems int
	items    []Item
	keys     map[itemKey]struct{}
	counts   [netconfig.ObjTypeCount]int
	dropped  int
}

// NewBuilder creates a builder holding at most maxItems records per cycle.
func NewBuilder(maxItems int) *Builder {
	return &Builder{
		maxItems: maxItems,
		items:    make([]Item, 0, maxItems),
		keys:     make(map[itemKey]struct{}, maxItems),
	}
}

// NewItem allocates a zeroed record of type T tagged with id and returns a
// pointer the caller fills in. It returns nil when the buffer is full or an
// item with the same type and id was already written this cycle. The item's
// Key is id.
func NewItem[T any, P interface {
	*T
	Record
}](b *Builder, id int) P {
	return NewItemKeyed[T, P](b, id, uint64(id))
}

// NewItemKeyed is NewItem for records whose id is transient. key must stay
// the same for the same entity across cycles.
func NewItemKeyed[T any, P interface {
	*T
	Record
}](b *Builder, id int, key uint64) P {
	p := P(new(T))
	typ := p.NetType()
	if len(b.items) >= b.maxItems {
		b.dropped++
		return nil
	}
	k := itemKey{typ: typ, id: id}
	if _, exists := b.keys[k]; exists {
		b.dropped++
		return nil
	}
	b.keys[k] = struct{}{}
	b.items = append(b.items, Item{Type: typ, ID: id, Data: p, Key: key})
	if typ >= 0 && typ < netconfig.ObjTypeCount {
		b.counts[typ]++
	}
	return p
}

// Count returns how many records of typ were written this cycle.
func (b *Builder) Count(typ netconfig.ObjType) int {
	if typ < 0 || typ >= netconfig.ObjTypeCount {
		return 0
	}
	return b.counts[typ]
}

// Len returns the total number of records written this cycle.
func (b *Builder) Len() int { return len(b.items) }

// Dropped returns how many allocations were refused this cycle.
func (b *Builder) Dropped() int { return b.dropped }

// Items returns the records in write order. The slice is only valid until
// the next Reset.
func (b *Builder) Items() []Item { return b.items }

// Find returns the record with the given type and id.
func (b *Builder) Find(typ netconfig.ObjType, id int) (Record, bool) {
	if _, ok := b.keys[itemKey{typ: typ, id: id}]; !ok {
		return nil, false
	}
	for _, it := range b.items {
		if it.Type == typ && it.ID == id {
			return it.Data, true
		}
	}
	return nil, false
}

// Reset clears the builder for the next cycle, keeping its storage.
func (b *Builder) Reset() {
	clear(b.items)
	b.items = b.items[:0]
	clear(b.keys)
	b.counts = [netconfig.ObjTypeCount]int{}
	b.dropped = 0
}

// Bytes encodes the snapshot deterministically: for every item in write
// order a little-endian int32 header (type, id, size) followed by the record.
func (b *Builder) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	for _, it := range b.items {
		size := binary.Size(it.Data)
		header := [3]int32{int32(it.Type), int32(it.ID), int32(size)}
		if err := binary.Write(&buf, binary.LittleEndian, header); err != nil {
			return nil, err
		}
		if err := binary.Write(&buf, binary.LittleEndian, it.Data); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}
