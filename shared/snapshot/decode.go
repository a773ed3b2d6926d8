package snapshot

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/automoto/duckworld/shared/netconfig"
)

// Decode parses bytes produced by Builder.Bytes. newRecord returns a pointer
// to a zeroed record for a net type, or nil for types the caller does not
// know. Unknown records and records whose size does not match are skipped.
// Keys are not on the wire; decoded items are keyed by id.
func Decode(data []byte, newRecord func(netconfig.ObjType) Record) ([]Item, error) {
	r := bytes.NewReader(data)
	var items []Item
	for r.Len() > 0 {
		var header [3]int32
		if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
			return nil, fmt.Errorf("snapshot header: %w", err)
		}
		typ, id, size := netconfig.ObjType(header[0]), int(header[1]), int(header[2])
		if size < 0 || size > r.Len() {
			return nil, fmt.Errorf("snapshot item %s/%d: bad size %d", typ, id, size)
		}

		rec := newRecord(typ)
		if rec == nil || binary.Size(rec) != size {
			if _, err := r.Seek(int64(size), io.SeekCurrent); err != nil {
				return nil, err
			}
			continue
		}
		if err := binary.Read(r, binary.LittleEndian, rec); err != nil {
			return nil, fmt.Errorf("snapshot item %s/%d: %w", typ, id, err)
		}
		items = append(items, Item{Type: typ, ID: id, Data: rec, Key: uint64(id)})
	}
	return items, nil
}
