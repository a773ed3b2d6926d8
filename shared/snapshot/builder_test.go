package snapshot

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/automoto/duckworld/shared/netcomponents"
	"github.com/automoto/duckworld/shared/netconfig"
)

func TestNewItemZeroedAndTagged(t *testing.T) {
	b := NewBuilder(4)
	hive := NewItem[netcomponents.NetObjHive](b, 1)
	if hive == nil {
		t.Fatal("expected allocation")
	}
	if hive.CoreIndex != 0 {
		t.Fatalf("record not zeroed: %+v", *hive)
	}
	hive.CoreIndex = 5

	rec, ok := b.Find(netconfig.ObjHive, 1)
	if !ok {
		t.Fatal("record not found")
	}
	if got := rec.(*netcomponents.NetObjHive).CoreIndex; got != 5 {
		t.Fatalf("CoreIndex = %d, want 5", got)
	}
	if b.Count(netconfig.ObjHive) != 1 || b.Len() != 1 {
		t.Fatalf("count=%d len=%d, want 1/1", b.Count(netconfig.ObjHive), b.Len())
	}
}

func TestNewItemOverflowAndDuplicates(t *testing.T) {
	b := NewBuilder(2)
	if NewItem[netcomponents.NetObjHive](b, 0) == nil {
		t.Fatal("first allocation failed")
	}
	if NewItem[netcomponents.NetObjHive](b, 0) != nil {
		t.Fatal("duplicate type/id must be refused")
	}
	if NewItem[netcomponents.NetObjBee](b, 0) == nil {
		t.Fatal("same id with another type must succeed")
	}
	if NewItem[netcomponents.NetObjBee](b, 1) != nil {
		t.Fatal("allocation beyond capacity must be refused")
	}
	if b.Dropped() != 2 {
		t.Fatalf("Dropped = %d, want 2", b.Dropped())
	}

	b.Reset()
	if b.Len() != 0 || b.Dropped() != 0 || b.Count(netconfig.ObjHive) != 0 {
		t.Fatal("reset should clear all state")
	}
	if NewItem[netcomponents.NetObjHive](b, 0) == nil {
		t.Fatal("allocation after reset failed")
	}
}

func TestBytesLayout(t *testing.T) {
	b := NewBuilder(8)
	bee := NewItem[netcomponents.NetObjBee](b, 3)
	bee.Core1Index, bee.Core2Index, bee.Health = 1, 2, 10

	got, err := b.Bytes()
	if err != nil {
		t.Fatal(err)
	}

	var want bytes.Buffer
	for _, v := range []int32{int32(netconfig.ObjBee), 3, 12, 1, 2, 10} {
		_ = binary.Write(&want, binary.LittleEndian, v)
	}
	if !bytes.Equal(got, want.Bytes()) {
		t.Fatalf("Bytes() = %v, want %v", got, want.Bytes())
	}
}
