package network

import (
	"testing"

	"github.com/automoto/duckworld/shared/messages"
	"github.com/automoto/duckworld/shared/netcomponents"
	"github.com/automoto/duckworld/shared/netconfig"
	"github.com/automoto/duckworld/shared/snapshot"
)

func TestNewRecordCoversEveryType(t *testing.T) {
	for typ := netconfig.ObjNone + 1; typ < netconfig.ObjTypeCount; typ++ {
		rec := newRecord(typ)
		if rec == nil {
			t.Errorf("no record for %s", typ)
			continue
		}
		if rec.NetType() != typ {
			t.Errorf("newRecord(%s).NetType() = %s", typ, rec.NetType())
		}
	}
	if newRecord(netconfig.ObjNone) != nil {
		t.Error("expected nil for ObjNone")
	}
}

func TestDecodeSnapshotMessage(t *testing.T) {
	b := snapshot.NewBuilder(8)
	snapshot.NewItem[netcomponents.NetObjDuckCustomCore](b, 0).Radius = 40 * 256
	snapshot.NewItem[netcomponents.NetObjDuckCustomCore](b, 1).Radius = 30 * 256
	j := snapshot.NewItem[netcomponents.NetObjDuckPhysJoint](b, 0)
	j.Core1Index, j.Core2Index = 0, 1
	data, err := b.Bytes()
	if err != nil {
		t.Fatal(err)
	}

	snap, err := decodeSnapshot(messages.Snapshot{Tick: 42, Data: data})
	if err != nil {
		t.Fatal(err)
	}
	if snap.Tick != 42 || len(snap.Items) != 3 {
		t.Fatalf("tick=%d items=%d, want 42/3", snap.Tick, len(snap.Items))
	}
	if got := snap.Count(netconfig.ObjDuckCustomCore); got != 2 {
		t.Fatalf("core count = %d, want 2", got)
	}
	if got := snap.Items[1].Data.(*netcomponents.NetObjDuckCustomCore).Radius; got != 30*256 {
		t.Fatalf("second core radius = %d", got)
	}
}

func TestLatestSnapshotKeepsNewest(t *testing.T) {
	c := NewClient()
	if c.LatestSnapshot() != nil {
		t.Fatal("expected no snapshot")
	}
	c.snapshotCh <- Snapshot{Tick: 1}
	if snap := c.LatestSnapshot(); snap == nil || snap.Tick != 1 {
		t.Fatalf("LatestSnapshot = %+v", snap)
	}
	if c.LatestSnapshot() != nil {
		t.Fatal("snapshot should be consumed")
	}
}

func TestSendWithoutConnection(t *testing.T) {
	c := NewClient()
	if err := c.SendView(0, 0); err == nil {
		t.Fatal("expected error when not connected")
	}
	if c.State() != StateDisconnected {
		t.Fatalf("state = %s", c.State())
	}
}

func TestEventsDropWhenFull(t *testing.T) {
	c := NewClient()
	for i := 0; i < cap(c.spawnCh)+3; i++ {
		pushEvent(c.spawnCh, messages.BeeSpawnEvent{BeeID: i})
	}
	got := c.DrainBeeSpawns()
	if len(got) != cap(c.spawnCh) {
		t.Fatalf("drained %d, want %d", len(got), cap(c.spawnCh))
	}
	if got[0].BeeID != 0 {
		t.Fatalf("first event = %d, want oldest kept", got[0].BeeID)
	}
	if len(c.DrainBeeSpawns()) != 0 {
		t.Fatal("expected empty after drain")
	}
}
