package core

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestObserverNetworkClipped(t *testing.T) {
	o := &Observer{View: mgl64.Vec2{1000, 1000}}
	tests := []struct {
		name string
		pos  mgl64.Vec2
		want bool
	}{
		{"at view", mgl64.Vec2{1000, 1000}, false},
		{"edge of box x", mgl64.Vec2{2000, 1000}, false},
		{"past box x", mgl64.Vec2{2000.5, 1000}, true},
		{"past box y", mgl64.Vec2{1000, 1801}, true},
		{"corner inside box but past radius", mgl64.Vec2{1900, 1700}, true},
		{"diagonal within radius", mgl64.Vec2{1700, 1700}, false},
	}
	for _, tt := range tests {
		if got := o.NetworkClipped(tt.pos); got != tt.want {
			t.Errorf("%s: NetworkClipped(%v) = %v, want %v", tt.name, tt.pos, got, tt.want)
		}
	}
}
