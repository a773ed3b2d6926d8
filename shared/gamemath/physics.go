package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}

// Finite reports whether both components are neither NaN nor infinite.
func Finite(v mgl64.Vec2) bool {
	return !math.IsNaN(v[0]) && !math.IsInf(v[0], 0) &&
		!math.IsNaN(v[1]) && !math.IsInf(v[1], 0)
}

// NormalizeOrZero returns the unit vector of v and its length. A zero or
// non-finite length yields the zero vector.
func NormalizeOrZero(v mgl64.Vec2) (mgl64.Vec2, float64) {
	l := v.Len()
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return mgl64.Vec2{}, 0
	}
	return v.Mul(1 / l), l
}
