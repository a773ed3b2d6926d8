package gamemath

import "github.com/go-gl/mathgl/mgl64"

// CalculateLaunchVelocity returns the initial velocity for a projectile fired
// along dir. A zero dir falls back to facingX.
func CalculateLaunchVelocity(dir mgl64.Vec2, facingX, speed float64) mgl64.Vec2 {
	n, l := NormalizeOrZero(dir)
	if l == 0 {
		n = mgl64.Vec2{Sign(facingX), 0}
		if n[0] == 0 {
			n[0] = 1
		}
	}
	return n.Mul(speed)
}

// CirclesOverlap reports whether two circles intersect.
func CirclesOverlap(a mgl64.Vec2, ra float64, b mgl64.Vec2, rb float64) bool {
	return a.Sub(b).Len() < ra+rb
}
