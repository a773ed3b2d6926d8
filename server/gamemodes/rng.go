package gamemodes

// fallbackSeed replaces a zero seed, which xorshift never leaves.
const fallbackSeed uint32 = 0x2545F491

// xorshift32 is a small deterministic PRNG. The same seed always yields
// the same bee flight paths.
type xorshift32 struct {
	state uint32
}

func newXorshift32(seed uint32) *xorshift32 {
	if seed == 0 {
		seed = fallbackSeed
	}
	return &xorshift32{state: seed}
}

func (r *xorshift32) Next() uint32 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Float returns a value in [min, max].
func (r *xorshift32) Float(min, max float64) float64 {
	return min + float64(r.Next())/0xFFFFFFFF*(max-min)
}

// Intn returns a value in [0, n).
func (r *xorshift32) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint32(n))
}
