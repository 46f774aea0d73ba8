// Package randutil derives reproducible random sources for game sessions.
package randutil

import rand "math/rand/v2"

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand whose sequence is fully determined by seed.
// Two PCG words are derived from the seed with a splitmix finaliser so that
// neighbouring seeds (as used by batch simulations) do not produce
// correlated streams.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// NewSeed returns a fresh non-zero seed drawn from the runtime's
// process-seeded generator. Zero is reserved to mean "pick one for me".
func NewSeed() int64 {
	for {
		if s := rand.Int64(); s != 0 {
			return s
		}
	}
}

// Resolve returns seed unchanged unless it is zero, in which case a new
// seed is generated.
func Resolve(seed int64) int64 {
	if seed == 0 {
		return NewSeed()
	}
	return seed
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
