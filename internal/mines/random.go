package mines

import (
	"hash/maphash"
	"math/rand/v2"
)

// NewRand returns a PCG generator seeded from process entropy.
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

// randomRange returns a uniform integer in [low, high). It panics if
// low >= high.
func randomRange(r *rand.Rand, low, high int) int {
	if low >= high {
		panic("randomRange: empty range")
	}
	return low + r.IntN(high-low)
}

func randomPosition(r *rand.Rand, width, height int) Position {
	return Position{
		Row: randomRange(r, 0, height),
		Col: randomRange(r, 0, width),
	}
}
