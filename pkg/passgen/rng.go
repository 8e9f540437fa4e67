package passgen

import (
	"math/bits"
	"math/rand/v2"
)

// maxRedraws bounds the rejection loop of a single draw
const maxRedraws = 64

const (
	splitMixGamma = 0x9e3779b97f4a7c15
	splitMixMul1  = 0xbf58476d1ce4e5b9
	splitMixMul2  = 0x94d049bb133111eb
)

// rng is a call-local source of uniform indices.
// It is a 128-bit PCG-DXSM generator whose state words are expanded from the seed with SplitMix64,
// so that adjacent seeds start from unrelated states
type rng struct {
	src *rand.PCG
}

func newRNG(seed uint64) *rng {
	state := seed
	hi := splitMix64(&state)
	lo := splitMix64(&state)
	return &rng{src: rand.NewPCG(hi, lo)}
}

func splitMix64(state *uint64) uint64 {
	*state += splitMixGamma
	z := *state
	z = (z ^ (z >> 30)) * splitMixMul1
	z = (z ^ (z >> 27)) * splitMixMul2
	return z ^ (z >> 31)
}

// uintn returns a value in [0, n) using Lemire's multiply-shift method.
// Candidates falling into the biased zone are rejected and redrawn; n must be positive
func (r *rng) uintn(n uint64) uint64 {
	hi, lo := bits.Mul64(r.src.Uint64(), n)
	if lo < n {
		thresh := -n % n
		for i := 0; lo < thresh && i < maxRedraws; i++ {
			hi, lo = bits.Mul64(r.src.Uint64(), n)
		}
	}
	return hi
}

func (r *rng) intn(n int) int {
	return int(r.uintn(uint64(n)))
}
