package projection

import (
	"math"
	"math/rand/v2"
)

// RandomSource yields uniform draws in [0, 1)
// *rand.Rand from math/rand/v2 satisfies it
type RandomSource interface {
	Float64() float64
}

// NewSource returns a deterministic source for the given seed
// Each projection should own its source, sources are not safe for concurrent use
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// standardNormal draws one N(0,1) variate with the Box-Muller transform
// Both uniforms are mapped to (0, 1] so the logarithm stays finite
func standardNormal(src RandomSource) float64 {
	u1 := 1 - src.Float64()
	u2 := 1 - src.Float64()
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}
