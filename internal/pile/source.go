package pile

import (
	"math/rand/v2"
	"time"
)

// Rand is a seeded Source backed by a PCG generator. The same seed always
// produces the same draws.
type Rand struct {
	r *rand.Rand
}

// NewSource returns a Rand seeded with seed
func NewSource(seed uint64) *Rand {
	return &Rand{r: rand.New(rand.NewPCG(seed, 0))}
}

// ClockSeed returns a seed derived from the current time, for callers that do
// not need reproducible shuffles.
func ClockSeed() uint64 {
	return uint64(time.Now().UnixNano())
}

// IntRange returns a uniform integer in [low, high). It panics if high <= low.
func (s *Rand) IntRange(low, high int) int {
	return low + s.r.IntN(high-low)
}
