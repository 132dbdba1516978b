package quote

import "math/rand/v2"

// Rand is the randomness surface used by quote synthesis. The default source
// is safe for concurrent use; tests inject a seeded *rand.Rand.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// globalRand delegates to the shared math/rand/v2 source.
type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }
func (globalRand) IntN(n int) int   { return rand.IntN(n) }
