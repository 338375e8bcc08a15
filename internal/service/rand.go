package service

import (
	"math/rand"
	"time"
)

// Rand supplies the randomness behind quote figures and display flavor.
// Tests inject a deterministic implementation; the quoted distance feeds the
// fare computation, so it must be seedable.
type Rand interface {
	// Float64 returns a pseudo-random number in [0.0, 1.0).
	Float64() float64

	// Intn returns a pseudo-random number in [0, n).
	Intn(n int) int
}

// NewRand returns a time-seeded Rand.
func NewRand() Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
