// Package random provides the seeded generator behind every musical choice.
//
// The generator is the 48-bit linear congruential generator of srand48 and
// drand48, so a seed yields the same sequence of draws on every platform.
package random

import (
	"fmt"
	"math"
)

const (
	multiplier = 0x5DEECE66D
	increment  = 0xB
	mask       = 1<<48 - 1
	seedLow    = 0x330E
)

// Source is a deterministic uniform generator. It is not safe for concurrent use.
type Source struct {
	state uint64
}

// New returns a Source seeded the way srand48 seeds its state.
func New(seed int64) *Source {
	s := &Source{}
	s.Seed(seed)
	return s
}

// Seed resets the generator. Only the low 32 bits of seed are used.
func (s *Source) Seed(seed int64) {
	s.state = (uint64(uint32(seed)) << 16) | seedLow
}

// Float64 returns a draw on [0, 1).
func (s *Source) Float64() float64 {
	s.state = (multiplier*s.state + increment) & mask
	return float64(s.state) / (1 << 48)
}

// Next returns a value in [0, limit) by rounding a continuous draw on
// [0, limit-1] to the nearest integer. The two endpoints are therefore half
// as likely as interior values.
func (s *Source) Next(limit int) int {
	if limit < 1 {
		panic(fmt.Sprintf("random: Next called with limit %d", limit))
	}
	return int(math.Round(s.Float64() * float64(limit-1)))
}
