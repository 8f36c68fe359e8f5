package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedZeroMatchesDrand48(t *testing.T) {
	s := New(0)

	assert.InDelta(t, 0.170828036106, s.Float64(), 1e-12)
	assert.InDelta(t, 0.749901980485, s.Float64(), 1e-12)
	assert.InDelta(t, 0.096371655624, s.Float64(), 1e-12)
}

func TestNextIsReproducible(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 1000; i++ {
		require.Equal(t, a.Next(12), b.Next(12))
	}
}

func TestSeedResetsSequence(t *testing.T) {
	s := New(7)
	first := []int{s.Next(12), s.Next(12), s.Next(12)}

	s.Seed(7)
	assert.Equal(t, first, []int{s.Next(12), s.Next(12), s.Next(12)})
}

func TestNextKnownSequence(t *testing.T) {
	s := New(0)
	var got []int
	for i := 0; i < 10; i++ {
		got = append(got, s.Next(12))
	}
	assert.Equal(t, []int{2, 8, 1, 10, 6, 9, 8, 4, 10, 8}, got)
}

func TestNextStaysInRange(t *testing.T) {
	s := New(1)
	for limit := 1; limit <= 130; limit++ {
		for i := 0; i < 200; i++ {
			v := s.Next(limit)
			require.GreaterOrEqual(t, v, 0)
			require.Less(t, v, limit)
		}
	}
}

func TestNextOfOneIsAlwaysZero(t *testing.T) {
	s := New(99)
	for i := 0; i < 100; i++ {
		assert.Equal(t, 0, s.Next(1))
	}
}

func TestNextUnderweightsEndpoints(t *testing.T) {
	s := New(3)
	counts := make([]int, 3)
	const draws = 30000
	for i := 0; i < draws; i++ {
		counts[s.Next(3)]++
	}

	// Rounding a draw on [0, 2] gives 1/4, 1/2, 1/4.
	assert.InDelta(t, 0.25, float64(counts[0])/draws, 0.02)
	assert.InDelta(t, 0.50, float64(counts[1])/draws, 0.02)
	assert.InDelta(t, 0.25, float64(counts[2])/draws, 0.02)
}

func TestNextPanicsOnEmptyRange(t *testing.T) {
	assert.Panics(t, func() { New(0).Next(0) })
}
