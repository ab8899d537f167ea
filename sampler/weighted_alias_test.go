// Copyright (C) 2024-2026, Gostochastic Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAliasDeterministicConstruction(t *testing.T) {
	require := require.New(t)

	weights := []float64{3, 1, 4, 1, 5, 9, 2.5, 0, 6}

	a := &weightedAlias{}
	b := &weightedAlias{}
	require.NoError(a.Initialize(weights))
	require.NoError(b.Initialize(weights))

	require.Equal(a.prob, b.prob)
	require.Equal(a.alias, b.alias)
}

func TestAliasProbabilityRange(t *testing.T) {
	weightSets := [][]float64{
		{1},
		{1, 1, 1, 1},
		{1, 1, 0.5, 0},
		{1e-9, 1},
		{3, 1, 4, 1, 5, 9, 2.5, 0, 6},
		{0.1, 0.2, 0.3, 0.4},
	}

	for _, weights := range weightSets {
		s := &weightedAlias{}
		require.NoError(t, s.Initialize(weights))
		for i, p := range s.prob {
			require.GreaterOrEqual(t, p, 0.0, "slot %d", i)
			require.LessOrEqual(t, p, 1.0, "slot %d", i)
		}
		for i, alias := range s.alias {
			require.GreaterOrEqual(t, alias, 0, "slot %d", i)
			require.Less(t, alias, len(weights), "slot %d", i)
		}
	}
}

func TestAliasDrainClampsToOne(t *testing.T) {
	require := require.New(t)

	// Equal weights normalize to exactly the mean, so every slot drains with
	// probability exactly 1 -- not approximately 1.
	s := &weightedAlias{}
	require.NoError(s.Initialize([]float64{2, 2, 2, 2, 2}))
	for i, p := range s.prob {
		require.Equal(1.0, p, "slot %d", i)
	}

	// Weights whose normalization doesn't divide evenly still drain at least
	// one slot, and that slot must hold exactly 1.
	require.NoError(s.Initialize([]float64{0.1, 0.2, 0.3}))
	drained := 0
	for _, p := range s.prob {
		if p == 1.0 {
			drained++
		}
	}
	require.NotZero(drained)
}

// aliasMarginal computes the analytic probability of drawing [i]: the direct
// mass on slot i plus the mass every other slot defers to i.
func aliasMarginal(s *weightedAlias, i int) float64 {
	n := float64(len(s.prob))
	marginal := s.prob[i] / n
	for j, alias := range s.alias {
		if alias == i && s.prob[j] < 1 {
			marginal += (1 - s.prob[j]) / n
		}
	}
	return marginal
}

func TestAliasMarginalProbabilities(t *testing.T) {
	weightSets := [][]float64{
		{5},
		{1, 1, 0.5, 0},
		{1e-9, 1},
		{3, 1, 4, 1, 5, 9, 2.5, 0, 6},
		{0.25, 0.25, 0.25, 0.25},
		{100, 1, 1, 1, 1, 1, 1, 1},
	}

	for _, weights := range weightSets {
		total := float64(0)
		for _, w := range weights {
			total += w
		}

		s := &weightedAlias{}
		require.NoError(t, s.Initialize(weights))
		for i, w := range weights {
			require.InDelta(t, w/total, aliasMarginal(s, i), 1e-9, "index %d", i)
		}
	}
}

func TestAliasSingleSlot(t *testing.T) {
	require := require.New(t)

	s := &weightedAlias{}
	require.NoError(s.Initialize([]float64{5}))

	r := testRand(10)
	for i := 0; i < 100; i++ {
		index, err := s.Sample(r)
		require.NoError(err)
		require.Zero(index)
	}
}

func TestAliasZeroWeightUnreachable(t *testing.T) {
	require := require.New(t)

	// A zero-weight slot keeps probability 0 and is never anyone's alias, so
	// it is structurally unreachable -- not just statistically rare.
	s := &weightedAlias{}
	require.NoError(s.Initialize([]float64{1, 1, 0.5, 0}))

	require.Zero(s.prob[3])
	for j, alias := range s.alias {
		if s.prob[j] < 1 {
			require.NotEqual(3, alias, "slot %d aliases to the zero-weight slot", j)
		}
	}
}
