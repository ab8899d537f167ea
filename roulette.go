// Copyright (C) 2024-2026, Gostochastic Labs. All rights reserved.
// See the file LICENSE for licensing terms.

// Package roulette implements weighted random selection: a loaded die over a
// fixed set of values. Construction takes O(n) time; each draw takes O(1)
// time, which is far faster than the naive cumulative-weight scan commonly
// known as roulette wheel selection.
//
// The underlying algorithm is Vose's alias method. For an in-depth
// explanation, see http://www.keithschwarz.com/darts-dice-coins/.
package roulette

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/gostochastic/roulette/sampler"
)

// Pair associates a value with its non-negative weight. Weights don't have
// to sum to 1; they are normalized during construction.
type Pair[V any] struct {
	Value  V
	Weight float64
}

// Roulette selects among a fixed set of values with probability proportional
// to their weights.
//
// A Roulette is immutable once constructed and safe for concurrent readers,
// provided each reader's *sampler.Rand is independently owned or itself safe
// for concurrent use (sampler.Global() is).
type Roulette[V any] struct {
	values   []V
	weighted sampler.Weighted
}

// New constructs a table from the provided (value, weight) pairs. The pairs
// are copied; later mutation of [pairs] doesn't affect the table.
//
// Returns an error matching sampler.ErrInvalidInput if [pairs] is empty, any
// weight is negative, NaN, or infinite, or all weights are zero.
func New[V any](pairs []Pair[V]) (*Roulette[V], error) {
	values := make([]V, len(pairs))
	weights := make([]float64, len(pairs))
	for i, pair := range pairs {
		values[i] = pair.Value
		weights[i] = pair.Weight
	}
	return newRoulette(values, weights)
}

// NewFromWeights is New with the values and their weights provided in
// parallel slices, which must have the same length.
func NewFromWeights[V any](values []V, weights []float64) (*Roulette[V], error) {
	if len(values) != len(weights) {
		return nil, fmt.Errorf("%w: %d values provided with %d weights",
			sampler.ErrInvalidInput,
			len(values),
			len(weights),
		)
	}
	return newRoulette(slices.Clone(values), slices.Clone(weights))
}

// newRoulette takes ownership of [values] and [weights].
func newRoulette[V any](values []V, weights []float64) (*Roulette[V], error) {
	weighted := sampler.NewWeighted()
	if err := weighted.Initialize(weights); err != nil {
		return nil, err
	}
	return &Roulette[V]{
		values:   values,
		weighted: weighted,
	}, nil
}

// Sample returns one value, chosen with probability proportional to its
// weight, drawing randomness from [r]. Values with zero weight are never
// returned.
func (t *Roulette[V]) Sample(r *sampler.Rand) V {
	// Can't fail: construction only succeeds with a non-empty distribution.
	i, _ := t.weighted.Sample(r)
	return t.values[i]
}

// Len returns the number of values the table was built from, including any
// with zero weight.
func (t *Roulette[V]) Len() int {
	return len(t.values)
}
