// Copyright (C) 2024-2026, Gostochastic Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidInput is matched by every construction failure: an empty
	// weight slice, a negative, NaN, or infinite weight, or a total weight
	// of zero.
	ErrInvalidInput = errors.New("invalid weighted distribution")

	// ErrOutOfRange is returned when sampling from a sampler that has no
	// population left to draw from.
	ErrOutOfRange = errors.New("out of range")
)

// Weighted defines how to sample an index based on a provided weighted
// distribution.
//
// Implementations hold no randomness of their own; every draw is pulled from
// the *Rand handed to Sample. Once initialized, a sampler is read-only and
// safe for concurrent Sample calls.
type Weighted interface {
	// Initialize the sampler with the provided weights, replacing any prior
	// state. Returns an error matching ErrInvalidInput if the weights do not
	// describe a valid distribution.
	Initialize(weights []float64) error

	// Sample returns an index i with probability weights[i]/sum(weights),
	// drawing its randomness from [r].
	Sample(r *Rand) (int, error)
}

// NewWeighted returns a sampler with O(n) initialization and O(1) draws.
func NewWeighted() Weighted {
	return &weightedAlias{}
}

// sumWeights validates [weights] and returns their total mass.
func sumWeights(weights []float64) (float64, error) {
	if len(weights) == 0 {
		return 0, fmt.Errorf("%w: no weights provided", ErrInvalidInput)
	}
	total := float64(0)
	for i, weight := range weights {
		if weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
			return 0, fmt.Errorf("%w: weight %v at index %d", ErrInvalidInput, weight, i)
		}
		total += weight
	}
	switch {
	case total == 0:
		return 0, fmt.Errorf("%w: total weight is zero", ErrInvalidInput)
	case math.IsInf(total, 0):
		return 0, fmt.Errorf("%w: total weight overflows", ErrInvalidInput)
	}
	return total, nil
}

// clampDraw bounds a draw of [value] in [0, total). Multiplying a Float64 by
// [total] can round up to exactly [total]; resolve those draws just below it
// so cumulative-mass searches stay in range.
func clampDraw(value, total float64) float64 {
	if value >= total {
		return math.Nextafter(total, 0)
	}
	return value
}
