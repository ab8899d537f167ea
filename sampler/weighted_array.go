// Copyright (C) 2024-2026, Gostochastic Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import "sort"

var _ Weighted = (*weightedArray)(nil)

// weightedArray implements the Weighted interface.
//
// Sampling is performed with a binary search over the cumulative weights,
// which are kept in input order.
//
// Initialization takes O(n) time. Sampling is performed in O(log(n)) time.
type weightedArray struct {
	cumulative []float64
}

func (s *weightedArray) Initialize(weights []float64) error {
	if _, err := sumWeights(weights); err != nil {
		return err
	}

	n := len(weights)
	if n <= cap(s.cumulative) {
		s.cumulative = s.cumulative[:n]
	} else {
		s.cumulative = make([]float64, n)
	}

	runningTotal := float64(0)
	for i, weight := range weights {
		runningTotal += weight
		s.cumulative[i] = runningTotal
	}
	return nil
}

func (s *weightedArray) Sample(r *Rand) (int, error) {
	if len(s.cumulative) == 0 {
		return 0, ErrOutOfRange
	}
	total := s.cumulative[len(s.cumulative)-1]
	value := clampDraw(r.Float64()*total, total)

	// Strictly greater-than keeps zero-weight entries unreachable: their
	// cumulative weight equals their predecessor's, so they are never the
	// first index past [value].
	return sort.Search(len(s.cumulative), func(i int) bool {
		return s.cumulative[i] > value
	}), nil
}
