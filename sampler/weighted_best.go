// Copyright (C) 2024-2026, Gostochastic Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"math"
	"time"
)

var _ Weighted = (*weightedBest)(nil)

// NewBestWeighted returns a sampler that times every known implementation on
// the caller's actual weights during Initialize and keeps whichever one
// samples fastest.
//
// The timing makes which implementation is kept nondeterministic, but every
// candidate draws from the same distribution, so sampling behavior is
// unaffected.
func NewBestWeighted() Weighted {
	return &weightedBest{
		samplers: []Weighted{
			&weightedAlias{},
			&weightedArray{},
			&weightedHeap{},
			&weightedLinear{},
		},
		benchmarkIterations: 100,
	}
}

type weightedBest struct {
	Weighted

	samplers            []Weighted
	benchmarkIterations int
}

func (s *weightedBest) Initialize(weights []float64) error {
	s.Weighted = nil

	// Every candidate validates identically, so the first failure is
	// authoritative.
	bench := NewRand(newSource(0))
	bestDuration := time.Duration(math.MaxInt64)
	for _, candidate := range s.samplers {
		if err := candidate.Initialize(weights); err != nil {
			return err
		}

		start := time.Now()
		for i := 0; i < s.benchmarkIterations; i++ {
			if _, err := candidate.Sample(bench); err != nil {
				return err
			}
		}
		if duration := time.Since(start); duration < bestDuration {
			bestDuration = duration
			s.Weighted = candidate
		}
	}
	return nil
}

func (s *weightedBest) Sample(r *Rand) (int, error) {
	if s.Weighted == nil {
		return 0, ErrOutOfRange
	}
	return s.Weighted.Sample(r)
}
