// Copyright (C) 2024-2026, Gostochastic Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import "golang.org/x/exp/maps"

var _ Uniform = (*uniformResample)(nil)

// uniformResample allows for sampling over a uniform distribution without
// replacement.
//
// Sampling is performed by sampling with replacement and resampling if a
// duplicate is drawn. This is only efficient while the number of draws is
// small relative to the range.
//
// Initialization takes O(1) time.
//
// Sampling is performed in O(count) expected time and O(count) space.
type uniformResample struct {
	length uint64
	drawn  map[uint64]struct{}
}

func (s *uniformResample) Initialize(length uint64) {
	s.length = length
	s.drawn = make(map[uint64]struct{})
}

func (s *uniformResample) Sample(r *Rand, count int) ([]uint64, error) {
	if count < 0 {
		return nil, ErrOutOfRange
	}
	s.Reset()

	results := make([]uint64, count)
	for i := 0; i < count; i++ {
		ret, err := s.Next(r)
		if err != nil {
			return nil, err
		}
		results[i] = ret
	}
	return results, nil
}

func (s *uniformResample) Next(r *Rand) (uint64, error) {
	if uint64(len(s.drawn)) >= s.length {
		return 0, ErrOutOfRange
	}

	for {
		draw := r.Uint64Inclusive(s.length - 1)
		if _, ok := s.drawn[draw]; ok {
			continue
		}
		s.drawn[draw] = struct{}{}
		return draw, nil
	}
}

func (s *uniformResample) Reset() {
	maps.Clear(s.drawn)
}
