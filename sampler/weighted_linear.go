// Copyright (C) 2024-2026, Gostochastic Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import "github.com/gostochastic/roulette/utils"

var (
	_ Weighted                              = (*weightedLinear)(nil)
	_ utils.Sortable[weightedLinearElement] = weightedLinearElement{}
)

type weightedLinearElement struct {
	cumulativeWeight float64
	index            int
}

// Note that this sorts in order of decreasing cumulative weight.
func (e weightedLinearElement) Less(other weightedLinearElement) bool {
	return e.cumulativeWeight > other.cumulativeWeight
}

// weightedLinear implements the Weighted interface.
//
// Sampling is performed by executing a linear search over the elements in
// the order of their probabilistic occurrence.
//
// Initialization takes O(n * log(n)) time. Sampling can take up to O(n)
// time; as the distribution becomes more biased, sampling becomes faster in
// expectation.
type weightedLinear struct {
	arr []weightedLinearElement
}

func (s *weightedLinear) Initialize(weights []float64) error {
	if _, err := sumWeights(weights); err != nil {
		return err
	}

	numWeights := len(weights)
	if numWeights <= cap(s.arr) {
		s.arr = s.arr[:numWeights]
	} else {
		s.arr = make([]weightedLinearElement, numWeights)
	}

	for i, weight := range weights {
		s.arr[i] = weightedLinearElement{
			cumulativeWeight: weight,
			index:            i,
		}
	}

	// Optimize so that the most probable values are at the front of the
	// array
	utils.Sort(s.arr)

	for i := 1; i < len(s.arr); i++ {
		s.arr[i].cumulativeWeight += s.arr[i-1].cumulativeWeight
	}

	return nil
}

func (s *weightedLinear) Sample(r *Rand) (int, error) {
	if len(s.arr) == 0 {
		return 0, ErrOutOfRange
	}
	total := s.arr[len(s.arr)-1].cumulativeWeight
	value := clampDraw(r.Float64()*total, total)

	index := 0
	for {
		if elem := s.arr[index]; value < elem.cumulativeWeight {
			return elem.index, nil
		}
		index++
	}
}
