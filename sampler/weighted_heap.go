// Copyright (C) 2024-2026, Gostochastic Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import "github.com/gostochastic/roulette/utils"

var (
	_ Weighted                            = (*weightedHeap)(nil)
	_ utils.Sortable[weightedHeapElement] = weightedHeapElement{}
)

type weightedHeapElement struct {
	weight           float64
	cumulativeWeight float64
	index            int
}

// Note that this sorts in order of decreasing weight.
func (e weightedHeapElement) Less(other weightedHeapElement) bool {
	return e.weight > other.weight
}

// weightedHeap implements the Weighted interface.
//
// Sampling is performed by descending an implicit binary heap whose nodes
// carry the cumulative weight of their subtree.
//
// Initialization takes O(n * log(n)) time. Sampling is performed in
// O(log(n)) time; as the distribution becomes more biased, sampling becomes
// faster in expectation because the most probable values sit near the root.
type weightedHeap struct {
	heap []weightedHeapElement
}

func (s *weightedHeap) Initialize(weights []float64) error {
	if _, err := sumWeights(weights); err != nil {
		return err
	}

	numWeights := len(weights)
	if numWeights <= cap(s.heap) {
		s.heap = s.heap[:numWeights]
	} else {
		s.heap = make([]weightedHeapElement, numWeights)
	}

	for i, weight := range weights {
		s.heap[i] = weightedHeapElement{
			weight:           weight,
			cumulativeWeight: weight,
			index:            i,
		}
	}

	// Optimize so that the most probable values are at the top of the heap
	utils.Sort(s.heap)

	// Accumulate subtree weights up the heap
	for i := len(s.heap) - 1; i > 0; i-- {
		parentIndex := (i - 1) / 2
		s.heap[parentIndex].cumulativeWeight += s.heap[i].cumulativeWeight
	}

	return nil
}

func (s *weightedHeap) Sample(r *Rand) (int, error) {
	if len(s.heap) == 0 {
		return 0, ErrOutOfRange
	}
	total := s.heap[0].cumulativeWeight
	value := clampDraw(r.Float64()*total, total)

	index := 0
	for {
		currentElement := s.heap[index]
		if value < currentElement.weight {
			return currentElement.index, nil
		}
		value -= currentElement.weight

		// We shouldn't return the root, so check the left child. Rounding
		// during the subtractions can leave a hair more mass in [value] than
		// is actually stored beneath this node; resolve those draws to the
		// current element.
		index = index*2 + 1
		if index >= len(s.heap) {
			return currentElement.index, nil
		}

		if leftWeight := s.heap[index].cumulativeWeight; leftWeight <= value {
			// If the value is greater than the left subtree's weight, move
			// to the right child.
			value -= leftWeight
			index++
			if index >= len(s.heap) {
				return currentElement.index, nil
			}
		}
	}
}
