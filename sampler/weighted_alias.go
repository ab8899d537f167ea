// Copyright (C) 2024-2026, Gostochastic Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

var _ Weighted = (*weightedAlias)(nil)

// weightedAlias implements the Weighted interface with Vose's alias method.
//
// Sampling is performed by drawing a slot uniformly and then flipping a
// biased coin to choose between the slot's own index and its alias.
//
// Initialization takes O(n) time and O(n) space. Sampling is performed in
// O(1) time: exactly two draws from the random source, two slice reads, and
// no allocation.
//
// ref: http://www.keithschwarz.com/darts-dice-coins/
type weightedAlias struct {
	prob  []float64
	alias []int
}

// Initialize is deterministic: two calls with the same weights produce
// identical prob and alias slices. When both worklists are non-empty the
// deficit stack is popped first, so among slots tied at exactly the mean
// weight the higher-indexed ones give away mass earlier.
func (s *weightedAlias) Initialize(weights []float64) error {
	total, err := sumWeights(weights)
	if err != nil {
		return err
	}

	n := len(weights)
	if n <= cap(s.prob) {
		s.prob = s.prob[:n]
		s.alias = s.alias[:n]
	} else {
		s.prob = make([]float64, n)
		s.alias = make([]int, n)
	}

	// Normalize so the mean mass per slot is exactly 1. Slots at or above
	// the mean carry surplus mass to give away; slots below carry a deficit
	// to fill.
	scaled := make([]float64, n)
	small := make([]int, 0, n)
	large := make([]int, 0, n)
	for i, weight := range weights {
		p := weight * float64(n) / total
		scaled[i] = p
		if p < 1 {
			small = append(small, i)
		} else {
			large = append(large, i)
		}
	}

	// Pair each deficit slot with a surplus slot: the deficit slot keeps its
	// own mass and fills the remainder from the surplus slot, which is then
	// reclassified by the mass it has left.
	for len(small) > 0 && len(large) > 0 {
		l := small[len(small)-1]
		small = small[:len(small)-1]
		g := large[len(large)-1]
		large = large[:len(large)-1]

		s.prob[l] = scaled[l]
		s.alias[l] = g

		scaled[g] += scaled[l] - 1
		if scaled[g] < 1 {
			small = append(small, g)
		} else {
			large = append(large, g)
		}
	}

	// Whatever remains holds exactly its fair share. Rounding may have left
	// the residue slightly off 1, so clamp rather than let a spurious alias
	// lookup through. The self-alias is never read.
	for _, g := range large {
		s.prob[g] = 1
		s.alias[g] = g
	}
	for _, l := range small {
		s.prob[l] = 1
		s.alias[l] = l
	}
	return nil
}

func (s *weightedAlias) Sample(r *Rand) (int, error) {
	n := len(s.prob)
	if n == 0 {
		return 0, ErrOutOfRange
	}
	i := r.Intn(n)
	if r.Float64() < s.prob[i] {
		return i, nil
	}
	return s.alias[i], nil
}
