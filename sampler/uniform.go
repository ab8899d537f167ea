// Copyright (C) 2024-2026, Gostochastic Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

// Uniform samples values without replacement in the provided range.
type Uniform interface {
	// Initialize the sampler to draw from [0, length), replacing any prior
	// state.
	Initialize(length uint64)

	// Sample returns [count] distinct values in [0, length), drawing its
	// randomness from [r]. Resets any partial draws first. Returns
	// ErrOutOfRange if more values are requested than the range holds.
	Sample(r *Rand, count int) ([]uint64, error)

	// Next returns one value in [0, length) not returned since the last
	// Reset, or ErrOutOfRange once the range is exhausted.
	Next(r *Rand) (uint64, error)

	// Reset forgets all values drawn so far.
	Reset()
}

// NewUniform returns a sampler with O(1) draws and memory proportional to
// the number of draws since the last Reset.
func NewUniform() Uniform {
	return &uniformReplacer{}
}
