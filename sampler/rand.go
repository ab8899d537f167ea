// Copyright (C) 2024-2026, Gostochastic Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"math"
	"sync"
	"time"

	"gonum.org/v1/gonum/mathext/prng"
)

// Source produces the raw uniform randomness consumed during sampling. It is
// the only external capability this package depends on; callers control
// seeding and reproducibility by supplying their own implementation.
type Source interface {
	// Uint64 returns a random number in [0, MaxUint64] and advances the
	// generator's state.
	Uint64() uint64
}

var globalRand = NewRand(newSource(uint64(time.Now().UnixNano())))

func newSource(seed uint64) Source {
	// We don't use a cryptographically secure source of randomness here, as
	// there's no need to ensure truly random sampling.
	source := prng.NewMT19937()
	source.Seed(seed)
	return source
}

// Global returns the process-wide Rand, seeded from the wall clock at
// startup. It is safe for concurrent use.
func Global() *Rand {
	return globalRand
}

// NewRand returns a Rand drawing from [src]. The returned Rand serializes
// access to [src], so a single Rand may be shared across goroutines even if
// [src] itself is not safe for concurrent use.
func NewRand(src Source) *Rand {
	return &Rand{src: src}
}

// Rand derives the draws samplers need from a Source. The zero value is not
// usable; construct with NewRand.
type Rand struct {
	lock sync.Mutex
	src  Source
}

// Intn returns a pseudo-random number in [0, n). n must be positive.
func (r *Rand) Intn(n int) int {
	return int(r.Uint64Inclusive(uint64(n) - 1))
}

// Float64 returns a pseudo-random number in [0, 1) with 53 bits of
// precision.
func (r *Rand) Float64() float64 {
	return float64(r.uint64()>>11) / (1 << 53)
}

// Uint64Inclusive returns a pseudo-random number in [0, n].
func (r *Rand) Uint64Inclusive(n uint64) uint64 {
	switch {
	// n+1 is a power of two, so we can just mask.
	//
	// Note: This does work for MaxUint64 as overflow is explicitly part of
	// the compiler specification: https://go.dev/ref/spec#Integer_overflow
	case n&(n+1) == 0:
		return r.uint64() & n

	// n is greater than MaxUint64/2 so we need to just iterate until we get
	// a number in the requested range.
	case n > math.MaxInt64:
		v := r.uint64()
		for v > n {
			v = r.uint64()
		}
		return v

	// n is less than MaxUint64/2 so we generate a number in the range
	// [0, k*(n+1)) where k is the largest integer such that k*(n+1) is less
	// than or equal to MaxInt64, and then reduce it mod n+1.
	//
	// ref: https://github.com/golang/go/blob/ce10e9d84574112b224eae88dc4e0f43710808de/src/math/rand/rand.go#L127-L132
	default:
		maximum := (1 << 63) - 1 - (1<<63)%(n+1)
		v := r.uint63()
		for v > maximum {
			v = r.uint63()
		}
		return v % (n + 1)
	}
}

// uint63 returns a random number in [0, MaxInt64].
func (r *Rand) uint63() uint64 {
	return r.uint64() & math.MaxInt64
}

// uint64 returns a random number in [0, MaxUint64].
func (r *Rand) uint64() uint64 {
	// Note: We must grab a write lock here because Source implementations
	// internally modify state.
	r.lock.Lock()
	n := r.src.Uint64()
	r.lock.Unlock()
	return n
}
