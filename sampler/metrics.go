// Copyright (C) 2024-2026, Gostochastic Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/gostochastic/roulette/utils/wrappers"
)

// Useful latency buckets
var nanosecondsBuckets = []float64{
	float64(100 * time.Nanosecond),
	float64(time.Microsecond),
	float64(10 * time.Microsecond),
	float64(100 * time.Microsecond),
	float64(time.Millisecond),
	float64(10 * time.Millisecond),
	float64(100 * time.Millisecond),
	float64(time.Second),
	// anything larger than a second will be bucketed together
}

func newNanosecondsMetric(namespace, name string) prometheus.Histogram {
	return prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      name,
		Help:      fmt.Sprintf("Latency of a %s call in nanoseconds", name),
		Buckets:   nanosecondsBuckets,
	})
}

var _ Weighted = (*meteredWeighted)(nil)

type meteredWeighted struct {
	weighted Weighted

	initialize,
	sample prometheus.Histogram
}

// NewMeteredWeighted wraps [weighted] so that the latency of every
// Initialize and Sample call is reported to [registerer] under [namespace].
func NewMeteredWeighted(
	weighted Weighted,
	namespace string,
	registerer prometheus.Registerer,
) (Weighted, error) {
	m := &meteredWeighted{
		weighted:   weighted,
		initialize: newNanosecondsMetric(namespace, "initialize"),
		sample:     newNanosecondsMetric(namespace, "sample"),
	}

	errs := wrappers.Errs{}
	errs.Add(
		registerer.Register(m.initialize),
		registerer.Register(m.sample),
	)
	return m, errs.Err
}

func (m *meteredWeighted) Initialize(weights []float64) error {
	start := time.Now()
	err := m.weighted.Initialize(weights)
	m.initialize.Observe(float64(time.Since(start)))
	return err
}

func (m *meteredWeighted) Sample(r *Rand) (int, error) {
	start := time.Now()
	i, err := m.weighted.Sample(r)
	m.sample.Observe(float64(time.Since(start)))
	return i, err
}
