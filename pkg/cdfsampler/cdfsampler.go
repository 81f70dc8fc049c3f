// Package cdfsampler draws random samples from a discretized support with
// probability proportional to an unnormalized weight array (inverse-CDF
// sampling with replacement).
package cdfsampler

import (
	"sort"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

var (
	ErrEmptySupport   = errors.New("cdfsampler: support must be non-empty")
	ErrLengthMismatch = errors.New("cdfsampler: support and weights must have equal length")
	ErrNegativeWeight = errors.New("cdfsampler: weights must be nonnegative")
	ErrZeroWeight     = errors.New("cdfsampler: total weight must be positive")
	ErrBadCount       = errors.New("cdfsampler: sample count must be positive")
)

// Sampler holds the cumulative weight table for one support grid.
// Building it is O(n); each draw is O(log n). The support is kept by
// reference and must not be mutated while the sampler is in use.
type Sampler struct {
	support []float64
	cdf     []float64 // running sum of weights, cdf[len-1] == total
	total   float64
}

// New validates the support/weight arrays and precomputes the cumulative
// weight table. Weights do not need to be normalized.
func New(support, weights []float64) (*Sampler, error) {
	if len(support) == 0 {
		return nil, ErrEmptySupport
	}
	if len(support) != len(weights) {
		return nil, errors.Wrapf(ErrLengthMismatch, "support %d, weights %d", len(support), len(weights))
	}
	cdf := make([]float64, len(weights))
	sum := 0.0
	for i, w := range weights {
		if w < 0 {
			return nil, errors.Wrapf(ErrNegativeWeight, "weights[%d] = %g", i, w)
		}
		sum += w
		cdf[i] = sum
	}
	if sum <= 0 {
		return nil, ErrZeroWeight
	}
	return &Sampler{support: support, cdf: cdf, total: sum}, nil
}

// Sample draws one value from the support, proportional to the weights.
func (s *Sampler) Sample(rng *rand.Rand) float64 {
	u := rng.Float64() * s.total
	i := sort.SearchFloat64s(s.cdf, u)
	if i >= len(s.support) {
		i = len(s.support) - 1
	}
	return s.support[i]
}

// SampleN draws n values with replacement. Draws consume the rng in order,
// so a fixed seed reproduces the same sequence.
func (s *Sampler) SampleN(rng *rand.Rand, n int) ([]float64, error) {
	if n <= 0 {
		return nil, errors.Wrapf(ErrBadCount, "n = %d", n)
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = s.Sample(rng)
	}
	return out, nil
}
