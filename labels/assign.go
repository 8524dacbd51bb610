package labels

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

const opAssign = "Assign"

// Assign labels every value of series with an integer in 1..k.
//
// Algorithm (Deterministic):
//  1. order := indices 0..p-1 stably sorted by series value.
//  2. t := ⌊p/k⌋; ranks [g·t, (g+1)·t) get label g+1 for g < k-1,
//     ranks [(k-1)·t, p) get label k.
//  3. Write each label back at its original index (inverse permutation).
//
// Algorithm (Random):
//  1. If the shuffle policy applies, permute the values (Fisher–Yates).
//  2. Draw each label uniformly from {1..k}, in output order.
//
// The returned slice always has len(series) elements and never aliases series.
//
// Errors:
//   - ErrInvalidK:            k < 2.
//   - ErrInsufficientSamples: len(series) < k, checked before any work.
//   - ErrNonFinite:           a NaN/±Inf value (wrapped with its index).
//   - ErrUnknownStrategy:     strategy outside {Deterministic, Random}.
//   - ErrNeedRandSource:      Random without WithRand/WithSeed.
func Assign(series []float64, k int, strategy Strategy, opts ...Option) ([]Sample, error) {
	if k < 2 {
		return nil, fmt.Errorf("%s: k=%d: %w", opAssign, k, ErrInvalidK)
	}
	p := len(series)
	if p < k {
		return nil, fmt.Errorf("%s: need at least %d values, got %d: %w", opAssign, k, p, ErrInsufficientSamples)
	}
	for i, v := range series {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%s: index %d: %w", opAssign, i, ErrNonFinite)
		}
	}

	cfg := newConfig(opts...)
	switch strategy {
	case Deterministic:
		return assignDeterministic(series, k), nil
	case Random:
		if cfg.rng == nil {
			return nil, fmt.Errorf("%s: %w", opAssign, ErrNeedRandSource)
		}
		return assignRandom(series, k, cfg), nil
	default:
		return nil, fmt.Errorf("%s: %d: %w", opAssign, int(strategy), ErrUnknownStrategy)
	}
}

func assignDeterministic(series []float64, k int) []Sample {
	p := len(series)
	order := identity(p)
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(series[a], series[b])
	})

	out := make([]Sample, p)
	t := p / k
	for rank, idx := range order {
		g := rank / t
		if g > k-1 {
			g = k - 1
		}
		out[idx] = Sample{Index: idx, Value: series[idx], Label: g + 1}
	}

	return out
}

func assignRandom(series []float64, k int, cfg config) []Sample {
	p := len(series)
	var order []int
	if shouldShuffle(cfg.shuffle, k) {
		order = permRange(p, cfg.rng)
	} else {
		order = identity(p)
	}

	out := make([]Sample, p)
	for pos, idx := range order {
		out[pos] = Sample{Index: idx, Value: series[idx], Label: drawLabel(cfg.rng, k)}
	}

	return out
}

func shouldShuffle(p ShufflePolicy, k int) bool {
	switch p {
	case ShuffleAlways:
		return true
	case ShuffleNever:
		return false
	default:
		return k == 3
	}
}

// Labels extracts the label sequence of samples, preserving order.
func Labels(samples []Sample) []int {
	out := make([]int, len(samples))
	for i, s := range samples {
		out[i] = s.Label
	}

	return out
}

// Values extracts the value sequence of samples, preserving order.
func Values(samples []Sample) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = s.Value
	}

	return out
}

// GroupSizes returns the Deterministic group sizes for p samples and k labels:
// ⌊p/k⌋ for the first k-1 groups and p-(k-1)·⌊p/k⌋ for the last.
// Returns nil when k < 2 or p < k.
func GroupSizes(p, k int) []int {
	if k < 2 || p < k {
		return nil
	}
	t := p / k
	sizes := make([]int, k)
	for g := 0; g < k-1; g++ {
		sizes[g] = t
	}
	sizes[k-1] = p - (k-1)*t

	return sizes
}

// Histogram counts occurrences of each label 1..k; index 0 is label 1.
// Labels outside 1..k are ignored.
func Histogram(labels []int, k int) []int {
	if k < 1 {
		return nil
	}
	h := make([]int, k)
	for _, l := range labels {
		if l >= 1 && l <= k {
			h[l-1]++
		}
	}

	return h
}
