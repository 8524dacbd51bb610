// SPDX-License-Identifier: MIT

package numeric

import (
	"fmt"
	"math"
)

const opLogspace = "Logspace"

// Logspace returns n values spaced evenly on a log10 scale, from 10^start
// to 10^stop inclusive. The last element is exactly 10^stop.
//
// Errors:
//   - ErrBadSize if n < 1.
//   - ErrNonFinite if start or stop is NaN/±Inf.
//
// Complexity: O(n).
func Logspace(start, stop float64, n int) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w", opLogspace, n, ErrBadSize)
	}
	if !finite(start) || !finite(stop) {
		return nil, fmt.Errorf("%s: %w", opLogspace, ErrNonFinite)
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = math.Pow(10, start)

		return out, nil
	}
	step := (stop - start) / float64(n-1)
	for i := 0; i < n-1; i++ {
		out[i] = math.Pow(10, start+float64(i)*step)
	}
	out[n-1] = math.Pow(10, stop)

	return out, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
