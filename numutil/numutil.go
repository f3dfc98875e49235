// Package numutil provides the small numeric primitives shared across
// stepdiag: an epsilon zero-test, exact constant-slice checks, and the
// dispersion statistics (mean, population variance, mean absolute
// deviation) used to weight model terms.
//
// All functions are stateless and allocation-free. Empty slices yield 0
// for every statistic, never a division by zero.
package numutil

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Eps is the tolerance used by IsZero and Equal.
const Eps = 1e-8

// IsZero reports whether x is zero within Eps.
func IsZero(x float64) bool {
	return math.Abs(x) < Eps
}

// Equal reports whether a and b agree within Eps.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Eps
}

// IsConstantSlice reports whether every element of xs at index >= from
// equals v exactly. Comparison is bit-exact, not tolerance-based.
// An empty range is vacuously constant.
func IsConstantSlice(xs []float64, from int, v float64) bool {
	for i := from; i < len(xs); i++ {
		if xs[i] != v {
			return false
		}
	}
	return true
}

// Mean returns the arithmetic mean of xs, or 0 for an empty slice.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return stat.Mean(xs, nil)
}

// Variance returns the population variance of xs (divisor n, not n-1),
// or 0 for an empty slice.
func Variance(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return stat.PopVariance(xs, nil)
}

// MeanAbsDev returns the mean absolute deviation of xs around its mean,
// or 0 for an empty slice.
func MeanAbsDev(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	m := stat.Mean(xs, nil)
	var sum float64
	for _, x := range xs {
		sum += math.Abs(x - m)
	}
	return sum / float64(len(xs))
}
