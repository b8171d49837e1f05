package kernel

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// VectorAdd computes result[i] = a[i] + b[i].
func VectorAdd(a, b, result []float64) bool {
	if !ValidateLengths(len(a), len(b), len(result)) {
		return false
	}
	vecmath.AddBlock(result, a, b)
	return true
}

// VectorMultiply computes result[i] = a[i] * b[i].
func VectorMultiply(a, b, result []float64) bool {
	if !ValidateLengths(len(a), len(b), len(result)) {
		return false
	}
	vecmath.MulBlock(result, a, b)
	return true
}

// VectorScale multiplies every element of values by factor in place.
func VectorScale(values []float64, factor float64) {
	vecmath.ScaleBlockInPlace(values, factor)
}

// VectorSum returns the sum of values, 0 for an empty slice.
func VectorSum(values []float64) float64 {
	return vecmath.Sum(values)
}

// VectorAverage returns the arithmetic mean of values, 0 for an empty slice.
func VectorAverage(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return VectorSum(values) / float64(len(values))
}

// VectorMin returns the smallest element, +Inf for an empty slice.
// NaN elements are skipped.
func VectorMin(values []float64) float64 {
	m := math.Inf(1)
	for _, v := range values {
		if v < m {
			m = v
		}
	}
	return m
}

// VectorMax returns the largest element, -Inf for an empty slice.
// NaN elements are skipped.
func VectorMax(values []float64) float64 {
	m := math.Inf(-1)
	for _, v := range values {
		if v > m {
			m = v
		}
	}
	return m
}

// WeightedAverage returns sum(values[i]*weights[i]) / sum(weights).
// It returns 0 for empty input, mismatched lengths, or a total weight
// that is not positive.
func WeightedAverage(values, weights []float64) float64 {
	if len(values) == 0 || !ValidateLengths(len(values), len(weights)) {
		return 0
	}
	weightSum := vecmath.Sum(weights)
	if !(weightSum > 0) {
		return 0
	}
	return vecmath.DotProduct(values, weights) / weightSum
}
