package testutil

import "math/rand"

// Ramp returns 0, 1, ..., n-1 as float64, the benchmark's value input.
func Ramp(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}

// DeterministicNoise generates uniform values in [-amplitude, amplitude)
// with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DeterministicPositive generates values in [0, scale) with a fixed seed,
// useful for weights and emission factors.
func DeterministicPositive(seed int64, scale float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = rng.Float64() * scale
	}
	return out
}

// Constant returns a slice of length n filled with value.
func Constant(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}

// Sentinel returns a slice of length n filled with a value no kernel under
// test produces, so untouched outputs can be detected.
func Sentinel(n int) []float64 {
	return Constant(-12345.678, n)
}
