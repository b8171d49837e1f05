package bench

import (
	"time"

	"github.com/cwbudde/algo-emissions/kernel"
)

// Result is one timing sample.
type Result struct {
	Size       int
	Iterations int
	Elapsed    time.Duration
}

// Milliseconds returns Elapsed as fractional milliseconds.
func (r Result) Milliseconds() float64 {
	return float64(r.Elapsed) / float64(time.Millisecond)
}

// NsPerElement returns the mean cost of one element in one iteration,
// or 0 when nothing ran.
func (r Result) NsPerElement() float64 {
	work := r.Size * r.Iterations
	if work <= 0 {
		return 0
	}
	return float64(r.Elapsed.Nanoseconds()) / float64(work)
}

// Run builds the synthetic input and calls kernel.BatchMultiply iterations
// times. Non-positive size or iterations are clamped to zero, and a run with
// no work returns a zero Elapsed without reading the clock.
func Run(size, iterations int, opts ...Option) Result {
	cfg := applyOptions(opts...)
	size = max(size, 0)
	iterations = max(iterations, 0)
	if size == 0 || iterations == 0 {
		return Result{Size: size, Iterations: iterations}
	}

	values := make([]float64, size)
	for i := range values {
		values[i] = float64(i)
	}
	factors := make([]float64, size)
	for i := range factors {
		factors[i] = Factor
	}
	results := make([]float64, size)

	start := cfg.clock.Now()
	for range iterations {
		kernel.BatchMultiply(values, factors, results)
	}
	elapsed := cfg.clock.Now().Sub(start)

	return Result{Size: size, Iterations: iterations, Elapsed: elapsed}
}
