package engine

import (
	"github.com/cwbudde/algo-emissions/arena"
	"github.com/cwbudde/algo-emissions/kernel"
	"github.com/cwbudde/algo-emissions/stats"
)

func (e *Engine) binary(fn func(a, b, out []float64) bool, a, b, out arena.Handle) bool {
	av, ok1 := e.view(a)
	bv, ok2 := e.view(b)
	ov, ok3 := e.view(out)
	if !ok1 || !ok2 || !ok3 {
		return false
	}
	return fn(av, bv, ov)
}

// BatchMultiply computes results[i] = values[i] * factors[i].
func (e *Engine) BatchMultiply(values, factors, results arena.Handle) bool {
	return e.binary(kernel.BatchMultiply, values, factors, results)
}

// TransportEmissions computes results[i] = distances[i] * factors[i].
func (e *Engine) TransportEmissions(distances, factors, results arena.Handle) bool {
	return e.binary(kernel.TransportEmissions, distances, factors, results)
}

// EnergyEmissions computes results[i] = consumption[i] * factors[i].
func (e *Engine) EnergyEmissions(consumption, factors, results arena.Handle) bool {
	return e.binary(kernel.EnergyEmissions, consumption, factors, results)
}

// AIEmissions applies kernel.AIEmissions to the buffers behind the handles.
func (e *Engine) AIEmissions(tokens, co2PerToken, co2PerQuery, results arena.Handle) bool {
	tv, ok1 := e.view(tokens)
	pt, ok2 := e.view(co2PerToken)
	pq, ok3 := e.view(co2PerQuery)
	rv, ok4 := e.view(results)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return false
	}
	return kernel.AIEmissions(tv, pt, pq, rv)
}

// VectorAdd computes result[i] = a[i] + b[i].
func (e *Engine) VectorAdd(a, b, result arena.Handle) bool {
	return e.binary(kernel.VectorAdd, a, b, result)
}

// VectorMultiply computes result[i] = a[i] * b[i].
func (e *Engine) VectorMultiply(a, b, result arena.Handle) bool {
	return e.binary(kernel.VectorMultiply, a, b, result)
}

// VectorScale scales the buffer behind values in place. It returns false
// only when the handle is stale.
func (e *Engine) VectorScale(values arena.Handle, factor float64) bool {
	v, ok := e.view(values)
	if !ok {
		return false
	}
	kernel.VectorScale(v, factor)
	return true
}

// VectorSum returns the sum of the buffer, 0 if empty or stale.
func (e *Engine) VectorSum(values arena.Handle) float64 {
	v, _ := e.view(values)
	return kernel.VectorSum(v)
}

// VectorAverage returns the mean of the buffer, 0 if empty or stale.
func (e *Engine) VectorAverage(values arena.Handle) float64 {
	v, _ := e.view(values)
	return kernel.VectorAverage(v)
}

// VectorMin returns the minimum of the buffer, +Inf if empty or stale.
func (e *Engine) VectorMin(values arena.Handle) float64 {
	v, _ := e.view(values)
	return kernel.VectorMin(v)
}

// VectorMax returns the maximum of the buffer, -Inf if empty or stale.
func (e *Engine) VectorMax(values arena.Handle) float64 {
	v, _ := e.view(values)
	return kernel.VectorMax(v)
}

// WeightedAverage returns the weighted mean, 0 on empty, mismatched,
// non-positive total weight, or stale handles.
func (e *Engine) WeightedAverage(values, weights arena.Handle) float64 {
	v, ok1 := e.view(values)
	w, ok2 := e.view(weights)
	if !ok1 || !ok2 {
		return 0
	}
	return kernel.WeightedAverage(v, w)
}

// Summary returns every reduction of the buffer in one pass. A stale handle
// yields the empty-input summary.
func (e *Engine) Summary(values arena.Handle) stats.Summary {
	v, _ := e.view(values)
	return stats.Calculate(v)
}

// Accumulate folds the buffer behind values into s, so a dataset spread over
// several buffers can be reduced block by block. It returns false and leaves
// s unchanged when the handle is stale.
func (e *Engine) Accumulate(s *stats.StreamingSummary, values arena.Handle) bool {
	v, ok := e.view(values)
	if !ok || s == nil {
		return false
	}
	s.Update(v)
	return true
}
