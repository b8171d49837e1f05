package stats

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Summary holds the reductions of one dataset.
type Summary struct {
	Length int
	Sum    float64
	Mean   float64
	Min    float64
	MinPos int // -1 when no finite minimum was seen
	Max    float64
	MaxPos int // -1 when no finite maximum was seen
	Range  float64
}

// emptySummary returns the reductions of an empty dataset, matching the
// kernel fallbacks: sum and mean 0, min +Inf, max -Inf.
func emptySummary() Summary {
	return Summary{
		Min:    math.Inf(1),
		MinPos: -1,
		Max:    math.Inf(-1),
		MaxPos: -1,
		Range:  math.Inf(-1),
	}
}

// Calculate computes all reductions of values. Sum and Mean are bit-identical
// to kernel.VectorSum and kernel.VectorAverage: both add through vecmath.Sum,
// which reassociates into SIMD lanes. NaN entries contribute to Sum and Mean
// but never to Min or Max.
func Calculate(values []float64) Summary {
	s := NewStreamingSummary()
	s.Update(values)
	return s.Result()
}

// StreamingSummary accumulates a Summary across successive blocks.
// Length, extremes and positions match Calculate over the concatenated
// blocks exactly; Sum is the sequential total of per-block vecmath sums and
// may differ from a single-block Sum in the last bits.
type StreamingSummary struct {
	length int
	sum    float64
	min    float64
	minPos int
	max    float64
	maxPos int
}

// NewStreamingSummary creates an empty accumulator.
func NewStreamingSummary() *StreamingSummary {
	s := &StreamingSummary{}
	s.Reset()
	return s
}

// Reset clears all accumulated state.
func (s *StreamingSummary) Reset() {
	*s = StreamingSummary{
		min:    math.Inf(1),
		minPos: -1,
		max:    math.Inf(-1),
		maxPos: -1,
	}
}

// Update adds a block of values to the running reductions.
func (s *StreamingSummary) Update(values []float64) {
	s.sum += vecmath.Sum(values)
	for i, v := range values {
		pos := s.length + i
		if v < s.min {
			s.min = v
			s.minPos = pos
		}
		if v > s.max {
			s.max = v
			s.maxPos = pos
		}
	}
	s.length += len(values)
}

// Result returns the reductions accumulated so far.
func (s *StreamingSummary) Result() Summary {
	if s.length == 0 {
		return emptySummary()
	}
	return Summary{
		Length: s.length,
		Sum:    s.sum,
		Mean:   s.sum / float64(s.length),
		Min:    s.min,
		MinPos: s.minPos,
		Max:    s.max,
		MaxPos: s.maxPos,
		Range:  s.max - s.min,
	}
}
