package stats_test

import (
	"fmt"

	"github.com/cwbudde/algo-emissions/stats"
)

func ExampleCalculate() {
	s := stats.Calculate([]float64{1, 2, 3, 4, 5})
	fmt.Printf("sum=%g mean=%g min=%g max=%g\n", s.Sum, s.Mean, s.Min, s.Max)

	// Output:
	// sum=15 mean=3 min=1 max=5
}

func ExampleStreamingSummary() {
	s := stats.NewStreamingSummary()
	s.Update([]float64{3, 1})
	s.Update([]float64{4, 1, 5})
	r := s.Result()
	fmt.Printf("len=%d max=%g@%d\n", r.Length, r.Max, r.MaxPos)

	// Output:
	// len=5 max=5@4
}
