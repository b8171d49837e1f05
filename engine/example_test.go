package engine_test

import (
	"fmt"

	"github.com/cwbudde/algo-emissions/engine"
	"github.com/cwbudde/algo-emissions/internal/logging"
)

func ExampleEngine() {
	e := engine.New(engine.WithLogger(logging.Noop()))
	e.Init()
	defer e.Close()

	values := e.Acquire(3)
	factors := e.Acquire(3)
	results := e.Acquire(3)
	_ = e.Write(values, 0, []float64{100, 200, 300})
	_ = e.Write(factors, 0, []float64{0.5, 0.3, 0.2})

	ok := e.BatchMultiply(values, factors, results)
	out, _ := e.Values(results)
	fmt.Println(ok, out, e.VectorSum(results))

	_ = e.Release(values, 3)
	_ = e.Release(factors, 3)
	_ = e.Release(results, 3)

	// Output:
	// true [50 60 60] 170
}
