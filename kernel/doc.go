// Package kernel implements the emissions and vector-algebra kernels.
//
// Every kernel that writes into an output slice validates the lengths of
// its parallel arrays first. On mismatch it returns false and leaves every
// output untouched; callers must check the result before trusting outputs.
// Reductions return a scalar directly and use fixed fallback values for
// empty input:
//
//   - VectorSum, VectorAverage, WeightedAverage: 0
//   - VectorMin: +Inf
//   - VectorMax: -Inf
//
// Block arithmetic is delegated to github.com/cwbudde/algo-vecmath, which
// selects a SIMD implementation for the running CPU. Kernels hold no state
// and are safe for concurrent use on disjoint slices.
package kernel
