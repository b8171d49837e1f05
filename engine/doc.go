// Package engine is the surface a host drives: explicit Init and Close
// hooks, buffer acquire and release, and one entry point per kernel that
// takes arena handles instead of slices.
//
// A host acquires buffers, writes inputs through Values or Write, calls
// kernels with the handles, reads results, then releases every buffer.
// Stale handles make validated kernels return false and reductions return
// their empty-input fallback; nothing is logged for kernel failures.
//
// An Engine is not safe for concurrent use; the host serializes calls.
package engine
