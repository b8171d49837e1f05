// Package stats computes every reduction the kernel package offers in one
// pass over a buffer, and accumulates them across blocks for datasets that
// do not fit a single buffer.
package stats
