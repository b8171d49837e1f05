// Package bench times the batch-multiply kernel over synthetic input.
//
// It is diagnostic tooling: the input is the ramp 0..size-1 against a
// uniform factor of 0.5, the output buffer is allocated once, and the kernel
// runs a fixed number of iterations between two readings of a Clock.
package bench
