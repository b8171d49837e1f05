package buffer

// Buffer owns a float64 slice whose backing array is recycled by a Pool.
// Kernels take raw []float64; use Values() to bridge.
type Buffer struct {
	values []float64
}

// Values returns the underlying slice.
func (b *Buffer) Values() []float64 {
	return b.values
}

// Len returns the current number of values.
func (b *Buffer) Len() int {
	return len(b.values)
}

// Resize sets the length to n, reusing the backing array when it is large
// enough. A negative n is treated as 0.
func (b *Buffer) Resize(n int) {
	n = max(n, 0)
	if n > cap(b.values) {
		b.values = make([]float64, n)
		return
	}
	b.values = b.values[:n]
}

// Zero sets all values to 0.
func (b *Buffer) Zero() {
	clear(b.values)
}
