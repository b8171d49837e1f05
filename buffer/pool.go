package buffer

import (
	"math/bits"
	"sync"
)

// numClasses covers capacities up to 2^(numClasses-1) values; larger
// requests are allocated directly and dropped on Put.
const numClasses = 40

// Pool recycles Buffers between arena releases and acquires. A buffer in
// class k has capacity of at least 1<<k values.
type Pool struct {
	classes [numClasses]sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool() *Pool {
	return &Pool{}
}

// classFor returns the smallest class whose buffers hold n values.
func classFor(n int) int {
	if n <= 1 {
		return 0
	}
	return bits.Len(uint(n - 1))
}

// Get returns a zeroed Buffer of length n. Callers must return it via Put.
func (p *Pool) Get(n int) *Buffer {
	n = max(n, 0)
	c := classFor(n)
	if c >= numClasses {
		return &Buffer{values: make([]float64, n)}
	}
	b, _ := p.classes[c].Get().(*Buffer)
	if b == nil {
		b = &Buffer{values: make([]float64, 0, 1<<c)}
	}
	b.Resize(n)
	b.Zero()
	return b
}

// Put files b under the largest class its capacity satisfies.
// The caller must not use the buffer after calling Put.
func (p *Pool) Put(b *Buffer) {
	if b == nil || cap(b.values) == 0 {
		return
	}
	c := bits.Len(uint(cap(b.values))) - 1
	if c >= numClasses {
		return
	}
	p.classes[c].Put(b)
}
