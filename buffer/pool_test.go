package buffer

import (
	"fmt"
	"testing"
)

func TestClassFor(t *testing.T) {
	tests := []struct{ n, want int }{
		{0, 0}, {1, 0}, {2, 1}, {3, 2}, {4, 2}, {5, 3}, {1024, 10}, {1025, 11},
	}
	for _, tt := range tests {
		if got := classFor(tt.n); got != tt.want {
			t.Errorf("classFor(%d) = %d, want %d", tt.n, got, tt.want)
		}
		if tt.n > 0 && 1<<classFor(tt.n) < tt.n {
			t.Errorf("class %d too small for %d", classFor(tt.n), tt.n)
		}
	}
}

func TestPoolGetReturnsZeroedWithCapacity(t *testing.T) {
	p := NewPool()
	for _, n := range []int{0, 1, 3, 8, 100, 4097} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			b := p.Get(n)
			if b.Len() != n {
				t.Fatalf("Len() = %d, want %d", b.Len(), n)
			}
			if cap(b.Values()) < n {
				t.Fatalf("cap = %d, want >= %d", cap(b.Values()), n)
			}
			for i, v := range b.Values() {
				if v != 0 {
					t.Fatalf("Values()[%d] = %v, want 0", i, v)
				}
			}
			p.Put(b)
		})
	}
}

func TestPoolReuseIsZeroed(t *testing.T) {
	p := NewPool()

	b := p.Get(4)
	b.Values()[0] = 42
	b.Values()[3] = 43
	p.Put(b)

	b2 := p.Get(3)
	for i, v := range b2.Values() {
		if v != 0 {
			t.Fatalf("reused Values()[%d] = %v, want 0", i, v)
		}
	}
	p.Put(b2)
}

func TestPoolPutFilesByCapacity(t *testing.T) {
	p := NewPool()

	// cap 6 satisfies class 2 (4 values) but not class 3 (8 values).
	p.Put(&Buffer{values: make([]float64, 6)})
	for range 4 {
		b := p.Get(8)
		if cap(b.Values()) < 8 {
			t.Fatalf("Get(8) returned cap %d", cap(b.Values()))
		}
	}
}

func TestPoolPutNilAndEmptySafe(_ *testing.T) {
	p := NewPool()
	p.Put(nil)
	p.Put(&Buffer{})
}
