package arena

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/cwbudde/algo-emissions/buffer"
)

type slot struct {
	buf   *buffer.Buffer
	gen   uint32
	count int
}

func (s *slot) live() bool { return s.buf != nil }

var lastArenaID atomic.Uint32

// Arena owns every buffer it hands out. Storage comes from a buffer.Pool,
// so released backing arrays are recycled for later acquires.
type Arena struct {
	id    uint32
	pool  *buffer.Pool
	slots []slot
	free  []uint32
	live  int
}

// Option configures an Arena.
type Option func(*Arena)

// WithPool makes the arena draw storage from p, which may be shared with
// other arenas.
func WithPool(p *buffer.Pool) Option {
	return func(a *Arena) {
		if p != nil {
			a.pool = p
		}
	}
}

// New returns an empty Arena.
func New(opts ...Option) *Arena {
	a := &Arena{id: lastArenaID.Add(1)}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}
	if a.pool == nil {
		a.pool = buffer.NewPool()
	}
	return a
}

// Acquire returns a handle to storage for count values. The contents are
// indeterminate from the caller's point of view and must be written before
// they are read. Acquire panics if count is negative; running out of memory
// is fatal to the process.
func (a *Arena) Acquire(count int) Handle {
	if count < 0 {
		panic(fmt.Sprintf("arena: negative count %d", count))
	}

	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		idx = uint32(len(a.slots))
		a.slots = append(a.slots, slot{})
	}

	s := &a.slots[idx]
	s.gen++
	if s.gen == 0 {
		s.gen = 1
	}
	s.buf = a.pool.Get(count)
	s.count = count
	a.live++

	return Handle{arena: a.id, slot: idx, gen: s.gen, n: count}
}

// Release returns the buffer behind h to the pool. count must equal the
// count passed to Acquire; on mismatch the buffer stays live and
// ErrCountMismatch is returned. Releasing twice returns ErrStaleHandle.
func (a *Arena) Release(h Handle, count int) error {
	s, err := a.lookup(h)
	if err != nil {
		return err
	}
	if count != s.count {
		return fmt.Errorf("%w: got %d, acquired %d", ErrCountMismatch, count, s.count)
	}

	a.pool.Put(s.buf)
	s.buf = nil
	s.count = 0
	// Bump now so the released handle is stale even before the slot is reused.
	s.gen++
	if s.gen == 0 {
		s.gen = 1
	}
	a.free = append(a.free, h.slot)
	a.live--
	return nil
}

// Values returns the live storage behind h without copying. The slice is
// valid until h is released.
func (a *Arena) Values(h Handle) ([]float64, error) {
	s, err := a.lookup(h)
	if err != nil {
		return nil, err
	}
	return s.buf.Values(), nil
}

// Resolve rebuilds a Handle from its slot and generation, as passed back by
// a host that only keeps the numeric parts.
func (a *Arena) Resolve(slotIdx, gen uint32) (Handle, error) {
	h := Handle{arena: a.id, slot: slotIdx, gen: gen}
	s, err := a.lookup(h)
	if err != nil {
		return Handle{}, err
	}
	h.n = s.count
	return h, nil
}

// ResolveNumbers is Resolve for hosts whose numbers are float64, such as
// JavaScript. Values that are negative, fractional, NaN or beyond uint32
// resolve to ErrStaleHandle.
func (a *Arena) ResolveNumbers(slotIdx, gen float64) (Handle, error) {
	if !isUint32(slotIdx) || !isUint32(gen) {
		return Handle{}, ErrStaleHandle
	}
	return a.Resolve(uint32(slotIdx), uint32(gen))
}

func isUint32(f float64) bool {
	return f >= 0 && f <= math.MaxUint32 && f == math.Trunc(f)
}

// Write copies src into the buffer behind h starting at offset.
func (a *Arena) Write(h Handle, offset int, src []float64) error {
	dst, err := a.Values(h)
	if err != nil {
		return err
	}
	if offset < 0 || offset > len(dst)-len(src) {
		return fmt.Errorf("%w: write %d values at %d into %d", ErrOutOfRange, len(src), offset, len(dst))
	}
	copy(dst[offset:], src)
	return nil
}

// Read copies values from the buffer behind h, starting at offset, into dst.
func (a *Arena) Read(h Handle, offset int, dst []float64) error {
	src, err := a.Values(h)
	if err != nil {
		return err
	}
	if offset < 0 || offset > len(src)-len(dst) {
		return fmt.Errorf("%w: read %d values at %d from %d", ErrOutOfRange, len(dst), offset, len(src))
	}
	copy(dst, src[offset:])
	return nil
}

// Live returns the number of acquired, not yet released buffers.
func (a *Arena) Live() int {
	return a.live
}

// Reset releases every live buffer. Handles issued before Reset become stale.
func (a *Arena) Reset() {
	for i := range a.slots {
		s := &a.slots[i]
		if !s.live() {
			continue
		}
		_ = a.Release(Handle{arena: a.id, slot: uint32(i), gen: s.gen}, s.count)
	}
}

func (a *Arena) lookup(h Handle) (*slot, error) {
	if h.IsZero() || h.arena != a.id || int(h.slot) >= len(a.slots) {
		return nil, ErrStaleHandle
	}
	s := &a.slots[h.slot]
	if !s.live() || s.gen != h.gen {
		return nil, ErrStaleHandle
	}
	return s, nil
}
