package bench

import (
	"testing"
	"time"
)

// stepClock advances by step on every reading.
type stepClock struct {
	now   time.Time
	step  time.Duration
	reads int
}

func (c *stepClock) Now() time.Time {
	c.reads++
	c.now = c.now.Add(c.step)
	return c.now
}

func TestRunUsesInjectedClock(t *testing.T) {
	c := &stepClock{now: time.Unix(0, 0), step: 3 * time.Millisecond}

	r := Run(1000, 10, WithClock(c))

	if c.reads != 2 {
		t.Fatalf("clock reads = %d, want 2", c.reads)
	}
	if r.Elapsed != 3*time.Millisecond {
		t.Fatalf("Elapsed = %v, want 3ms", r.Elapsed)
	}
	if r.Milliseconds() != 3 {
		t.Fatalf("Milliseconds() = %v, want 3", r.Milliseconds())
	}
	if r.Size != 1000 || r.Iterations != 10 {
		t.Fatalf("Size/Iterations = %d/%d", r.Size, r.Iterations)
	}
	if got := r.NsPerElement(); got != 300 {
		t.Fatalf("NsPerElement() = %v, want 300", got)
	}
}

func TestRunDegenerateInput(t *testing.T) {
	c := &stepClock{now: time.Unix(0, 0), step: time.Microsecond}

	r := Run(-4, 0, WithClock(c))
	if r.Size != 0 || r.Iterations != 0 {
		t.Fatalf("Size/Iterations = %d/%d, want 0/0", r.Size, r.Iterations)
	}
	if r.Elapsed != 0 {
		t.Fatalf("Elapsed = %v, want 0", r.Elapsed)
	}
	if c.reads != 0 {
		t.Fatalf("clock reads = %d, want 0", c.reads)
	}

	for _, tc := range [][2]int{{0, 10}, {10, 0}, {10, -1}} {
		r := Run(tc[0], tc[1], WithClock(c))
		if r.Elapsed != 0 || c.reads != 0 {
			t.Fatalf("Run(%d, %d): Elapsed = %v, reads = %d, want 0, 0", tc[0], tc[1], r.Elapsed, c.reads)
		}
	}
	if r.NsPerElement() != 0 {
		t.Fatalf("NsPerElement() = %v, want 0", r.NsPerElement())
	}
}

func TestRunSystemClockNonNegative(t *testing.T) {
	r := Run(256, 4, WithClock(nil))
	if r.Elapsed < 0 {
		t.Fatalf("Elapsed = %v, want >= 0", r.Elapsed)
	}
}
