package arena

import "fmt"

// Handle names one buffer acquired from an Arena. The zero Handle is never
// valid: generations and arena ids start at 1.
type Handle struct {
	arena uint32
	slot  uint32
	gen   uint32
	n     int
}

// Slot returns the slot index inside the owning arena.
func (h Handle) Slot() uint32 { return h.slot }

// Generation returns the slot generation the handle was issued for.
func (h Handle) Generation() uint32 { return h.gen }

// Len returns the element count requested at acquire time.
func (h Handle) Len() int { return h.n }

// IsZero reports whether h is the zero Handle.
func (h Handle) IsZero() bool { return h.gen == 0 }

func (h Handle) String() string {
	return fmt.Sprintf("handle(%d:%d@%d, n=%d)", h.arena, h.slot, h.gen, h.n)
}
