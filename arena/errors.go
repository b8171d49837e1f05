package arena

import "errors"

var (
	// ErrStaleHandle is returned for handles that were released, never
	// issued by this arena, or belong to a slot that has since been reused.
	ErrStaleHandle = errors.New("arena: stale or unknown handle")

	// ErrCountMismatch is returned when Release is called with a count that
	// differs from the one passed to Acquire.
	ErrCountMismatch = errors.New("arena: release count does not match acquire count")

	// ErrOutOfRange is returned when a Read or Write would cross the end of
	// the buffer.
	ErrOutOfRange = errors.New("arena: range exceeds buffer length")
)
