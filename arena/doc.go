// Package arena hands out float64 buffers to a host and takes them back.
//
// Buffers are named by Handle values rather than addresses. The Arena owns
// all storage; a Handle is only the issuing arena's id, a slot index, a
// generation and a length.
// Releasing a buffer bumps its slot generation, so a handle kept past its
// release resolves to ErrStaleHandle instead of aliasing whatever buffer
// reuses the slot later, and a handle presented to another arena never
// resolves there. The host is the logical owner of every buffer it
// acquires and must release each exactly once.
//
// An Arena is not safe for concurrent use. Disjoint arenas may be used from
// different goroutines.
package arena
