package engine

import (
	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-emissions/arena"
	"github.com/cwbudde/algo-emissions/internal/logging"
)

// InitMessage is the diagnostic logged once by Init.
const InitMessage = "emissions engine initialized"

// Engine binds an arena to the kernel set.
type Engine struct {
	arena  *arena.Arena
	log    *logging.Logger
	inited bool
}

// New returns an Engine. Call Init before first use and Close when done.
func New(opts ...Option) *Engine {
	cfg := applyOptions(opts...)
	return &Engine{
		arena: cfg.arena,
		log:   cfg.logger.WithComponent("engine"),
	}
}

// Init is the one-time setup hook. It logs a single diagnostic naming the
// SIMD level the kernels dispatch to; later calls do nothing. It has no
// effect on numeric results.
func (e *Engine) Init() {
	if e.inited {
		return
	}
	e.inited = true

	f := cpu.DetectFeatures()
	e.log.Info(InitMessage, "arch", f.Architecture, "simd", simdLevel(f).String())
}

// Close releases every buffer still live in the arena. Handles issued
// before Close become stale.
func (e *Engine) Close() {
	live := e.arena.Live()
	e.arena.Reset()
	e.log.Debug("emissions engine closed", "released", live)
}

// Arena returns the arena the engine serves buffers from.
func (e *Engine) Arena() *arena.Arena {
	return e.arena
}

// Acquire returns a handle to storage for count values.
func (e *Engine) Acquire(count int) arena.Handle {
	return e.arena.Acquire(count)
}

// Release returns the buffer behind h; count must match the acquire count.
func (e *Engine) Release(h arena.Handle, count int) error {
	return e.arena.Release(h, count)
}

// Values returns the live storage behind h without copying.
func (e *Engine) Values(h arena.Handle) ([]float64, error) {
	return e.arena.Values(h)
}

// Write copies src into the buffer behind h at offset.
func (e *Engine) Write(h arena.Handle, offset int, src []float64) error {
	return e.arena.Write(h, offset, src)
}

// Read copies from the buffer behind h at offset into dst.
func (e *Engine) Read(h arena.Handle, offset int, dst []float64) error {
	return e.arena.Read(h, offset, dst)
}

func (e *Engine) view(h arena.Handle) ([]float64, bool) {
	v, err := e.arena.Values(h)
	return v, err == nil
}

func simdLevel(f cpu.Features) cpu.SIMDLevel {
	switch {
	case f.ForceGeneric:
		return cpu.SIMDNone
	case f.HasAVX2:
		return cpu.SIMDAVX2
	case f.HasAVX:
		return cpu.SIMDAVX
	case f.HasSSE2:
		return cpu.SIMDSSE2
	case f.HasNEON:
		return cpu.SIMDNEON
	default:
		return cpu.SIMDNone
	}
}
