package engine

import (
	"github.com/cwbudde/algo-emissions/arena"
	"github.com/cwbudde/algo-emissions/internal/logging"
)

type config struct {
	logger *logging.Logger
	arena  *arena.Arena
}

// Option mutates the engine configuration.
type Option func(*config)

func defaultConfig() config {
	return config{}
}

// WithLogger sets the logger used by Init and Close.
func WithLogger(l *logging.Logger) Option {
	return func(cfg *config) {
		if l != nil {
			cfg.logger = l
		}
	}
}

// WithArena makes the engine serve buffers from a.
func WithArena(a *arena.Arena) Option {
	return func(cfg *config) {
		if a != nil {
			cfg.arena = a
		}
	}
}

func applyOptions(opts ...Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.logger == nil {
		cfg.logger = logging.New(nil)
	}
	if cfg.arena == nil {
		cfg.arena = arena.New()
	}
	return cfg
}
