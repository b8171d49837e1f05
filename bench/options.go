package bench

// Factor is the uniform emission factor used for the synthetic input.
const Factor = 0.5

type config struct {
	clock Clock
}

// Option mutates the harness configuration.
type Option func(*config)

func defaultConfig() config {
	return config{clock: SystemClock{}}
}

// WithClock sets the clock used to time the run.
func WithClock(c Clock) Option {
	return func(cfg *config) {
		if c != nil {
			cfg.clock = c
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
	return cfg
}
