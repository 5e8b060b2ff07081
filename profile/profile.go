// Package profile wraps optional pprof capture behind the pprof build tag.
// Without the tag, starting a profiler is a no-op, so callers can wire the
// flags unconditionally.
package profile

// Config functions return all supported pprof configuration parameters.
type Config func() (mode, path string)

// Start initializes the profiler and returns an interface for stopping it.
//
// Mode specifies the profiler mode to use, and path specifies the output
// directory where profiling data will be written.
//
// If build tag pprof or the mode are unset, then Start returns a no-op
// implementation. Both Start and Stop are always safely callable.
func (c Config) Start() interface{ Stop() } {
	mode, path := c()

	if mode == "" {
		return ignore{}
	}

	return start(mode, path)
}

// WithMode returns a functional option for setting a profiler's mode.
func WithMode(mode string) func(Config) Config {
	return func(c Config) Config {
		_, path := c()

		return func() (string, string) {
			return mode, path
		}
	}
}

// WithPath returns a functional option for setting a profiler's output path.
func WithPath(path string) func(Config) Config {
	return func(c Config) Config {
		mode, _ := c()

		return func() (string, string) {
			return mode, path
		}
	}
}

// Make builds a Config from functional options.
func Make(opts ...func(Config) Config) Config {
	c := Config(func() (string, string) { return "", "" })

	for _, opt := range opts {
		c = opt(c)
	}

	return c
}

type ignore struct{}

func (ignore) Stop() {}
