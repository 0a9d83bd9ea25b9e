package wordninja

import (
	"log/slog"
	"runtime"
)

// Option configures a Splitter.
type Option func(*config)

type config struct {
	poolSize  int
	cacheSize int
	logger    *slog.Logger
}

func defaultConfig() config {
	return config{
		poolSize: runtime.NumCPU(),
		logger:   slog.Default(),
	}
}

// WithPoolSize sets how many splits may run at once (default: runtime.NumCPU()).
func WithPoolSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.poolSize = n
		}
	}
}

// WithCacheSize enables an LRU cache of the n most recent results (default: disabled).
func WithCacheSize(n int) Option {
	return func(c *config) {
		if n >= 0 {
			c.cacheSize = n
		}
	}
}

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
