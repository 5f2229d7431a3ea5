package utf

import (
	"log/slog"
	"time"

	"github.com/meigma/utf/resource"
)

// Option configures From and ToBuffer.
type Option func(*config)

type config struct {
	logger   *slog.Logger
	registry *resource.Registry
	time     time.Time
	wordSize int
}

func newConfig(opts []Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// log returns the logger, falling back to a discard logger if nil.
func (c *config) log() *slog.Logger {
	if c.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.logger
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithRegistry sets the registry that decoded names are recorded into.
// By default From creates a fresh registry per call.
func WithRegistry(reg *resource.Registry) Option {
	return func(c *config) {
		c.registry = reg
	}
}

// WithTime stamps t into the header and every entry on encode. The zero
// time, the default, encodes as raw zero so output depends only on the tree.
func WithTime(t time.Time) Option {
	return func(c *config) {
		c.time = t
	}
}

// WithWordSize sets the dictionary slot size, terminator included. Names
// of wordSize bytes or longer fail to encode. Zero selects 255.
func WithWordSize(n int) Option {
	return func(c *config) {
		c.wordSize = n
	}
}
