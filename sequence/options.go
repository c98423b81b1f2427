package sequence

import (
	"io"
	"log/slog"
)

// Option defines a functional option for configuring a Generator.
type Option func(*Generator)

// WithLogger sets a structured logger for the generator. Produced runs are
// logged at debug level. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithCapacity preallocates room for n symbols in the generator history.
// Drawing k runs emits roughly 1.5*k symbols.
func WithCapacity(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.history = make([]uint8, 0, n)
		}
	}
}

func newNopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
