package substitute

import (
	"io"
	"log/slog"

	"github.com/arloliu/scoresdb/internal/options"
)

type config struct {
	logger *slog.Logger
}

// Option configures Apply.
type Option = options.Option[*config]

// WithLogger sets the logger used for per-group debug output.
// By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return options.NoError(func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	})
}

func newConfig(opts ...Option) *config {
	cfg := &config{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	// every Option is built with options.NoError
	_ = options.Apply(cfg, opts...)

	return cfg
}
