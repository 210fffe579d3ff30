package beatmap

import (
	"io"
	"log/slog"
	"runtime"

	"github.com/arloliu/scoresdb/internal/options"
)

type config struct {
	logger  *slog.Logger
	workers int
}

// Option configures Scan.
type Option = options.Option[*config]

func newConfig(opts ...Option) *config {
	cfg := &config{
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		workers: runtime.GOMAXPROCS(0),
	}
	// every Option is built with options.NoError
	_ = options.Apply(cfg, opts...)

	return cfg
}

// WithWorkers sets how many files Scan reads and hashes concurrently.
// Values below 1 keep the default of runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return options.NoError(func(c *config) {
		if n > 0 {
			c.workers = n
		}
	})
}

// WithLogger sets the logger that receives one warning per skipped file.
// By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return options.NoError(func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	})
}
