package codec

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/arloliu/scoresdb/internal/options"
)

// DefaultChunkSize is the number of groups written between progress callbacks.
const DefaultChunkSize = 100

// ProgressFunc receives the number of groups written so far and the total.
type ProgressFunc func(done, total int)

// Config holds the settings shared by Decode and Encode.
type Config struct {
	logger    *slog.Logger
	chunkSize int
	progress  ProgressFunc
}

// Option configures Decode and Encode.
type Option = options.Option[*Config]

func newConfig(opts ...Option) (*Config, error) {
	cfg := &Config{
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		chunkSize: DefaultChunkSize,
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithLogger sets the logger used for warnings and debug output.
// By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return options.NoError(func(c *Config) {
		if logger != nil {
			c.logger = logger
		}
	})
}

// WithChunkSize sets how many groups Encode writes between progress callbacks.
func WithChunkSize(n int) Option {
	return options.New(func(c *Config) error {
		if n <= 0 {
			return fmt.Errorf("invalid chunk size %d: must be positive", n)
		}
		c.chunkSize = n

		return nil
	})
}

// WithProgress sets a callback invoked by Encode after every chunk of groups
// and once after the last group. The callback runs synchronously on the
// encoding goroutine.
func WithProgress(fn ProgressFunc) Option {
	return options.NoError(func(c *Config) {
		c.progress = fn
	})
}
