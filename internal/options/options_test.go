package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	chunkSize int
	name      string
	calls     []string
}

func withChunkSize(n int) Option[*testConfig] {
	return New(func(c *testConfig) error {
		if n <= 0 {
			return errors.New("chunk size must be positive")
		}
		c.chunkSize = n
		c.calls = append(c.calls, "chunk")

		return nil
	})
}

func withName(name string) Option[*testConfig] {
	return NoError(func(c *testConfig) {
		c.name = name
		c.calls = append(c.calls, "name")
	})
}

func TestApply(t *testing.T) {
	cfg := &testConfig{}

	err := Apply(cfg, withName("scores"), withChunkSize(100))
	require.NoError(t, err)
	require.Equal(t, 100, cfg.chunkSize)
	require.Equal(t, "scores", cfg.name)
	require.Equal(t, []string{"name", "chunk"}, cfg.calls, "options apply in order")
}

func TestApply_StopsAtFirstError(t *testing.T) {
	cfg := &testConfig{}

	err := Apply(cfg, withChunkSize(0), withName("never"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "must be positive")
	require.Empty(t, cfg.name)
}

func TestApply_SkipsNilOptions(t *testing.T) {
	cfg := &testConfig{}

	require.NoError(t, Apply(cfg, nil, withName("x")))
	require.Equal(t, "x", cfg.name)
}

func TestApply_NoOptions(t *testing.T) {
	cfg := &testConfig{chunkSize: 7}

	require.NoError(t, Apply(cfg))
	require.Equal(t, 7, cfg.chunkSize)
}
