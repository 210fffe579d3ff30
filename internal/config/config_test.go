package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/scoresdb/errs"
	"github.com/arloliu/scoresdb/format"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "scoresdb.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	level, err := cfg.LogLevel()
	require.NoError(t, err)
	require.Equal(t, slog.LevelInfo, level)

	ct, err := cfg.BackupCompression()
	require.NoError(t, err)
	require.Equal(t, format.CompressionZstd, ct)
	require.Equal(t, 100, cfg.Encode.ChunkSize)
}

func TestLoad_NoPathUsesDefaults(t *testing.T) {
	t.Setenv(EnvVar, "")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoad_FromEnvironment(t *testing.T) {
	path := writeConfig(t, "log:\n  level: debug\n")
	t.Setenv(EnvVar, path)

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_ExplicitPathWins(t *testing.T) {
	t.Setenv(EnvVar, writeConfig(t, "log:\n  level: debug\n"))
	path := writeConfig(t, "log:\n  level: error\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "error", cfg.Log.Level)
}

func TestLoadFile(t *testing.T) {
	t.Setenv("SCORESDB_TEST_HOME", "/home/player")

	path := writeConfig(t, `
log:
  level: warn
  format: json
encode:
  chunk_size: 500
scan:
  workers: 4
backup:
  compression: lz4
  dir: ${SCORESDB_TEST_HOME}/backups
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, &Config{
		Log:    LogConfig{Level: "warn", Format: "json"},
		Encode: EncodeConfig{ChunkSize: 500},
		Scan:   ScanConfig{Workers: 4},
		Backup: BackupConfig{Compression: "lz4", Dir: "/home/player/backups"},
	}, cfg)
}

func TestLoadFile_PartialKeepsDefaults(t *testing.T) {
	cfg, err := LoadFile(writeConfig(t, "scan:\n  workers: 2\n"))
	require.NoError(t, err)
	require.Equal(t, 2, cfg.Scan.Workers)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, "zstd", cfg.Backup.Compression)
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadFile(writeConfig(t, "log: [unclosed\n"))
	require.Error(t, err)

	_, err = LoadFile(writeConfig(t, "backup:\n  compression: brotli\n"))
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		errMsg string
	}{
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
		{"zero chunk", func(c *Config) { c.Encode.ChunkSize = 0 }, "encode.chunk_size"},
		{"negative workers", func(c *Config) { c.Scan.Workers = -1 }, "scan.workers"},
		{"bad compression", func(c *Config) { c.Backup.Compression = "gz" }, "backup.compression"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestExpandVars(t *testing.T) {
	t.Setenv("SCORESDB_TEST_SET", "value")
	t.Setenv("SCORESDB_TEST_EMPTY", "")

	require.Equal(t, "value/x", expandVars("${SCORESDB_TEST_SET}/x"))
	require.Equal(t, "fallback", expandVars("${SCORESDB_TEST_EMPTY:-fallback}"))
	require.Equal(t, "", expandVars("${SCORESDB_TEST_EMPTY}"))
	require.Equal(t, "plain", expandVars("plain"))
}
