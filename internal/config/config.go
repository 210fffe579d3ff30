// Package config loads the scoresdb command configuration.
//
// Configuration is loaded from a single YAML file specified by:
//   - the --config flag, or
//   - the SCORESDB_CONFIG environment variable
//
// Without either, the defaults are used. Command-line flags override values
// from the file.
//
// Example file:
//
//	log:
//	  level: debug
//	  format: json
//	encode:
//	  chunk_size: 500
//	scan:
//	  workers: 4
//	backup:
//	  compression: zstd
//	  dir: ${HOME}/osu-backups
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/scoresdb/codec"
	"github.com/arloliu/scoresdb/format"
)

// EnvVar names the environment variable holding the config file path.
const EnvVar = "SCORESDB_CONFIG"

// Config is the configuration of the scoresdb command.
type Config struct {
	// Log configures the command's logger.
	Log LogConfig `yaml:"log"`

	// Encode configures scores.db encoding.
	Encode EncodeConfig `yaml:"encode"`

	// Scan configures beatmap scanning.
	Scan ScanConfig `yaml:"scan"`

	// Backup configures the backup written before a database is replaced.
	Backup BackupConfig `yaml:"backup"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	// Default: info
	Level string `yaml:"level"`

	// Format is text or json.
	// Default: text
	Format string `yaml:"format"`
}

// EncodeConfig configures encoding.
type EncodeConfig struct {
	// ChunkSize is the number of groups written between progress updates.
	// Default: 100
	ChunkSize int `yaml:"chunk_size"`
}

// ScanConfig configures beatmap scanning.
type ScanConfig struct {
	// Workers is the number of files hashed concurrently. 0 means GOMAXPROCS.
	Workers int `yaml:"workers"`
}

// BackupConfig configures backups.
type BackupConfig struct {
	// Compression is none, zstd, s2 or lz4.
	// Default: zstd
	Compression string `yaml:"compression"`

	// Dir is where backups are written. Empty means next to the database.
	Dir string `yaml:"dir"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Encode: EncodeConfig{
			ChunkSize: codec.DefaultChunkSize,
		},
		Backup: BackupConfig{
			Compression: "zstd",
		},
	}
}

// Load loads the configuration from path, or from the file named by
// SCORESDB_CONFIG when path is empty. With neither, Default is returned.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvVar)
	}
	if path == "" {
		return Default(), nil
	}

	return LoadFile(path)
}

// LoadFile loads configuration from a specific file path. Keys missing from
// the file keep their default values.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	cfg.Backup.Dir = expandVars(cfg.Backup.Dir)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if _, err := c.LogLevel(); err != nil {
		errs = append(errs, err)
	}
	if f := strings.ToLower(c.Log.Format); f != "text" && f != "json" {
		errs = append(errs, fmt.Errorf("log.format must be text or json, got %q", c.Log.Format))
	}
	if c.Encode.ChunkSize <= 0 {
		errs = append(errs, fmt.Errorf("encode.chunk_size must be positive, got %d", c.Encode.ChunkSize))
	}
	if c.Scan.Workers < 0 {
		errs = append(errs, fmt.Errorf("scan.workers must not be negative, got %d", c.Scan.Workers))
	}
	if _, err := c.BackupCompression(); err != nil {
		errs = append(errs, fmt.Errorf("backup.compression: %w", err))
	}

	return errors.Join(errs...)
}

// LogLevel parses Log.Level.
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}

	return level, nil
}

// BackupCompression parses Backup.Compression.
func (c *Config) BackupCompression() (format.CompressionType, error) {
	return format.ParseCompressionType(c.Backup.Compression)
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// expandVars expands ${VAR} and ${VAR:-default} patterns from the environment.
func expandVars(s string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if value := os.Getenv(parts[1]); value != "" {
			return value
		}

		return parts[2]
	})
}
