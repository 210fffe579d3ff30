// Package scoresdb reads, rewrites and backs up osu! scores.db files.
//
// scores.db stores every locally set score grouped by the MD5 of the beatmap
// file it was set on. When a beatmap is updated its MD5 changes and the old
// scores no longer show up. scoresdb moves those scores onto the new hashes
// using a hash substitution table.
//
// # Features
//
//   - Lossless decode/encode of the scores.db binary layout
//   - Ordered hash substitution with merge into existing groups
//   - Substitution tables built from two versions of a beatmap set
//   - Compressed backups (None, Zstd, S2, LZ4)
//
// # Basic Usage
//
// Re-keying a database in one call:
//
//	import "github.com/arloliu/scoresdb"
//
//	data, _ := os.ReadFile("scores.db")
//	table := []byte(`{"<old md5>": "<new md5>"}`)
//
//	out, report, err := scoresdb.Rekey(data, table)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("moved %d groups (%d scores)\n", report.Moved, report.ScoresMoved)
//	_ = scoresdb.WriteFile("scores.db.new", out)
//
// The same steps with the individual packages:
//
//	db, _ := scoresdb.Decode(data)
//	t, _ := substitute.ParseTable(table)
//	scoresdb.Apply(db, t)
//	out, _ := scoresdb.Encode(db)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the codec,
// substitute and compress packages. For fine-grained control, use those
// packages directly.
package scoresdb

import (
	"fmt"
	"log/slog"

	"github.com/arloliu/scoresdb/codec"
	"github.com/arloliu/scoresdb/internal/options"
	"github.com/arloliu/scoresdb/record"
	"github.com/arloliu/scoresdb/substitute"
)

// Decode decodes a complete scores.db buffer.
func Decode(data []byte, opts ...codec.Option) (*record.Database, error) {
	return codec.Decode(data, opts...)
}

// Encode encodes db into the scores.db layout.
func Encode(db *record.Database, opts ...codec.Option) ([]byte, error) {
	return codec.Encode(db, opts...)
}

// Apply re-keys the groups of db according to table, in place.
func Apply(db *record.Database, table *substitute.Table, opts ...substitute.Option) substitute.Report {
	return substitute.Apply(db, table, opts...)
}

type rekeyConfig struct {
	codecOpts []codec.Option
	applyOpts []substitute.Option
}

// RekeyOption configures Rekey.
type RekeyOption = options.Option[*rekeyConfig]

// WithCodecOptions passes opts to the decode and encode steps of Rekey.
func WithCodecOptions(opts ...codec.Option) RekeyOption {
	return options.NoError(func(c *rekeyConfig) {
		c.codecOpts = append(c.codecOpts, opts...)
	})
}

// WithApplyOptions passes opts to the substitution step of Rekey.
func WithApplyOptions(opts ...substitute.Option) RekeyOption {
	return options.NoError(func(c *rekeyConfig) {
		c.applyOpts = append(c.applyOpts, opts...)
	})
}

// WithLogger sets the logger of every Rekey step.
func WithLogger(logger *slog.Logger) RekeyOption {
	return options.NoError(func(c *rekeyConfig) {
		c.codecOpts = append(c.codecOpts, codec.WithLogger(logger))
		c.applyOpts = append(c.applyOpts, substitute.WithLogger(logger))
	})
}

// Rekey decodes data, applies the substitution table in tableText and encodes
// the result.
//
// The table is parsed before data is decoded, so a malformed table fails
// without touching the database.
//
// Parameters:
//   - data: scores.db contents
//   - tableText: JSONC substitution table
//   - opts: Optional settings (WithCodecOptions, WithApplyOptions, WithLogger)
//
// Returns:
//   - []byte: Re-keyed scores.db contents
//   - substitute.Report: What was moved
//   - error: errs.ErrMalformedTable, or a decode/encode error
func Rekey(data, tableText []byte, opts ...RekeyOption) ([]byte, substitute.Report, error) {
	cfg := &rekeyConfig{}
	// every RekeyOption is built with options.NoError
	_ = options.Apply(cfg, opts...)

	table, err := substitute.ParseTable(tableText)
	if err != nil {
		return nil, substitute.Report{}, err
	}

	db, err := codec.Decode(data, cfg.codecOpts...)
	if err != nil {
		return nil, substitute.Report{}, fmt.Errorf("decoding scores.db: %w", err)
	}

	report := substitute.Apply(db, table, cfg.applyOpts...)

	out, err := codec.Encode(db, cfg.codecOpts...)
	if err != nil {
		return nil, report, fmt.Errorf("encoding scores.db: %w", err)
	}

	return out, report, nil
}
