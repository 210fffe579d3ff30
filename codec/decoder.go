package codec

import (
	"fmt"

	"github.com/arloliu/scoresdb/encoding"
	"github.com/arloliu/scoresdb/format"
	"github.com/arloliu/scoresdb/record"
)

// minScoreSize is the encoded size of a score whose strings are all empty.
// It bounds slice preallocation so a corrupted count cannot force a huge allocation.
const minScoreSize = 1 + 4 + 1 + 1 + 1 + 6*2 + 4 + 2 + 1 + 4 + 1 + 8 + 4 + 8

// Decode decodes a complete scores.db buffer.
//
// Parameters:
//   - data: Raw file contents
//   - opts: Optional settings (WithLogger)
//
// Returns:
//   - *record.Database: Decoded database, nil on error
//   - error: errs.ErrDecodeBounds (wrapped with the failing group/score) when
//     the buffer ends before a declared field
func Decode(data []byte, opts ...Option) (*record.Database, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	r := encoding.NewReader(data)

	version, err := r.ReadUint32()
	if err != nil {
		return nil, fmt.Errorf("reading version: %w", err)
	}
	groupCount, err := r.ReadUint32()
	if err != nil {
		return nil, fmt.Errorf("reading group count: %w", err)
	}

	db := record.NewDatabase(version)

	for i := range groupCount {
		hash, err := r.ReadString()
		if err != nil {
			return nil, fmt.Errorf("group %d/%d: reading hash: %w", i+1, groupCount, err)
		}

		scoreCount, err := r.ReadUint32()
		if err != nil {
			return nil, fmt.Errorf("group %d/%d (%s): reading score count: %w", i+1, groupCount, hash, err)
		}

		scores := make([]record.Score, 0, min(int(scoreCount), r.Remaining()/minScoreSize))
		for j := range scoreCount {
			s, err := readScore(r)
			if err != nil {
				return nil, fmt.Errorf("group %d/%d (%s): score %d/%d: %w", i+1, groupCount, hash, j+1, scoreCount, err)
			}
			scores = append(scores, s)
		}

		if db.Has(hash) {
			cfg.logger.Warn("duplicate beatmap hash in scores.db, keeping the later group",
				"hash", hash, "group", i+1)
		}
		db.Put(hash, scores)
	}

	if r.Remaining() > 0 {
		cfg.logger.Debug("trailing bytes after last group", "bytes", r.Remaining())
	}

	cfg.logger.Debug("decoded scores.db",
		"version", db.Version, "groups", db.Len(), "scores", db.ScoreCount())

	return db, nil
}

// fieldReader wraps a Reader and keeps the first error, so a record can be
// read field by field and checked once.
type fieldReader struct {
	r   *encoding.Reader
	err error
}

func (f *fieldReader) u8() uint8 {
	if f.err != nil {
		return 0
	}
	var v uint8
	v, f.err = f.r.ReadUint8()

	return v
}

func (f *fieldReader) u16() uint16 {
	if f.err != nil {
		return 0
	}
	var v uint16
	v, f.err = f.r.ReadUint16()

	return v
}

func (f *fieldReader) u32() uint32 {
	if f.err != nil {
		return 0
	}
	var v uint32
	v, f.err = f.r.ReadUint32()

	return v
}

func (f *fieldReader) u64() uint64 {
	if f.err != nil {
		return 0
	}
	var v uint64
	v, f.err = f.r.ReadUint64()

	return v
}

func (f *fieldReader) boolean() bool {
	if f.err != nil {
		return false
	}
	var v bool
	v, f.err = f.r.ReadBool()

	return v
}

func (f *fieldReader) str() string {
	if f.err != nil {
		return ""
	}
	var v string
	v, f.err = f.r.ReadString()

	return v
}

// readScore reads one score in on-disk field order.
func readScore(r *encoding.Reader) (record.Score, error) {
	f := fieldReader{r: r}

	s := record.Score{
		Mode:        format.GameMode(f.u8()),
		Version:     f.u32(),
		BeatmapHash: f.str(),
		PlayerName:  f.str(),
		ReplayHash:  f.str(),
		Count300:    f.u16(),
		Count100:    f.u16(),
		Count50:     f.u16(),
		CountGeki:   f.u16(),
		CountKatu:   f.u16(),
		CountMiss:   f.u16(),
		Score:       f.u32(),
		MaxCombo:    f.u16(),
		Perfect:     f.boolean(),
		Mods:        format.Mods(f.u32()),
		Reserved:    f.str(),
		Timestamp:   f.u64(),
		ReservedInt: f.u32(),
		OnlineID:    f.u64(),
	}
	if f.err != nil {
		return record.Score{}, f.err
	}

	return s, nil
}
