package codec

import (
	"fmt"
	"math"

	"github.com/arloliu/scoresdb/encoding"
	"github.com/arloliu/scoresdb/errs"
	"github.com/arloliu/scoresdb/record"
)

// bytesPerGroupHint sizes the initial buffer; it is only a starting point.
const bytesPerGroupHint = 256

// Encode serializes db into the scores.db layout.
//
// The group count in the header and every score count are taken from the
// live database at encode time.
//
// Parameters:
//   - db: Database to encode
//   - opts: Optional settings (WithChunkSize, WithProgress, WithLogger)
//
// Returns:
//   - []byte: Encoded file contents, exactly the bytes written
//   - error: errs.ErrCountOverflow if a count does not fit in a u32, or an invalid option
func Encode(db *record.Database, opts ...Option) ([]byte, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	total := db.Len()
	if uint64(total) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d groups", errs.ErrCountOverflow, total)
	}

	w := encoding.NewWriter(total * bytesPerGroupHint)
	defer w.Release()

	w.WriteUint32(db.Version)
	w.WriteUint32(uint32(total)) //nolint:gosec

	done := 0
	for hash, group := range db.All() {
		if uint64(group.Len()) > math.MaxUint32 {
			return nil, fmt.Errorf("%w: %d scores in group %s", errs.ErrCountOverflow, group.Len(), hash)
		}

		w.WriteString(hash)
		w.WriteUint32(uint32(group.Len())) //nolint:gosec
		for i := range group.Scores {
			writeScore(w, &group.Scores[i])
		}

		done++
		if cfg.progress != nil && (done%cfg.chunkSize == 0 || done == total) {
			cfg.progress(done, total)
		}
	}

	cfg.logger.Debug("encoded scores.db",
		"version", db.Version, "groups", total, "bytes", w.Len())

	return w.Bytes(), nil
}

// writeScore writes one score in on-disk field order.
func writeScore(w *encoding.Writer, s *record.Score) {
	w.WriteUint8(uint8(s.Mode))
	w.WriteUint32(s.Version)
	w.WriteString(s.BeatmapHash)
	w.WriteString(s.PlayerName)
	w.WriteString(s.ReplayHash)
	w.WriteUint16(s.Count300)
	w.WriteUint16(s.Count100)
	w.WriteUint16(s.Count50)
	w.WriteUint16(s.CountGeki)
	w.WriteUint16(s.CountKatu)
	w.WriteUint16(s.CountMiss)
	w.WriteUint32(s.Score)
	w.WriteUint16(s.MaxCombo)
	w.WriteBool(s.Perfect)
	w.WriteUint32(uint32(s.Mods))
	w.WriteString(s.Reserved)
	w.WriteUint64(s.Timestamp)
	w.WriteUint32(s.ReservedInt)
	w.WriteUint64(s.OnlineID)
}
