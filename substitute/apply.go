package substitute

import (
	"github.com/arloliu/scoresdb/internal/collision"
	"github.com/arloliu/scoresdb/internal/pool"
	"github.com/arloliu/scoresdb/record"
)

// Report summarizes one Apply call.
type Report struct {
	// Moved is the number of groups re-keyed.
	Moved int
	// Merged is the number of re-keys whose destination group already existed.
	Merged int
	// ScoresMoved is the total number of scores in the re-keyed groups.
	ScoresMoved int
	// Unmatched lists the table's old hashes that were not in the database, in table order.
	Unmatched []string
	// Collisions lists destination hashes that received more than one source group.
	Collisions []string
}

// Apply re-keys the groups of db according to table, in place.
//
// The database's hashes are snapshotted at the start of the call and visited
// in that order. For every hash still present and listed in the table, the
// group is removed, each of its scores gets the new BeatmapHash, and the
// scores are appended to the group of the new hash, which is created at the
// end of the database when absent. Existing scores of the destination come
// first.
//
// Destinations created during the call are not in the snapshot and are not
// re-keyed again. A destination that is itself a later snapshot entry is
// re-keyed when its turn comes, carrying the merged scores along.
//
// Parameters:
//   - db: Database to modify
//   - table: Substitution table
//   - opts: Optional settings (WithLogger)
//
// Returns:
//   - Report: What was moved
func Apply(db *record.Database, table *Table, opts ...Option) Report {
	cfg := newConfig(opts...)

	var report Report
	for oldHash := range table.Entries() {
		if !db.Has(oldHash) {
			report.Unmatched = append(report.Unmatched, oldHash)
		}
	}

	hashes, cleanup := pool.GetStringSlice(db.Len())
	defer cleanup()
	hashes = db.AppendHashes(hashes)

	tracker := collision.NewTracker()
	for _, oldHash := range hashes {
		newHash, ok := table.Get(oldHash)
		if !ok {
			continue
		}
		group, ok := db.Remove(oldHash)
		if !ok {
			continue
		}

		group.Rekey(newHash)
		merged := db.Has(newHash)
		db.Append(newHash, group.Scores...)

		report.Moved++
		report.ScoresMoved += group.Len()
		if merged {
			report.Merged++
		}
		if tracker.Track(newHash, oldHash) {
			cfg.logger.Debug("several groups re-keyed onto one hash",
				"hash", newHash, "sources", tracker.Sources(newHash))
		}

		cfg.logger.Debug("re-keyed group",
			"old", oldHash, "new", newHash, "scores", group.Len(), "merged", merged)
	}
	report.Collisions = tracker.Collisions()

	return report
}
