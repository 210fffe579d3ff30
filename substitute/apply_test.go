package substitute

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/scoresdb/record"
)

func score(beatmap, player string, ts uint64) record.Score {
	s := record.NewScore()
	s.BeatmapHash = beatmap
	s.PlayerName = player
	s.Timestamp = ts

	return s
}

func group(hash string, players ...string) []record.Score {
	scores := make([]record.Score, 0, len(players))
	for i, p := range players {
		scores = append(scores, score(hash, p, uint64(i))) //nolint:gosec
	}

	return scores
}

func players(t *testing.T, db *record.Database, hash string) []string {
	t.Helper()

	b, ok := db.Get(hash)
	require.True(t, ok, "group %s missing", hash)

	out := make([]string, 0, b.Len())
	for _, s := range b.Scores {
		require.Equal(t, hash, s.BeatmapHash, "score hash follows its group")
		out = append(out, s.PlayerName)
	}

	return out
}

func tableOf(pairs ...string) *Table {
	t := NewTable()
	for i := 0; i+1 < len(pairs); i += 2 {
		t.Set(pairs[i], pairs[i+1])
	}

	return t
}

func TestApply_MoveToNewHash(t *testing.T) {
	db := record.NewDatabase(1)
	db.Put("A", group("A", "p1", "p2"))
	db.Put("B", group("B", "q1"))

	report := Apply(db, tableOf("A", "X"))

	require.Equal(t, []string{"B", "X"}, db.Hashes(), "new group goes to the end")
	require.Equal(t, []string{"p1", "p2"}, players(t, db, "X"))
	require.False(t, db.Has("A"))

	require.Equal(t, 1, report.Moved)
	require.Equal(t, 0, report.Merged)
	require.Equal(t, 2, report.ScoresMoved)
	require.Empty(t, report.Unmatched)
	require.Empty(t, report.Collisions)
}

func TestApply_MergeIntoExisting(t *testing.T) {
	db := record.NewDatabase(1)
	db.Put("H1", group("H1", "s1"))
	db.Put("H2", group("H2", "s2"))

	report := Apply(db, tableOf("H1", "H2"))

	require.Equal(t, []string{"H2"}, db.Hashes())
	require.Equal(t, []string{"s2", "s1"}, players(t, db, "H2"), "existing scores first")
	require.Equal(t, 1, report.Merged)
	require.Equal(t, 1, db.Len())
}

func TestApply_TwoSourcesAccumulate(t *testing.T) {
	db := record.NewDatabase(1)
	db.Put("A", group("A", "a1", "a2"))
	db.Put("B", group("B", "b1"))
	db.Put("C", group("C", "c1"))

	report := Apply(db, tableOf("B", "N", "A", "N"))

	require.Equal(t, []string{"C", "N"}, db.Hashes())
	require.Equal(t, []string{"a1", "a2", "b1"}, players(t, db, "N"), "snapshot order, not table order")
	require.Equal(t, 2, report.Moved)
	require.Equal(t, 1, report.Merged)
	require.Equal(t, 3, report.ScoresMoved)
	require.Equal(t, []string{"N"}, report.Collisions)
}

func TestApply_UnmatchedEntriesIgnored(t *testing.T) {
	db := record.NewDatabase(1)
	db.Put("A", group("A", "a1"))
	db.Put("B", group("B", "b1"))

	report := Apply(db, tableOf("Z", "A", "Y", "B"))

	require.Equal(t, []string{"A", "B"}, db.Hashes())
	require.Equal(t, []string{"a1"}, players(t, db, "A"))
	require.Equal(t, 0, report.Moved)
	require.Equal(t, []string{"Z", "Y"}, report.Unmatched)
}

func TestApply_IdentityEntryMovesToEnd(t *testing.T) {
	db := record.NewDatabase(1)
	db.Put("A", group("A", "a1", "a2"))
	db.Put("B", group("B", "b1"))

	report := Apply(db, tableOf("A", "A"))

	require.Equal(t, []string{"B", "A"}, db.Hashes())
	require.Equal(t, []string{"a1", "a2"}, players(t, db, "A"))
	require.Equal(t, 1, report.Moved)
	require.Equal(t, 0, report.Merged)
}

func TestApply_ChainFollowsSnapshotOrder(t *testing.T) {
	t.Run("source before destination", func(t *testing.T) {
		db := record.NewDatabase(1)
		db.Put("A", group("A", "a1"))
		db.Put("B", group("B", "b1"))

		report := Apply(db, tableOf("A", "B", "B", "C"))

		require.Equal(t, []string{"C"}, db.Hashes())
		require.Equal(t, []string{"b1", "a1"}, players(t, db, "C"))
		require.Equal(t, 2, report.Moved)
		require.Equal(t, 1, report.Merged)
		require.Equal(t, 3, report.ScoresMoved, "a1 is counted by both moves")
	})

	t.Run("destination before source", func(t *testing.T) {
		db := record.NewDatabase(1)
		db.Put("B", group("B", "b1"))
		db.Put("A", group("A", "a1"))

		Apply(db, tableOf("A", "B", "B", "C"))

		require.Equal(t, []string{"C", "B"}, db.Hashes())
		require.Equal(t, []string{"b1"}, players(t, db, "C"))
		require.Equal(t, []string{"a1"}, players(t, db, "B"))
	})
}

func TestApply_ScoreCountPreserved(t *testing.T) {
	db := record.NewDatabase(1)
	db.Put("A", group("A", "a1", "a2", "a3"))
	db.Put("B", group("B", "b1"))
	db.Put("C", group("C"))
	db.Put("D", group("D", "d1", "d2"))
	before := db.ScoreCount()

	Apply(db, tableOf("A", "D", "C", "E", "B", "D", "X", "Y"))

	require.Equal(t, before, db.ScoreCount())
	require.Equal(t, []string{"D", "E"}, db.Hashes())
	require.Equal(t, []string{"d1", "d2", "a1", "a2", "a3", "b1"}, players(t, db, "D"))
	require.Empty(t, players(t, db, "E"))

	seen := make(map[string]bool)
	for hash := range db.All() {
		require.False(t, seen[hash], "group hashes stay unique")
		seen[hash] = true
	}
}

func TestApply_EmptyInputs(t *testing.T) {
	db := record.NewDatabase(1)
	report := Apply(db, NewTable())
	require.Equal(t, Report{}, report)

	db.Put("A", group("A", "a1"))
	report = Apply(db, NewTable())
	require.Equal(t, Report{}, report)
	require.Equal(t, []string{"A"}, db.Hashes())
}

func TestApply_WithLogger(t *testing.T) {
	db := record.NewDatabase(1)
	db.Put("A", group("A", "a1"))
	db.Put("B", group("B", "b1"))

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	Apply(db, tableOf("A", "N", "B", "N"), WithLogger(logger))

	require.Contains(t, logs.String(), "re-keyed group")
	require.Contains(t, logs.String(), "several groups re-keyed onto one hash")
}
