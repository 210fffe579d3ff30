// Package record defines the in-memory model of a scores.db database:
// Score records grouped per beatmap hash, and the Database that holds the
// groups in a deterministic insertion order.
package record

import (
	"strconv"

	"github.com/arloliu/scoresdb/format"
	"github.com/arloliu/scoresdb/internal/hash"
)

// ReservedIntSentinel is the value the game writes into Score.ReservedInt.
const ReservedIntSentinel uint32 = 0xFFFFFFFF

// Score is one play record. Field order matches the on-disk layout.
//
// Reserved and ReservedInt carry no meaning but are kept as ordinary fields so
// a decoded score is written back bit-for-bit.
type Score struct {
	Mode        format.GameMode
	Version     uint32
	BeatmapHash string
	PlayerName  string
	ReplayHash  string
	Count300    uint16
	Count100    uint16
	Count50     uint16
	CountGeki   uint16
	CountKatu   uint16
	CountMiss   uint16
	Score       uint32
	MaxCombo    uint16
	Perfect     bool
	Mods        format.Mods
	Reserved    string
	Timestamp   uint64
	ReservedInt uint32
	OnlineID    uint64
}

// NewScore returns a Score carrying the defaults the game writes for a fresh
// record: every field zero except ReservedInt, which holds ReservedIntSentinel.
func NewScore() Score {
	return Score{ReservedInt: ReservedIntSentinel}
}

// Equal reports whether s and other record the same play.
//
// When both scores have a replay hash, the replay hashes decide. Otherwise the
// scores are equal iff timestamp, player name and beatmap hash all match.
// This is a duplicate-detection rule, not structural equality.
func (s *Score) Equal(other *Score) bool {
	if s.ReplayHash != "" && other.ReplayHash != "" {
		return s.ReplayHash == other.ReplayHash
	}

	return s.Timestamp == other.Timestamp &&
		s.PlayerName == other.PlayerName &&
		s.BeatmapHash == other.BeatmapHash
}

// ReplayKey returns the xxHash64 of the replay hash, or 0 and false when the
// score has no replay hash.
func (s *Score) ReplayKey() (uint64, bool) {
	if s.ReplayHash == "" {
		return 0, false
	}

	return hash.Fields("replay", s.ReplayHash), true
}

// PlayKey returns the xxHash64 of (timestamp, player name, beatmap hash).
func (s *Score) PlayKey() uint64 {
	return hash.Fields("play", strconv.FormatUint(s.Timestamp, 10), s.PlayerName, s.BeatmapHash)
}

// IdentityKey returns ReplayKey when the score has a replay hash and PlayKey otherwise.
// Scores that are Equal and both carry (or both lack) a replay hash have the same key.
func (s *Score) IdentityKey() uint64 {
	if k, ok := s.ReplayKey(); ok {
		return k
	}

	return s.PlayKey()
}

// TotalHits returns the sum of all six judgement counters.
func (s *Score) TotalHits() int {
	return int(s.Count300) + int(s.Count100) + int(s.Count50) +
		int(s.CountGeki) + int(s.CountKatu) + int(s.CountMiss)
}
