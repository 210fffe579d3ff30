package record

// Beatmap groups the scores of one beatmap, keyed by the beatmap's content hash.
type Beatmap struct {
	Hash   string
	Scores []Score
}

// Len returns the number of scores in the group.
func (b *Beatmap) Len() int {
	return len(b.Scores)
}

// Rekey sets the group hash and the BeatmapHash of every score to hash.
// The hash is stored both as the group key and per score; both must agree.
func (b *Beatmap) Rekey(hash string) {
	b.Hash = hash
	for i := range b.Scores {
		b.Scores[i].BeatmapHash = hash
	}
}

// Duplicates returns the indexes of scores that are Equal to an earlier score
// of the group, in ascending order.
func (b *Beatmap) Duplicates() []int {
	var (
		dups []int
		// keys of kept scores that have a replay hash
		byReplay = make(map[uint64]int)
		// play keys of every kept score
		byPlay = make(map[uint64][]int)
	)

	for i := range b.Scores {
		s := &b.Scores[i]
		if b.isDuplicate(s, byReplay, byPlay) {
			dups = append(dups, i)
			continue
		}

		if k, ok := s.ReplayKey(); ok {
			if _, seen := byReplay[k]; !seen {
				byReplay[k] = i
			}
		}
		pk := s.PlayKey()
		byPlay[pk] = append(byPlay[pk], i)
	}

	return dups
}

func (b *Beatmap) isDuplicate(s *Score, byReplay map[uint64]int, byPlay map[uint64][]int) bool {
	if k, ok := s.ReplayKey(); ok {
		if j, seen := byReplay[k]; seen && s.Equal(&b.Scores[j]) {
			return true
		}
	}

	// A play-key match only counts when Equal falls back to the play tuple,
	// i.e. when at least one side has no replay hash.
	for _, j := range byPlay[s.PlayKey()] {
		if s.Equal(&b.Scores[j]) {
			return true
		}
	}

	return false
}

// Dedupe removes every score that is Equal to an earlier score of the group,
// keeping the first occurrence, and returns the number of scores removed.
func (b *Beatmap) Dedupe() int {
	dups := b.Duplicates()
	if len(dups) == 0 {
		return 0
	}

	kept := b.Scores[:0]
	next := 0
	for i := range b.Scores {
		if next < len(dups) && dups[next] == i {
			next++
			continue
		}
		kept = append(kept, b.Scores[i])
	}
	clear(b.Scores[len(kept):])
	b.Scores = kept

	return len(dups)
}
