package record

import "iter"

// Database is a decoded scores.db: the header version plus the beatmap groups
// in insertion order.
//
// Group hashes are unique. Iteration order is the order in which groups were
// first inserted; replacing a group with Put keeps its position, removing and
// re-adding it moves it to the end.
//
// Note: Database is NOT thread-safe. It is owned by a single
// decode → apply → encode pipeline.
type Database struct {
	Version uint32

	entries []*Beatmap // insertion order, nil for removed groups
	index   map[string]int
	removed int
}

// NewDatabase creates an empty database with the given format version.
func NewDatabase(version uint32) *Database {
	return &Database{
		Version: version,
		index:   make(map[string]int),
	}
}

// Len returns the number of groups.
func (d *Database) Len() int {
	return len(d.index)
}

// Has reports whether a group with the given hash exists.
func (d *Database) Has(hash string) bool {
	_, ok := d.index[hash]
	return ok
}

// Get returns the group with the given hash. The returned group is owned by
// the database; modifying its Scores modifies the database.
func (d *Database) Get(hash string) (*Beatmap, bool) {
	i, ok := d.index[hash]
	if !ok {
		return nil, false
	}

	return d.entries[i], true
}

// Put inserts a group with the given hash and scores, or replaces the scores
// of the existing group in place.
func (d *Database) Put(hash string, scores []Score) *Beatmap {
	if i, ok := d.index[hash]; ok {
		d.entries[i].Scores = scores
		return d.entries[i]
	}

	if d.index == nil {
		d.index = make(map[string]int)
	}

	b := &Beatmap{Hash: hash, Scores: scores}
	d.index[hash] = len(d.entries)
	d.entries = append(d.entries, b)

	return b
}

// Append adds scores to the end of the group with the given hash, creating
// the group at the end of the database when it does not exist.
func (d *Database) Append(hash string, scores ...Score) *Beatmap {
	if b, ok := d.Get(hash); ok {
		b.Scores = append(b.Scores, scores...)
		return b
	}

	return d.Put(hash, scores)
}

// Remove deletes the group with the given hash and returns it.
func (d *Database) Remove(hash string) (*Beatmap, bool) {
	i, ok := d.index[hash]
	if !ok {
		return nil, false
	}

	b := d.entries[i]
	d.entries[i] = nil
	delete(d.index, hash)
	d.removed++
	d.maybeCompact()

	return b, true
}

// maybeCompact drops removed slots once they make up more than half of entries.
func (d *Database) maybeCompact() {
	if d.removed <= len(d.entries)/2 {
		return
	}

	kept := d.entries[:0]
	for _, b := range d.entries {
		if b == nil {
			continue
		}
		d.index[b.Hash] = len(kept)
		kept = append(kept, b)
	}
	clear(d.entries[len(kept):])
	d.entries = kept
	d.removed = 0
}

// All returns an iterator over (hash, group) pairs in database order.
//
// The database must not be modified during iteration.
func (d *Database) All() iter.Seq2[string, *Beatmap] {
	return func(yield func(string, *Beatmap) bool) {
		for _, b := range d.entries {
			if b == nil {
				continue
			}
			if !yield(b.Hash, b) {
				return
			}
		}
	}
}

// Hashes returns the group hashes in database order.
func (d *Database) Hashes() []string {
	return d.AppendHashes(make([]string, 0, d.Len()))
}

// AppendHashes appends the group hashes in database order to dst.
func (d *Database) AppendHashes(dst []string) []string {
	for hash := range d.All() {
		dst = append(dst, hash)
	}

	return dst
}

// ScoreCount returns the total number of scores over all groups.
func (d *Database) ScoreCount() int {
	n := 0
	for _, b := range d.All() {
		n += b.Len()
	}

	return n
}
