package beatmap

import "iter"

// HashSet maps beatmap IDs to beatmap hashes and remembers the order in which
// IDs were first added.
type HashSet struct {
	ids     []int64
	digests map[int64]string
}

// NewHashSet creates an empty set.
func NewHashSet() *HashSet {
	return &HashSet{digests: make(map[int64]string)}
}

// Set records digest for id. Setting an existing id replaces its digest and
// keeps its position.
func (h *HashSet) Set(id int64, digest string) {
	if h.digests == nil {
		h.digests = make(map[int64]string)
	}
	if _, ok := h.digests[id]; !ok {
		h.ids = append(h.ids, id)
	}
	h.digests[id] = digest
}

// Get returns the digest recorded for id.
func (h *HashSet) Get(id int64) (string, bool) {
	d, ok := h.digests[id]
	return d, ok
}

// Len returns the number of IDs.
func (h *HashSet) Len() int {
	return len(h.ids)
}

// IDs returns the IDs in insertion order.
func (h *HashSet) IDs() []int64 {
	out := make([]int64, len(h.ids))
	copy(out, h.ids)

	return out
}

// All returns an iterator over (id, digest) pairs in insertion order.
func (h *HashSet) All() iter.Seq2[int64, string] {
	return func(yield func(int64, string) bool) {
		for _, id := range h.ids {
			if !yield(id, h.digests[id]) {
				return
			}
		}
	}
}
