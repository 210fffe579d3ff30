package collision

// Tracker records which source hashes were re-keyed onto each destination
// hash during a substitution pass, and detects destinations that received
// more than one source.
type Tracker struct {
	sources      map[string][]string // destination → sources, in tracking order
	destinations []string            // destinations in first-seen order
	collisions   int                 // destinations with more than one source
}

// NewTracker creates a new collision tracker.
func NewTracker() *Tracker {
	return &Tracker{
		sources:      make(map[string][]string),
		destinations: make([]string, 0),
	}
}

// Track records that the group keyed by source was moved onto destination.
//
// Returns true when destination had already received another source, i.e.
// this call created or extended a collision.
func (t *Tracker) Track(destination, source string) bool {
	prev, exists := t.sources[destination]
	if !exists {
		t.destinations = append(t.destinations, destination)
	}
	t.sources[destination] = append(prev, source)

	if len(prev) == 1 {
		t.collisions++
	}

	return len(prev) > 0
}

// HasCollision returns true if any destination received more than one source.
func (t *Tracker) HasCollision() bool {
	return t.collisions > 0
}

// Sources returns the sources tracked for destination, in tracking order.
func (t *Tracker) Sources(destination string) []string {
	return t.sources[destination]
}

// Collisions returns the destinations that received more than one source,
// in the order they were first tracked.
func (t *Tracker) Collisions() []string {
	if t.collisions == 0 {
		return nil
	}

	out := make([]string, 0, t.collisions)
	for _, dst := range t.destinations {
		if len(t.sources[dst]) > 1 {
			out = append(out, dst)
		}
	}

	return out
}

// Count returns the number of distinct destinations tracked.
func (t *Tracker) Count() int {
	return len(t.destinations)
}

// Reset clears all tracked state.
// This allows reusing the tracker for another substitution pass.
func (t *Tracker) Reset() {
	// Clear maps but preserve capacity to avoid allocations
	clear(t.sources)
	t.destinations = t.destinations[:0]
	t.collisions = 0
}
