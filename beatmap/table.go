package beatmap

import (
	"fmt"

	"github.com/arloliu/scoresdb/errs"
	"github.com/arloliu/scoresdb/substitute"
)

// BuildTable pairs the hashes of two scans into a substitution table.
//
// When both sets hold exactly one beatmap the two are paired regardless of
// their IDs. Otherwise each old ID is paired with the same ID in newSet, in
// old-set order.
//
// If the ID sets differ, the table of the shared IDs is returned together
// with an error wrapping errs.ErrIdentitySetMismatch. The table is usable;
// the error only reports that some beatmaps will not be transferred.
func BuildTable(oldSet, newSet *HashSet) (*substitute.Table, error) {
	table := substitute.NewTable()

	if oldSet.Len() == 1 && newSet.Len() == 1 {
		_, oldDigest := first(oldSet)
		_, newDigest := first(newSet)
		table.Set(oldDigest, newDigest)

		return table, nil
	}

	missing := 0
	for id, oldDigest := range oldSet.All() {
		newDigest, ok := newSet.Get(id)
		if !ok {
			missing++
			continue
		}
		table.Set(oldDigest, newDigest)
	}

	if missing > 0 || oldSet.Len() != newSet.Len() {
		return table, fmt.Errorf("%w: %d old, %d new, %d paired",
			errs.ErrIdentitySetMismatch, oldSet.Len(), newSet.Len(), oldSet.Len()-missing)
	}

	return table, nil
}

func first(h *HashSet) (int64, string) {
	for id, digest := range h.All() {
		return id, digest
	}

	return 0, ""
}
