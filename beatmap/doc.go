// Package beatmap extracts the identity of .osu beatmap files and builds
// hash substitution tables from two versions of a beatmap set.
//
// A beatmap is identified across edits by the numeric BeatmapID in its
// [Metadata] section, and a specific revision by the lowercase hex MD5 of the
// file's bytes. Scanning the old and new folders of a set and pairing the
// digests by ID yields the table consumed by the substitute package:
//
//	oldSet, _ := beatmap.Scan(ctx, oldPaths)
//	newSet, _ := beatmap.Scan(ctx, newPaths)
//	table, err := beatmap.BuildTable(oldSet, newSet)
//	if errors.Is(err, errs.ErrIdentitySetMismatch) {
//	    // some beatmaps only exist on one side; the rest still map
//	}
package beatmap
