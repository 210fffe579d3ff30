// Package substitute re-keys the beatmap groups of a scores.db according to
// a hash substitution table.
//
// A substitution table maps the MD5 of a beatmap file as it was when the
// scores were set (old) to the MD5 of the updated file (new). Applying it
// moves every score of an old group onto the new hash, merging into an
// existing new group when one is present:
//
//	table, err := substitute.ParseTable([]byte(`{
//	    // Normal difficulty, re-timed
//	    "d41d8cd98f00b204e9800998ecf8427e": "0cc175b9c0f1b6a831c399e269772661",
//	}`))
//	if err != nil {
//	    return err
//	}
//	report := substitute.Apply(db, table)
//	fmt.Printf("%d groups moved, %d merged\n", report.Moved, report.Merged)
//
// Tables are JSON objects of string to string. Comments and trailing commas
// are accepted when parsing, and the document's key order is preserved.
package substitute
