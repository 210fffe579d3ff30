// Package errs defines the sentinel errors returned by scoresdb packages.
//
// Errors are usually wrapped with additional context, so callers should
// compare with errors.Is rather than ==:
//
//	db, err := codec.Decode(data)
//	if errors.Is(err, errs.ErrDecodeBounds) {
//	    // truncated or corrupted scores.db
//	}
package errs

import "errors"

// Decode / encode errors. These are fatal for the file being processed.
var (
	// ErrDecodeBounds is returned when a read would consume bytes past the end of the buffer.
	ErrDecodeBounds = errors.New("read past end of buffer")
	// ErrULEB128Overflow is returned when a ULEB128 value does not fit in 64 bits.
	ErrULEB128Overflow = errors.New("uleb128 value overflows 64 bits")
	// ErrCountOverflow is returned when a group or score count does not fit in a u32 field.
	ErrCountOverflow = errors.New("count exceeds uint32 range")
)

// Beatmap identifier errors. These skip a single input file only.
var (
	// ErrInvalidIdentifier is returned when a beatmap file has no numeric BeatmapID.
	ErrInvalidIdentifier = errors.New("invalid beatmap identifier")
	// ErrAmbiguousIdentifier is returned when a beatmap has the unset ID 0 while
	// several files are being matched by ID.
	ErrAmbiguousIdentifier = errors.New("ambiguous beatmap identifier")
	// ErrIdentitySetMismatch reports that the old and new beatmap ID sets differ.
	// It is a warning: the table of shared IDs is still usable.
	ErrIdentitySetMismatch = errors.New("beatmap identifier sets do not match")
)

// Substitution table errors.
var (
	// ErrMalformedTable is returned when a hash substitution table is not a JSON object of strings.
	ErrMalformedTable = errors.New("malformed hash substitution table")
)

// Backup errors.
var (
	// ErrInvalidCompression is returned for an unknown compression type or backup extension.
	ErrInvalidCompression = errors.New("invalid compression type")
	// ErrInvalidBackup is returned when a backup file's framing is corrupted.
	ErrInvalidBackup = errors.New("invalid backup file")
)
