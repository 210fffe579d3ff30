// Package codec decodes and encodes complete scores.db files.
//
// # Layout
//
// All integers are little-endian; strings use the 0x0B/ULEB128 encoding of
// the encoding package; u64 values are stored as two u32 words, low first.
//
//	Database := version:u32 groupCount:u32 Group*
//	Group    := hash:string scoreCount:u32 Score*
//	Score    := mode:u8 version:u32 beatmapHash:string playerName:string
//	            replayHash:string n300:u16 n100:u16 n50:u16 nGeki:u16
//	            nKatu:u16 nMiss:u16 score:u32 maxCombo:u16 perfect:bool
//	            mods:u32 reserved:string timestamp:u64 reservedInt:u32
//	            onlineId:u64
//
// # Decoding
//
// Decode reads the whole buffer into a record.Database. Declared counts are
// trusted; a buffer that ends early fails with errs.ErrDecodeBounds and no
// partial database is returned.
//
// # Encoding
//
// Encode writes the header group count from the live database, never from a
// previously decoded count, so a database whose groups were merged by the
// substitute package is always written consistently:
//
//	db, err := codec.Decode(data)
//	if err != nil {
//	    return err
//	}
//	substitute.Apply(db, table)
//	out, err := codec.Encode(db, codec.WithProgress(func(done, total int) {
//	    fmt.Printf("\rwriting maps... (%d/%d)", done, total)
//	}))
package codec
