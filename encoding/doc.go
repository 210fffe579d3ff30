// Package encoding provides the primitive readers and writers of the osu! binary
// database formats (scores.db, osu!.db, collection.db).
//
// All of these formats share the same building blocks:
//
//   - fixed-width little-endian integers (u8, u16, u32) and IEEE-754 floats
//   - 64-bit integers stored as two u32 words, low word first ("u64split")
//   - booleans stored as one byte, any nonzero value meaning true
//   - flag-prefixed strings: a 0x0B flag followed by a ULEB128 byte length and
//     the UTF-8 bytes, or a 0x00 flag for the empty string
//
// Reader is a forward-only cursor over an immutable byte slice. Every read
// either returns the decoded value or an error wrapping errs.ErrDecodeBounds;
// it never panics on short input and never seeks backwards.
//
// Writer is the mirror image. It appends to a pooled growable buffer and
// Bytes returns exactly the bytes written:
//
//	w := encoding.NewWriter(256)
//	defer w.Release()
//
//	w.WriteUint32(20240101)
//	w.WriteString("peppy")
//	data := w.Bytes()
//
//	r := encoding.NewReader(data)
//	version, _ := r.ReadUint32()
//	name, _ := r.ReadString()
//
// Strings are decoded as raw bytes and not validated as UTF-8, so a string
// read from a file is always written back byte-for-byte.
package encoding
