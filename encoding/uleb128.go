package encoding

import (
	"fmt"

	"github.com/arloliu/scoresdb/errs"
)

// MaxULEB128Len is the maximum number of bytes of a ULEB128-encoded uint64.
const MaxULEB128Len = 10

// AppendULEB128 appends the unsigned LEB128 encoding of v to dst.
//
// Each output byte carries 7 bits of v, least significant group first; the
// high bit is set on every byte except the last. Zero encodes as a single 0x00.
func AppendULEB128(dst []byte, v uint64) []byte {
	for v >= 0x80 {
		dst = append(dst, byte(v)|0x80)
		v >>= 7
	}

	return append(dst, byte(v))
}

// ULEB128Len returns the number of bytes AppendULEB128 produces for v.
func ULEB128Len(v uint64) int {
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}

	return n
}

// DecodeULEB128 decodes an unsigned LEB128 value from the start of data.
//
// Returns:
//   - uint64: Decoded value
//   - int: Number of bytes consumed
//   - error: errs.ErrDecodeBounds if data ends before the final byte,
//     errs.ErrULEB128Overflow if the value does not fit in 64 bits
func DecodeULEB128(data []byte) (uint64, int, error) {
	var (
		value uint64
		shift uint
	)

	for i, b := range data {
		// The tenth byte may only carry the single remaining bit.
		if i == MaxULEB128Len-1 && b > 1 {
			return 0, 0, errs.ErrULEB128Overflow
		}

		value |= uint64(b&0x7F) << shift
		if b&0x80 == 0 {
			return value, i + 1, nil
		}
		shift += 7
	}

	return 0, 0, fmt.Errorf("%w: unterminated uleb128 after %d bytes", errs.ErrDecodeBounds, len(data))
}
