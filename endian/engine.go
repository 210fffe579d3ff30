// Package endian provides the byte order engine used by the scores.db codec.
//
// The scores.db format is little-endian throughout, so most code only needs
// GetLittleEndianEngine. The EndianEngine interface combines the standard
// library's ByteOrder and AppendByteOrder so a single value can both decode
// fixed-width fields in place and append them to a growing buffer:
//
//	engine := endian.GetLittleEndianEngine()
//	v := engine.Uint32(data[0:4])
//	buf = engine.AppendUint32(buf, v)
//
// # Thread Safety
//
// All functions are safe for concurrent use. The engines are stateless.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface.
//
// It is satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness reports the host's byte order.
func CheckEndianness() binary.ByteOrder {
	// 0x0100 stores 0x00 first on little-endian hosts.
	var i uint16 = 0x0100

	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNativeLittleEndian reports whether the host is little-endian, in which case
// scores.db fields are already in native order.
func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

// GetLittleEndianEngine returns the little-endian engine used by scores.db.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// SplitUint64 splits v into the low and high 32-bit words used by the
// scores.db "u64split" layout.
func SplitUint64(v uint64) (low, high uint32) {
	return uint32(v), uint32(v >> 32) //nolint:gosec
}

// JoinUint64 reassembles a value split by SplitUint64.
func JoinUint64(low, high uint32) uint64 {
	return uint64(high)<<32 | uint64(low)
}
