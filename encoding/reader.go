package encoding

import (
	"fmt"
	"math"

	"github.com/arloliu/scoresdb/endian"
	"github.com/arloliu/scoresdb/errs"
	"github.com/arloliu/scoresdb/format"
)

// Reader is a forward-only, offset-tracked decoder over an immutable byte slice.
//
// Reads never go past the end of the slice: a read that needs more bytes than
// remain returns an error wrapping errs.ErrDecodeBounds and leaves the offset
// unchanged. Reader performs no other validation.
//
// Note: Reader is NOT thread-safe.
type Reader struct {
	data   []byte
	offset int
	engine endian.EndianEngine
}

// NewReader creates a Reader positioned at the start of data.
// The slice is not copied and must not be modified while the Reader is in use.
func NewReader(data []byte) *Reader {
	return &Reader{
		data:   data,
		engine: endian.GetLittleEndianEngine(),
	}
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int {
	return r.offset
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.offset
}

// next returns the next n bytes and advances the offset.
func (r *Reader) next(n int) ([]byte, error) {
	if n < 0 || n > r.Remaining() {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, %d available",
			errs.ErrDecodeBounds, n, r.offset, r.Remaining())
	}

	b := r.data[r.offset : r.offset+n]
	r.offset += n

	return b, nil
}

// ReadUint8 reads one unsigned byte.
func (r *Reader) ReadUint8() (uint8, error) {
	b, err := r.next(1)
	if err != nil {
		return 0, err
	}

	return b[0], nil
}

// ReadByte reads one byte. It implements io.ByteReader.
func (r *Reader) ReadByte() (byte, error) {
	return r.ReadUint8()
}

// ReadBool reads one byte; any nonzero value is true.
func (r *Reader) ReadBool() (bool, error) {
	b, err := r.ReadUint8()
	if err != nil {
		return false, err
	}

	return b != 0, nil
}

// ReadUint16 reads a little-endian unsigned 16-bit integer.
func (r *Reader) ReadUint16() (uint16, error) {
	b, err := r.next(2)
	if err != nil {
		return 0, err
	}

	return r.engine.Uint16(b), nil
}

// ReadUint32 reads a little-endian unsigned 32-bit integer.
func (r *Reader) ReadUint32() (uint32, error) {
	b, err := r.next(4)
	if err != nil {
		return 0, err
	}

	return r.engine.Uint32(b), nil
}

// ReadUint64 reads an unsigned 64-bit integer stored as two little-endian
// 32-bit words, low word first.
//
// The split layout is byte-identical to a plain little-endian u64; it is
// composed from two u32 reads to mirror how the format is specified.
func (r *Reader) ReadUint64() (uint64, error) {
	if r.Remaining() < 8 {
		_, err := r.next(8)
		return 0, err
	}

	low, _ := r.ReadUint32()
	high, _ := r.ReadUint32()

	return endian.JoinUint64(low, high), nil
}

// ReadFloat32 reads a little-endian IEEE-754 single precision float.
func (r *Reader) ReadFloat32() (float32, error) {
	bits, err := r.ReadUint32()
	if err != nil {
		return 0, err
	}

	return math.Float32frombits(bits), nil
}

// ReadFloat64 reads a little-endian IEEE-754 double precision float.
func (r *Reader) ReadFloat64() (float64, error) {
	b, err := r.next(8)
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(r.engine.Uint64(b)), nil
}

// ReadBytes reads n raw bytes. The returned slice aliases the Reader's data.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	return r.next(n)
}

// ReadULEB128 reads an unsigned LEB128 integer.
func (r *Reader) ReadULEB128() (uint64, error) {
	v, n, err := DecodeULEB128(r.data[r.offset:])
	if err != nil {
		return 0, fmt.Errorf("uleb128 at offset %d: %w", r.offset, err)
	}
	r.offset += n

	return v, nil
}

// ReadString reads a flag-prefixed string.
//
// Encoding format:
//   - 1 byte: flag
//   - if flag is 0x0B: ULEB128 byte length, then that many bytes
//   - any other flag: the empty string, nothing further is consumed
//
// Returns:
//   - string: Decoded string (bytes are not validated as UTF-8)
//   - error: errs.ErrDecodeBounds if the length or the bytes run past the end
func (r *Reader) ReadString() (string, error) {
	flag, err := r.ReadUint8()
	if err != nil {
		return "", err
	}

	if flag != format.StringFlagPresent {
		return "", nil
	}

	length, err := r.ReadULEB128()
	if err != nil {
		return "", err
	}

	if length > uint64(r.Remaining()) {
		return "", fmt.Errorf("%w: string of %d bytes at offset %d, %d available",
			errs.ErrDecodeBounds, length, r.offset, r.Remaining())
	}

	b, err := r.next(int(length)) //nolint:gosec
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// ReadIntDouble reads an int-double pair as found in osu!.db star rating tables:
// a tag byte, a u32, a tag byte and a float64. The tag bytes are not checked.
func (r *Reader) ReadIntDouble() (uint32, float64, error) {
	if _, err := r.ReadUint8(); err != nil {
		return 0, 0, err
	}
	i, err := r.ReadUint32()
	if err != nil {
		return 0, 0, err
	}
	if _, err = r.ReadUint8(); err != nil {
		return 0, 0, err
	}
	d, err := r.ReadFloat64()
	if err != nil {
		return 0, 0, err
	}

	return i, d, nil
}

// TimingPoint is one timing point entry of osu!.db.
type TimingPoint struct {
	BPM       float64
	Offset    float64
	Inherited bool
}

// ReadTimingPoint reads a timing point: float64 BPM, float64 offset and a bool.
func (r *Reader) ReadTimingPoint() (TimingPoint, error) {
	var (
		tp  TimingPoint
		err error
	)

	if tp.BPM, err = r.ReadFloat64(); err != nil {
		return TimingPoint{}, err
	}
	if tp.Offset, err = r.ReadFloat64(); err != nil {
		return TimingPoint{}, err
	}
	if tp.Inherited, err = r.ReadBool(); err != nil {
		return TimingPoint{}, err
	}

	return tp, nil
}
