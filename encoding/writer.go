package encoding

import (
	"math"

	"github.com/arloliu/scoresdb/endian"
	"github.com/arloliu/scoresdb/format"
	"github.com/arloliu/scoresdb/internal/pool"
)

// Writer is a growable, offset-tracked encoder producing the osu! binary layout.
//
// Before each write the backing buffer is checked; when it cannot hold the
// value it is reallocated to offset+needed+2048 bytes (see pool.GrowPadding).
// Use Bytes to obtain the result: it holds exactly the bytes written, never
// the unused capacity.
//
// Note: Writer is NOT thread-safe.
type Writer struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
}

// NewWriter creates a Writer whose backing buffer can hold at least
// initialSize bytes before the first reallocation.
//
// The buffer comes from a pool; call Release when the Writer is no longer needed.
func NewWriter(initialSize int) *Writer {
	buf := pool.GetScoresBuffer()
	buf.Reserve(initialSize)

	return &Writer{
		buf:    buf,
		engine: endian.GetLittleEndianEngine(),
	}
}

// Len returns the number of bytes written, which is also the current offset.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// Cap returns the capacity of the backing buffer.
func (w *Writer) Cap() int {
	return w.buf.Cap()
}

// Bytes returns a copy of the bytes written so far (offset 0 through the
// current offset). The copy stays valid after Release.
func (w *Writer) Bytes() []byte {
	out := make([]byte, w.buf.Len())
	copy(out, w.buf.Bytes())

	return out
}

// Release returns the backing buffer to the pool. The Writer must not be used afterwards.
func (w *Writer) Release() {
	if w.buf != nil {
		pool.PutScoresBuffer(w.buf)
		w.buf = nil
	}
}

// WriteUint8 writes one byte.
func (w *Writer) WriteUint8(v uint8) {
	w.buf.Grow(1)
	w.buf.B = append(w.buf.B, v)
}

// WriteBool writes 1 for true and 0 for false.
func (w *Writer) WriteBool(v bool) {
	if v {
		w.WriteUint8(1)
	} else {
		w.WriteUint8(0)
	}
}

// WriteUint16 writes a little-endian unsigned 16-bit integer.
func (w *Writer) WriteUint16(v uint16) {
	w.buf.Grow(2)
	w.buf.B = w.engine.AppendUint16(w.buf.B, v)
}

// WriteUint32 writes a little-endian unsigned 32-bit integer.
func (w *Writer) WriteUint32(v uint32) {
	w.buf.Grow(4)
	w.buf.B = w.engine.AppendUint32(w.buf.B, v)
}

// WriteUint64 writes v as two little-endian 32-bit words, low word first.
func (w *Writer) WriteUint64(v uint64) {
	low, high := endian.SplitUint64(v)
	w.WriteUint32(low)
	w.WriteUint32(high)
}

// WriteFloat32 writes a little-endian IEEE-754 single precision float.
func (w *Writer) WriteFloat32(v float32) {
	w.WriteUint32(math.Float32bits(v))
}

// WriteFloat64 writes a little-endian IEEE-754 double precision float.
func (w *Writer) WriteFloat64(v float64) {
	w.buf.Grow(8)
	w.buf.B = w.engine.AppendUint64(w.buf.B, math.Float64bits(v))
}

// WriteBytes writes raw bytes.
func (w *Writer) WriteBytes(b []byte) {
	w.buf.MustWrite(b)
}

// WriteULEB128 writes v as an unsigned LEB128 integer.
func (w *Writer) WriteULEB128(v uint64) {
	w.buf.Grow(ULEB128Len(v))
	w.buf.B = AppendULEB128(w.buf.B, v)
}

// WriteString writes a flag-prefixed string.
//
// A non-empty string is written as the 0x0B flag, the ULEB128 of its UTF-8
// byte length, and the bytes. The empty string is the single byte 0x00.
func (w *Writer) WriteString(s string) {
	if s == "" {
		w.WriteUint8(format.StringFlagEmpty)
		return
	}

	w.buf.Grow(1 + ULEB128Len(uint64(len(s))) + len(s))
	w.buf.B = append(w.buf.B, format.StringFlagPresent)
	w.buf.B = AppendULEB128(w.buf.B, uint64(len(s)))
	w.buf.B = append(w.buf.B, s...)
}

// WriteIntDouble writes an int-double pair with its 0x08 / 0x0D tag bytes.
func (w *Writer) WriteIntDouble(i uint32, d float64) {
	w.WriteUint8(format.IntDoubleIntTag)
	w.WriteUint32(i)
	w.WriteUint8(format.IntDoubleDoubleTag)
	w.WriteFloat64(d)
}

// WriteTimingPoint writes a timing point.
func (w *Writer) WriteTimingPoint(tp TimingPoint) {
	w.WriteFloat64(tp.BPM)
	w.WriteFloat64(tp.Offset)
	w.WriteBool(tp.Inherited)
}
