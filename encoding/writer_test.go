package encoding

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_FixedWidthLayout(t *testing.T) {
	w := NewWriter(0)
	defer w.Release()

	w.WriteUint8(0x2A)
	w.WriteUint16(0x1234)
	w.WriteUint32(0x12345678)
	w.WriteUint64(0x0102030405060708)
	w.WriteBool(true)
	w.WriteBool(false)

	expected := []byte{
		0x2A,
		0x34, 0x12,
		0x78, 0x56, 0x34, 0x12,
		0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01,
		0x01,
		0x00,
	}
	require.Equal(t, expected, w.Bytes())
	require.Equal(t, len(expected), w.Len())
}

func TestWriter_Uint64Split_RoundTrip(t *testing.T) {
	values := []uint64{0, 1, math.MaxUint32, 1 << 32, math.MaxUint64}

	w := NewWriter(0)
	defer w.Release()
	for _, v := range values {
		w.WriteUint64(v)
	}

	r := NewReader(w.Bytes())
	for _, want := range values {
		got, err := r.ReadUint64()
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestWriter_WriteString_Empty(t *testing.T) {
	w := NewWriter(0)
	defer w.Release()

	w.WriteString("")

	require.Equal(t, []byte{0x00}, w.Bytes(), "empty string is exactly one 0x00 byte")
}

func TestWriter_WriteString_NonEmpty(t *testing.T) {
	tests := []struct {
		name   string
		s      string
		prefix []byte
	}{
		{"single byte", "a", []byte{0x0B, 0x01}},
		{"md5 hex", "d41d8cd98f00b204e9800998ecf8427e", []byte{0x0B, 0x20}},
		{"127 bytes", strings.Repeat("x", 127), []byte{0x0B, 0x7F}},
		{"128 bytes", strings.Repeat("x", 128), []byte{0x0B, 0x80, 0x01}},
		{"multibyte counts bytes not runes", "ピ", []byte{0x0B, 0x03}},
		{"nul content", "\x00", []byte{0x0B, 0x01}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWriter(0)
			defer w.Release()

			w.WriteString(tt.s)
			got := w.Bytes()

			require.NotEqual(t, byte(0x00), got[0], "non-empty string never starts with 0x00")
			require.Equal(t, tt.prefix, got[:len(tt.prefix)])
			require.Equal(t, tt.s, string(got[len(tt.prefix):]))

			r := NewReader(got)
			decoded, err := r.ReadString()
			require.NoError(t, err)
			require.Equal(t, tt.s, decoded)
		})
	}
}

func TestWriter_StringLengths_RoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 127, 128, 16384} {
		s := strings.Repeat("z", n)

		w := NewWriter(0)
		w.WriteString(s)
		data := w.Bytes()
		w.Release()

		r := NewReader(data)
		got, err := r.ReadString()
		require.NoError(t, err)
		require.Len(t, got, n)
		require.Equal(t, 0, r.Remaining())
	}
}

func TestWriter_WriteULEB128(t *testing.T) {
	w := NewWriter(0)
	defer w.Release()

	w.WriteULEB128(1<<28 - 1)

	r := NewReader(w.Bytes())
	v, err := r.ReadULEB128()
	require.NoError(t, err)
	require.Equal(t, uint64(1<<28-1), v)
}

func TestWriter_BytesIsTruncatedCopy(t *testing.T) {
	w := NewWriter(4096)
	defer w.Release()

	w.WriteUint32(7)
	out := w.Bytes()

	assert.Len(t, out, 4, "only written bytes are returned")
	assert.GreaterOrEqual(t, w.Cap(), 4096)

	out[0] = 0xFF
	assert.Equal(t, []byte{7, 0, 0, 0}, w.Bytes(), "Bytes returns an independent copy")
}

func TestWriter_GrowsAcrossManyWrites(t *testing.T) {
	w := NewWriter(0)
	defer w.Release()

	for i := range 100000 {
		w.WriteUint32(uint32(i)) //nolint:gosec
	}

	require.Equal(t, 400000, w.Len())
	r := NewReader(w.Bytes())
	for i := range 100000 {
		v, err := r.ReadUint32()
		require.NoError(t, err)
		require.Equal(t, uint32(i), v) //nolint:gosec
	}
}

func TestWriter_ReleaseTwice(t *testing.T) {
	w := NewWriter(0)
	w.WriteUint8(1)
	data := w.Bytes()

	w.Release()
	require.NotPanics(t, w.Release)
	require.Equal(t, []byte{1}, data)
}
