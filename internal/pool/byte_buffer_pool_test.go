package pool

import (
	"bytes"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// ByteBuffer Tests
// =============================================================================

func TestNewByteBuffer(t *testing.T) {
	capacity := 1024
	bb := NewByteBuffer(capacity)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len(), "new buffer should have zero length")
	assert.Equal(t, capacity, bb.Cap(), "new buffer should have specified capacity")
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(64)
	bb.MustWrite([]byte("some data"))
	originalCap := bb.Cap()

	bb.Reset()

	assert.Equal(t, 0, bb.Len(), "Reset should clear the buffer length")
	assert.Equal(t, originalCap, bb.Cap(), "Reset should preserve capacity")
}

func TestByteBuffer_Write(t *testing.T) {
	bb := NewByteBuffer(4)

	n, err := bb.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	n, err = bb.Write([]byte(" world"))
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	assert.Equal(t, []byte("hello world"), bb.Bytes())
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(16)
	bb.MustWrite([]byte("test data"))

	var buf bytes.Buffer
	n, err := bb.WriteTo(&buf)

	require.NoError(t, err)
	assert.Equal(t, int64(9), n)
	assert.Equal(t, "test data", buf.String())
}

type errorWriter struct {
	err error
}

func (w *errorWriter) Write([]byte) (int, error) {
	return 0, w.err
}

func TestByteBuffer_WriteTo_ErrorPropagation(t *testing.T) {
	bb := NewByteBuffer(16)
	bb.MustWrite([]byte("test"))

	n, err := bb.WriteTo(&errorWriter{err: io.ErrShortWrite})

	assert.ErrorIs(t, err, io.ErrShortWrite)
	assert.Equal(t, int64(0), n)
}

// =============================================================================
// ByteBuffer Grow Tests
// =============================================================================

func TestByteBuffer_Grow_SufficientCapacity(t *testing.T) {
	bb := NewByteBuffer(256)

	bb.Grow(100)

	assert.Equal(t, 256, bb.Cap(), "should not reallocate when capacity is sufficient")
}

func TestByteBuffer_Grow_PaddingPolicy(t *testing.T) {
	tests := []struct {
		name     string
		initial  int
		filled   int
		required int
		wantCap  int
	}{
		{"empty buffer", 0, 0, 1, 1 + GrowPadding},
		{"full buffer", 16, 16, 4, 16 + 4 + GrowPadding},
		{"partially full", 16, 10, 8, 10 + 8 + GrowPadding},
		{"large request", 8, 8, 100000, 8 + 100000 + GrowPadding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bb := NewByteBuffer(tt.initial)
			bb.MustWrite(make([]byte, tt.filled))

			bb.Grow(tt.required)

			assert.Equal(t, tt.wantCap, bb.Cap())
			assert.Equal(t, tt.filled, bb.Len(), "length should not change")
		})
	}
}

func TestByteBuffer_Grow_PreservesData(t *testing.T) {
	bb := NewByteBuffer(4)
	testData := []byte("important data that must be preserved")
	bb.MustWrite(testData)

	bb.Grow(4096)

	assert.Equal(t, testData, bb.Bytes())
}

func TestByteBuffer_Reserve(t *testing.T) {
	bb := NewByteBuffer(8)
	bb.MustWrite([]byte("abc"))

	bb.Reserve(4)
	assert.Equal(t, 8, bb.Cap(), "Reserve never shrinks")

	bb.Reserve(1000)
	assert.Equal(t, 1000, bb.Cap(), "Reserve allocates exactly")
	assert.Equal(t, []byte("abc"), bb.Bytes())
}

func TestByteBuffer_ExtendOrGrow(t *testing.T) {
	bb := NewByteBuffer(4)

	window := bb.ExtendOrGrow(2)
	copy(window, "ab")
	require.Equal(t, 4, bb.Cap(), "fits without growing")

	window = bb.ExtendOrGrow(4)
	copy(window, "cdef")
	require.Equal(t, 2+4+GrowPadding, bb.Cap())
	require.Equal(t, []byte("abcdef"), bb.Bytes())
}

// =============================================================================
// Pool Tests
// =============================================================================

func TestGetScoresBuffer(t *testing.T) {
	bb := GetScoresBuffer()
	defer PutScoresBuffer(bb)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
	assert.GreaterOrEqual(t, bb.Cap(), 0)
}

func TestPutScoresBuffer_NilBuffer(t *testing.T) {
	require.NotPanics(t, func() { PutScoresBuffer(nil) })
}

func TestByteBufferPool_ResetsOnPut(t *testing.T) {
	p := NewByteBufferPool(128, 0)

	bb := p.Get()
	bb.MustWrite([]byte("leftover"))
	p.Put(bb)

	again := p.Get()
	assert.Equal(t, 0, again.Len(), "pooled buffers come back empty")
}

func TestByteBufferPool_MaxThreshold_Discard(t *testing.T) {
	p := NewByteBufferPool(16, 64)

	bb := p.Get()
	bb.Grow(1024)
	bb.MustWrite([]byte("x"))
	p.Put(bb)

	// A discarded buffer is never handed out again; a fresh one has the default size.
	fresh := p.Get()
	assert.NotSame(t, bb, fresh)
	assert.Equal(t, 16, fresh.Cap())
}

func TestPool_ConcurrentAccess(t *testing.T) {
	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for range 50 {
				bb := GetScoresBuffer()
				bb.MustWrite([]byte{byte(id)})
				assert.Equal(t, 1, bb.Len())
				PutScoresBuffer(bb)
			}
		}(i)
	}
	wg.Wait()
}
