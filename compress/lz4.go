package compress

import (
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"

	"github.com/arloliu/scoresdb/encoding"
	"github.com/arloliu/scoresdb/errs"
)

// lz4SizePrefix is the length of the uncompressed-size prefix of an LZ4 block.
const lz4SizePrefix = 4

// lz4MaxRatio bounds the size an LZ4 block can expand to, so a corrupted
// prefix cannot force a huge allocation. LZ4 itself cannot exceed about 255:1.
const lz4MaxRatio = 1024

// lz4CompressorPool pools lz4.Compressor instances for reuse.
// The lz4.Compressor maintains internal state that benefits from reuse.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor compresses backups as a single size-prefixed LZ4 block.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 compressor.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses the input data using LZ4 block compression.
//
// Parameters:
//   - data: Input data to compress
//
// Returns:
//   - []byte: u32 uncompressed size followed by the LZ4 block (nil if input is empty)
//   - error: errs.ErrCountOverflow if data does not fit the size prefix, or a compression error
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	if uint64(len(data)) > uint64(^uint32(0)) {
		return nil, fmt.Errorf("%w: %d bytes", errs.ErrCountOverflow, len(data))
	}

	block := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, block)
	if err != nil {
		return nil, fmt.Errorf("lz4 compression failed: %w", err)
	}

	w := encoding.NewWriter(lz4SizePrefix + n)
	defer w.Release()
	w.WriteUint32(uint32(len(data))) //nolint:gosec
	w.WriteBytes(block[:n])

	return w.Bytes(), nil
}

// Decompress decompresses a size-prefixed LZ4 block.
//
// Returns errs.ErrInvalidBackup if the prefix is missing or implausible, or
// if the block does not decode to exactly the recorded size.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	r := encoding.NewReader(data)
	size, err := r.ReadUint32()
	if err != nil {
		return nil, fmt.Errorf("%w: lz4 size prefix: %w", errs.ErrInvalidBackup, err)
	}
	block, _ := r.ReadBytes(r.Remaining())

	if uint64(size) > uint64(len(block))*lz4MaxRatio+lz4SizePrefix {
		return nil, fmt.Errorf("%w: lz4 size %d too large for %d byte block",
			errs.ErrInvalidBackup, size, len(block))
	}

	out := make([]byte, size)
	n, err := lz4.UncompressBlock(block, out)
	if err != nil {
		return nil, fmt.Errorf("%w: lz4 decompression failed: %w", errs.ErrInvalidBackup, err)
	}
	if n != int(size) {
		return nil, fmt.Errorf("%w: lz4 block decoded to %d bytes, want %d",
			errs.ErrInvalidBackup, n, size)
	}

	return out, nil
}
