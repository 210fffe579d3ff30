// Package compress provides the compression codecs used for scores.db backups.
//
// A backup is the original scores.db written next to the rewritten file
// before it is replaced. Backups are written once and read rarely, so the
// codecs trade speed for ratio differently:
//   - None: the backup is a plain copy of scores.db
//   - Zstd: best ratio; the default
//   - S2: faster, larger output
//   - LZ4: fastest decompression
//
// All codecs implement the same interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// Select a codec by type:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress(scoresDB)
//
// # Zstd builds
//
// By default Zstd uses the pure Go github.com/klauspost/compress/zstd. Building
// with cgo and the gozstd tag switches to github.com/valyala/gozstd:
//
//	go build -tags gozstd ./...
//
// Both produce standard zstd frames and can read each other's output.
//
// # LZ4 framing
//
// LZ4 block compression does not record the uncompressed size, so the LZ4
// codec prefixes each block with it as a little-endian u32. Decompress
// rejects blocks whose recorded size does not match the decoded size with
// errs.ErrInvalidBackup.
//
// # Thread Safety
//
// All codecs are safe for concurrent use. Encoder and decoder state is kept
// in sync.Pool instances.
package compress
