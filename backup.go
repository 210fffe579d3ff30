package scoresdb

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/arloliu/scoresdb/compress"
	"github.com/arloliu/scoresdb/errs"
	"github.com/arloliu/scoresdb/format"
)

// backupSuffix marks a backup file; a compression extension may follow it.
const backupSuffix = ".bak"

// BackupOptions configures WriteBackup.
type BackupOptions struct {
	// Compression is the codec applied to the backup. The zero value means
	// format.CompressionNone.
	Compression format.CompressionType

	// Dir is the directory the backup is written to. Empty means the
	// directory of the database.
	Dir string

	// Now returns the backup timestamp. Nil means time.Now.
	Now func() time.Time
}

// BackupName returns the backup file name for the database at dbPath:
// "<name>.<unix-seconds>.bak" followed by the compression extension.
func BackupName(dbPath string, at time.Time, ct format.CompressionType) string {
	return filepath.Base(dbPath) + "." + strconv.FormatInt(at.Unix(), 10) + backupSuffix + ct.Extension()
}

// WriteBackup compresses data and writes it as a backup of the database at
// dbPath.
//
// Returns:
//   - string: Path of the backup file
//   - compress.CompressionStats: Sizes before and after compression
//   - error: errs.ErrInvalidCompression, or a compression or write error
func WriteBackup(dbPath string, data []byte, opts BackupOptions) (string, compress.CompressionStats, error) {
	ct := opts.Compression
	if ct == 0 {
		ct = format.CompressionNone
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	dir := opts.Dir
	if dir == "" {
		dir = filepath.Dir(dbPath)
	}

	c, err := compress.GetCodec(ct)
	if err != nil {
		return "", compress.CompressionStats{}, err
	}

	packed, err := c.Compress(data)
	if err != nil {
		return "", compress.CompressionStats{}, fmt.Errorf("compressing backup: %w", err)
	}

	stats := compress.CompressionStats{
		Algorithm:      ct,
		OriginalSize:   int64(len(data)),
		CompressedSize: int64(len(packed)),
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", stats, fmt.Errorf("creating backup directory: %w", err)
	}

	path := filepath.Join(dir, BackupName(dbPath, now(), ct))
	if err := WriteFile(path, packed); err != nil {
		return "", stats, err
	}

	return path, stats, nil
}

// BackupCompression returns the compression of a backup file from its name.
func BackupCompression(path string) (format.CompressionType, error) {
	base := filepath.Base(path)
	if strings.HasSuffix(base, backupSuffix) {
		return format.CompressionNone, nil
	}

	ext := filepath.Ext(base)
	if !strings.HasSuffix(strings.TrimSuffix(base, ext), backupSuffix) {
		return 0, fmt.Errorf("%w: %s is not a backup file name", errs.ErrInvalidCompression, base)
	}

	ct := format.CompressionFromExtension(ext)
	if ct == format.CompressionNone {
		return 0, fmt.Errorf("%w: unknown backup extension %q", errs.ErrInvalidCompression, ext)
	}

	return ct, nil
}

// ReadBackup reads a backup written by WriteBackup and returns the original
// scores.db contents.
func ReadBackup(path string) ([]byte, error) {
	ct, err := BackupCompression(path)
	if err != nil {
		return nil, err
	}

	c, err := compress.GetCodec(ct)
	if err != nil {
		return nil, err
	}

	packed, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading backup: %w", err)
	}

	data, err := c.Decompress(packed)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", errs.ErrInvalidBackup, path, err)
	}

	return data, nil
}

// WriteFile writes data to path atomically: a temporary file in the same
// directory is written, closed and renamed over path.
func WriteFile(path string, data []byte) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", path, err)
	}
	tmpPath := tmpFile.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("closing temp file for %s: %w", path, err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return fmt.Errorf("setting mode of %s: %w", path, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("renaming temp file to %s: %w", path, err)
	}

	success = true
	return nil
}
