package beatmap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/arloliu/scoresdb/errs"
)

// Extension is the file extension of beatmap files.
const Extension = ".osu"

// File is the identity of one beatmap file.
type File struct {
	Path   string
	ID     int64
	Digest string
}

// ReadFile reads a beatmap file and returns its ID and hash.
func ReadFile(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("reading %s: %w", path, err)
	}

	id, err := ParseID(string(data))
	if err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}

	return File{Path: path, ID: id, Digest: Digest(data)}, nil
}

// Scan reads every file in paths and collects their IDs and hashes.
//
// Files are processed by a bounded pool of workers (see WithWorkers) but the
// results are merged in input order, so a later file wins when two files
// share an ID. A file that cannot be read or has no valid ID is skipped and
// its error collected. When more than one path is given, a file with ID 0 is
// skipped with errs.ErrAmbiguousIdentifier since it cannot be paired by ID.
// Files not started before ctx is cancelled are skipped with ctx.Err().
//
// Parameters:
//   - ctx: Cancellation for the scan
//   - paths: Beatmap files
//   - opts: Optional settings (WithWorkers, WithLogger)
//
// Returns:
//   - *HashSet: ID → hash of every accepted file
//   - []error: One error per skipped file, in input order
func Scan(ctx context.Context, paths []string, opts ...Option) (*HashSet, []error) {
	cfg := newConfig(opts...)

	type result struct {
		file File
		err  error
	}
	results := make([]result, len(paths))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for range min(cfg.workers, len(paths)) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				if err := ctx.Err(); err != nil {
					results[i].err = fmt.Errorf("%s: %w", paths[i], err)
					continue
				}
				results[i].file, results[i].err = ReadFile(paths[i])
			}
		}()
	}
	for i := range paths {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	set := NewHashSet()
	var scanErrs []error
	for i, res := range results {
		err := res.err
		if err == nil && res.file.ID == 0 && len(paths) > 1 {
			err = fmt.Errorf("%s: %w: BeatmapID is 0", paths[i], errs.ErrAmbiguousIdentifier)
		}
		if err != nil {
			cfg.logger.Warn("skipping beatmap", "path", paths[i], "error", err)
			scanErrs = append(scanErrs, err)

			continue
		}
		set.Set(res.file.ID, res.file.Digest)
	}

	return set, scanErrs
}

// ListFiles returns the beatmap files directly inside dir, sorted by name.
// When dir is a regular file it is returned on its own.
func ListFiles(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{dir}, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), Extension) {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}

	return paths, nil
}
