package beatmap

import (
	"crypto/md5" //nolint:gosec // the scores.db key is an MD5 digest
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"

	"github.com/arloliu/scoresdb/errs"
)

var beatmapIDPattern = regexp.MustCompile(`BeatmapID:\s*(\d+)`)

// ParseID returns the value of the first "BeatmapID:" line in text.
//
// Returns errs.ErrInvalidIdentifier when there is no such line or the value
// does not fit in an int64.
func ParseID(text string) (int64, error) {
	m := beatmapIDPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, fmt.Errorf("%w: no BeatmapID", errs.ErrInvalidIdentifier)
	}

	id, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", errs.ErrInvalidIdentifier, err)
	}

	return id, nil
}

// Digest returns the lowercase hex MD5 of data, the form used as a beatmap
// hash in scores.db.
func Digest(data []byte) string {
	sum := md5.Sum(data) //nolint:gosec
	return hex.EncodeToString(sum[:])
}

// HashFile computes the beatmap hash of the file at path. The file is
// streamed through the hash function, so memory usage does not depend on
// file size.
func HashFile(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s for hashing: %w", path, err)
	}
	defer file.Close()

	hasher := md5.New() //nolint:gosec
	if _, err := io.Copy(hasher, file); err != nil {
		return "", fmt.Errorf("hashing %s: %w", path, err)
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}
