package substitute

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"

	"github.com/tidwall/jsonc"

	"github.com/arloliu/scoresdb/errs"
)

// Table is an ordered old hash → new hash mapping.
//
// Entries keep the order in which their old hash was first set; setting an
// existing old hash replaces its new hash in place.
type Table struct {
	keys   []string
	values map[string]string
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{values: make(map[string]string)}
}

// Set maps oldHash to newHash.
func (t *Table) Set(oldHash, newHash string) {
	if t.values == nil {
		t.values = make(map[string]string)
	}
	if _, ok := t.values[oldHash]; !ok {
		t.keys = append(t.keys, oldHash)
	}
	t.values[oldHash] = newHash
}

// Get returns the new hash for oldHash.
func (t *Table) Get(oldHash string) (string, bool) {
	v, ok := t.values[oldHash]
	return v, ok
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.keys)
}

// Entries returns an iterator over (old, new) pairs in table order.
func (t *Table) Entries() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, k := range t.keys {
			if !yield(k, t.values[k]) {
				return
			}
		}
	}
}

// ParseTable parses a JSONC substitution table.
//
// The document must be a single JSON object whose values are all strings.
// Line comments, block comments and trailing commas are stripped before
// parsing. A key that appears twice keeps its first position and its last
// value.
//
// Parameters:
//   - data: JSONC document
//
// Returns:
//   - *Table: Parsed table in document order
//   - error: errs.ErrMalformedTable wrapped with the parse failure
func ParseTable(data []byte) (*Table, error) {
	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))

	tok, err := dec.Token()
	if err != nil {
		return nil, malformed(err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, malformed(fmt.Errorf("expected object, got %v", tok))
	}

	t := NewTable()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, malformed(err)
		}
		key, _ := keyTok.(string)

		valTok, err := dec.Token()
		if err != nil {
			return nil, malformed(err)
		}
		val, ok := valTok.(string)
		if !ok {
			return nil, malformed(fmt.Errorf("value of %q is not a string", key))
		}

		t.Set(key, val)
	}

	// closing brace
	if _, err := dec.Token(); err != nil {
		return nil, malformed(err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, malformed(errors.New("unexpected data after object"))
	}

	return t, nil
}

// ReadTableFile reads and parses a JSONC substitution table from disk.
func ReadTableFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	t, err := ParseTable(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return t, nil
}

func malformed(err error) error {
	return fmt.Errorf("%w: %w", errs.ErrMalformedTable, err)
}

// MarshalJSON encodes the table as a JSON object in table order.
func (t *Table) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range t.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(t.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// Format returns the table as a JSON object indented with two spaces.
// An empty table formats as "{}".
func (t *Table) Format() string {
	raw, _ := t.MarshalJSON()

	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		return string(raw)
	}

	return out.String()
}
