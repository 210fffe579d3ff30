package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Fields computes the xxHash64 of several strings, each followed by a 0x00
// separator so ("ab", "c") and ("a", "bc") hash differently.
func Fields(fields ...string) uint64 {
	d := xxhash.New()
	for _, f := range fields {
		_, _ = d.WriteString(f)
		_, _ = d.Write([]byte{0})
	}

	return d.Sum64()
}
