package pool

import "sync"

var stringSlicePool = sync.Pool{
	New: func() any { return &[]string{} },
}

// GetStringSlice retrieves a zero-length string slice with at least the given
// capacity from the pool.
//
// The caller must call the returned cleanup function to return the slice to
// the pool, and must not retain the slice afterwards.
//
// Example:
//
//	hashes, cleanup := pool.GetStringSlice(db.Len())
//	defer cleanup()
//	hashes = append(hashes, db.Hashes()...)
func GetStringSlice(capacity int) ([]string, func()) {
	ptr, _ := stringSlicePool.Get().(*[]string)
	slice := (*ptr)[:0]

	if cap(slice) < capacity {
		slice = make([]string, 0, capacity)
	}

	return slice, func() {
		clear(slice[:cap(slice)])
		*ptr = slice[:0]
		stringSlicePool.Put(ptr)
	}
}
