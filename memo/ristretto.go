package memo

import (
	"github.com/cespare/xxhash/v2"
	ristretto "github.com/dgraph-io/ristretto/v2"
)

type entry[V any] struct {
	path  string
	value V
}

// Ristretto is a Store backed by a ristretto cache, for large or long-lived
// keyed switches where frequency-based admission beats generational rotation.
//
// Key paths are hashed with xxhash; each entry keeps its encoded path and a
// load whose path differs is a miss.
type Ristretto[V any] struct {
	cache *ristretto.Cache[uint64, entry[V]]
	hash  func(string) uint64
}

// NewRistretto creates a store holding roughly maxEntries values.
func NewRistretto[V any](maxEntries int64) (*Ristretto[V], error) {
	cache, err := ristretto.NewCache(&ristretto.Config[uint64, entry[V]]{
		NumCounters: maxEntries * 10,
		MaxCost:     maxEntries,
		BufferItems: 64,

		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, err
	}
	return &Ristretto[V]{cache: cache, hash: xxhash.Sum64String}, nil
}

func (r *Ristretto[V]) Load(keys []Key) (V, bool) {
	path := Encode(keys)
	e, ok := r.cache.Get(r.hash(path))
	if !ok || e.path != path {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Store sets the value and waits until it is visible to Load.
// Ristretto may still reject the value on admission, in which case the
// next Load misses.
func (r *Ristretto[V]) Store(keys []Key, value V) {
	path := Encode(keys)
	r.cache.Set(r.hash(path), entry[V]{path: path, value: value}, 1)
	r.cache.Wait()
}

// Close stops the cache's background goroutines.
func (r *Ristretto[V]) Close() {
	r.cache.Close()
}
